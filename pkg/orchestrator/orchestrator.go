package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/getkin/kin-openapi/openapi3"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-adminform/pkg/field"
	"github.com/goliatone/go-adminform/pkg/openapi"
	"github.com/goliatone/go-adminform/pkg/render"
	"github.com/goliatone/go-adminform/pkg/renderers/vanilla"
	"github.com/goliatone/go-adminform/pkg/uischema"
)

const defaultRendererName = "vanilla"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom OpenAPI loader.
func WithLoader(loader *openapi.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithLayoutStore supplies pre-loaded uischema layouts.
func WithLayoutStore(store *uischema.Store) Option {
	return func(o *Orchestrator) {
		o.layouts = store
	}
}

// WithLayoutFS supplies an fs.FS holding uischema layout documents.
func WithLayoutFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.layoutFS = fsys
	}
}

// WithThemeSelector passes a go-theme selector so theme/variant choices can be
// resolved into renderer configuration ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithDefaultTheme sets the theme and variant used when a request does not
// name one.
func WithDefaultTheme(name, variant string) Option {
	return func(o *Orchestrator) {
		o.defaultTheme = name
		o.defaultVariant = variant
	}
}

// WithThemeFallbacks sets fallback partials used when a theme selection does
// not override a component template.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		o.themeFallbacks = fallbacks
	}
}

// Orchestrator coordinates the pipeline from OpenAPI document to rendered
// output. It applies sensible defaults (vanilla renderer, embedded templates)
// while remaining open to dependency injection for advanced callers.
type Orchestrator struct {
	loader          *openapi.Loader
	registry        *render.Registry
	layouts         *uischema.Store
	layoutFS        fs.FS
	themeSelector   theme.ThemeSelector
	themeFallbacks  map[string]string
	defaultRenderer string
	defaultTheme    string
	defaultVariant  string
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render a form.
type Request struct {
	// Form supplies a ready-made form definition, bypassing the OpenAPI
	// stages entirely.
	Form *field.Form

	// Document allows callers to bypass the loader when they already have a
	// parsed OpenAPI document.
	Document *openapi3.T

	// SpecPath locates an OpenAPI document on disk. Ignored when Document or
	// Form is set.
	SpecPath string

	// Schema names the component schema to build the form from. Required
	// unless Form is supplied.
	Schema string

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// ThemeName and ThemeVariant select a theme when a selector is
	// configured. Empty values fall back to the orchestrator defaults.
	ThemeName    string
	ThemeVariant string

	// RenderOptions carries per-request instructions such as method
	// overrides, prefilled values, or server-side errors.
	RenderOptions render.Options
}

// Generate executes the load, build, overlay, and render sequence and returns
// the rendered bytes (HTML for the default vanilla renderer).
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	form, err := o.resolveForm(ctx, req)
	if err != nil {
		return nil, err
	}

	if layout, ok := o.layouts.Layout(form.Name); ok {
		form = uischema.Apply(form, layout)
	}

	options := req.RenderOptions
	if options.Theme == nil {
		cfg, err := o.resolveThemeConfig(req.ThemeName, req.ThemeVariant)
		if err != nil {
			return nil, err
		}
		options.Theme = cfg
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, form, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

func (o *Orchestrator) resolveForm(ctx context.Context, req Request) (field.Form, error) {
	if req.Form != nil {
		return *req.Form, nil
	}
	if req.Schema == "" {
		return field.Form{}, errors.New("orchestrator: schema name is required")
	}

	doc := req.Document
	if doc == nil {
		if req.SpecPath == "" {
			return field.Form{}, errors.New("orchestrator: form, document, or spec path is required")
		}
		loaded, err := o.loader.LoadFile(ctx, req.SpecPath)
		if err != nil {
			return field.Form{}, fmt.Errorf("orchestrator: load document: %w", err)
		}
		doc = loaded
	}

	form, err := openapi.BuildForm(doc, req.Schema)
	if err != nil {
		return field.Form{}, fmt.Errorf("orchestrator: build form: %w", err)
	}
	return form, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		o.loader = openapi.NewLoader()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	if o.layouts == nil && o.layoutFS != nil {
		store, err := uischema.LoadFS(o.layoutFS)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: load layouts: %w", err)
		} else {
			o.layouts = store
		}
	}

	o.defaultsApplied = true
}
