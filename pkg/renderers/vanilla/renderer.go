package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/goliatone/go-adminform/pkg/field"
	"github.com/goliatone/go-adminform/pkg/render"
	rendertemplate "github.com/goliatone/go-adminform/pkg/render/template"
	gotemplate "github.com/goliatone/go-adminform/pkg/render/template/gotemplate"
	"github.com/goliatone/go-adminform/pkg/renderers/vanilla/components"
)

// Option customises the renderer configuration.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	registry         *components.Registry
	assetBase        string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithComponentRegistry overrides the component registry, letting callers
// replace or extend the built-in controls.
func WithComponentRegistry(registry *components.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.registry = registry
		}
	}
}

// WithAssetBase sets the URL prefix for emitted stylesheet/script references
// when no theme asset resolver is active. Defaults to "/assets/".
func WithAssetBase(base string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(base)
		if trimmed == "" {
			return
		}
		if !strings.HasSuffix(trimmed, "/") {
			trimmed += "/"
		}
		cfg.assetBase = trimmed
	}
}

// Renderer produces browser-ready HTML for a form.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	registry  *components.Registry
	assetBase string
}

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS: TemplatesFS(),
		assetBase:  "/assets/",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.registry == nil {
		cfg.registry = components.NewDefaultRegistry()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates: renderer,
		registry:  cfg.registry,
		assetBase: cfg.assetBase,
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render maps the form plus per-request options into HTML. Field-level
// component failures degrade into inline error markup; only chrome-level
// failures (missing template, broken registry) abort the render.
func (r *Renderer) Render(_ context.Context, form field.Form, options render.Options) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	form = form.ApplyValues(options.Values)

	mapping := render.MapErrorPayload(form, options.Errors)
	form = form.ApplyErrors(mapping.Fields)

	method := strings.ToUpper(strings.TrimSpace(options.Method))
	if method == "" {
		method = strings.ToUpper(strings.TrimSpace(form.Method))
	}
	if method == "" {
		method = "POST"
	}

	hidden := options.Hidden
	submitMethod := method
	if method != "GET" && method != "POST" {
		// Browsers only speak GET/POST; tunnel the verb through _method.
		submitMethod = "POST"
		hidden = render.MergeHiddenFields(hidden, render.MethodOverride(method))
	}

	fields := newComponentRenderer(r.templates, r.registry, themePartials(options))

	sections := make([]map[string]any, 0, len(form.Sections))
	for _, section := range form.Sections {
		var markup strings.Builder
		for _, fld := range section.Fields {
			markup.WriteString(fields.render(fld))
		}
		sections = append(sections, map[string]any{
			"name":        section.Name,
			"label":       section.Label,
			"description": section.Description,
			"html":        markup.String(),
		})
	}

	stylesheets, scripts := fields.assets()

	payload := map[string]any{
		"form":          form,
		"method":        submitMethod,
		"form_errors":   mapping.Form,
		"hidden_fields": hiddenPayload(hidden),
		"sections":      sections,
		"css_vars":      cssVarsStyle(options),
		"stylesheets":   r.assetURLs(options, stylesheets),
		"scripts":       r.scriptPayload(options, scripts),
		"submit_label":  submitLabel(form),
	}

	result, err := r.templates.RenderTemplate("templates/form.tmpl", payload)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func submitLabel(form field.Form) string {
	if strings.TrimSpace(form.Title) != "" {
		return "Save"
	}
	return "Submit"
}

func hiddenPayload(hidden map[string]string) []map[string]string {
	sorted := render.SortedHiddenFields(hidden)
	out := make([]map[string]string, 0, len(sorted))
	for _, fld := range sorted {
		out = append(out, map[string]string{"name": fld.Name, "value": fld.Value})
	}
	return out
}

func themePartials(options render.Options) map[string]string {
	if options.Theme == nil {
		return nil
	}
	return options.Theme.Partials
}

func cssVarsStyle(options render.Options) string {
	if options.Theme == nil || len(options.Theme.CSSVars) == 0 {
		return ""
	}
	pairs := make([]string, 0, len(options.Theme.CSSVars))
	for _, name := range sortedKeys(options.Theme.CSSVars) {
		pairs = append(pairs, name+": "+options.Theme.CSSVars[name])
	}
	return strings.Join(pairs, "; ")
}

func (r *Renderer) assetURLs(options render.Options, names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, r.assetURL(options, name))
	}
	return out
}

func (r *Renderer) scriptPayload(options render.Options, scripts []components.Script) []map[string]any {
	out := make([]map[string]any, 0, len(scripts))
	for _, script := range scripts {
		out = append(out, map[string]any{
			"src":   r.assetURL(options, script.Src),
			"defer": script.Defer,
		})
	}
	return out
}

func (r *Renderer) assetURL(options render.Options, name string) string {
	if options.Theme != nil && options.Theme.AssetURL != nil {
		if resolved := options.Theme.AssetURL(name); resolved != "" {
			return resolved
		}
	}
	return r.assetBase + name
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
