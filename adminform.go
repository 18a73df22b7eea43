// Package adminform generates browser and terminal admin forms from OpenAPI
// schemas, with account-specific validation and payload conversion under
// pkg/userform.
package adminform

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-adminform/pkg/field"
	"github.com/goliatone/go-adminform/pkg/orchestrator"
	"github.com/goliatone/go-adminform/pkg/render"
)

// Form aliases the form definition used across renderers.
type Form = field.Form

// RenderOptions describes per-request overrides that renderers can use to
// prefill values or surface server-side validation errors.
type RenderOptions = render.Options

// Request aliases the orchestrator request for callers using the root entry
// points.
type Request = orchestrator.Request

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML loads the OpenAPI source, builds a form for the requested
// schema, and renders it using the default vanilla renderer. It is the
// simplest entry point for callers that just want HTML output.
func GenerateHTML(ctx context.Context, specPath, schema string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		SpecPath: specPath,
		Schema:   schema,
	})
}

// GenerateHTMLFromForm renders a ready-made form definition, bypassing the
// OpenAPI stages while still delegating to the orchestrator.
func GenerateHTMLFromForm(ctx context.Context, form Form, opts RenderOptions, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Form:          &form,
		RenderOptions: opts,
	})
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) orchestrator.Option {
	return orchestrator.WithThemeFallbacks(fallbacks)
}
