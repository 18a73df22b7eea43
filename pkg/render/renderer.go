package render

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-adminform/pkg/field"
)

// Renderer converts a form into a byte representation (HTML, an interactive
// terminal session, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form field.Form, options Options) ([]byte, error)
}

// Options describe per-request data renderers can use to customise output
// without mutating the form itself.
type Options struct {
	// Method overrides the HTTP method declared by the form. Renderers are
	// responsible for translating non-browser verbs (PUT/DELETE) into POST
	// plus a hidden _method input.
	Method string
	// Values pre-populates rendered controls keyed by field name.
	Values map[string]any
	// Errors surfaces validation feedback keyed by field name; renderers map
	// these into inline field-local chrome.
	Errors map[string]string
	// Hidden lists extra hidden inputs (CSRF token, version stamps) emitted
	// alongside the visible fields.
	Hidden map[string]string
	// Theme carries the resolved go-theme configuration: template partial
	// overrides, design tokens, and the asset URL resolver.
	Theme *theme.RendererConfig
}
