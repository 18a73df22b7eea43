// Package template defines the seam between renderers and the
// github.com/goliatone/go-template engine contract, so renderers never hold a
// concrete engine type.
package template

import "io"

// TemplateRenderer mirrors the go-template engine contract. Implementations
// must be safe for concurrent use by multiple render calls.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
