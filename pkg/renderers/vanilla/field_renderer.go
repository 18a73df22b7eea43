package vanilla

import (
	"bytes"
	"html"
	"slices"
	"strings"

	"github.com/goliatone/go-adminform/pkg/field"
	rendertemplate "github.com/goliatone/go-adminform/pkg/render/template"
	"github.com/goliatone/go-adminform/pkg/renderers/vanilla/components"
)

type componentRenderer struct {
	templates rendertemplate.TemplateRenderer
	registry  *components.Registry
	partials  map[string]string

	usedComponents map[string]struct{}
}

func newComponentRenderer(templates rendertemplate.TemplateRenderer, registry *components.Registry, partials map[string]string) *componentRenderer {
	if registry == nil {
		registry = components.NewDefaultRegistry()
	}
	return &componentRenderer{
		templates:      templates,
		registry:       registry,
		partials:       partials,
		usedComponents: make(map[string]struct{}),
	}
}

// render produces the markup for one field. Component failures never escape:
// the field degrades to its wrapper with an inline error message so the rest
// of the form still renders.
func (r *componentRenderer) render(fld field.Field) string {
	componentName := componentNameFor(fld.EffectiveKind())

	descriptor, ok := r.registry.Descriptor(componentName)
	if !ok {
		fld.Error = "component " + componentName + " is not registered"
		return buildFieldMarkup(fld, componentName, "")
	}

	data := components.ComponentData{
		Template:      r.templates,
		ThemePartials: r.partials,
	}

	var control bytes.Buffer
	if err := descriptor.Renderer(&control, fld, data); err != nil {
		fld.Error = err.Error()
		return buildFieldMarkup(fld, componentName, "")
	}

	r.usedComponents[componentName] = struct{}{}

	return buildFieldMarkup(fld, componentName, control.String())
}

func (r *componentRenderer) assets() (stylesheets []string, scripts []components.Script) {
	if len(r.usedComponents) == 0 {
		return nil, nil
	}
	names := make([]string, 0, len(r.usedComponents))
	for name := range r.usedComponents {
		names = append(names, name)
	}
	slices.Sort(names)
	return r.registry.Assets(names)
}

// componentNameFor is the kind dispatch table. The switch is exhaustive over
// field.Kinds(); adding a kind without a component is a compile-visible gap
// here rather than a runtime fallthrough.
func componentNameFor(kind field.Kind) string {
	switch kind {
	case field.KindText, field.KindEmail, field.KindPassword, field.KindNumber:
		return components.NameInput
	case field.KindTextarea:
		return components.NameTextarea
	case field.KindArray:
		return components.NameArray
	case field.KindSelect:
		return components.NameSelect
	case field.KindMultiSelect:
		return components.NameMultiSelect
	case field.KindCheckbox:
		return components.NameCheckbox
	case field.KindCheckboxGroup:
		return components.NameCheckboxGroup
	case field.KindFile:
		return components.NameFile
	default:
		return components.NameInput
	}
}

func buildFieldMarkup(fld field.Field, componentName, control string) string {
	var builder strings.Builder
	builder.Grow(len(control) + 256)

	builder.WriteString(`<div class="af-field`)
	if fld.Error != "" {
		builder.WriteString(` af-field-invalid`)
	}
	builder.WriteString(`" data-field="`)
	builder.WriteString(html.EscapeString(fld.Name))
	builder.WriteString(`" data-component="`)
	builder.WriteString(html.EscapeString(componentName))
	builder.WriteString(`">` + "\n")

	if shouldRenderLabel(fld) {
		builder.WriteString(`    <label for="af-`)
		builder.WriteString(html.EscapeString(fld.Name))
		builder.WriteString(`" class="af-label">`)
		builder.WriteString(html.EscapeString(fld.Label))
		if fld.Required {
			builder.WriteString(` *`)
		}
		builder.WriteString("</label>\n")
	}

	if control != "" {
		for _, line := range strings.Split(control, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			builder.WriteString("    ")
			builder.WriteString(line)
			builder.WriteByte('\n')
		}
	}

	if fld.Error != "" {
		builder.WriteString(`    <p class="af-field-error" data-validation="`)
		builder.WriteString(html.EscapeString(fld.Name))
		builder.WriteString(`" role="alert">`)
		builder.WriteString(html.EscapeString(fld.Error))
		builder.WriteString("</p>\n")
	}

	if help := strings.TrimSpace(fld.Help); help != "" {
		// Help may carry markup; uischema sanitizes it before it lands here.
		builder.WriteString(`    <small class="af-help">`)
		builder.WriteString(help)
		builder.WriteString("</small>\n")
	}

	builder.WriteString("</div>\n")
	return builder.String()
}

func shouldRenderLabel(fld field.Field) bool {
	return strings.TrimSpace(fld.Label) != ""
}
