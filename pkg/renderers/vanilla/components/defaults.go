package components

import (
	"bytes"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/goliatone/go-adminform/pkg/field"
)

const (
	templatePrefix = "templates/components/"

	// Asset file names served from the embedded bundle.
	StylesheetName    = "adminform.css"
	MultiSelectScript = "adminform-multiselect.js"
)

// NewDefaultRegistry constructs a registry pre-populated with the built-in
// components.
func NewDefaultRegistry() *Registry {
	registry := New()

	registry.MustRegister(NameInput, Descriptor{
		Renderer:    templateComponentRenderer("forms.input", templatePrefix+"input.tmpl"),
		Stylesheets: []string{StylesheetName},
	})
	registry.MustRegister(NameTextarea, Descriptor{
		Renderer:    templateComponentRenderer("forms.textarea", templatePrefix+"textarea.tmpl"),
		Stylesheets: []string{StylesheetName},
	})
	registry.MustRegister(NameSelect, Descriptor{
		Renderer:    templateComponentRenderer("forms.select", templatePrefix+"select.tmpl"),
		Stylesheets: []string{StylesheetName},
	})
	registry.MustRegister(NameCheckbox, Descriptor{
		Renderer:    templateComponentRenderer("forms.checkbox", templatePrefix+"checkbox.tmpl"),
		Stylesheets: []string{StylesheetName},
	})
	registry.MustRegister(NameCheckboxGroup, Descriptor{
		Renderer:    checkboxGroupRenderer,
		Stylesheets: []string{StylesheetName},
	})
	registry.MustRegister(NameArray, Descriptor{
		Renderer:    arrayRenderer,
		Stylesheets: []string{StylesheetName},
	})
	registry.MustRegister(NameFile, Descriptor{
		Renderer:    fileRenderer,
		Stylesheets: []string{StylesheetName},
	})
	registry.MustRegister(NameMultiSelect, Descriptor{
		Renderer:    multiSelectRenderer,
		Stylesheets: []string{StylesheetName},
		Scripts:     []Script{{Src: MultiSelectScript, Defer: true}},
	})

	return registry
}

func templateComponentRenderer(partialKey, templateName string) Renderer {
	return func(buf *bytes.Buffer, fld field.Field, data ComponentData) error {
		if data.Template == nil {
			return fmt.Errorf("components: template renderer not configured for %q", templateName)
		}

		resolvedTemplate := templateName
		if data.ThemePartials != nil {
			if candidate := strings.TrimSpace(data.ThemePartials[partialKey]); candidate != "" {
				resolvedTemplate = candidate
			}
		}

		payload := map[string]any{
			"field":      fld,
			"input_type": inputType(fld.Kind),
			"value":      StringValue(fld.Value),
			"checked":    BoolValue(fld.Value),
			"options":    fld.Options,
		}
		rendered, err := data.Template.RenderTemplate(resolvedTemplate, payload)
		if err != nil {
			return fmt.Errorf("components: render template %q: %w", templateName, err)
		}
		buf.WriteString(rendered)
		return nil
	}
}

func inputType(kind field.Kind) string {
	switch kind {
	case field.KindEmail:
		return "email"
	case field.KindPassword:
		return "password"
	case field.KindNumber:
		return "number"
	default:
		return "text"
	}
}

func checkboxGroupRenderer(buf *bytes.Buffer, fld field.Field, _ ComponentData) error {
	selected, err := StringsValue(fld.Value)
	if err != nil {
		return err
	}
	member := make(map[string]struct{}, len(selected))
	for _, value := range selected {
		member[value] = struct{}{}
	}

	buf.WriteString(`<div class="af-checkbox-group" data-component="checkbox-group">` + "\n")
	for _, opt := range fld.Options {
		buf.WriteString(`<label class="af-checkbox-option"><input type="checkbox" name="`)
		buf.WriteString(html.EscapeString(fld.Name))
		buf.WriteString(`" value="`)
		buf.WriteString(html.EscapeString(opt.Value))
		buf.WriteString(`"`)
		if _, ok := member[opt.Value]; ok {
			buf.WriteString(` checked`)
		}
		if fld.Disabled {
			buf.WriteString(` disabled`)
		}
		buf.WriteString(`> `)
		buf.WriteString(html.EscapeString(fld.OptionLabel(opt.Value)))
		buf.WriteString("</label>\n")
	}
	buf.WriteString("</div>\n")
	return nil
}

func arrayRenderer(buf *bytes.Buffer, fld field.Field, _ ComponentData) error {
	values, err := StringsValue(fld.Value)
	if err != nil {
		return err
	}

	buf.WriteString(`<textarea id="af-`)
	buf.WriteString(html.EscapeString(fld.Name))
	buf.WriteString(`" name="`)
	buf.WriteString(html.EscapeString(fld.Name))
	buf.WriteString(`" rows="4" class="af-textarea" data-kind="array"`)
	if fld.Required {
		buf.WriteString(` required`)
	}
	if fld.Disabled {
		buf.WriteString(` disabled`)
	}
	if fld.Placeholder != "" {
		buf.WriteString(` placeholder="`)
		buf.WriteString(html.EscapeString(fld.Placeholder))
		buf.WriteString(`"`)
	}
	buf.WriteString(`>`)
	buf.WriteString(html.EscapeString(field.JoinArrayText(values)))
	buf.WriteString("</textarea>\n")
	return nil
}

func fileRenderer(buf *bytes.Buffer, fld field.Field, _ ComponentData) error {
	buf.WriteString(`<input type="file" id="af-`)
	buf.WriteString(html.EscapeString(fld.Name))
	buf.WriteString(`" name="`)
	buf.WriteString(html.EscapeString(fld.Name))
	buf.WriteString(`" class="af-file"`)
	if fld.Required {
		buf.WriteString(` required`)
	}
	if fld.Disabled {
		buf.WriteString(` disabled`)
	}
	buf.WriteString(">\n")
	return nil
}

// StringValue renders a committed value as the string an editable control
// displays. Null numbers come back empty, not "0".
func StringValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case *float64:
		if v == nil {
			return ""
		}
		return strconv.FormatFloat(*v, 'f', -1, 64)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(v)
	default:
		return fmt.Sprint(v)
	}
}

// BoolValue reads a committed value as a checkbox state.
func BoolValue(value any) bool {
	b, _ := value.(bool)
	return b
}

// StringsValue reads a committed multi-value. Unexpected shapes are an error
// so the field renderer can degrade instead of rendering garbage.
func StringsValue(value any) ([]string, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("components: unexpected %T inside multi-value", item)
			}
			out = append(out, str)
		}
		return out, nil
	case string:
		if strings.TrimSpace(v) == "" {
			return nil, nil
		}
		return []string{v}, nil
	default:
		return nil, fmt.Errorf("components: unexpected multi-value %T", value)
	}
}
