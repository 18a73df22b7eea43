package components

import (
	"bytes"
	"html"

	"github.com/goliatone/go-adminform/pkg/field"
)

// multiSelectRenderer emits the dropdown-with-tags control. The markup is
// inert HTML; open/close, option toggling and the scoped click-outside
// listener live in the companion runtime script. Every selected value is
// mirrored as a hidden input so a plain form submit carries the whole set.
func multiSelectRenderer(buf *bytes.Buffer, fld field.Field, _ ComponentData) error {
	selected, err := StringsValue(fld.Value)
	if err != nil {
		return err
	}
	member := make(map[string]struct{}, len(selected))
	for _, value := range selected {
		member[value] = struct{}{}
	}

	name := html.EscapeString(fld.Name)

	buf.WriteString(`<div class="af-multiselect" data-component="multiselect" data-name="`)
	buf.WriteString(name)
	buf.WriteString(`" id="af-`)
	buf.WriteString(name)
	buf.WriteString(`">` + "\n")

	// Control surface: tags for current members, or a placeholder.
	buf.WriteString(`<div class="af-multiselect-control" data-role="control" tabindex="0" role="combobox" aria-expanded="false">` + "\n")
	if len(selected) == 0 {
		buf.WriteString(`<span class="af-multiselect-placeholder" data-role="placeholder">`)
		placeholder := fld.Placeholder
		if placeholder == "" {
			placeholder = "Select..."
		}
		buf.WriteString(html.EscapeString(placeholder))
		buf.WriteString("</span>\n")
	}
	for _, value := range selected {
		writeTag(buf, fld, value)
	}
	buf.WriteString("</div>\n")

	// Option list, hidden until the runtime opens it.
	buf.WriteString(`<ul class="af-multiselect-options" data-role="options" role="listbox" aria-multiselectable="true" hidden>` + "\n")
	for _, opt := range fld.Options {
		_, checked := member[opt.Value]
		buf.WriteString(`<li class="af-multiselect-option" data-role="option" role="option" data-value="`)
		buf.WriteString(html.EscapeString(opt.Value))
		buf.WriteString(`" aria-selected="`)
		if checked {
			buf.WriteString(`true`)
		} else {
			buf.WriteString(`false`)
		}
		buf.WriteString(`"><span class="af-multiselect-check" aria-hidden="true"></span>`)
		buf.WriteString(html.EscapeString(fld.OptionLabel(opt.Value)))
		buf.WriteString("</li>\n")
	}
	buf.WriteString("</ul>\n")

	// Hidden mirror inputs, one per selected value.
	for _, value := range selected {
		buf.WriteString(`<input type="hidden" name="`)
		buf.WriteString(name)
		buf.WriteString(`" value="`)
		buf.WriteString(html.EscapeString(value))
		buf.WriteString("\">\n")
	}

	buf.WriteString("</div>\n")
	return nil
}

func writeTag(buf *bytes.Buffer, fld field.Field, value string) {
	label := fld.OptionLabel(value)
	buf.WriteString(`<span class="af-tag" data-role="tag" data-value="`)
	buf.WriteString(html.EscapeString(value))
	buf.WriteString(`">`)
	buf.WriteString(html.EscapeString(label))
	buf.WriteString(`<button type="button" class="af-tag-remove" data-role="remove" data-value="`)
	buf.WriteString(html.EscapeString(value))
	buf.WriteString(`" aria-label="Remove `)
	buf.WriteString(html.EscapeString(label))
	buf.WriteString(`">&times;</button></span>` + "\n")
}
