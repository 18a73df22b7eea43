package uischema

import (
	"strings"

	"github.com/goliatone/go-adminform/pkg/field"
)

// Apply rearranges a form per the layout and applies per-field overrides.
// Fields the layout does not mention keep their relative order and land in a
// trailing "other" section; fields marked hidden are dropped. Applying the
// same layout twice yields the same form.
func Apply(form field.Form, layout Layout) field.Form {
	if layout.Title != "" {
		form.Title = layout.Title
	}

	if len(layout.Sections) == 0 {
		form.Sections = overrideSections(form.Sections, layout.Fields)
		return form
	}

	available := make(map[string]field.Field)
	order := make([]string, 0)
	for _, section := range form.Sections {
		for _, fld := range section.Fields {
			if _, seen := available[fld.Name]; seen {
				continue
			}
			available[fld.Name] = fld
			order = append(order, fld.Name)
		}
	}

	placed := make(map[string]struct{})
	sections := make([]field.Section, 0, len(layout.Sections)+1)
	for _, cfg := range layout.Sections {
		section := field.Section{
			Name:        cfg.Name,
			Label:       cfg.Label,
			Description: cfg.Description,
		}
		for _, name := range cfg.Fields {
			fld, ok := available[name]
			if !ok {
				continue
			}
			placed[name] = struct{}{}
			if override, ok := layout.Fields[name]; ok {
				if override.Hidden {
					continue
				}
				fld = applyFieldConfig(fld, override)
			}
			section.Fields = append(section.Fields, fld)
		}
		if len(section.Fields) > 0 {
			sections = append(sections, section)
		}
	}

	var leftovers field.Section
	for _, name := range order {
		if _, ok := placed[name]; ok {
			continue
		}
		fld := available[name]
		if override, ok := layout.Fields[name]; ok {
			if override.Hidden {
				continue
			}
			fld = applyFieldConfig(fld, override)
		}
		leftovers.Fields = append(leftovers.Fields, fld)
	}
	if len(leftovers.Fields) > 0 {
		leftovers.Name = "other"
		leftovers.Label = "Other"
		sections = append(sections, leftovers)
	}

	form.Sections = sections
	return form
}

func overrideSections(sections []field.Section, overrides map[string]FieldConfig) []field.Section {
	if len(overrides) == 0 {
		return sections
	}
	out := make([]field.Section, 0, len(sections))
	for _, section := range sections {
		updated := section
		updated.Fields = make([]field.Field, 0, len(section.Fields))
		for _, fld := range section.Fields {
			if override, ok := overrides[fld.Name]; ok {
				if override.Hidden {
					continue
				}
				fld = applyFieldConfig(fld, override)
			}
			updated.Fields = append(updated.Fields, fld)
		}
		if len(updated.Fields) > 0 {
			out = append(out, updated)
		}
	}
	return out
}

func applyFieldConfig(fld field.Field, cfg FieldConfig) field.Field {
	if label := strings.TrimSpace(cfg.Label); label != "" {
		fld.Label = label
	}
	if cfg.Help != "" {
		fld.Help = sanitizeHelpMarkup(cfg.Help)
	}
	if placeholder := strings.TrimSpace(cfg.Placeholder); placeholder != "" {
		fld.Placeholder = placeholder
	}
	if cfg.Disabled != nil {
		fld.Disabled = *cfg.Disabled
	}
	return fld
}
