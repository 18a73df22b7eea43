package field

import "strings"

// Kind discriminates which input affordance and commit coercion a field uses.
type Kind string

const (
	KindText          Kind = "text"
	KindEmail         Kind = "email"
	KindPassword      Kind = "password"
	KindNumber        Kind = "number"
	KindTextarea      Kind = "textarea"
	KindArray         Kind = "array"
	KindSelect        Kind = "select"
	KindMultiSelect   Kind = "multiselect"
	KindCheckbox      Kind = "checkbox"
	KindCheckboxGroup Kind = "checkbox-group"
	KindFile          Kind = "file"
)

// Kinds lists every recognised kind in a stable order. Renderers use it to
// verify exhaustive coverage of their dispatch tables.
func Kinds() []Kind {
	return []Kind{
		KindText, KindEmail, KindPassword, KindNumber, KindTextarea,
		KindArray, KindSelect, KindMultiSelect, KindCheckbox,
		KindCheckboxGroup, KindFile,
	}
}

// Option is a single selectable value/label pair.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field models an individual input inside a form. Value holds the committed
// value; its runtime type must match the kind (see CommitValue).
type Field struct {
	Kind        Kind     `json:"kind"`
	Name        string   `json:"name"`
	Label       string   `json:"label,omitempty"`
	Value       any      `json:"value,omitempty"`
	Options     []Option `json:"options,omitempty"`
	Multiple    bool     `json:"multiple,omitempty"`
	Required    bool     `json:"required"`
	Disabled    bool     `json:"disabled,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Help        string   `json:"help,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// EffectiveKind resolves the multiplicity flag: a select marked Multiple is
// handled by the multi-select pathway everywhere downstream.
func (f Field) EffectiveKind() Kind {
	if f.Kind == KindSelect && f.Multiple {
		return KindMultiSelect
	}
	return f.Kind
}

// OptionLabel returns the label registered for value, degrading to the raw
// value when the option is unknown or its label is blank.
func (f Field) OptionLabel(value string) string {
	for _, opt := range f.Options {
		if opt.Value == value {
			if strings.TrimSpace(opt.Label) != "" {
				return opt.Label
			}
			break
		}
	}
	return value
}

// Section groups related fields under a label; sections are purely
// compositional and carry no behaviour of their own.
type Section struct {
	Name        string  `json:"name"`
	Label       string  `json:"label,omitempty"`
	Description string  `json:"description,omitempty"`
	Fields      []Field `json:"fields"`
}

// Form is the renderer-facing model: chrome metadata plus ordered sections.
type Form struct {
	Name        string            `json:"name"`
	Title       string            `json:"title,omitempty"`
	Description string            `json:"description,omitempty"`
	Method      string            `json:"method"`
	Action      string            `json:"action"`
	Sections    []Section         `json:"sections"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Fields returns every field across all sections in declaration order.
func (f Form) Fields() []Field {
	var out []Field
	for _, section := range f.Sections {
		out = append(out, section.Fields...)
	}
	return out
}

// Lookup finds a field by name.
func (f Form) Lookup(name string) (Field, bool) {
	for _, section := range f.Sections {
		for _, fld := range section.Fields {
			if fld.Name == name {
				return fld, true
			}
		}
	}
	return Field{}, false
}

// ApplyValues overwrites committed values for fields present in values,
// returning a copy. Fields absent from the map keep their existing value.
func (f Form) ApplyValues(values map[string]any) Form {
	if len(values) == 0 {
		return f
	}
	return f.mapFields(func(fld Field) Field {
		if value, ok := values[fld.Name]; ok {
			fld.Value = value
		}
		return fld
	})
}

// ApplyErrors attaches field-local error messages, returning a copy. Existing
// messages are replaced for fields named in errs and left alone otherwise.
func (f Form) ApplyErrors(errs map[string]string) Form {
	if len(errs) == 0 {
		return f
	}
	return f.mapFields(func(fld Field) Field {
		if msg, ok := errs[fld.Name]; ok {
			fld.Error = msg
		}
		return fld
	})
}

func (f Form) mapFields(apply func(Field) Field) Form {
	out := f
	out.Sections = make([]Section, len(f.Sections))
	for i, section := range f.Sections {
		clone := section
		clone.Fields = make([]Field, len(section.Fields))
		for j, fld := range section.Fields {
			clone.Fields[j] = apply(fld)
		}
		out.Sections[i] = clone
	}
	return out
}
