package uischema

// Layout describes how a form should be arranged: section order, labels, and
// per-field presentation overrides. Layouts never add fields; they only
// rearrange and annotate what the form already carries.
type Layout struct {
	Form     string                 `json:"form" yaml:"form"`
	Title    string                 `json:"title" yaml:"title"`
	Sections []SectionConfig        `json:"sections" yaml:"sections"`
	Fields   map[string]FieldConfig `json:"fields" yaml:"fields"`

	// Source records the file the layout was loaded from, for error messages.
	Source string `json:"-" yaml:"-"`
}

// SectionConfig arranges a named group of fields.
type SectionConfig struct {
	Name        string   `json:"name" yaml:"name"`
	Label       string   `json:"label" yaml:"label"`
	Description string   `json:"description" yaml:"description"`
	Fields      []string `json:"fields" yaml:"fields"`
}

// FieldConfig overrides presentation attributes of a single field.
type FieldConfig struct {
	Label       string `json:"label" yaml:"label"`
	Help        string `json:"help" yaml:"help"`
	Placeholder string `json:"placeholder" yaml:"placeholder"`
	Disabled    *bool  `json:"disabled" yaml:"disabled"`
	Hidden      bool   `json:"hidden" yaml:"hidden"`
}

// Store holds layouts keyed by form name.
type Store struct {
	layouts map[string]Layout
}

// Layout returns the layout registered for the supplied form name.
func (s *Store) Layout(form string) (Layout, bool) {
	if s == nil {
		return Layout{}, false
	}
	layout, ok := s.layouts[form]
	return layout, ok
}

// Empty reports whether the store holds any layouts.
func (s *Store) Empty() bool {
	return s == nil || len(s.layouts) == 0
}
