package components

// Canonical component names used by the vanilla renderer and default
// registry.
const (
	NameInput         = "input"
	NameTextarea      = "textarea"
	NameSelect        = "select"
	NameMultiSelect   = "multiselect"
	NameCheckbox      = "checkbox"
	NameCheckboxGroup = "checkbox-group"
	NameArray         = "array"
	NameFile          = "file"
)
