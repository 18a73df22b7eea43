package tui

// State tracks collected values plus server-provided errors keyed by field
// name. Prompt order is the form's section order, so plain maps suffice.
type State struct {
	values map[string]any
	errors map[string]string
}

// NewState seeds the state with prefilled values and errors from a previous
// submission attempt.
func NewState(prefill map[string]any, errs map[string]string) *State {
	values := make(map[string]any, len(prefill))
	for k, v := range prefill {
		values[k] = v
	}
	errors := make(map[string]string, len(errs))
	for k, v := range errs {
		errors[k] = v
	}
	return &State{values: values, errors: errors}
}

// Values returns the collected value map.
func (s *State) Values() map[string]any {
	if s == nil {
		return nil
	}
	return s.values
}

// Get resolves the current value for a field.
func (s *State) Get(name string) (any, bool) {
	if s == nil {
		return nil, false
	}
	value, ok := s.values[name]
	return value, ok
}

// Set stores a committed value for a field.
func (s *State) Set(name string, value any) {
	if s == nil {
		return
	}
	if s.values == nil {
		s.values = make(map[string]any)
	}
	s.values[name] = value
}

// ErrorFor returns the server error attached to a field, if any.
func (s *State) ErrorFor(name string) string {
	if s == nil {
		return ""
	}
	return s.errors[name]
}
