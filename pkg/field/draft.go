package field

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// CommitValue coerces a raw edit into the committed representation for kind.
// The switch is exhaustive over the Kind set; conversion failures come back as
// an error for the caller to degrade into a field-local message, never a
// panic. Per kind:
//
//   - checkbox: strict bool ("on"/"true"/"1" from form posts count as true)
//   - number: *float64, where empty input commits nil rather than NaN or zero
//   - array: multi-line text split into trimmed, non-empty lines
//   - multiselect / checkbox-group: ordered []string
//   - file: passed through untouched (the live upload reference belongs to
//     the parent, not the committed record)
//   - text / email / password / textarea / select: plain string
func CommitValue(kind Kind, raw any) (any, error) {
	switch kind {
	case KindCheckbox:
		return commitBool(raw)
	case KindNumber:
		return commitNumber(raw)
	case KindArray:
		return commitStrings(kind, raw, true)
	case KindMultiSelect, KindCheckboxGroup:
		return commitStrings(kind, raw, false)
	case KindFile:
		return raw, nil
	case KindText, KindEmail, KindPassword, KindTextarea, KindSelect:
		return commitString(raw)
	default:
		return nil, fmt.Errorf("field: unknown kind %q", kind)
	}
}

func commitBool(raw any) (any, error) {
	switch v := raw.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "", "false", "0", "off":
			return false, nil
		default:
			return true, nil
		}
	default:
		return nil, fmt.Errorf("field: cannot commit %T as checkbox", raw)
	}
}

func commitNumber(raw any) (any, error) {
	switch v := raw.(type) {
	case nil:
		return (*float64)(nil), nil
	case *float64:
		return v, nil
	case float64:
		return &v, nil
	case float32:
		value := float64(v)
		return &value, nil
	case int:
		value := float64(v)
		return &value, nil
	case int64:
		value := float64(v)
		return &value, nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return (*float64)(nil), nil
		}
		value, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, fmt.Errorf("field: %q is not a number", v)
		}
		return &value, nil
	default:
		return nil, fmt.Errorf("field: cannot commit %T as number", raw)
	}
}

func commitString(raw any) (any, error) {
	switch v := raw.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
		return fmt.Sprint(v), nil
	default:
		return nil, fmt.Errorf("field: cannot commit %T as text", raw)
	}
}

func commitStrings(kind Kind, raw any, splitText bool) (any, error) {
	switch v := raw.(type) {
	case nil:
		return []string(nil), nil
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			str, ok := stringify(item)
			if !ok {
				return nil, fmt.Errorf("field: cannot commit %T inside %s values", item, kind)
			}
			out = append(out, str)
		}
		return out, nil
	case string:
		if splitText {
			return SplitArrayText(v), nil
		}
		if strings.TrimSpace(v) == "" {
			return []string(nil), nil
		}
		return []string{v}, nil
	default:
		return nil, fmt.Errorf("field: cannot commit %T as %s", raw, kind)
	}
}

// SplitArrayText turns freeform multi-line text into the committed sequence:
// one entry per line, trimmed, empty lines dropped, duplicates preserved.
func SplitArrayText(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

// JoinArrayText renders a committed sequence back into editable text.
func JoinArrayText(values []string) string {
	return strings.Join(values, "\n")
}

// ToggleMembership adds or removes value from current, preserving the order
// of untouched entries and appending newly added values at the end.
func ToggleMembership(current []string, value string, present bool) []string {
	out := make([]string, 0, len(current)+1)
	found := false
	for _, existing := range current {
		if existing == value {
			found = true
			if present {
				out = append(out, existing)
			}
			continue
		}
		out = append(out, existing)
	}
	if present && !found {
		out = append(out, value)
	}
	return out
}

// Draft holds a field's locally edited value alongside the last committed
// value observed from the parent. Synchronization is one-way: an external
// commit resets the draft, local edits never push upward on their own.
type Draft struct {
	kind      Kind
	committed any
	value     any
	err       error
	touched   bool
}

// NewDraft seeds a draft from the field's committed value.
func NewDraft(f Field) *Draft {
	return &Draft{
		kind:      f.EffectiveKind(),
		committed: f.Value,
		value:     f.Value,
	}
}

// Sync compares the parent's committed value with the one remembered from the
// previous cycle and resets the draft on change. Reports whether a reset
// happened. In-flight edits are deliberately discarded so that externally
// driven updates (a record finishing its load) always win.
func (d *Draft) Sync(committed any) bool {
	if equalValue(committed, d.committed) {
		return false
	}
	d.committed = committed
	d.value = committed
	d.err = nil
	d.touched = false
	return true
}

// Edit applies a raw local edit, coercing it through CommitValue. A failed
// conversion keeps the previous draft value and records the error instead of
// propagating it.
func (d *Draft) Edit(raw any) {
	value, err := CommitValue(d.kind, raw)
	if err != nil {
		d.err = err
		return
	}
	d.value = value
	d.err = nil
	d.touched = true
}

// Value returns the current draft value.
func (d *Draft) Value() any { return d.value }

// Err returns the error recorded by the latest failed edit, if any.
func (d *Draft) Err() error { return d.err }

// Touched reports whether a successful local edit happened since the last
// external sync.
func (d *Draft) Touched() bool { return d.touched }

func equalValue(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	return reflect.DeepEqual(a, b)
}
