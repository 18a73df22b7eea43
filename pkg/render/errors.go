package render

import (
	"strings"

	"github.com/goliatone/go-adminform/pkg/field"
)

// ErrorMapping splits a server error payload into field-level messages and
// form-level messages for keys no rendered control can claim.
type ErrorMapping struct {
	Fields map[string]string
	Form   []string
}

// MapErrorPayload matches payload keys against the form's field names.
// Messages for unknown keys degrade to form-level errors so they are never
// silently lost; blank messages are dropped.
func MapErrorPayload(form field.Form, payload map[string]string) ErrorMapping {
	mapping := ErrorMapping{}
	if len(payload) == 0 {
		return mapping
	}

	known := make(map[string]struct{})
	for _, fld := range form.Fields() {
		known[fld.Name] = struct{}{}
	}

	for key, message := range payload {
		message = strings.TrimSpace(message)
		if message == "" {
			continue
		}
		name := strings.TrimSpace(key)
		if _, ok := known[name]; ok {
			if mapping.Fields == nil {
				mapping.Fields = make(map[string]string)
			}
			mapping.Fields[name] = message
			continue
		}
		mapping.Form = append(mapping.Form, message)
	}

	mapping.Form = dedupeMessages(mapping.Form)
	return mapping
}

// MergeFormErrors concatenates form-level error slices, trimming whitespace
// and removing duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return dedupeMessages(combined)
}

func dedupeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
