package field

import "net/url"

// DecodeValues commits each field's posted value out of a form submission.
// Conversion failures are collected per field so one malformed input never
// aborts the rest of the record. File fields are skipped: uploads travel on
// the multipart side channel and are handed to the caller directly.
func DecodeValues(form Form, values url.Values) (map[string]any, map[string]string) {
	committed := make(map[string]any)
	errs := make(map[string]string)

	for _, fld := range form.Fields() {
		kind := fld.EffectiveKind()
		if kind == KindFile {
			continue
		}

		var raw any
		switch kind {
		case KindCheckbox:
			// Unchecked boxes are absent from the post body entirely.
			raw = values.Has(fld.Name)
		case KindMultiSelect, KindCheckboxGroup:
			raw = []string(values[fld.Name])
		default:
			raw = values.Get(fld.Name)
		}

		value, err := CommitValue(kind, raw)
		if err != nil {
			errs[fld.Name] = err.Error()
			continue
		}
		committed[fld.Name] = value
	}

	if len(errs) == 0 {
		errs = nil
	}
	return committed, errs
}
