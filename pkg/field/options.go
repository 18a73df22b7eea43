package field

import (
	"fmt"
	"sort"
	"strings"
)

// NormalizeOptions converts heterogeneous option inputs into a uniform ordered
// list. Supported shapes: []Option, []string, []int, []int64, []float64,
// map[string]string (sorted by key), and []any whose elements are Options,
// value/label maps, or plain scalars. Duplicate values keep the first
// occurrence; blank labels fall back to the stringified value.
func NormalizeOptions(input any) []Option {
	switch src := input.(type) {
	case nil:
		return nil
	case []Option:
		return dedupe(src)
	case []string:
		out := make([]Option, 0, len(src))
		for _, value := range src {
			out = append(out, Option{Value: value})
		}
		return dedupe(out)
	case []int:
		out := make([]Option, 0, len(src))
		for _, value := range src {
			out = append(out, Option{Value: fmt.Sprint(value)})
		}
		return dedupe(out)
	case []int64:
		out := make([]Option, 0, len(src))
		for _, value := range src {
			out = append(out, Option{Value: fmt.Sprint(value)})
		}
		return dedupe(out)
	case []float64:
		out := make([]Option, 0, len(src))
		for _, value := range src {
			out = append(out, Option{Value: fmt.Sprint(value)})
		}
		return dedupe(out)
	case map[string]string:
		keys := make([]string, 0, len(src))
		for key := range src {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		out := make([]Option, 0, len(keys))
		for _, key := range keys {
			out = append(out, Option{Value: key, Label: src[key]})
		}
		return dedupe(out)
	case []any:
		out := make([]Option, 0, len(src))
		for _, item := range src {
			if opt, ok := normalizeOne(item); ok {
				out = append(out, opt)
			}
		}
		return dedupe(out)
	default:
		return nil
	}
}

func normalizeOne(item any) (Option, bool) {
	switch v := item.(type) {
	case nil:
		return Option{}, false
	case Option:
		return v, true
	case *Option:
		if v == nil {
			return Option{}, false
		}
		return *v, true
	case map[string]any:
		value, hasValue := stringify(v["value"])
		if !hasValue {
			value, hasValue = stringify(v["id"])
		}
		if !hasValue {
			return Option{}, false
		}
		label, _ := stringify(v["label"])
		if label == "" {
			label, _ = stringify(v["name"])
		}
		return Option{Value: value, Label: label}, true
	default:
		value, ok := stringify(v)
		if !ok {
			return Option{}, false
		}
		return Option{Value: value}, true
	}
}

func stringify(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
		return fmt.Sprint(v), true
	default:
		return "", false
	}
}

func dedupe(options []Option) []Option {
	if len(options) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(options))
	out := make([]Option, 0, len(options))
	for _, opt := range options {
		if _, dup := seen[opt.Value]; dup {
			continue
		}
		seen[opt.Value] = struct{}{}
		if strings.TrimSpace(opt.Label) == "" {
			opt.Label = opt.Value
		}
		out = append(out, opt)
	}
	return out
}
