package field

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalizeOptions(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  []Option
	}{
		{
			name:  "nil input",
			input: nil,
			want:  nil,
		},
		{
			name:  "string slice",
			input: []string{"admin", "editor"},
			want: []Option{
				{Value: "admin", Label: "admin"},
				{Value: "editor", Label: "editor"},
			},
		},
		{
			name:  "option slice keeps labels",
			input: []Option{{Value: "1", Label: "One"}, {Value: "2"}},
			want: []Option{
				{Value: "1", Label: "One"},
				{Value: "2", Label: "2"},
			},
		},
		{
			name:  "int slice",
			input: []int{5, 7},
			want: []Option{
				{Value: "5", Label: "5"},
				{Value: "7", Label: "7"},
			},
		},
		{
			name:  "map sorted by key",
			input: map[string]string{"es": "Spanish", "en": "English"},
			want: []Option{
				{Value: "en", Label: "English"},
				{Value: "es", Label: "Spanish"},
			},
		},
		{
			name: "mixed any slice",
			input: []any{
				map[string]any{"value": "x", "label": "X"},
				map[string]any{"id": 9, "name": "Nine"},
				"raw",
				nil,
			},
			want: []Option{
				{Value: "x", Label: "X"},
				{Value: "9", Label: "Nine"},
				{Value: "raw", Label: "raw"},
			},
		},
		{
			name:  "duplicates keep first",
			input: []string{"a", "b", "a"},
			want: []Option{
				{Value: "a", Label: "a"},
				{Value: "b", Label: "b"},
			},
		},
		{
			name:  "unsupported shape",
			input: 42,
			want:  nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeOptions(tc.input)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("options mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOptionLabelFallsBackToRawValue(t *testing.T) {
	fld := Field{
		Kind:    KindSelect,
		Options: []Option{{Value: "x", Label: "X"}},
	}
	if got := fld.OptionLabel("x"); got != "X" {
		t.Fatalf("known option: want X, got %q", got)
	}
	if got := fld.OptionLabel("ghost"); got != "ghost" {
		t.Fatalf("unknown option should render raw value, got %q", got)
	}
}
