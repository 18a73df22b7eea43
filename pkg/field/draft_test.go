package field

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCommitValueNumber(t *testing.T) {
	cases := []struct {
		name    string
		raw     any
		want    *float64
		wantErr bool
	}{
		{name: "empty string commits nil", raw: "", want: nil},
		{name: "whitespace commits nil", raw: "   ", want: nil},
		{name: "fractional input allowed", raw: "3.5", want: ptrFloat(3.5)},
		{name: "integer string", raw: "42", want: ptrFloat(42)},
		{name: "zero stays zero not nil", raw: "0", want: ptrFloat(0)},
		{name: "malformed input errors", raw: "12abc", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CommitValue(KindNumber, tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %v", tc.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("commit: %v", err)
			}
			if diff := cmp.Diff(tc.want, got.(*float64)); diff != "" {
				t.Fatalf("number mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCommitValueArraySplitsLines(t *testing.T) {
	got, err := CommitValue(KindArray, "a\nb\n\nb ")
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	want := []string{"a", "b", "b"}
	if diff := cmp.Diff(want, got.([]string)); diff != "" {
		t.Fatalf("array mismatch (-want +got):\n%s", diff)
	}
}

func TestCommitValueCheckbox(t *testing.T) {
	cases := []struct {
		raw  any
		want bool
	}{
		{raw: true, want: true},
		{raw: "on", want: true},
		{raw: "1", want: true},
		{raw: "false", want: false},
		{raw: "", want: false},
		{raw: nil, want: false},
	}
	for _, tc := range cases {
		got, err := CommitValue(KindCheckbox, tc.raw)
		if err != nil {
			t.Fatalf("commit %v: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("commit %v: want %v, got %v", tc.raw, tc.want, got)
		}
	}
}

func TestToggleMembershipOrder(t *testing.T) {
	// Starting from ["x"], toggling y on then x off leaves ["y"]: removal
	// preserves remaining order, additions append at the end.
	set := []string{"x"}
	set = ToggleMembership(set, "y", true)
	if diff := cmp.Diff([]string{"x", "y"}, set); diff != "" {
		t.Fatalf("after adding y (-want +got):\n%s", diff)
	}
	set = ToggleMembership(set, "x", false)
	if diff := cmp.Diff([]string{"y"}, set); diff != "" {
		t.Fatalf("after removing x (-want +got):\n%s", diff)
	}
	// Toggling an already-present value on is a no-op.
	set = ToggleMembership(set, "y", true)
	if diff := cmp.Diff([]string{"y"}, set); diff != "" {
		t.Fatalf("idempotent add (-want +got):\n%s", diff)
	}
}

func TestDraftLocalEditsStayLocal(t *testing.T) {
	draft := NewDraft(Field{Kind: KindText, Name: "first_name", Value: "Ada"})

	draft.Edit("Grace")
	if got := draft.Value(); got != "Grace" {
		t.Fatalf("draft should reflect local edit, got %v", got)
	}
	if !draft.Touched() {
		t.Fatal("draft should be marked touched")
	}
	// The committed value seen from outside has not changed, so Sync with the
	// same value must not clobber the in-flight edit.
	if draft.Sync("Ada") {
		t.Fatal("sync with unchanged committed value must not reset")
	}
	if got := draft.Value(); got != "Grace" {
		t.Fatalf("draft lost local edit: %v", got)
	}
}

func TestDraftExternalCommitResets(t *testing.T) {
	draft := NewDraft(Field{Kind: KindText, Name: "email", Value: ""})
	draft.Edit("in-flight@example.com")

	// A new committed value arriving from outside (e.g. the record finishing
	// its async load) wins over local edits.
	if !draft.Sync("loaded@example.com") {
		t.Fatal("changed committed value must reset the draft")
	}
	if got := draft.Value(); got != "loaded@example.com" {
		t.Fatalf("draft should mirror external commit, got %v", got)
	}
	if draft.Touched() {
		t.Fatal("reset draft should not be touched")
	}
}

func TestDraftEditFailureKeepsPreviousValue(t *testing.T) {
	draft := NewDraft(Field{Kind: KindNumber, Name: "tries", Value: ptrFloat(3)})

	draft.Edit("not-a-number")
	if draft.Err() == nil {
		t.Fatal("expected conversion error to be recorded")
	}
	if diff := cmp.Diff(ptrFloat(3), draft.Value().(*float64)); diff != "" {
		t.Fatalf("failed edit must keep previous draft (-want +got):\n%s", diff)
	}

	draft.Edit("4")
	if draft.Err() != nil {
		t.Fatalf("successful edit should clear error, got %v", draft.Err())
	}
	if diff := cmp.Diff(ptrFloat(4), draft.Value().(*float64)); diff != "" {
		t.Fatalf("draft mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeValues(t *testing.T) {
	form := Form{Sections: []Section{{
		Name: "main",
		Fields: []Field{
			{Kind: KindText, Name: "first_name"},
			{Kind: KindNumber, Name: "tries"},
			{Kind: KindCheckbox, Name: "active"},
			{Kind: KindCheckbox, Name: "blocked"},
			{Kind: KindArray, Name: "hosts"},
			{Kind: KindSelect, Name: "permissions", Multiple: true},
			{Kind: KindFile, Name: "avatar"},
		},
	}}}

	values := url.Values{
		"first_name":  {"Ada"},
		"tries":       {""},
		"active":      {"on"},
		"hosts":       {"a\nb\n\nb "},
		"permissions": {"read", "write"},
	}

	committed, errs := DecodeValues(form, values)
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}

	want := map[string]any{
		"first_name":  "Ada",
		"tries":       (*float64)(nil),
		"active":      true,
		"blocked":     false,
		"hosts":       []string{"a", "b", "b"},
		"permissions": []string{"read", "write"},
	}
	if diff := cmp.Diff(want, committed); diff != "" {
		t.Fatalf("committed mismatch (-want +got):\n%s", diff)
	}
	if _, ok := committed["avatar"]; ok {
		t.Fatal("file fields must stay on the multipart side channel")
	}
}

func TestDecodeValuesDegradesPerField(t *testing.T) {
	form := Form{Sections: []Section{{
		Fields: []Field{
			{Kind: KindNumber, Name: "tries"},
			{Kind: KindText, Name: "first_name"},
		},
	}}}

	committed, errs := DecodeValues(form, url.Values{
		"tries":      {"abc"},
		"first_name": {"Ada"},
	})

	if errs == nil || errs["tries"] == "" {
		t.Fatalf("expected field-local error for tries, got %v", errs)
	}
	if got := committed["first_name"]; got != "Ada" {
		t.Fatalf("other fields must still decode, got %v", got)
	}
	if _, ok := committed["tries"]; ok {
		t.Fatal("failed field must not commit a value")
	}
}

func ptrFloat(v float64) *float64 { return &v }
