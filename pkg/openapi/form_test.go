package openapi

import (
	"context"
	"testing"

	"github.com/goliatone/go-adminform/pkg/field"
)

func TestBuildFormKinds(t *testing.T) {
	loader := NewLoader()
	doc, err := loader.LoadFile(context.Background(), "testdata/user.yaml")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	form, err := BuildForm(doc, "User")
	if err != nil {
		t.Fatalf("BuildForm() error = %v", err)
	}

	if form.Name != "user" {
		t.Errorf("form name = %q, want %q", form.Name, "user")
	}
	if len(form.Sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(form.Sections))
	}

	wantKinds := map[string]field.Kind{
		"first_name": field.KindText,
		"email":      field.KindEmail,
		"password":   field.KindPassword,
		"active":     field.KindCheckbox,
		"tries":      field.KindNumber,
		"lan":        field.KindSelect,
		"roles":      field.KindMultiSelect,
		"notes":      field.KindTextarea,
		"avatar":     field.KindFile,
		"created":    field.KindNumber,
	}
	for name, want := range wantKinds {
		fld, ok := form.Lookup(name)
		if !ok {
			t.Errorf("field %q missing", name)
			continue
		}
		if fld.Kind != want {
			t.Errorf("field %q kind = %q, want %q", name, fld.Kind, want)
		}
	}
}

func TestBuildFormDetails(t *testing.T) {
	loader := NewLoader()
	doc, err := loader.LoadFile(context.Background(), "testdata/user.yaml")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	form, err := BuildForm(doc, "User")
	if err != nil {
		t.Fatalf("BuildForm() error = %v", err)
	}

	firstName, _ := form.Lookup("first_name")
	if !firstName.Required {
		t.Error("first_name should be required")
	}
	if firstName.Label != "First name" {
		t.Errorf("first_name label = %q", firstName.Label)
	}

	lastName, _ := form.Lookup("last_name")
	if lastName.Label != "Last name" {
		t.Errorf("humanized label = %q, want %q", lastName.Label, "Last name")
	}

	lan, _ := form.Lookup("lan")
	if len(lan.Options) != 3 {
		t.Errorf("lan options = %d, want 3", len(lan.Options))
	}
	if lan.Value != "en" {
		t.Errorf("lan default = %v, want en", lan.Value)
	}

	roles, _ := form.Lookup("roles")
	if !roles.Multiple {
		t.Error("roles should be multiple")
	}
	if len(roles.Options) != 3 {
		t.Errorf("roles options = %d, want 3", len(roles.Options))
	}

	created, _ := form.Lookup("created")
	if !created.Disabled {
		t.Error("readOnly property should render disabled")
	}
}

func TestBuildFormUnknownSchema(t *testing.T) {
	loader := NewLoader()
	doc, err := loader.LoadFile(context.Background(), "testdata/user.yaml")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if _, err := BuildForm(doc, "Missing"); err == nil {
		t.Error("expected error for unknown schema")
	}
}
