package userform

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-adminform/pkg/field"
)

func TestBuildFormSections(t *testing.T) {
	form := BuildForm(FormUser{FirstName: "Ada", Profile: "5"}, nil, Catalog{
		Roles:    []field.Option{{Value: "admin", Label: "Admin"}},
		Profiles: []field.Option{{Value: "5", Label: "Operator"}},
	}, 7, false)

	if form.Method != "PUT" || form.Action != "/users/7" {
		t.Fatalf("update form should target PUT /users/7, got %s %s", form.Method, form.Action)
	}

	wantSections := []string{"general", "security", "access", "activity", "integration"}
	if len(form.Sections) != len(wantSections) {
		t.Fatalf("want %d sections, got %d", len(wantSections), len(form.Sections))
	}
	for i, name := range wantSections {
		if form.Sections[i].Name != name {
			t.Fatalf("section %d: want %s, got %s", i, name, form.Sections[i].Name)
		}
	}

	first, ok := form.Lookup(FieldFirstName)
	if !ok || first.Value != "Ada" {
		t.Fatalf("first_name should carry the committed value, got %+v", first)
	}
	profile, _ := form.Lookup(FieldProfile)
	if profile.Kind != field.KindSelect || len(profile.Options) != 1 {
		t.Fatalf("profile should be a select with catalog options, got %+v", profile)
	}
	avatar, _ := form.Lookup(FieldAvatar)
	if avatar.Kind != field.KindFile {
		t.Fatalf("avatar should be a file field, got %+v", avatar)
	}
}

func TestBuildFormNewEntity(t *testing.T) {
	form := BuildForm(FormUser{}, nil, Catalog{}, 0, true)
	if form.Method != "POST" || form.Action != "/users" {
		t.Fatalf("create form should target POST /users, got %s %s", form.Method, form.Action)
	}
	lan, _ := form.Lookup(FieldLan)
	if len(lan.Options) == 0 {
		t.Fatal("language select should fall back to the default list")
	}
}

func TestBuildFormAttachesErrors(t *testing.T) {
	form := BuildForm(FormUser{}, map[string]string{
		FieldEmail: MsgEmailRequired,
	}, Catalog{}, 0, true)

	email, _ := form.Lookup(FieldEmail)
	if email.Error != MsgEmailRequired {
		t.Fatalf("email error not attached: %+v", email)
	}
	first, _ := form.Lookup(FieldFirstName)
	if first.Error != "" {
		t.Fatalf("unrelated field must stay clean: %+v", first)
	}
}

type stubSubmitter struct {
	created *APIUser
	updated *APIUser
	id      int64
	err     error
}

func (s *stubSubmitter) CreateUser(_ context.Context, user APIUser) error {
	s.created = &user
	return s.err
}

func (s *stubSubmitter) UpdateUser(_ context.Context, id int64, user APIUser) error {
	s.updated = &user
	s.id = id
	return s.err
}

func TestPipelineSubmit(t *testing.T) {
	pipeline := NewPipeline(fixedConverter(1700000000))
	valid := FormUser{FirstName: "A", LastName: "B", Email: "a@b.com"}

	t.Run("validation failure stops before submit", func(t *testing.T) {
		sub := &stubSubmitter{}
		errs, err := pipeline.Submit(context.Background(), sub, 0, FormUser{}, true)
		if err != nil {
			t.Fatalf("validation failures are data, not errors: %v", err)
		}
		if errs == nil {
			t.Fatal("expected validation errors")
		}
		if sub.created != nil {
			t.Fatal("submitter must not be called on invalid record")
		}
	})

	t.Run("create path", func(t *testing.T) {
		sub := &stubSubmitter{}
		errs, err := pipeline.Submit(context.Background(), sub, 0, valid, true)
		if err != nil || errs != nil {
			t.Fatalf("submit: errs=%v err=%v", errs, err)
		}
		if sub.created == nil {
			t.Fatal("create path should call CreateUser")
		}
	})

	t.Run("update path", func(t *testing.T) {
		sub := &stubSubmitter{}
		errs, err := pipeline.Submit(context.Background(), sub, 7, valid, false)
		if err != nil || errs != nil {
			t.Fatalf("submit: errs=%v err=%v", errs, err)
		}
		if sub.updated == nil || sub.id != 7 {
			t.Fatalf("update path should call UpdateUser with id 7, got %d", sub.id)
		}
	})

	t.Run("transport failure fails the attempt only", func(t *testing.T) {
		sub := &stubSubmitter{err: errors.New("boom")}
		_, err := pipeline.Submit(context.Background(), sub, 0, valid, true)
		if err == nil {
			t.Fatal("transport errors must surface")
		}
	})
}
