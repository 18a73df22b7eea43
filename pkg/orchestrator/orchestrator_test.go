package orchestrator

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-adminform/pkg/field"
	"github.com/goliatone/go-adminform/pkg/render"
)

type captureRenderer struct {
	form    field.Form
	options render.Options
}

func (r *captureRenderer) Name() string {
	return "capture"
}

func (r *captureRenderer) ContentType() string {
	return "text/plain"
}

func (r *captureRenderer) Render(_ context.Context, form field.Form, opts render.Options) ([]byte, error) {
	r.form = form
	r.options = opts
	return []byte(form.Name), nil
}

func captureRegistry(renderer *captureRenderer) *render.Registry {
	registry := render.NewRegistry()
	registry.MustRegister(renderer)
	return registry
}

func stubForm() *field.Form {
	return &field.Form{
		Name: "user",
		Sections: []field.Section{{
			Name: "general",
			Fields: []field.Field{
				{Kind: field.KindText, Name: "first_name", Label: "First name"},
				{Kind: field.KindEmail, Name: "email", Label: "Email"},
			},
		}},
	}
}

func TestGenerateWithSuppliedForm(t *testing.T) {
	renderer := &captureRenderer{}
	orch := New(
		WithRegistry(captureRegistry(renderer)),
		WithDefaultRenderer(renderer.Name()),
	)

	out, err := orch.Generate(context.Background(), Request{Form: stubForm()})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if string(out) != "user" {
		t.Errorf("output = %q", out)
	}
	if len(renderer.form.Sections) != 1 {
		t.Errorf("renderer received %d sections", len(renderer.form.Sections))
	}
}

func TestGenerateRequiresInput(t *testing.T) {
	renderer := &captureRenderer{}
	orch := New(
		WithRegistry(captureRegistry(renderer)),
		WithDefaultRenderer(renderer.Name()),
	)

	if _, err := orch.Generate(context.Background(), Request{}); err == nil {
		t.Error("expected error when neither form nor document supplied")
	}
}

func TestGenerateUnknownRenderer(t *testing.T) {
	renderer := &captureRenderer{}
	orch := New(WithRegistry(captureRegistry(renderer)))

	_, err := orch.Generate(context.Background(), Request{
		Form:     stubForm(),
		Renderer: "missing",
	})
	if err == nil || !strings.Contains(err.Error(), `renderer "missing"`) {
		t.Errorf("err = %v, want unknown renderer error", err)
	}
}

func TestGenerateAppliesLayouts(t *testing.T) {
	renderer := &captureRenderer{}
	fsys := fstest.MapFS{
		"user.yaml": &fstest.MapFile{Data: []byte(`
form: user
title: Edit User
sections:
  - name: identity
    label: Identity
    fields: [email, first_name]
`)},
	}

	orch := New(
		WithRegistry(captureRegistry(renderer)),
		WithDefaultRenderer(renderer.Name()),
		WithLayoutFS(fsys),
	)

	if _, err := orch.Generate(context.Background(), Request{Form: stubForm()}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if renderer.form.Title != "Edit User" {
		t.Errorf("layout title not applied: %q", renderer.form.Title)
	}
	if len(renderer.form.Sections) == 0 || renderer.form.Sections[0].Name != "identity" {
		t.Fatalf("layout sections not applied: %+v", renderer.form.Sections)
	}
	if renderer.form.Sections[0].Fields[0].Name != "email" {
		t.Errorf("layout field order not applied")
	}
}

type selectorCall struct {
	name    string
	variant string
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []selectorCall
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, selectorCall{name: name, variant: variant})
	return s.selection, s.err
}

func TestGeneratePassesThemeConfigToRenderer(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand": "#123456",
		},
		Templates: map[string]string{
			"forms.input": "themes/acme/input.tmpl",
		},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme",
			Files: map[string]string{
				"stylesheet": "theme.css",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"brand": "#654321",
				},
				Templates: map[string]string{
					"forms.checkbox": "themes/acme/dark/checkbox.tmpl",
				},
			},
		},
	}

	selector := &stubThemeSelector{selection: &theme.Selection{
		Theme:    "acme",
		Variant:  "dark",
		Manifest: manifest,
	}}

	renderer := &captureRenderer{}
	orch := New(
		WithRegistry(captureRegistry(renderer)),
		WithDefaultRenderer(renderer.Name()),
		WithThemeSelector(selector),
	)

	_, err := orch.Generate(context.Background(), Request{
		Form:         stubForm(),
		ThemeName:    "acme",
		ThemeVariant: "dark",
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(selector.calls) != 1 {
		t.Fatalf("selector calls = %d, want 1", len(selector.calls))
	}
	if selector.calls[0].name != "acme" || selector.calls[0].variant != "dark" {
		t.Fatalf("selector args = %+v", selector.calls[0])
	}

	cfg := renderer.options.Theme
	if cfg == nil {
		t.Fatal("expected theme config passed to renderer")
	}
	if cfg.Theme != "acme" || cfg.Variant != "dark" {
		t.Errorf("theme identity = %s/%s", cfg.Theme, cfg.Variant)
	}
	if cfg.Partials["forms.input"] != "themes/acme/input.tmpl" {
		t.Errorf("base template override missing: %s", cfg.Partials["forms.input"])
	}
	if cfg.Partials["forms.checkbox"] != "themes/acme/dark/checkbox.tmpl" {
		t.Errorf("variant template override missing: %s", cfg.Partials["forms.checkbox"])
	}
	if cfg.Partials["forms.textarea"] != defaultThemeFallbacks()["forms.textarea"] {
		t.Errorf("fallback partial not applied for textarea")
	}
	if cfg.Tokens["brand"] != "#654321" {
		t.Errorf("tokens not merged with variant override: %s", cfg.Tokens["brand"])
	}
	if cfg.CSSVars["--brand"] != "#654321" {
		t.Errorf("css vars not derived from tokens: %s", cfg.CSSVars["--brand"])
	}
	if cfg.AssetURL == nil {
		t.Fatal("expected AssetURL resolver present")
	}
	if got := cfg.AssetURL("stylesheet"); got != "/assets/themes/acme/theme.css" {
		t.Errorf("asset url = %s", got)
	}
	if got := cfg.AssetURL("unknown"); got != "" {
		t.Errorf("unknown asset resolved to %s", got)
	}
}

func TestGenerateNoThemeWhenUnnamed(t *testing.T) {
	selector := &stubThemeSelector{}
	renderer := &captureRenderer{}
	orch := New(
		WithRegistry(captureRegistry(renderer)),
		WithDefaultRenderer(renderer.Name()),
		WithThemeSelector(selector),
	)

	if _, err := orch.Generate(context.Background(), Request{Form: stubForm()}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(selector.calls) != 0 {
		t.Errorf("selector should not run without a theme name")
	}
	if renderer.options.Theme != nil {
		t.Error("theme config should be nil without a selection")
	}
}
