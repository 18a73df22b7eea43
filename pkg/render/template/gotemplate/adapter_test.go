package gotemplate

import (
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"templates/greeting.tmpl": &fstest.MapFile{
			Data: []byte("Hello {{ name }}!"),
		},
	}
}

func TestEngineRequiresSource(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatal("constructing without a template source should fail")
	}
}

func TestRenderTemplate(t *testing.T) {
	engine, err := New(WithFS(testFS()), WithExtension(".tmpl"))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderTemplate("templates/greeting", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hello Ada!" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestRenderString(t *testing.T) {
	engine, err := New(WithFS(testFS()), WithExtension(".tmpl"))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderString("{{ value|trim }}", map[string]any{"value": "  x  "})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "x" {
		t.Fatalf("trim filter: want x, got %q", got)
	}
}

func TestRenderStructData(t *testing.T) {
	engine, err := New(WithFS(testFS()), WithExtension(".tmpl"))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	payload := struct {
		Name string `json:"name"`
	}{Name: "Grace"}

	got, err := engine.RenderTemplate("templates/greeting", payload)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hello Grace!" {
		t.Fatalf("unexpected output: %q", got)
	}
}
