package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-adminform/pkg/field"
	"github.com/goliatone/go-adminform/pkg/orchestrator"
	"github.com/goliatone/go-adminform/pkg/render"
	"github.com/goliatone/go-adminform/pkg/renderers/tui"
	"github.com/goliatone/go-adminform/pkg/userform"
)

func main() {
	spec := flag.String("spec", "", "OpenAPI document path; empty uses the built-in user form")
	schema := flag.String("schema", "User", "component schema to render when -spec is set")
	renderer := flag.String("renderer", "vanilla", "renderer to use")
	output := flag.String("output", "", "output file (stdout if empty)")
	userFile := flag.String("user", "", "JSON file with an existing user record to prefill")
	isNew := flag.Bool("new", false, "use create semantics instead of update")
	interactive := flag.Bool("interactive", false, "fill the user form in the terminal")
	flag.Parse()

	ctx := context.Background()

	if *interactive {
		if err := runInteractive(ctx, *userFile, *isNew, *output); err != nil {
			log.Fatalf("interactive session failed: %v", err)
		}
		return
	}

	gen := orchestrator.New()

	req := orchestrator.Request{Renderer: *renderer}
	if *spec != "" {
		req.SpecPath = *spec
		req.Schema = *schema
	} else {
		form, err := buildUserForm(*userFile, *isNew)
		if err != nil {
			log.Fatalf("build user form: %v", err)
		}
		req.Form = &form
	}

	html, err := gen.Generate(ctx, req)
	if err != nil {
		log.Fatalf("generate form: %v", err)
	}

	if err := write(*output, html); err != nil {
		log.Fatalf("write output: %v", err)
	}
}

func buildUserForm(userFile string, isNew bool) (field.Form, error) {
	record, id, err := loadUser(userFile)
	if err != nil {
		return field.Form{}, err
	}
	converter := userform.NewConverter()
	return userform.BuildForm(converter.ToForm(record), nil, userform.Catalog{}, id, isNew), nil
}

func loadUser(path string) (userform.APIUser, int64, error) {
	if path == "" {
		return userform.APIUser{}, 0, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return userform.APIUser{}, 0, fmt.Errorf("read %s: %w", path, err)
	}
	var record userform.APIUser
	if err := json.Unmarshal(data, &record); err != nil {
		return userform.APIUser{}, 0, fmt.Errorf("parse %s: %w", path, err)
	}
	return record, record.ID, nil
}

func runInteractive(ctx context.Context, userFile string, isNew bool, output string) error {
	form, err := buildUserForm(userFile, isNew)
	if err != nil {
		return err
	}

	prompter, err := tui.New()
	if err != nil {
		return err
	}

	collected, err := prompter.Render(ctx, form, render.Options{})
	if err != nil {
		return err
	}

	var values map[string]any
	if err := json.Unmarshal(collected, &values); err != nil {
		return fmt.Errorf("decode collected values: %w", err)
	}

	record := userform.FromValues(values)
	if errs := userform.Validate(record); errs != nil {
		for name, msg := range errs {
			fmt.Fprintf(os.Stderr, "%s: %s\n", name, msg)
		}
		return fmt.Errorf("validation failed")
	}

	payload := userform.NewConverter().ToAPI(record, isNew)
	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return write(output, append(encoded, '\n'))
}

func write(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("Output written to %s\n", path)
	return nil
}
