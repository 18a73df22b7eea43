package openapi

import (
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-adminform/pkg/field"
)

// BuildForm maps a named component schema onto a single-section form. Layout
// and sectioning refinements come from a uischema overlay applied afterwards.
func BuildForm(doc *openapi3.T, schemaName string) (field.Form, error) {
	if doc == nil {
		return field.Form{}, fmt.Errorf("openapi: document is nil")
	}
	if doc.Components == nil || doc.Components.Schemas == nil {
		return field.Form{}, fmt.Errorf("openapi: document has no component schemas")
	}
	ref, ok := doc.Components.Schemas[schemaName]
	if !ok || ref == nil || ref.Value == nil {
		return field.Form{}, fmt.Errorf("openapi: schema %q not found", schemaName)
	}

	schema := ref.Value
	required := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = struct{}{}
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]field.Field, 0, len(names))
	for _, name := range names {
		property := schema.Properties[name]
		if property == nil || property.Value == nil {
			continue
		}
		fld := buildField(name, property.Value)
		if _, ok := required[name]; ok {
			fld.Required = true
		}
		fields = append(fields, fld)
	}

	return field.Form{
		Name:        strings.ToLower(schemaName),
		Title:       schema.Title,
		Description: schema.Description,
		Sections: []field.Section{{
			Name:   "general",
			Fields: fields,
		}},
	}, nil
}

func buildField(name string, schema *openapi3.Schema) field.Field {
	fld := field.Field{
		Kind:     kindFor(schema),
		Name:     name,
		Label:    labelFor(name, schema),
		Help:     schema.Description,
		Disabled: schema.ReadOnly,
	}

	if len(schema.Enum) > 0 {
		fld.Options = field.NormalizeOptions(schema.Enum)
	}
	if schema.Type != nil && schema.Type.Is(openapi3.TypeArray) && schema.Items != nil && schema.Items.Value != nil {
		if items := schema.Items.Value; len(items.Enum) > 0 {
			fld.Options = field.NormalizeOptions(items.Enum)
			fld.Multiple = true
		}
	}
	if def, ok := schema.Default.(string); ok {
		fld.Value = def
	}
	if example, ok := schema.Example.(string); ok {
		fld.Placeholder = example
	}
	return fld
}

func kindFor(schema *openapi3.Schema) field.Kind {
	switch schema.Format {
	case "password":
		return field.KindPassword
	case "email":
		return field.KindEmail
	case "textarea":
		return field.KindTextarea
	case "binary":
		return field.KindFile
	}

	switch typeName(schema.Type) {
	case openapi3.TypeBoolean:
		return field.KindCheckbox
	case openapi3.TypeInteger, openapi3.TypeNumber:
		return field.KindNumber
	case openapi3.TypeArray:
		if schema.Items != nil && schema.Items.Value != nil && len(schema.Items.Value.Enum) > 0 {
			return field.KindMultiSelect
		}
		return field.KindArray
	}

	if len(schema.Enum) > 0 {
		return field.KindSelect
	}
	return field.KindText
}

func typeName(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func labelFor(name string, schema *openapi3.Schema) string {
	if schema.Title != "" {
		return schema.Title
	}
	// Sentence case, matching the hand-built section labels: only the first
	// word is capitalized.
	words := strings.Split(name, "_")
	first := true
	for i, word := range words {
		if word == "" {
			continue
		}
		if first {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
			first = false
			continue
		}
		words[i] = strings.ToLower(word)
	}
	return strings.Join(words, " ")
}
