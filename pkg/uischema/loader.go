package uischema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFS walks the provided filesystem and parses JSON/YAML layout files.
// When fsys is nil or no layout files are present, the returned store is
// empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{layouts: make(map[string]Layout)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isLayoutFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("uischema: read %s: %w", path, err)
		}

		layout, err := Parse(data, path)
		if err != nil {
			return err
		}
		if _, exists := store.layouts[layout.Form]; exists {
			return fmt.Errorf("uischema: duplicate layout for form %q (file %s)", layout.Form, path)
		}
		store.layouts[layout.Form] = layout
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// Parse decodes a single layout document. JSON is tried first, then YAML.
func Parse(data []byte, source string) (Layout, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Layout{}, fmt.Errorf("uischema: file %s is empty", source)
	}

	var layout Layout
	if err := json.Unmarshal(data, &layout); err != nil {
		if err := yaml.Unmarshal(data, &layout); err != nil {
			return Layout{}, fmt.Errorf("uischema: parse %s: invalid JSON or YAML", source)
		}
	}

	layout.Form = strings.TrimSpace(layout.Form)
	if layout.Form == "" {
		return Layout{}, fmt.Errorf("uischema: file %s does not name a form", source)
	}
	for i, section := range layout.Sections {
		if strings.TrimSpace(section.Name) == "" {
			return Layout{}, fmt.Errorf("uischema: file %s section %d has no name", source, i)
		}
	}
	layout.Source = source
	return layout, nil
}

func isLayoutFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
