package openapi

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/getkin/kin-openapi/openapi3"
)

// LoaderOptions tunes document loading.
type LoaderOptions struct {
	// ResolveReferences validates the document and follows $ref targets,
	// including external ones.
	ResolveReferences bool
	// FileSystem, when set, is used by LoadFS lookups.
	FileSystem fs.FS
}

// LoaderOption mutates LoaderOptions.
type LoaderOption func(*LoaderOptions)

// WithResolveReferences enables reference resolution and validation.
func WithResolveReferences() LoaderOption {
	return func(o *LoaderOptions) {
		o.ResolveReferences = true
	}
}

// WithFileSystem sets the fs.FS consulted by LoadFS.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(o *LoaderOptions) {
		o.FileSystem = files
	}
}

// Loader reads OpenAPI documents from bytes, files, or an fs.FS.
type Loader struct {
	options LoaderOptions
}

// NewLoader constructs a Loader with the provided options.
func NewLoader(options ...LoaderOption) *Loader {
	var opts LoaderOptions
	for _, opt := range options {
		if opt != nil {
			opt(&opts)
		}
	}
	return &Loader{options: opts}
}

// LoadData parses an OpenAPI document from raw bytes.
func (l *Loader) LoadData(ctx context.Context, data []byte) (*openapi3.T, error) {
	if len(data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: l.options.ResolveReferences,
	}

	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}

	if l.options.ResolveReferences {
		if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi: validate: %w", err)
		}
	}

	return doc, nil
}

// LoadFile parses an OpenAPI document from a path on disk.
func (l *Loader) LoadFile(ctx context.Context, path string) (*openapi3.T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("openapi: read %s: %w", path, err)
	}
	return l.LoadData(ctx, data)
}

// LoadFS parses an OpenAPI document from the configured fs.FS.
func (l *Loader) LoadFS(ctx context.Context, path string) (*openapi3.T, error) {
	if l.options.FileSystem == nil {
		return nil, errors.New("openapi: no filesystem configured")
	}
	data, err := fs.ReadFile(l.options.FileSystem, path)
	if err != nil {
		return nil, fmt.Errorf("openapi: read %s: %w", path, err)
	}
	return l.LoadData(ctx, data)
}
