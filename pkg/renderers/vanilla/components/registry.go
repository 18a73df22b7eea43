package components

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/goliatone/go-adminform/pkg/field"
	rendertemplate "github.com/goliatone/go-adminform/pkg/render/template"
)

// Renderer is the contract component renderers satisfy. Implementations
// receive the field and write the control HTML into buf, using the supplied
// template renderer or plain string building.
type Renderer func(buf *bytes.Buffer, fld field.Field, data ComponentData) error

// ComponentData carries helpers and configuration for component renderers.
type ComponentData struct {
	Template rendertemplate.TemplateRenderer
	// ThemePartials maps partial keys ("forms.input") to alternate template
	// paths resolved from the active theme.
	ThemePartials map[string]string
}

// Script describes a JavaScript dependency a component needs emitted once per
// rendered form.
type Script struct {
	Src   string
	Defer bool
}

// Descriptor bundles a renderer implementation with its asset dependencies.
type Descriptor struct {
	Name        string
	Renderer    Renderer
	Stylesheets []string
	Scripts     []Script
}

// Registry tracks component descriptors keyed by name.
type Registry struct {
	mu         sync.RWMutex
	components map[string]Descriptor
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		components: make(map[string]Descriptor),
	}
}

// Register associates a descriptor with the provided name, replacing any
// existing entry.
func (r *Registry) Register(name string, descriptor Descriptor) error {
	if name = normalize(name); name == "" {
		return fmt.Errorf("components: component name is required")
	}
	if descriptor.Renderer == nil {
		return fmt.Errorf("components: renderer for %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	descriptor.Name = name
	r.components[name] = descriptor
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(name string, descriptor Descriptor) {
	if err := r.Register(name, descriptor); err != nil {
		panic(err)
	}
}

// Descriptor looks up a component by name.
func (r *Registry) Descriptor(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	descriptor, ok := r.components[normalize(name)]
	return descriptor, ok
}

// Names returns the sorted registered component names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.components))
	for name := range r.components {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Assets aggregates the stylesheet and script dependencies for the named
// components, deduplicated in first-seen order.
func (r *Registry) Assets(names []string) (stylesheets []string, scripts []Script) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seenSheet := make(map[string]struct{})
	seenScript := make(map[string]struct{})
	for _, name := range names {
		descriptor, ok := r.components[normalize(name)]
		if !ok {
			continue
		}
		for _, sheet := range descriptor.Stylesheets {
			if _, dup := seenSheet[sheet]; dup {
				continue
			}
			seenSheet[sheet] = struct{}{}
			stylesheets = append(stylesheets, sheet)
		}
		for _, script := range descriptor.Scripts {
			if _, dup := seenScript[script.Src]; dup {
				continue
			}
			seenScript[script.Src] = struct{}{}
			scripts = append(scripts, script)
		}
	}
	return stylesheets, scripts
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
