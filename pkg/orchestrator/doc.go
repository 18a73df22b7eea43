// Package orchestrator wires loaders, layouts, themes, and renderers into a
// single entry point for generating admin forms.
package orchestrator
