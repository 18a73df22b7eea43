// Package uischema overlays layout configuration onto generated forms:
// section arrangement, labels, and sanitized help text, loaded from JSON or
// YAML files.
package uischema
