package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-adminform/pkg/field"
	"github.com/goliatone/go-adminform/pkg/render"
)

// Renderer implements render.Renderer for terminal-driven sessions: it walks
// the form section by section, prompts for each field, and serializes the
// committed values instead of emitting markup.
type Renderer struct {
	driver            PromptDriver
	outputFormat      OutputFormat
	submitTransformer SubmitTransformer
}

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		driver:       newSurveyDriver(),
		outputFormat: OutputFormatJSON,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.driver == nil {
		r.driver = newSurveyDriver()
	}

	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Render prompts for every field in section order and returns the collected
// values serialized per the configured output format.
func (r *Renderer) Render(ctx context.Context, form field.Form, opts render.Options) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	state := NewState(opts.Values, opts.Errors)

	for _, section := range form.Sections {
		if label := sectionHeading(section); label != "" {
			if err := r.driver.Info(ctx, label); err != nil {
				return nil, err
			}
		}
		for _, fld := range section.Fields {
			if err := r.promptField(ctx, fld, state); err != nil {
				return nil, err
			}
		}
	}

	values := state.Values()
	if r.submitTransformer != nil {
		var err error
		values, err = r.submitTransformer(values)
		if err != nil {
			return nil, fmt.Errorf("tui: submit transformer: %w", err)
		}
	}

	return r.serialize(values)
}

func (r *Renderer) promptField(ctx context.Context, fld field.Field, state *State) error {
	if fld.Disabled {
		// Disabled fields keep whatever value the caller prefetched.
		return nil
	}
	if fld.Kind == field.KindFile {
		return r.driver.Info(ctx, fmt.Sprintf("Skipping %s: file uploads need a browser session", displayLabel(fld)))
	}

	if msg := state.ErrorFor(fld.Name); msg != "" {
		if err := r.driver.Info(ctx, fmt.Sprintf("%s: %s", displayLabel(fld), msg)); err != nil {
			return err
		}
	}

	switch fld.EffectiveKind() {
	case field.KindCheckbox:
		return r.promptCheckbox(ctx, fld, state)
	case field.KindSelect:
		return r.promptSelect(ctx, fld, state)
	case field.KindMultiSelect, field.KindCheckboxGroup:
		return r.promptMultiSelect(ctx, fld, state)
	case field.KindTextarea:
		return r.promptTextArea(ctx, fld, state)
	case field.KindArray:
		return r.promptArray(ctx, fld, state)
	default:
		return r.promptText(ctx, fld, state)
	}
}

func (r *Renderer) promptText(ctx context.Context, fld field.Field, state *State) error {
	draft := field.NewDraft(fld)
	if value, ok := state.Get(fld.Name); ok {
		// Prefetched values are external commits; they win over the
		// descriptor's own value.
		draft.Sync(value)
	}

	for {
		var raw string
		var err error
		cfg := InputConfig{
			Message: displayLabel(fld),
			Default: stringDefault(state, fld),
			Help:    fld.Help,
		}
		if fld.EffectiveKind() == field.KindPassword {
			// Passwords never echo a default; blank keeps the stored secret.
			cfg.Default = ""
			raw, err = r.driver.Password(ctx, cfg)
		} else {
			raw, err = r.driver.Input(ctx, cfg)
		}
		if err != nil {
			return err
		}

		draft.Edit(raw)
		if err := draft.Err(); err != nil {
			if infoErr := r.driver.Info(ctx, fmt.Sprintf("Invalid %s: %v", fld.Name, err)); infoErr != nil {
				return infoErr
			}
			continue
		}

		state.Set(fld.Name, draft.Value())
		return nil
	}
}

func (r *Renderer) promptCheckbox(ctx context.Context, fld field.Field, state *State) error {
	resp, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: displayLabel(fld),
		Default: boolDefault(state, fld),
		Help:    fld.Help,
	})
	if err != nil {
		return err
	}
	state.Set(fld.Name, resp)
	return nil
}

func (r *Renderer) promptSelect(ctx context.Context, fld field.Field, state *State) error {
	labels := make([]string, 0, len(fld.Options)+1)
	values := make([]string, 0, len(fld.Options)+1)
	if !fld.Required {
		labels = append(labels, "(none)")
		values = append(values, "")
	}
	for _, opt := range fld.Options {
		labels = append(labels, fld.OptionLabel(opt.Value))
		values = append(values, opt.Value)
	}

	current := stringDefault(state, fld)
	defaultIdx := -1
	for i, value := range values {
		if value == current {
			defaultIdx = i
			break
		}
	}

	for {
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      displayLabel(fld),
			Options:      labels,
			DefaultIndex: defaultIdx,
			Help:         fld.Help,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(values) {
			if infoErr := r.driver.Info(ctx, fmt.Sprintf("Invalid %s selection", fld.Name)); infoErr != nil {
				return infoErr
			}
			continue
		}
		state.Set(fld.Name, values[idx])
		return nil
	}
}

func (r *Renderer) promptMultiSelect(ctx context.Context, fld field.Field, state *State) error {
	labels := make([]string, 0, len(fld.Options))
	values := make([]string, 0, len(fld.Options))
	for _, opt := range fld.Options {
		labels = append(labels, fld.OptionLabel(opt.Value))
		values = append(values, opt.Value)
	}

	current := stringsDefault(state, fld)
	var defaults []int
	for i, value := range values {
		for _, selected := range current {
			if selected == value {
				defaults = append(defaults, i)
				break
			}
		}
	}

	indices, err := r.driver.MultiSelect(ctx, SelectConfig{
		Message:  displayLabel(fld),
		Options:  labels,
		Defaults: defaults,
		Help:     fld.Help,
	})
	if err != nil {
		return err
	}

	selected := make([]string, 0, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(values) {
			selected = append(selected, values[idx])
		}
	}
	state.Set(fld.Name, selected)
	return nil
}

func (r *Renderer) promptTextArea(ctx context.Context, fld field.Field, state *State) error {
	raw, err := r.driver.TextArea(ctx, TextAreaConfig{
		Message: displayLabel(fld),
		Default: stringDefault(state, fld),
		Help:    fld.Help,
	})
	if err != nil {
		return err
	}
	state.Set(fld.Name, raw)
	return nil
}

func (r *Renderer) promptArray(ctx context.Context, fld field.Field, state *State) error {
	raw, err := r.driver.TextArea(ctx, TextAreaConfig{
		Message: displayLabel(fld) + " (one entry per line)",
		Default: field.JoinArrayText(stringsDefault(state, fld)),
		Help:    fld.Help,
	})
	if err != nil {
		return err
	}
	state.Set(fld.Name, field.SplitArrayText(raw))
	return nil
}

func (r *Renderer) serialize(values map[string]any) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return []byte(flattenForm(values)), nil
	case OutputFormatPrettyText:
		return []byte(prettyPrint(values)), nil
	default:
		return json.Marshal(values)
	}
}

func sectionHeading(section field.Section) string {
	label := strings.TrimSpace(section.Label)
	if label == "" {
		return ""
	}
	return "== " + label + " =="
}

func displayLabel(fld field.Field) string {
	if fld.Label != "" {
		return fld.Label
	}
	return fld.Name
}

func stringDefault(state *State, fld field.Field) string {
	value, ok := state.Get(fld.Name)
	if !ok || value == nil {
		return ""
	}
	switch typed := value.(type) {
	case string:
		return typed
	case *float64:
		if typed == nil {
			return ""
		}
		return strconv.FormatFloat(*typed, 'f', -1, 64)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	default:
		return fmt.Sprint(typed)
	}
}

func boolDefault(state *State, fld field.Field) bool {
	value, ok := state.Get(fld.Name)
	if !ok {
		return false
	}
	switch typed := value.(type) {
	case bool:
		return typed
	case string:
		return typed == "on" || typed == "true" || typed == "1"
	default:
		return false
	}
}

func stringsDefault(state *State, fld field.Field) []string {
	value, ok := state.Get(fld.Name)
	if !ok || value == nil {
		return nil
	}
	switch typed := value.(type) {
	case []string:
		return typed
	case []any:
		out := make([]string, 0, len(typed))
		for _, item := range typed {
			out = append(out, fmt.Sprint(item))
		}
		return out
	case string:
		if typed == "" {
			return nil
		}
		return []string{typed}
	default:
		return nil
	}
}

func flattenForm(values map[string]any) string {
	out := url.Values{}
	for name, value := range values {
		switch typed := value.(type) {
		case nil:
			continue
		case []string:
			for _, item := range typed {
				out.Add(name, item)
			}
		case []any:
			for _, item := range typed {
				out.Add(name, fmt.Sprint(item))
			}
		case *float64:
			if typed != nil {
				out.Set(name, strconv.FormatFloat(*typed, 'f', -1, 64))
			}
		case bool:
			if typed {
				out.Set(name, "on")
			}
		default:
			out.Set(name, fmt.Sprint(typed))
		}
	}
	return out.Encode()
}

func prettyPrint(values map[string]any) string {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		switch typed := values[name].(type) {
		case []string:
			fmt.Fprintf(&b, "%s=%s\n", name, strings.Join(typed, ","))
		case *float64:
			if typed == nil {
				fmt.Fprintf(&b, "%s=\n", name)
			} else {
				fmt.Fprintf(&b, "%s=%v\n", name, *typed)
			}
		default:
			fmt.Fprintf(&b, "%s=%v\n", name, typed)
		}
	}
	return b.String()
}
