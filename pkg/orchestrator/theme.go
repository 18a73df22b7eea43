package orchestrator

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// defaultThemeFallbacks maps component partial keys to the embedded templates
// used when a theme does not override them.
func defaultThemeFallbacks() map[string]string {
	return map[string]string{
		"forms.input":    "templates/components/input.tmpl",
		"forms.textarea": "templates/components/textarea.tmpl",
		"forms.select":   "templates/components/select.tmpl",
		"forms.checkbox": "templates/components/checkbox.tmpl",
	}
}

// resolveThemeConfig turns a theme selection into the renderer configuration
// carried on render options: merged partials, tokens, derived CSS variables,
// and an asset resolver rooted at the manifest prefix.
func (o *Orchestrator) resolveThemeConfig(name, variant string) (*theme.RendererConfig, error) {
	if o.themeSelector == nil {
		return nil, nil
	}
	if name == "" {
		name = o.defaultTheme
	}
	if variant == "" {
		variant = o.defaultVariant
	}
	if name == "" {
		return nil, nil
	}

	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme %q: %w", name, err)
	}
	if selection == nil {
		return nil, nil
	}

	cfg := &theme.RendererConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
	}

	fallbacks := o.themeFallbacks
	if fallbacks == nil {
		fallbacks = defaultThemeFallbacks()
	}

	partials := make(map[string]string, len(fallbacks))
	tokens := make(map[string]string)
	assetFiles := make(map[string]string)
	assetPrefix := ""

	for key, value := range fallbacks {
		partials[key] = value
	}

	if manifest := selection.Manifest; manifest != nil {
		for key, value := range manifest.Templates {
			partials[key] = value
		}
		for key, value := range manifest.Tokens {
			tokens[key] = value
		}
		for key, value := range manifest.Assets.Files {
			assetFiles[key] = value
		}
		assetPrefix = manifest.Assets.Prefix

		if override, ok := manifest.Variants[selection.Variant]; ok {
			for key, value := range override.Templates {
				partials[key] = value
			}
			for key, value := range override.Tokens {
				tokens[key] = value
			}
			for key, value := range override.Assets.Files {
				assetFiles[key] = value
			}
			if override.Assets.Prefix != "" {
				assetPrefix = override.Assets.Prefix
			}
		}
	}

	cfg.Partials = partials
	cfg.Tokens = tokens

	if len(tokens) > 0 {
		cssVars := make(map[string]string, len(tokens))
		for key, value := range tokens {
			cssVars["--"+key] = value
		}
		cfg.CSSVars = cssVars
	}

	cfg.AssetURL = assetResolver(assetPrefix, assetFiles)
	return cfg, nil
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	return func(key string) string {
		file, ok := files[key]
		if !ok {
			return ""
		}
		if prefix == "" {
			return file
		}
		return strings.TrimSuffix(prefix, "/") + "/" + strings.TrimPrefix(file, "/")
	}
}
