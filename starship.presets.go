package starship

import (
	"sort"

	"gopkg.in/yaml.v3"
)

// Preset name constants
const (
	PresetPlainText = "plain-text"
	PresetNoSymbols = "no-symbols"
)

// presets holds the built-in configuration overlays as YAML documents,
// merged between the defaults and the user's config file.
var presets = map[string]string{
	// ASCII symbols for terminals without emoji fonts
	PresetPlainText: `
aws:
  symbol: "aws "
perl:
  symbol: "perl "
pony:
  symbol: "pony "
`,
	// Drop module symbols entirely
	PresetNoSymbols: `
aws:
  format: "on [$profile[ \\($region\\)]($style)]($style) "
perl:
  format: "via [$version]($style) "
pony:
  format: "via [$version]($style) "
`,
}

// PresetNames returns the available preset names in sorted order
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// presetOverlay parses a named preset into a config overlay map
func presetOverlay(name string) (map[string]any, error) {
	doc, ok := presets[name]
	if !ok {
		return nil, NewUnknownPresetError(name)
	}

	overlay := make(map[string]any)
	if err := yaml.Unmarshal([]byte(doc), &overlay); err != nil {
		return nil, NewConfigError(err)
	}
	return overlay, nil
}
