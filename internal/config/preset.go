package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/mergechat/internal/data/dispatcher"
	"github.com/atomicstack/mergechat/internal/state"
	"github.com/atomicstack/mergechat/internal/window"
	"gopkg.in/yaml.v3"
)

// Preset is the optional YAML file describing window options per purpose and
// the starting values of the global fields.
//
//	icon: assets/icon.png
//	windows:
//	  settings:
//	    size: {width: 480, height: 320}
//	fields:
//	  twitch: somechannel
type Preset struct {
	Icon    string            `yaml:"icon"`
	Windows PresetWindows     `yaml:"windows"`
	Fields  map[string]string `yaml:"fields"`
}

// PresetWindows overrides the open options for each purpose. Nil entries keep
// the defaults.
type PresetWindows struct {
	Initial  *window.Options `yaml:"initial"`
	Main     *window.Options `yaml:"main"`
	Settings *window.Options `yaml:"settings"`
}

// LoadPreset reads and strictly decodes a preset file. Unknown keys are
// rejected.
func LoadPreset(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, fmt.Errorf("read preset %s: %w", path, err)
	}
	var p Preset
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Preset{}, fmt.Errorf("parse preset %s: %w", path, err)
	}
	return p, nil
}

// Presets resolves the window options. A non-empty icon, taken from the flag
// or environment, wins over the preset's icon; with neither the default icon
// is used. Per-purpose overrides that leave the icon empty inherit it where the
// default carries one.
func (p Preset) Presets(icon string) dispatcher.Presets {
	icon = p.resolveIcon(icon)
	out := dispatcher.DefaultPresets(icon)
	out.Initial = mergeOptions(p.Windows.Initial, out.Initial)
	out.Main = mergeOptions(p.Windows.Main, out.Main)
	out.Settings = mergeOptions(p.Windows.Settings, out.Settings)
	return out
}

func (p Preset) resolveIcon(icon string) string {
	switch {
	case icon != "":
		return icon
	case p.Icon != "":
		return p.Icon
	default:
		return defaultIcon
	}
}

func mergeOptions(override *window.Options, base window.Options) window.Options {
	if override == nil {
		return base
	}
	merged := *override
	if merged.Icon == "" {
		merged.Icon = base.Icon
	}
	return merged
}

// GlobalFields converts the preset's field map, rejecting unknown names.
func (p Preset) GlobalFields() (map[state.Field]string, error) {
	if len(p.Fields) == 0 {
		return nil, nil
	}
	out := make(map[state.Field]string, len(p.Fields))
	for name, value := range p.Fields {
		field := state.Field(name)
		if field != state.FieldTwitch && field != state.FieldYoutube {
			return nil, fmt.Errorf("unknown field %q", name)
		}
		out[field] = value
	}
	return out, nil
}

func validateOptions(purpose string, opts window.Options) error {
	if opts.Size == nil {
		return nil
	}
	if opts.Size.Width <= 0 || opts.Size.Height <= 0 {
		return fmt.Errorf("%s window size must be positive (got %s)", purpose, opts.Size)
	}
	return nil
}
