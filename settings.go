package ggsoft

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultTextSize is the text size used when a settings file leaves it unset.
const DefaultTextSize = 20

// ErrUnknownSettingsFormat is returned by LoadSettings for a file whose
// extension is neither YAML nor TOML.
var ErrUnknownSettingsFormat = errors.New("ggsoft: unknown settings format")

// Settings are the recognized renderer options.
type Settings struct {
	// DefaultTextSize is the text size used by widgets that do not set one.
	DefaultTextSize uint16 `yaml:"default_text_size" toml:"default_text_size"`

	// Output is an optional file path. When set, every committed frame is
	// encoded and written there. The extension selects the image format.
	Output string `yaml:"output,omitempty" toml:"output"`
}

// DefaultSettings returns the settings used when no configuration is given.
func DefaultSettings() Settings {
	return Settings{DefaultTextSize: DefaultTextSize}
}

func (s Settings) withDefaults() Settings {
	if s.DefaultTextSize == 0 {
		s.DefaultTextSize = DefaultTextSize
	}
	s.Output = strings.TrimSpace(s.Output)
	return s
}

// LoadSettings reads a settings file. The decoder is chosen by extension:
// .yaml and .yml use YAML, .toml uses TOML.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	return decodeSettings(path, data)
}

// LoadSettingsOptional is like LoadSettings but returns DefaultSettings when
// the file does not exist.
func LoadSettingsOptional(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return Settings{}, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	return decodeSettings(path, data)
}

func decodeSettings(path string, data []byte) (Settings, error) {
	var s Settings
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Settings{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &s); err != nil {
			return Settings{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	default:
		return Settings{}, fmt.Errorf("%w: %q", ErrUnknownSettingsFormat, ext)
	}
	return s.withDefaults(), nil
}
