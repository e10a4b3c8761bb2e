package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/unkn0wn-root/curseclient/internal/errdef"
)

const (
	SettingsFormatTOML SettingsFormat = "toml"
	SettingsFormatJSON SettingsFormat = "json"
	SettingsFormatYAML SettingsFormat = "yaml"
)

const DefaultHighlightStyle = "monokai"

type Settings struct {
	Theme          string            `json:"theme"           toml:"theme"           yaml:"theme"`
	HighlightStyle string            `json:"highlight_style" toml:"highlight_style" yaml:"highlight_style"`
	Log            LogSettings       `json:"log"             toml:"log"             yaml:"log"`
	Telemetry      TelemetrySettings `json:"telemetry"       toml:"telemetry"       yaml:"telemetry"`
}

type LogSettings struct {
	Enabled bool   `json:"enabled" toml:"enabled" yaml:"enabled"`
	Path    string `json:"path"    toml:"path"    yaml:"path"`
	Level   string `json:"level"   toml:"level"   yaml:"level"`
}

type TelemetrySettings struct {
	Endpoint string            `json:"endpoint" toml:"endpoint" yaml:"endpoint"`
	Insecure bool              `json:"insecure" toml:"insecure" yaml:"insecure"`
	Service  string            `json:"service"  toml:"service"  yaml:"service"`
	Headers  map[string]string `json:"headers"  toml:"headers"  yaml:"headers"`
}

type SettingsFormat string

type SettingsHandle struct {
	Path   string
	Format SettingsFormat
}

// DefaultSettings is what the client runs with when no settings file exists.
func DefaultSettings() Settings {
	return Settings{
		Theme:          "default",
		HighlightStyle: DefaultHighlightStyle,
		Log:            LogSettings{Level: "info"},
	}
}

// LoadSettings tries settings.toml, then settings.json, then settings.yaml in
// dir. Missing files skip to the next candidate, parse errors fail
// immediately. Settings are never written back.
func LoadSettings(dir string) (Settings, SettingsHandle, error) {
	candidates := []SettingsHandle{
		{Path: filepath.Join(dir, "settings.toml"), Format: SettingsFormatTOML},
		{Path: filepath.Join(dir, "settings.json"), Format: SettingsFormatJSON},
		{Path: filepath.Join(dir, "settings.yaml"), Format: SettingsFormatYAML},
	}

	var accumulated error
	for _, candidate := range candidates {
		data, err := os.ReadFile(candidate.Path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			accumulated = errors.Join(
				accumulated,
				fmt.Errorf("read settings %q: %w", candidate.Path, err),
			)
			continue
		}

		settings, err := decodeSettings(data, candidate.Format)
		if err != nil {
			return DefaultSettings(), SettingsHandle{}, errdef.Wrap(
				errdef.CodeConfig,
				err,
				"parse settings %q",
				candidate.Path,
			)
		}
		return normaliseSettings(settings), candidate, nil
	}

	if accumulated != nil {
		return DefaultSettings(), SettingsHandle{}, errdef.Wrap(errdef.CodeConfig, accumulated, "")
	}
	return DefaultSettings(), SettingsHandle{}, nil
}

func decodeSettings(data []byte, format SettingsFormat) (Settings, error) {
	var settings Settings
	switch format {
	case SettingsFormatTOML:
		if err := toml.Unmarshal(data, &settings); err != nil {
			return Settings{}, err
		}
	case SettingsFormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&settings); err != nil {
			return Settings{}, err
		}
	case SettingsFormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&settings); err != nil && !errors.Is(err, io.EOF) {
			return Settings{}, err
		}
	default:
		return Settings{}, fmt.Errorf("unsupported settings format %q", format)
	}
	return settings, nil
}

func normaliseSettings(s Settings) Settings {
	defaults := DefaultSettings()
	s.Theme = strings.ToLower(strings.TrimSpace(s.Theme))
	if s.Theme == "" {
		s.Theme = defaults.Theme
	}
	s.HighlightStyle = strings.TrimSpace(s.HighlightStyle)
	if s.HighlightStyle == "" {
		s.HighlightStyle = defaults.HighlightStyle
	}
	s.Log.Level = strings.ToLower(strings.TrimSpace(s.Log.Level))
	if s.Log.Level == "" {
		s.Log.Level = defaults.Log.Level
	}
	s.Telemetry.Endpoint = strings.TrimSpace(s.Telemetry.Endpoint)
	return s
}
