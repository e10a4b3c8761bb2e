package bindings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/unkn0wn-root/curseclient/internal/errdef"
)

type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Source describes where the bindings were loaded from. Path is empty when
// only defaults are in use.
type Source struct {
	Path   string
	Format Format
}

type ActionID string

// Map resolves key strings, as reported by bubbletea, to actions.
type Map struct {
	keys    map[string]ActionID
	actions map[ActionID][]string
}

// Load reads bindings.toml, then bindings.json, from dir. Missing files fall
// back to defaults. Actions named in the file replace their default keys.
func Load(dir string) (*Map, Source, error) {
	candidates := []Source{
		{Path: filepath.Join(dir, "bindings.toml"), Format: FormatTOML},
		{Path: filepath.Join(dir, "bindings.json"), Format: FormatJSON},
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
				fmt.Errorf("read bindings %q: %w", candidate.Path, err),
			)
			continue
		}

		overrides, err := parseConfig(data, candidate.Format)
		if err != nil {
			return DefaultMap(), Source{}, errdef.Wrap(errdef.CodeConfig, err, "parse bindings %q", candidate.Path)
		}
		built, err := buildMap(overrides)
		if err != nil {
			return DefaultMap(), Source{}, errdef.Wrap(errdef.CodeConfig, err, "apply bindings %q", candidate.Path)
		}
		return built, candidate, nil
	}

	if accumulated != nil {
		return DefaultMap(), Source{}, errdef.Wrap(errdef.CodeConfig, accumulated, "")
	}
	return DefaultMap(), Source{}, nil
}

// DefaultMap builds the built-in bindings without consulting disk.
func DefaultMap() *Map {
	m, err := buildMap(nil)
	if err != nil {
		panic(err)
	}
	return m
}

// Match returns the action bound to key.
func (m *Map) Match(key string) (ActionID, bool) {
	if m == nil {
		return "", false
	}
	id, ok := m.keys[key]
	return id, ok
}

// Keys returns a copy of the keys bound to action, in configured order.
func (m *Map) Keys(action ActionID) []string {
	if m == nil {
		return nil
	}
	keys := m.actions[action]
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// Label joins an action's keys for display, e.g. "f5/ctrl+r".
func (m *Map) Label(action ActionID) string {
	return strings.Join(m.Keys(action), "/")
}

type configFile struct {
	Bindings map[string][]string `json:"bindings" toml:"bindings"`
}

func parseConfig(data []byte, format Format) (map[ActionID][]string, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, nil
	}

	var payload configFile
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &payload); err != nil {
			return nil, err
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &payload); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	overrides := make(map[ActionID][]string, len(payload.Bindings))
	for name, specs := range payload.Bindings {
		id := ActionID(strings.TrimSpace(name))
		if _, ok := definitionLookup[id]; !ok {
			return nil, fmt.Errorf("unknown action %q", name)
		}
		keys := make([]string, 0, len(specs))
		for _, spec := range specs {
			key, err := normalizeKey(spec)
			if err != nil {
				return nil, fmt.Errorf("action %q: %w", name, err)
			}
			keys = append(keys, key)
		}
		overrides[id] = keys
	}
	return overrides, nil
}

func buildMap(overrides map[ActionID][]string) (*Map, error) {
	m := &Map{
		keys:    make(map[string]ActionID),
		actions: make(map[ActionID][]string, len(definitions)),
	}
	for _, d := range definitions {
		keys := d.defaults
		if override, ok := overrides[d.id]; ok {
			keys = override
		}
		for _, key := range keys {
			if existing, ok := m.keys[key]; ok {
				if existing == d.id {
					return nil, fmt.Errorf("action %s: duplicate binding %q", d.id, key)
				}
				return nil, fmt.Errorf("binding %q assigned to both %s and %s", key, existing, d.id)
			}
			m.keys[key] = d.id
			m.actions[d.id] = append(m.actions[d.id], key)
		}
	}
	return m, nil
}

// normalizeKey canonicalises a key spec to the form bubbletea reports:
// modifiers ordered ctrl, alt, shift and named keys lower-cased. A single
// printable character is kept as typed, so "Q" and "q" stay distinct.
func normalizeKey(spec string) (string, error) {
	if spec == " " {
		return " ", nil
	}
	raw := strings.TrimSpace(spec)
	if raw == "" {
		return "", errors.New("empty binding")
	}
	if len(strings.Fields(raw)) > 1 {
		return "", fmt.Errorf("binding %q: multi-step bindings are not supported", raw)
	}
	if len([]rune(raw)) == 1 {
		return raw, nil
	}

	parts := strings.Split(raw, "+")
	mods := map[string]bool{}
	var key string
	for i, part := range parts {
		lower := strings.ToLower(strings.TrimSpace(part))
		if i == len(parts)-1 {
			key = lower
			continue
		}
		switch lower {
		case "ctrl", "control":
			mods["ctrl"] = true
		case "alt", "option", "meta":
			mods["alt"] = true
		case "shift":
			mods["shift"] = true
		default:
			return "", fmt.Errorf("binding %q: unknown modifier %q", raw, part)
		}
	}
	if key == "" {
		return "", fmt.Errorf("binding %q missing key", raw)
	}
	if alias, ok := keyAliases[key]; ok {
		key = alias
	}

	var out []string
	for _, mod := range []string{"ctrl", "alt", "shift"} {
		if mods[mod] {
			out = append(out, mod)
		}
	}
	return strings.Join(append(out, key), "+"), nil
}

var keyAliases = map[string]string{
	"return":   "enter",
	"escape":   "esc",
	"pageup":   "pgup",
	"pagedown": "pgdown",
	"space":    " ",
}

// KnownActions lists every action in definition order.
func KnownActions() []ActionID {
	ids := make([]ActionID, 0, len(definitions))
	for _, d := range definitions {
		ids = append(ids, d.id)
	}
	return ids
}
