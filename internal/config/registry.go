package config

import (
	"fmt"
	"sort"
	"strings"
)

// KeyType represents the data type of a config key.
type KeyType string

const (
	KeyTypeString KeyType = "string"
	KeyTypeBool   KeyType = "bool"
)

// KeyEntry describes a known, settable config key.
type KeyEntry struct {
	// Type is the value's data type (string, bool).
	Type KeyType
	// Desc is a human-readable description shown in `zenith config`.
	Desc string
	// DefaultStr is the string representation of the default value.
	DefaultStr string

	get   func(*Config) string
	set   func(cfg *Config, value string) error
	unset func(cfg *Config)
}

// Get returns the current value of the key as a string.
func (e *KeyEntry) Get(cfg *Config) string { return e.get(cfg) }

// Set validates and sets the value, returning a descriptive error on type mismatch.
func (e *KeyEntry) Set(cfg *Config, value string) error { return e.set(cfg, value) }

// Unset resets the key to its schema default.
func (e *KeyEntry) Unset(cfg *Config) { e.unset(cfg) }

// SchemaKeys is the authoritative registry of all settable config keys.
// Keys use dot-notation matching the TOML section structure.
var SchemaKeys = map[string]*KeyEntry{
	"user.name": {
		Type:       KeyTypeString,
		Desc:       "Display name used in the greeting",
		DefaultStr: "",
		get:        func(cfg *Config) string { return cfg.User.Name },
		set:        func(cfg *Config, v string) error { cfg.User.Name = v; return nil },
		unset:      func(cfg *Config) { cfg.User.Name = "" },
	},
	"ai.provider": {
		Type:       KeyTypeString,
		Desc:       "AI provider for suggestions and guides (gemini)",
		DefaultStr: DefaultProvider,
		get:        func(cfg *Config) string { return cfg.AI.Provider },
		set:        func(cfg *Config, v string) error { cfg.AI.Provider = v; return nil },
		unset:      func(cfg *Config) { cfg.AI.Provider = DefaultProvider },
	},
	"ai.model": {
		Type:       KeyTypeString,
		Desc:       "AI model name",
		DefaultStr: DefaultModel,
		get:        func(cfg *Config) string { return cfg.AI.Model },
		set:        func(cfg *Config, v string) error { cfg.AI.Model = v; return nil },
		unset:      func(cfg *Config) { cfg.AI.Model = DefaultModel },
	},
	"display.week_start": {
		Type:       KeyTypeString,
		Desc:       "First day of the week in the month grid (sunday, monday)",
		DefaultStr: "sunday",
		get:        func(cfg *Config) string { return cfg.Display.WeekStart },
		set: func(cfg *Config, v string) error {
			v = strings.ToLower(strings.TrimSpace(v))
			if v != "sunday" && v != "monday" {
				return fmt.Errorf("invalid value %q for display.week_start (use sunday or monday)", v)
			}
			cfg.Display.WeekStart = v
			return nil
		},
		unset: func(cfg *Config) { cfg.Display.WeekStart = "sunday" },
	},
	"display.color": {
		Type:       KeyTypeBool,
		Desc:       "Colored terminal output",
		DefaultStr: "true",
		get:        func(cfg *Config) string { return fmt.Sprintf("%t", cfg.Display.ColorEnabled()) },
		set: func(cfg *Config, v string) error {
			b, err := ParseBoolValue(v)
			if err != nil {
				return fmt.Errorf("invalid value %q for display.color: %w", v, err)
			}
			cfg.Display.Color = BoolPtr(b)
			return nil
		},
		unset: func(cfg *Config) { cfg.Display.Color = nil },
	},
}

// ValidKeyNames returns the sorted list of all known config key names.
func ValidKeyNames() []string {
	names := make([]string, 0, len(SchemaKeys))
	for k := range SchemaKeys {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// LookupKey returns the KeyEntry for a known config key.
func LookupKey(key string) (*KeyEntry, bool) {
	entry, ok := SchemaKeys[key]
	return entry, ok
}

// ParseBoolValue accepts common boolean string representations.
// Valid truthy values: true, 1, yes, on.
// Valid falsy values: false, 0, no, off.
func ParseBoolValue(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("not a boolean: %q (use one of: true/false, 1/0, yes/no, on/off)", s)
	}
}
