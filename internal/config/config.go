package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultProvider and DefaultModel back the coach when config is silent.
const (
	DefaultProvider = "gemini"
	DefaultModel    = "gemini-2.5-flash"
)

// Config holds the top-level zenith configuration.
type Config struct {
	User    UserConfig    `toml:"user"`
	AI      AIConfig      `toml:"ai"`
	Display DisplayConfig `toml:"display"`
}

type UserConfig struct {
	Name string `toml:"name"`
}

type AIConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
}

// DisplayConfig controls terminal rendering.
type DisplayConfig struct {
	// WeekStart is "sunday" or "monday"; it only affects the month grid.
	WeekStart string `toml:"week_start"`
	// Color can be set to false to force plain output.
	// nil (missing from config) means color is on.
	Color *bool `toml:"color,omitempty"`
}

// ColorEnabled treats a missing value as true.
func (d DisplayConfig) ColorEnabled() bool {
	if d.Color == nil {
		return true
	}
	return *d.Color
}

// MondayFirst reports whether the month grid starts weeks on Monday.
func (d DisplayConfig) MondayFirst() bool {
	return d.WeekStart == "monday"
}

// Paths returns standard XDG-compliant paths.
type Paths struct {
	ConfigDir  string
	DataDir    string
	CacheDir   string
	StateDir   string
	ConfigFile string
	DBFile     string
}

// GetPaths returns the resolved paths, respecting XDG env vars.
func GetPaths() Paths {
	home, _ := os.UserHomeDir()

	configDir := envOr("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	dataDir := envOr("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))
	cacheDir := envOr("XDG_CACHE_HOME", filepath.Join(home, ".cache"))
	stateDir := envOr("XDG_STATE_HOME", filepath.Join(home, ".local", "state"))

	zenithConfig := filepath.Join(configDir, "zenith")
	zenithData := filepath.Join(dataDir, "zenith")

	return Paths{
		ConfigDir:  zenithConfig,
		DataDir:    zenithData,
		CacheDir:   filepath.Join(cacheDir, "zenith"),
		StateDir:   filepath.Join(stateDir, "zenith"),
		ConfigFile: filepath.Join(zenithConfig, "config.toml"),
		DBFile:     filepath.Join(zenithData, "zenith.db"),
	}
}

// EnsureDirs creates all required directories.
func (p Paths) EnsureDirs() error {
	dirs := []string{p.ConfigDir, p.DataDir, p.CacheDir, p.StateDir}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}
	return nil
}

// Load reads config from disk, returning defaults if not found.
func Load() (*Config, error) {
	paths := GetPaths()
	cfg := defaultConfig()

	data, err := os.ReadFile(paths.ConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes config to disk.
func Save(cfg *Config) error {
	paths := GetPaths()
	if err := paths.EnsureDirs(); err != nil {
		return err
	}

	f, err := os.Create(paths.ConfigFile)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Initialized returns true if a config file exists.
func Initialized() bool {
	paths := GetPaths()
	_, err := os.Stat(paths.ConfigFile)
	return err == nil
}

// BoolPtr returns a pointer to a bool value.
func BoolPtr(v bool) *bool {
	return &v
}

func defaultConfig() *Config {
	return &Config{
		AI: AIConfig{
			Provider: DefaultProvider,
			Model:    DefaultModel,
		},
		Display: DisplayConfig{
			WeekStart: "sunday",
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
