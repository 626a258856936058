// Package config loads and saves the splitlog TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/theirongolddev/splitlog/internal/expense"
	"github.com/theirongolddev/splitlog/internal/store"
	"github.com/theirongolddev/splitlog/internal/tui/theme"
)

const appName = "splitlog"

// Config holds all splitlog configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Storage    StorageConfig    `toml:"storage"`
	Split      SplitConfig      `toml:"split"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DefaultCategory string `toml:"default_category"`
	Currency        string `toml:"currency"`
}

// StorageConfig selects where the expense blob lives.
type StorageConfig struct {
	Backend  string `toml:"backend"`
	Path     string `toml:"path,omitempty"`
	RedisURL string `toml:"redis_url,omitempty"`
}

// SplitConfig controls how amounts are divided.
type SplitConfig struct {
	Remainder string `toml:"remainder"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultCategory: "Food",
			Currency:        "₹",
		},
		Storage: StorageConfig{
			Backend: store.BackendSQLite,
		},
		Split: SplitConfig{
			Remainder: string(expense.RemainderNone),
		},
		Appearance: AppearanceConfig{
			Theme: theme.FlexokiDark.Name,
		},
	}
}

// Validate rejects values no component can act on.
func (c Config) Validate() error {
	if c.Storage.Backend != "" && !slices.Contains(store.Backends, c.Storage.Backend) {
		return fmt.Errorf("storage.backend %q: want one of %v", c.Storage.Backend, store.Backends)
	}
	if _, err := expense.ParsePolicy(c.Split.Remainder); err != nil {
		return fmt.Errorf("split.remainder: %w", err)
	}
	if c.Appearance.Theme != "" && !slices.Contains(theme.Names(), c.Appearance.Theme) {
		return fmt.Errorf("appearance.theme %q: want one of %v", c.Appearance.Theme, theme.Names())
	}
	return nil
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName)
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", appName)
}

// DBPath returns the SQLite database path, honoring storage.path.
func DBPath(cfg Config) string {
	if cfg.Storage.Path != "" {
		return cfg.Storage.Path
	}
	return filepath.Join(DataDir(), appName+".db")
}

// GetRedisURL returns the Redis URL from env var or config, in that order.
func GetRedisURL(cfg Config) string {
	if u := os.Getenv("SPLITLOG_REDIS_URL"); u != "" {
		return u
	}
	return cfg.Storage.RedisURL
}

// StoreOptions translates the storage section into backend options.
func StoreOptions(cfg Config) store.Options {
	return store.Options{
		Backend:  cfg.Storage.Backend,
		Path:     DBPath(cfg),
		RedisURL: GetRedisURL(cfg),
	}
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", ConfigPath(), err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
