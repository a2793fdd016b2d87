package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// View modes for the shell.
const (
	ViewGallery     = "gallery"
	ViewInteractive = "interactive"
)

// Config holds application configuration.
type Config struct {
	Session SessionConfig `mapstructure:"session"`
	UI      UIConfig      `mapstructure:"ui"`
	Export  ExportConfig  `mapstructure:"export"`
	Log     LogConfig     `mapstructure:"log"`
}

// SessionConfig controls the optional sqlite session journal.
type SessionConfig struct {
	Persist bool   `mapstructure:"persist"`
	Path    string `mapstructure:"path"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	InitialScore int    `mapstructure:"initial_score"`
	ViewMode     string `mapstructure:"view_mode"`
	Clock        string `mapstructure:"clock"`
	Keybindings  string `mapstructure:"keybindings"`
}

// ExportConfig says where report and screenshot exports land.
type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

// LogConfig points the debug log at a file. Empty disables logging.
type LogConfig struct {
	File string `mapstructure:"file"`
}

// Path returns the config file location: PRIVIX_CONFIG when set, otherwise
// ~/.config/privix/config.toml.
func Path() string {
	if p := os.Getenv("PRIVIX_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "privix", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix PRIVIX_.
func Load() (Config, error) {
	v := viper.New()

	home := os.Getenv("HOME")
	v.SetDefault("session.persist", false)
	v.SetDefault("session.path", filepath.Join(home, ".local", "share", "privix", "privix.db"))
	v.SetDefault("ui.initial_score", 67)
	v.SetDefault("ui.view_mode", ViewGallery)
	v.SetDefault("ui.clock", "9:41")
	v.SetDefault("ui.keybindings", filepath.Join(home, ".config", "privix", "keybindings.toml"))
	v.SetDefault("export.dir", filepath.Join(home, "Documents", "privix"))
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")
	v.SetConfigFile(Path())

	v.SetEnvPrefix("PRIVIX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	if err := v.ReadInConfig(); err != nil && !missingConfig(err) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func missingConfig(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

// Validate rejects values the UI cannot honour.
func (c Config) Validate() error {
	switch c.UI.ViewMode {
	case ViewGallery, ViewInteractive:
	default:
		return fmt.Errorf("ui.view_mode: unknown mode %q (want %s or %s)", c.UI.ViewMode, ViewGallery, ViewInteractive)
	}
	if c.Session.Persist && c.Session.Path == "" {
		return fmt.Errorf("session.path: required when session.persist is true")
	}
	return nil
}

// SaveViewMode persists ui.view_mode and nothing else. The file is read
// without env overrides so PRIVIX_* values from this run are never written back.
// The TUI calls it when the view mode is toggled.
func SaveViewMode(mode string) error {
	switch mode {
	case ViewGallery, ViewInteractive:
	default:
		return fmt.Errorf("ui.view_mode: unknown mode %q", mode)
	}
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil && !missingConfig(err) {
		return fmt.Errorf("read config: %w", err)
	}
	v.Set("ui.view_mode", mode)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
