// Package config loads settings from defaults, a TOML file and flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/actionpad/internal/history"
	"github.com/bethropolis/actionpad/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger  logger.Config `toml:"logger"`
	History HistoryConfig `toml:"history"`
	Editor  EditorConfig  `toml:"editor"`
}

// HistoryConfig controls the undo/redo stacks.
type HistoryConfig struct {
	MaxHistory     int  `toml:"max_history"`
	PreserveFuture bool `toml:"preserve_future"`
}

// Options converts the table into history manager options.
func (h HistoryConfig) Options() history.Options {
	return history.Options{
		MaxHistory:     h.MaxHistory,
		PreserveFuture: h.PreserveFuture,
	}
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	TabWidth        int  `toml:"tab_width"`
	ScrollOff       int  `toml:"scroll_off"`
	SystemClipboard bool `toml:"system_clipboard"`
	AutoIndent      bool `toml:"auto_indent"`
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		History: HistoryConfig{
			MaxHistory:     DefaultMaxHistory,
			PreserveFuture: PreserveFuture,
		},
		Editor: EditorConfig{
			TabWidth:        DefaultTabWidth,
			ScrollOff:       DefaultScrollOff,
			SystemClipboard: SystemClipboard,
			AutoIndent:      AutoIndent,
		},
	}
}

// DefaultConfigPath returns the per-user config file location, or "" if the
// user config directory is unknown.
func DefaultConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName)
}

// decodeFile decodes filePath over cfg. A missing file is not an error, and
// cfg is left untouched if the file does not parse. Unknown keys are
// returned so the caller can report them once the logger is up.
func decodeFile(filePath string, cfg *Config) ([]toml.Key, error) {
	fileCfg := *cfg
	metadata, err := toml.DecodeFile(filePath, &fileCfg)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	*cfg = fileCfg
	return metadata.Undecoded(), nil
}

// validate resets invalid values to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.ScrollOff < 0 {
		c.Editor.ScrollOff = defaults.Editor.ScrollOff
	}
	if c.History.MaxHistory < 0 {
		c.History.MaxHistory = defaults.History.MaxHistory
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// Load builds a configuration: defaults, then the file at configFilePath
// (or the default location when empty), then flag overrides, then
// validation. Keys in the file that match no setting are returned as
// warnings.
func Load(configFilePath string, flags *Flags) (*Config, []string, error) {
	cfg := NewDefaultConfig()

	path := configFilePath
	if path == "" {
		path = DefaultConfigPath()
	}

	var warnings []string
	var err error
	if path != "" {
		var undecoded []toml.Key
		undecoded, err = decodeFile(path, cfg)
		for _, key := range undecoded {
			warnings = append(warnings, fmt.Sprintf("config file '%s': unrecognized key %s", path, key))
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, warnings, err
}

// LoadConfig runs Load once and stores the result for Get.
func LoadConfig(configFilePath string, flags *Flags) (*Config, []string, error) {
	var warnings []string
	loadOnce.Do(func() {
		loadedConfig, warnings, loadErr = Load(configFilePath, flags)
	})
	return loadedConfig, warnings, loadErr
}

// Get returns the loaded configuration. Panics if LoadConfig wasn't called.
func Get() *Config {
	if loadedConfig == nil {
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}
