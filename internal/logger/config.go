package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Config holds all settings for the logger. It is decoded from the [logger]
// table of the config file.
type Config struct {
	// LogLevel is the minimum level: "debug", "info", "warn" or "error".
	LogLevel string

	// LogFilePath is the output file. Empty means actionpad.log in the
	// working directory, "-" means stderr.
	LogFilePath string

	// --- Filtering Options ---

	// EnabledTags only logs messages with these tags (if non-empty).
	EnabledTags []string
	// DisabledTags drops messages with these tags. Overrides EnabledTags.
	DisabledTags []string

	// EnabledPackages only logs messages from these packages (if non-empty).
	// A package is the immediate directory name, e.g. "history" or "core".
	EnabledPackages []string
	// DisabledPackages drops messages from these packages.
	DisabledPackages []string

	// EnabledFiles only logs messages from these base file names (if non-empty).
	EnabledFiles []string
	// DisabledFiles drops messages from these files.
	DisabledFiles []string

	// --- Internal processed fields ---
	level               slog.Leveler
	enabledTagsSet      map[string]struct{}
	disabledTagsSet     map[string]struct{}
	enabledPackagesSet  map[string]struct{}
	disabledPackagesSet map[string]struct{}
	enabledFilesSet     map[string]struct{}
	disabledFilesSet    map[string]struct{}
}

// NewConfig creates a new Config with default values.
func NewConfig() Config {
	return Config{
		LogLevel:    "info",
		LogFilePath: "",
	}
}

// ParseLevel maps a level name to a slog level. Unknown names yield info.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error", "err":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// process parses string levels and lists into lookup sets.
func (c *Config) process() {
	level, _ := ParseLevel(c.LogLevel) // unknown names fall back to info
	c.level = level

	// Print diagnostic information if debug enabled
	if debugFilter {
		fmt.Fprintf(os.Stderr, "[CONFIG PROCESS] DisabledPackages: %v EnabledPackages: %v\n", c.DisabledPackages, c.EnabledPackages)
	}

	// Convert filter lists to sets for lookup
	c.enabledTagsSet = sliceToSet(c.EnabledTags)
	c.disabledTagsSet = sliceToSet(c.DisabledTags)
	c.enabledPackagesSet = sliceToSet(c.EnabledPackages)
	c.disabledPackagesSet = sliceToSet(c.DisabledPackages)
	c.enabledFilesSet = sliceToSet(c.EnabledFiles)
	c.disabledFilesSet = sliceToSet(c.DisabledFiles)
}

// sliceToSet lowercases items; an empty result is nil.
func sliceToSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item != "" { // Ignore empty strings
			set[strings.ToLower(item)] = struct{}{} // Case-insensitive matching
		}
	}
	if len(set) == 0 {
		return nil // nil map keeps the "no filter" checks simple
	}
	return set
}
