package config

import (
	"flag"
	"fmt"
	"strings"
)

// Flags holds values parsed from command-line flags. Only flags that were
// set on the command line override the config file.
type Flags struct {
	fs *flag.FlagSet

	ConfigFilePath  *string
	Version         *bool
	LogLevel        *string
	LogFilePath     *string
	TabWidth        *int
	ScrollOff       *int
	MaxHistory      *int
	PreserveFuture  *bool
	SystemClipboard *bool
	AutoIndent      *bool
	EnableTags      *string
	DisableTags     *string
	EnablePkgs      *string
	DisablePkgs     *string
	EnableFiles     *string
	DisableFiles    *string
	DebugLog        *bool
}

// NewFlags defines the flags on a new FlagSet named after the program.
func NewFlags(name string) *Flags {
	f := &Flags{fs: flag.NewFlagSet(name, flag.ContinueOnError)}
	f.define()
	return f
}

func (f *Flags) define() {
	fs := f.fs
	f.ConfigFilePath = fs.String("config", "", fmt.Sprintf("Path to TOML configuration file (default <user config dir>/%s/%s)", AppName, DefaultConfigFileName))
	f.Version = fs.Bool("version", false, "Show version information and exit")
	f.LogLevel = fs.String("loglevel", "", "Log level (debug, info, warn, error)")
	f.LogFilePath = fs.String("logfile", "", "Path to write log file (use '-' for stderr)")
	f.TabWidth = fs.Int("tabwidth", 0, "Number of spaces per tab")
	f.ScrollOff = fs.Int("scrolloff", -1, "Lines of context above/below cursor")
	f.MaxHistory = fs.Int("max-history", -1, "Maximum undo depth (0 = unbounded)")
	f.PreserveFuture = fs.Bool("preserve-future", false, "Keep redo entries when a new edit is made")
	f.SystemClipboard = fs.Bool("system-clipboard", false, "Use the system clipboard instead of the internal register")
	f.AutoIndent = fs.Bool("auto-indent", true, "Copy indentation of the current line on Enter")
	f.EnableTags = fs.String("log-tags", "", "Comma-separated list of tags to enable")
	f.DisableTags = fs.String("log-disable-tags", "", "Comma-separated list of tags to disable")
	f.EnablePkgs = fs.String("log-packages", "", "Comma-separated list of packages to enable")
	f.DisablePkgs = fs.String("log-disable-packages", "", "Comma-separated list of packages to disable")
	f.EnableFiles = fs.String("log-files", "", "Comma-separated list of files to enable")
	f.DisableFiles = fs.String("log-disable-files", "", "Comma-separated list of files to disable")
	f.DebugLog = fs.Bool("debug-log", false, "Trace the logger filtering decisions to stderr")
}

// Parse parses args and returns the remaining non-flag arguments.
func (f *Flags) Parse(args []string) ([]string, error) {
	if err := f.fs.Parse(args); err != nil {
		return nil, err
	}
	return f.fs.Args(), nil
}

// ApplyOverrides copies every explicitly set flag into cfg.
func (f *Flags) ApplyOverrides(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "loglevel":
			if *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath
		case "tabwidth":
			if *f.TabWidth > 0 {
				cfg.Editor.TabWidth = *f.TabWidth
			}
		case "scrolloff":
			if *f.ScrollOff >= 0 {
				cfg.Editor.ScrollOff = *f.ScrollOff
			}
		case "max-history":
			if *f.MaxHistory >= 0 {
				cfg.History.MaxHistory = *f.MaxHistory
			}
		case "preserve-future":
			cfg.History.PreserveFuture = *f.PreserveFuture
		case "system-clipboard":
			cfg.Editor.SystemClipboard = *f.SystemClipboard
		case "auto-indent":
			cfg.Editor.AutoIndent = *f.AutoIndent
		case "log-tags":
			cfg.Logger.EnabledTags = splitCommaList(*f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = splitCommaList(*f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = splitCommaList(*f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = splitCommaList(*f.DisablePkgs)
		case "log-files":
			cfg.Logger.EnabledFiles = splitCommaList(*f.EnableFiles)
		case "log-disable-files":
			cfg.Logger.DisabledFiles = splitCommaList(*f.DisableFiles)
		}
	})
}

func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
