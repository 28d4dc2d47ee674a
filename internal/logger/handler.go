package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const tagKey = "tag" // attribute key matched by tag filters

// filteringHandler drops records by package, file or tag before handing
// them to the base handler.
type filteringHandler struct {
	baseHandler slog.Handler
	cfg         *Config
}

func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{
		baseHandler: base,
		cfg:         cfg,
	}
}

// Enabled defers to the base handler.
func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.baseHandler.Enabled(ctx, level)
}

func foundInSet(set map[string]struct{}, key string) bool {
	if set == nil {
		return false
	}
	_, found := set[key]
	return found
}

// passes applies one disabled/enabled pair. Disabled wins.
func passes(enabled, disabled map[string]struct{}, key, kind string) bool {
	if foundInSet(disabled, key) {
		traceFilter("FILTERED OUT: disabled %s '%s'", kind, key)
		return false
	}
	if enabled != nil && !foundInSet(enabled, key) {
		traceFilter("FILTERED OUT: %s '%s' not in enabled list", kind, key)
		return false
	}
	return true
}

func traceFilter(format string, args ...interface{}) {
	if debugFilter {
		fmt.Fprintf(os.Stderr, "[FILTER] "+format+"\n", args...)
	}
}

// recordSource resolves the package directory and file name of a record.
func recordSource(r slog.Record) (pkg, file string, ok bool) {
	if r.PC == 0 {
		return "", "", false
	}
	frames := runtime.CallersFrames([]uintptr{r.PC})
	frame, _ := frames.Next()
	if frame.File == "" {
		return "", "", false
	}
	return filepath.Base(filepath.Dir(frame.File)), filepath.Base(frame.File), true
}

// Handle applies filtering before passing the record on.
func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil {
		return h.baseHandler.Handle(ctx, r)
	}
	traceFilter("Message: Level=%s, Msg=%s", r.Level, r.Message)

	if pkg, file, ok := recordSource(r); ok {
		if !passes(h.cfg.enabledPackagesSet, h.cfg.disabledPackagesSet, strings.ToLower(pkg), "package") {
			return nil
		}
		if !passes(h.cfg.enabledFilesSet, h.cfg.disabledFilesSet, strings.ToLower(file), "file") {
			return nil
		}
	}

	var tag string
	var tagFound bool
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tag = strings.ToLower(a.Value.String())
			tagFound = true
			return false
		}
		return true
	})

	if tagFound {
		if !passes(h.cfg.enabledTagsSet, h.cfg.disabledTagsSet, tag, "tag") {
			return nil
		}
	} else if h.cfg.enabledTagsSet != nil {
		traceFilter("FILTERED OUT: untagged message while specific tags are enabled")
		return nil
	}

	return h.baseHandler.Handle(ctx, r)
}

// WithAttrs returns a new handler with attributes added.
func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithAttrs(attrs), h.cfg)
}

// WithGroup returns a new handler with a group added.
func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithGroup(name), h.cfg)
}
