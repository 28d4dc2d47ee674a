// Package clipboard stores yanked text, optionally backed by the system
// clipboard.
package clipboard

import (
	"fmt"
	"sync"

	sysclip "github.com/atotto/clipboard"
	"github.com/bethropolis/actionpad/internal/logger"
)

// Backend is a text clipboard provider.
type Backend interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemBackend struct{}

func (systemBackend) ReadAll() (string, error)   { return sysclip.ReadAll() }
func (systemBackend) WriteAll(text string) error { return sysclip.WriteAll(text) }

// Register holds the last yanked text. When a backend is set, reads and
// writes go to it first and the internal copy is the fallback.
type Register struct {
	mu       sync.Mutex
	backend  Backend
	contents []byte
}

// New creates a register. With useSystem it talks to the OS clipboard,
// unless the platform has no clipboard support.
func New(useSystem bool) *Register {
	r := &Register{}
	if useSystem {
		if sysclip.Unsupported {
			logger.Warnf("Clipboard: system clipboard unsupported, using internal register")
		} else {
			r.backend = systemBackend{}
		}
	}
	return r
}

// NewWithBackend creates a register over an explicit backend.
func NewWithBackend(b Backend) *Register {
	return &Register{backend: b}
}

// Write stores text. A backend failure is logged and the internal copy is
// kept.
func (r *Register) Write(text []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.contents = append([]byte(nil), text...)
	if r.backend == nil {
		return
	}
	if err := r.backend.WriteAll(string(text)); err != nil {
		logger.Warnf("Clipboard: system write failed, kept internal copy: %v", err)
	}
}

// Read returns the clipboard contents.
func (r *Register) Read() ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.backend != nil {
		text, err := r.backend.ReadAll()
		if err == nil {
			return []byte(text), nil
		}
		logger.Warnf("Clipboard: system read failed, using internal copy: %v", err)
		if len(r.contents) == 0 {
			return nil, fmt.Errorf("clipboard read failed: %w", err)
		}
	}
	return append([]byte(nil), r.contents...), nil
}
