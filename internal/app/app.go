// Package app wires the editor, history, terminal and status bar together
// and runs the main loop.
package app

import (
	"fmt"
	"sync"

	"github.com/bethropolis/actionpad/internal/buffer"
	"github.com/bethropolis/actionpad/internal/clipboard"
	"github.com/bethropolis/actionpad/internal/config"
	"github.com/bethropolis/actionpad/internal/core"
	"github.com/bethropolis/actionpad/internal/event"
	"github.com/bethropolis/actionpad/internal/input"
	"github.com/bethropolis/actionpad/internal/logger"
	"github.com/bethropolis/actionpad/internal/statusbar"
	"github.com/bethropolis/actionpad/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// App encapsulates the core components and main loop of the editor.
type App struct {
	cfg            *config.Config
	tuiManager     *tui.TUI
	editor         *core.Editor
	statusBar      *statusbar.StatusBar
	eventManager   *event.Manager
	inputProcessor *input.InputProcessor
	filePath       string

	forceQuitPending bool

	quit          chan struct{}
	quitOnce      sync.Once
	events        chan tcell.Event
	redrawRequest chan struct{}
}

// NewApp creates an application on the real terminal.
func NewApp(cfg *config.Config, filePath string) (*App, error) {
	tuiManager, err := tui.New()
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}
	a, err := newApp(cfg, filePath, tuiManager)
	if err != nil {
		tuiManager.Close()
		return nil, err
	}
	return a, nil
}

// NewAppWithScreen creates an application drawing to screen.
func NewAppWithScreen(cfg *config.Config, filePath string, screen tcell.Screen) (*App, error) {
	tuiManager, err := tui.NewWithScreen(screen)
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}
	a, err := newApp(cfg, filePath, tuiManager)
	if err != nil {
		tuiManager.Close()
		return nil, err
	}
	return a, nil
}

func newApp(cfg *config.Config, filePath string, tuiManager *tui.TUI) (*App, error) {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	editor := core.NewEditor(buffer.NewSliceBuffer(), core.Options{
		ScrollOff:  cfg.Editor.ScrollOff,
		TabWidth:   cfg.Editor.TabWidth,
		AutoIndent: cfg.Editor.AutoIndent,
		History:    cfg.History.Options(),
		Clipboard:  clipboard.New(cfg.Editor.SystemClipboard),
	})

	statusCfg := statusbar.DefaultConfig()
	statusCfg.MessageTimeout = config.MessageTimeout

	a := &App{
		cfg:            cfg,
		tuiManager:     tuiManager,
		editor:         editor,
		statusBar:      statusbar.New(statusCfg),
		eventManager:   event.NewManager(),
		inputProcessor: input.NewInputProcessor(),
		filePath:       filePath,
		quit:           make(chan struct{}),
		events:         make(chan tcell.Event, 16),
		redrawRequest:  make(chan struct{}, 1),
	}

	editor.SetEventManager(a.eventManager)
	a.subscribe()

	if filePath != "" {
		if err := editor.Load(filePath); err != nil {
			return nil, fmt.Errorf("failed to load '%s': %w", filePath, err)
		}
		logger.Debugf("App: Loaded %s (%d lines)", filePath, editor.GetBuffer().LineCount())
	}

	width, height := tuiManager.Size()
	editor.SetViewSize(width, height)
	a.updateStatusBarContent()
	return a, nil
}

// Run starts the application's event and drawing loops and blocks until
// the user quits.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	go a.eventLoop()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("Ctrl+Z Undo | Ctrl+Y Redo | Ctrl+S Save | ESC Quit")
	a.requestRedraw()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			if a.editor.GetBuffer().IsModified() {
				logger.Warnf("App: Exited with unsaved changes")
			}
			logger.Infof("App: Exiting")
			return nil
		case ev := <-a.events:
			if a.handleEvent(ev) {
				a.requestRedraw()
			}
		case <-a.redrawRequest:
			a.drawEditor()
		}
	}
}

// eventLoop forwards terminal events to Run. Editor state is only touched
// from Run's goroutine.
func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.events <- ev:
		case <-a.quit:
			return
		}
	}
}

// handleEvent reports whether ev requires a redraw.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.GetScreen().Sync()
		w, h := a.tuiManager.Size()
		a.editor.SetViewSize(w, h)
		return true
	case *tcell.EventKey:
		return a.handleKeyEvent(ev)
	}
	return false
}

func (a *App) handleKeyEvent(ev *tcell.EventKey) bool {
	a.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})
	return a.handleAction(a.inputProcessor.ProcessEvent(ev))
}

// drawEditor clears the screen and redraws all components.
func (a *App) drawEditor() {
	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()

	logger.DebugTagf("draw", "drawEditor: screen %dx%d", width, height)

	a.tuiManager.Clear()
	a.tuiManager.DrawBuffer(a.editor, a.cfg.Editor.TabWidth)
	a.statusBar.Draw(screen, width, height)
	a.tuiManager.DrawCursor(a.editor, a.cfg.Editor.TabWidth)
	a.tuiManager.Show()
}

// updateStatusBarContent pushes current editor state to the status bar.
func (a *App) updateStatusBarContent() {
	buf := a.editor.GetBuffer()
	hist := a.editor.GetHistory()
	a.statusBar.SetFileInfo(buf.FilePath(), buf.IsModified())
	a.statusBar.SetCursorInfo(a.editor.GetCursor())
	a.statusBar.SetHistoryInfo(hist.UndoCount(), hist.RedoCount())
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // a redraw is already pending
	}
}

func (a *App) signalQuit() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// GetEditor returns the editor instance.
func (a *App) GetEditor() *core.Editor {
	return a.editor
}

// GetEventManager returns the application event bus.
func (a *App) GetEventManager() *event.Manager {
	return a.eventManager
}
