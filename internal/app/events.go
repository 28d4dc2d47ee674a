package app

import (
	"github.com/bethropolis/actionpad/internal/event"
	"github.com/bethropolis/actionpad/internal/logger"
)

func (a *App) subscribe() {
	a.eventManager.Subscribe(event.TypeCursorMoved, a.handleCursorMovedForStatus)
	a.eventManager.Subscribe(event.TypeHistoryChanged, a.handleHistoryChangedForStatus)
	a.eventManager.Subscribe(event.TypeBufferModified, a.handleBufferModifiedForStatus)
	a.eventManager.Subscribe(event.TypeBufferSaved, a.handleBufferSavedForStatus)
	a.eventManager.Subscribe(event.TypeBufferLoaded, a.handleBufferLoadedForStatus)
}

func (a *App) handleCursorMovedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.CursorMovedData); ok {
		a.statusBar.SetCursorInfo(data.NewPosition)
	}
	return false
}

func (a *App) handleHistoryChangedForStatus(e event.Event) bool {
	data, ok := e.Data.(event.HistoryChangedData)
	if !ok {
		logger.Warnf("App: HistoryChanged event with unexpected data type: %T", e.Data)
		return false
	}
	logger.DebugTagf("history", "App: %s -> undo %d, redo %d", data.Op, data.UndoCount, data.RedoCount)
	a.statusBar.SetHistoryInfo(data.UndoCount, data.RedoCount)
	return false
}

func (a *App) handleBufferModifiedForStatus(e event.Event) bool {
	a.updateStatusBarContent()
	return false
}

func (a *App) handleBufferSavedForStatus(e event.Event) bool {
	a.updateStatusBarContent()
	return false
}

func (a *App) handleBufferLoadedForStatus(e event.Event) bool {
	a.updateStatusBarContent()
	a.requestRedraw()
	return false
}
