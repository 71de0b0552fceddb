package state

import (
	"github.com/google/uuid"

	"LayerBoard/internal/raster"
)

// HistoryEntry is one immutable whole-canvas snapshot in the undo log.
type HistoryEntry struct {
	ID   string
	Snap raster.Snapshot
}

// HistoryStack is a linear, truncating undo/redo log. The cursor indexes the
// currently displayed entry; -1 means the log is empty. There is one global
// stack for the whole canvas, not one per layer.
type HistoryStack struct {
	entries []HistoryEntry
	cursor  int
}

func NewHistoryStack() *HistoryStack {
	return &HistoryStack{cursor: -1}
}

// Commit discards any entries after the cursor, appends the snapshot and
// moves the cursor to it. Redo state never branches.
func (h *HistoryStack) Commit(snap raster.Snapshot) HistoryEntry {
	if h.cursor < len(h.entries)-1 {
		h.entries = h.entries[:h.cursor+1]
	}
	e := HistoryEntry{ID: uuid.NewString(), Snap: snap}
	h.entries = append(h.entries, e)
	h.cursor = len(h.entries) - 1
	return e
}

// StepBack moves the cursor one entry back and returns the entry to replay.
// At the lower boundary it is a silent no-op.
func (h *HistoryStack) StepBack() (HistoryEntry, bool) {
	if h.cursor <= 0 {
		return HistoryEntry{}, false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// StepForward is the symmetric redo step.
func (h *HistoryStack) StepForward() (HistoryEntry, bool) {
	if h.cursor >= len(h.entries)-1 {
		return HistoryEntry{}, false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

func (h *HistoryStack) Len() int {
	return len(h.entries)
}

func (h *HistoryStack) Cursor() int {
	return h.cursor
}

func (h *HistoryStack) CanUndo() bool {
	return h.cursor > 0
}

func (h *HistoryStack) CanRedo() bool {
	return h.cursor < len(h.entries)-1
}
