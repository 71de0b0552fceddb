package state

import (
	"image"
	"log"
	"sync"

	"LayerBoard/internal/raster"
)

// Session owns every piece of drawing state: the live canvas, tool config,
// layers, history and the in-flight gesture. All mutation goes through its
// methods behind one mutex, which is also the serialization point for
// asynchronous snapshot replays.
type Session struct {
	mu      sync.Mutex
	canvas  *raster.Canvas
	tool    ToolConfig
	layers  *LayerStore
	history *HistoryStack
	engine  DrawEngine

	// replaySeq tags every decode request; a replay whose tag is stale by
	// the time decoding finishes is discarded instead of painting over a
	// newer state. replayPending means the canvas does not yet show the
	// state the last request asked for, so its pixels must not be captured
	// into a layer.
	replaySeq     uint64
	replayPending bool

	// OnRepaint fires after an asynchronous replay lands on the canvas.
	// It may be invoked from a goroutine; the UI bridges it to its own loop.
	OnRepaint func()
}

func NewSession(width, height int) *Session {
	s := &Session{
		canvas:  raster.NewCanvas(width, height),
		tool:    defaultTools(),
		history: NewHistoryStack(),
	}
	s.layers = NewLayerStore(raster.Capture(s.canvas))
	return s
}

// --- tool configuration ---

func (s *Session) SetTool(kind ToolKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tool.SetTool(kind)
}

func (s *Session) SetColor(hex string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tool.SetColor(hex)
}

func (s *Session) SetStrokeWidth(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tool.SetStrokeWidth(n)
}

func (s *Session) Tools() ToolConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tool
}

// --- pointer input ---

func (s *Session) PointerDown(p raster.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Begin(s.canvas, s.tool, p)
}

func (s *Session) PointerMove(p raster.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Move(s.canvas, s.tool, p)
}

// PointerUp finishes the gesture; the pixels already on the canvas become
// the committed state.
func (s *Session) PointerUp() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine.End() {
		s.commitLocked()
	}
}

// commitLocked runs the commit sequence: encode the canvas, write the
// snapshot into the active layer, append a history entry. A commit also
// supersedes any replay still waiting on a decode.
func (s *Session) commitLocked() {
	s.replaySeq++
	s.replayPending = false
	snap := raster.Capture(s.canvas)
	layer := s.layers.Active()
	layer.Raster = snap
	e := s.history.Commit(snap)
	log.Printf("[session] commit %s (entry %d/%d, layer %d)", e.ID, s.history.Cursor()+1, s.history.Len(), layer.ID)
}

// --- history ---

func (s *Session) Undo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.history.StepBack()
	if !ok {
		return
	}
	s.replayLocked(e.Snap, true)
}

func (s *Session) Redo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.history.StepForward()
	if !ok {
		return
	}
	s.replayLocked(e.Snap, true)
}

func (s *Session) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.CanUndo()
}

func (s *Session) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.CanRedo()
}

// Clear blanks the canvas and commits the blank state like any other
// completed draw action.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Reset()
	s.canvas.Clear()
	s.commitLocked()
}

// --- layers ---

// AddLayer creates a layer seeded with the currently displayed canvas and
// makes it active. Returns the new layer's id.
func (s *Session) AddLayer() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	l := s.layers.Add(raster.Capture(s.canvas))
	log.Printf("[session] added layer %d (%s)", l.ID, l.Name)
	return l.ID
}

func (s *Session) ToggleVisibility(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.layers.ToggleVisible(id)
}

// SwitchLayer stores the current canvas into the outgoing layer, activates
// the target and replays the target's raster asynchronously.
func (s *Session) SwitchLayer(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == s.layers.ActiveID() {
		return
	}
	target := s.layers.Get(id)
	if target == nil {
		return
	}
	// Only store the canvas into the outgoing layer when the canvas really
	// shows that layer; mid-replay pixels would corrupt it.
	if !s.replayPending {
		s.layers.Active().Raster = raster.Capture(s.canvas)
	}
	s.layers.SetActive(id)
	s.replayLocked(target.Raster, false)
}

func (s *Session) Layers() []Layer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.layers.Layers()
}

func (s *Session) ActiveLayerID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.layers.ActiveID()
}

// --- canvas ---

// Resize reallocates the canvas to the new dimensions. Pixel content is
// cleared, not rescaled; anything not yet committed into a layer or history
// entry is lost. Pending replays are invalidated.
func (s *Session) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaySeq++
	s.replayPending = false
	s.engine.Reset()
	s.canvas.Resize(width, height)
}

func (s *Session) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canvas.Size()
}

// Displayed returns a stable copy of the current canvas pixels.
func (s *Session) Displayed() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canvas.ClonePixels()
}

// DisplayedSnapshot encodes whatever is currently displayed, for export.
func (s *Session) DisplayedSnapshot() raster.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return raster.Capture(s.canvas)
}

// --- async replay ---

// replayLocked schedules snap to be decoded and blitted onto the canvas.
// Each request takes the next sequence number; when the decode finishes the
// session lock is re-taken and the result is dropped if any newer request,
// commit or resize happened in between. Decode failures are dropped
// silently, leaving the canvas unchanged.
func (s *Session) replayLocked(snap raster.Snapshot, writeLayer bool) {
	s.replaySeq++
	s.replayPending = true
	seq := s.replaySeq
	go func() {
		img, err := snap.Decode()
		if err != nil {
			log.Printf("[decode] replay dropped: %v", err)
			return
		}
		s.mu.Lock()
		if seq != s.replaySeq {
			s.mu.Unlock()
			log.Printf("[decode] stale replay %d discarded", seq)
			return
		}
		s.canvas.DrawImage(img)
		s.replayPending = false
		if writeLayer {
			s.layers.Active().Raster = snap
		}
		repaint := s.OnRepaint
		s.mu.Unlock()
		if repaint != nil {
			repaint()
		}
	}()
}
