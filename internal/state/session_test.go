package state

import (
	"bytes"
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LayerBoard/internal/raster"
)

const (
	replayWait = 2 * time.Second
	replayTick = 5 * time.Millisecond
)

func drawStroke(s *Session, from, to raster.Point) {
	s.PointerDown(from)
	s.PointerMove(to)
	s.PointerUp()
}

func samePixels(a, b *image.RGBA) bool {
	return a.Rect.Eq(b.Rect) && bytes.Equal(a.Pix, b.Pix)
}

func waitForPixels(t *testing.T, s *Session, want *image.RGBA) {
	t.Helper()
	require.Eventually(t, func() bool {
		return samePixels(s.Displayed(), want)
	}, replayWait, replayTick, "canvas never reached the expected pixels")
}

func TestHistoryLengthTracksCompletedActions(t *testing.T) {
	s := NewSession(120, 90)
	assert.Equal(t, 0, s.history.Len())

	drawStroke(s, raster.Point{X: 10, Y: 10}, raster.Point{X: 50, Y: 10})
	drawStroke(s, raster.Point{X: 10, Y: 30}, raster.Point{X: 50, Y: 30})
	drawStroke(s, raster.Point{X: 10, Y: 50}, raster.Point{X: 50, Y: 50})

	assert.Equal(t, 3, s.history.Len())
	assert.Equal(t, 2, s.history.Cursor())
}

func TestPointerMoveWithoutDownIsNoop(t *testing.T) {
	s := NewSession(80, 60)
	before := s.Displayed()
	s.PointerMove(raster.Point{X: 40, Y: 30})
	s.PointerUp()
	assert.True(t, samePixels(before, s.Displayed()))
	assert.Equal(t, 0, s.history.Len())
}

func TestUndoRedoRestoresBitIdenticalPixels(t *testing.T) {
	s := NewSession(120, 90)
	s.SetColor("#ff0000")

	drawStroke(s, raster.Point{X: 10, Y: 20}, raster.Point{X: 100, Y: 20})
	afterFirst := s.Displayed()

	drawStroke(s, raster.Point{X: 10, Y: 60}, raster.Point{X: 100, Y: 60})
	afterSecond := s.Displayed()
	require.False(t, samePixels(afterFirst, afterSecond))

	s.Undo()
	waitForPixels(t, s, afterFirst)

	s.Redo()
	waitForPixels(t, s, afterSecond)
}

func TestUndoAtLowerBoundaryIsNoop(t *testing.T) {
	s := NewSession(80, 60)
	drawStroke(s, raster.Point{X: 5, Y: 5}, raster.Point{X: 60, Y: 5})
	before := s.Displayed()

	s.Undo()
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, 0, s.history.Cursor())
	assert.True(t, samePixels(before, s.Displayed()))
}

func TestRedoAtUpperBoundaryIsNoop(t *testing.T) {
	s := NewSession(80, 60)
	drawStroke(s, raster.Point{X: 5, Y: 5}, raster.Point{X: 60, Y: 5})
	before := s.Displayed()

	s.Redo()
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, 0, s.history.Cursor())
	assert.True(t, samePixels(before, s.Displayed()))
}

func TestDrawAfterUndoTruncatesHistory(t *testing.T) {
	s := NewSession(120, 90)
	drawStroke(s, raster.Point{X: 10, Y: 10}, raster.Point{X: 100, Y: 10})
	afterFirst := s.Displayed()
	drawStroke(s, raster.Point{X: 10, Y: 40}, raster.Point{X: 100, Y: 40})
	drawStroke(s, raster.Point{X: 10, Y: 70}, raster.Point{X: 100, Y: 70})

	s.Undo()
	s.Undo()
	waitForPixels(t, s, afterFirst)
	require.Equal(t, 0, s.history.Cursor())

	drawStroke(s, raster.Point{X: 50, Y: 10}, raster.Point{X: 50, Y: 80})
	assert.Equal(t, 2, s.history.Len())
	assert.Equal(t, 1, s.history.Cursor())
	assert.False(t, s.CanRedo())
}

func TestClearBlanksCanvasAndCommits(t *testing.T) {
	s := NewSession(100, 80)
	blank := s.Displayed()

	drawStroke(s, raster.Point{X: 10, Y: 10}, raster.Point{X: 80, Y: 60})
	require.False(t, samePixels(blank, s.Displayed()))

	s.Clear()
	assert.True(t, samePixels(blank, s.Displayed()))
	assert.Equal(t, 2, s.history.Len())

	// the blank state is part of history like any committed action
	s.Undo()
	require.Eventually(t, func() bool {
		return !samePixels(blank, s.Displayed())
	}, replayWait, replayTick)
}

func TestAddLayerDuplicatesDisplayedCanvas(t *testing.T) {
	s := NewSession(100, 80)
	drawStroke(s, raster.Point{X: 10, Y: 10}, raster.Point{X: 80, Y: 10})
	shown := s.Displayed()

	id := s.AddLayer()
	assert.Equal(t, 2, id)
	assert.Equal(t, id, s.ActiveLayerID())

	layers := s.Layers()
	require.Len(t, layers, 2)
	seed, err := layers[1].Raster.Decode()
	require.NoError(t, err)
	seedRGBA := image.NewRGBA(seed.Bounds())
	for y := seed.Bounds().Min.Y; y < seed.Bounds().Max.Y; y++ {
		for x := seed.Bounds().Min.X; x < seed.Bounds().Max.X; x++ {
			seedRGBA.Set(x, y, seed.At(x, y))
		}
	}
	assert.True(t, samePixels(shown, seedRGBA))
}

func TestSwitchLayerRoundTripRestoresPixels(t *testing.T) {
	s := NewSession(100, 80)
	s.SetColor("#0000ff")
	drawStroke(s, raster.Point{X: 10, Y: 10}, raster.Point{X: 80, Y: 70})
	onA := s.Displayed()

	idB := s.AddLayer() // duplicates A's pixels and becomes active
	s.Clear()           // give B distinct (blank) content
	onB := s.Displayed()
	require.False(t, samePixels(onA, onB))

	s.SwitchLayer(1)
	waitForPixels(t, s, onA)
	assert.Equal(t, 1, s.ActiveLayerID())

	s.SwitchLayer(idB)
	waitForPixels(t, s, onB)

	s.SwitchLayer(1)
	waitForPixels(t, s, onA)
}

func TestSwitchToUnknownOrActiveLayerIsNoop(t *testing.T) {
	s := NewSession(80, 60)
	before := s.Displayed()
	s.SwitchLayer(42)
	s.SwitchLayer(s.ActiveLayerID())
	time.Sleep(50 * time.Millisecond)
	assert.True(t, samePixels(before, s.Displayed()))
}

func TestRapidSwitchesKeepOnlyFinalReplay(t *testing.T) {
	s := NewSession(100, 80)
	s.SetColor("#00ff00")
	drawStroke(s, raster.Point{X: 10, Y: 40}, raster.Point{X: 90, Y: 40})

	idB := s.AddLayer()
	s.Clear()
	onB := s.Displayed()

	// fire switches faster than decodes can land; only the last may paint
	s.SwitchLayer(1)
	s.SwitchLayer(idB)
	s.SwitchLayer(1)
	s.SwitchLayer(idB)

	waitForPixels(t, s, onB)
	time.Sleep(100 * time.Millisecond)
	assert.True(t, samePixels(onB, s.Displayed()))
	assert.Equal(t, idB, s.ActiveLayerID())

	// layer 1 keeps its committed stroke through the churn
	snap := s.Layers()[0].Raster
	img, err := snap.Decode()
	require.NoError(t, err)
	r, g, b, _ := img.At(50, 40).RGBA()
	assert.False(t, r == 0xffff && g == 0xffff && b == 0xffff, "layer 1 lost its stroke")
}

func TestResizeClearsPixelContent(t *testing.T) {
	s := NewSession(100, 80)
	drawStroke(s, raster.Point{X: 10, Y: 10}, raster.Point{X: 80, Y: 60})

	s.Resize(150, 120)
	w, h := s.Size()
	assert.Equal(t, 150, w)
	assert.Equal(t, 120, h)

	blank := raster.NewCanvas(150, 120)
	assert.True(t, samePixels(blank.ClonePixels(), s.Displayed()))
}

func TestToolSettersThroughSession(t *testing.T) {
	s := NewSession(50, 50)

	s.SetStrokeWidth(0)
	assert.Equal(t, 1, s.Tools().StrokeWidth)
	s.SetStrokeWidth(99)
	assert.Equal(t, 30, s.Tools().StrokeWidth)

	s.SetColor("#ff0000")
	s.SetTool(ToolEraser)
	assert.Equal(t, raster.Background, s.Tools().PaintColor())
	s.SetTool(ToolBrush)
	assert.Equal(t, "#ff0000", s.Tools().Color)
}

func TestOnRepaintFiresAfterReplay(t *testing.T) {
	s := NewSession(80, 60)
	drawStroke(s, raster.Point{X: 5, Y: 5}, raster.Point{X: 60, Y: 5})
	drawStroke(s, raster.Point{X: 5, Y: 30}, raster.Point{X: 60, Y: 30})

	fired := make(chan struct{}, 1)
	s.OnRepaint = func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	}

	s.Undo()
	select {
	case <-fired:
	case <-time.After(replayWait):
		t.Fatal("OnRepaint never fired after undo replay")
	}
}
