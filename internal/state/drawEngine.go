package state

import (
	"image"
	"math"

	"LayerBoard/internal/raster"
)

type drawPhase int

const (
	phaseIdle drawPhase = iota
	phaseStroke
	phaseShape
)

// DrawEngine turns pointer events into pixel mutations. Freehand strokes
// paint each segment immediately; shape tools repaint a live preview over a
// retained copy of the pre-gesture pixels until the pointer is released.
type DrawEngine struct {
	phase  drawPhase
	anchor raster.Point
	last   raster.Point
	base   *image.RGBA // pixels under a shape preview
}

// Begin starts a gesture at p. For shape tools the current canvas pixels are
// retained so every preview frame can be painted on a clean base.
func (e *DrawEngine) Begin(c *raster.Canvas, tool ToolConfig, p raster.Point) {
	e.anchor = p
	e.last = p
	switch tool.Kind {
	case ToolBrush, ToolEraser:
		e.phase = phaseStroke
	case ToolRectangle, ToolCircle:
		e.phase = phaseShape
		e.base = c.ClonePixels()
	}
}

// Move extends the gesture to p. Moves while idle are no-ops.
func (e *DrawEngine) Move(c *raster.Canvas, tool ToolConfig, p raster.Point) {
	switch e.phase {
	case phaseIdle:
		return
	case phaseStroke:
		c.StrokeSegment(e.last, p, float64(tool.StrokeWidth), tool.PaintColor())
		e.last = p
	case phaseShape:
		c.RestorePixels(e.base)
		e.paintPreview(c, tool, p)
		e.last = p
	}
}

func (e *DrawEngine) paintPreview(c *raster.Canvas, tool ToolConfig, p raster.Point) {
	width := float64(tool.StrokeWidth)
	col := tool.PaintColor()
	switch tool.Kind {
	case ToolRectangle:
		c.StrokeRect(rectBetween(e.anchor, p), width, col)
	case ToolCircle:
		c.StrokeCircle(e.anchor, circleRadius(e.anchor, p), width, col)
	}
}

// End finishes the gesture and reports whether a draw action completed.
// The last-painted preview already is the committed pixels; there is no
// separate commit paint.
func (e *DrawEngine) End() bool {
	done := e.phase != phaseIdle
	e.phase = phaseIdle
	e.base = nil
	return done
}

// Reset abandons any in-flight gesture without completing it.
func (e *DrawEngine) Reset() {
	e.phase = phaseIdle
	e.base = nil
}

func (e *DrawEngine) Active() bool {
	return e.phase != phaseIdle
}

// rectBetween is the axis-aligned bounding box spanned by the two corners.
func rectBetween(a, b raster.Point) image.Rectangle {
	return image.Rect(int(a.X), int(a.Y), int(b.X), int(b.Y))
}

// circleRadius keeps the circle centered on the anchor with its bounding box
// a square: radius is the larger axis delta, not a two-point ellipse fit.
func circleRadius(anchor, p raster.Point) float64 {
	return math.Max(math.Abs(p.X-anchor.X), math.Abs(p.Y-anchor.Y))
}
