package raster

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Background is the paper color of every canvas. The eraser paints with it.
var Background = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Point is a position in canvas-local pixel coordinates.
type Point struct {
	X float64
	Y float64
}

// Canvas is the single mutable pixel surface the whole session draws on.
// All painting goes through a gg context bound to the backing RGBA image.
type Canvas struct {
	img *image.RGBA
	ctx *gg.Context
}

func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Resize reallocates the pixel buffer and clears it to the background color.
// Existing pixel content is dropped, not rescaled.
func (c *Canvas) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
	c.ctx = gg.NewContextForRGBA(c.img)
	c.Clear()
}

// Clear fills the whole surface with the background color.
func (c *Canvas) Clear() {
	c.ctx.SetColor(Background)
	c.ctx.Clear()
}

func (c *Canvas) Size() (width, height int) {
	return c.img.Rect.Dx(), c.img.Rect.Dy()
}

// Image exposes the live pixel buffer. Callers must not hold it across
// further canvas mutations if they need a stable view; use ClonePixels.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// ClonePixels returns a deep copy of the current pixel buffer.
func (c *Canvas) ClonePixels() *image.RGBA {
	dst := image.NewRGBA(c.img.Rect)
	copy(dst.Pix, c.img.Pix)
	return dst
}

// RestorePixels copies a previously cloned buffer back onto the canvas.
// A buffer from a different canvas size is blitted like any decoded image.
func (c *Canvas) RestorePixels(src *image.RGBA) {
	if src.Rect.Eq(c.img.Rect) {
		copy(c.img.Pix, src.Pix)
		return
	}
	c.DrawImage(src)
}

// DrawImage clears the canvas and blits img at the origin.
func (c *Canvas) DrawImage(img image.Image) {
	c.Clear()
	c.ctx.DrawImage(img, 0, 0)
}

// StrokeSegment paints one freehand segment from a to b with round caps, so
// consecutive segments join without gaps.
func (c *Canvas) StrokeSegment(a, b Point, width float64, col color.Color) {
	c.ctx.SetColor(col)
	c.ctx.SetLineWidth(width)
	c.ctx.SetLineCap(gg.LineCapRound)
	c.ctx.DrawLine(a.X, a.Y, b.X, b.Y)
	c.ctx.Stroke()
}

// StrokeRect paints an outlined axis-aligned rectangle.
func (c *Canvas) StrokeRect(r image.Rectangle, width float64, col color.Color) {
	c.ctx.SetColor(col)
	c.ctx.SetLineWidth(width)
	c.ctx.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	c.ctx.Stroke()
}

// StrokeCircle paints an outlined circle.
func (c *Canvas) StrokeCircle(center Point, radius, width float64, col color.Color) {
	c.ctx.SetColor(col)
	c.ctx.SetLineWidth(width)
	c.ctx.DrawCircle(center.X, center.Y, radius)
	c.ctx.Stroke()
}
