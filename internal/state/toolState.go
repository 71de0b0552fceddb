package state

import (
	"image/color"
	"strconv"

	"LayerBoard/internal/raster"
)

// ToolKind selects how pointer input is turned into pixels.
type ToolKind int

const (
	ToolBrush ToolKind = iota
	ToolEraser
	ToolRectangle
	ToolCircle
)

func (k ToolKind) String() string {
	switch k {
	case ToolBrush:
		return "brush"
	case ToolEraser:
		return "eraser"
	case ToolRectangle:
		return "rectangle"
	case ToolCircle:
		return "circle"
	}
	return "unknown"
}

const (
	MinStrokeWidth = 1
	MaxStrokeWidth = 30

	DefaultColor       = "#000000"
	DefaultStrokeWidth = 5
)

// ToolConfig holds the active tool, color and stroke width. Inputs are
// clamped or defaulted, never rejected.
type ToolConfig struct {
	Kind        ToolKind
	Color       string // RGB hex as last set by the caller
	StrokeWidth int
}

func defaultTools() ToolConfig {
	return ToolConfig{Kind: ToolBrush, Color: DefaultColor, StrokeWidth: DefaultStrokeWidth}
}

func (t *ToolConfig) SetTool(kind ToolKind) {
	t.Kind = kind
}

func (t *ToolConfig) SetColor(hex string) {
	t.Color = hex
}

func (t *ToolConfig) SetStrokeWidth(n int) {
	if n < MinStrokeWidth {
		n = MinStrokeWidth
	}
	if n > MaxStrokeWidth {
		n = MaxStrokeWidth
	}
	t.StrokeWidth = n
}

// PaintColor is the color the next paint operation uses. The eraser paints
// with the canvas background while leaving the stored brush color untouched,
// so toggling back to the brush restores it.
func (t ToolConfig) PaintColor() color.Color {
	if t.Kind == ToolEraser {
		return raster.Background
	}
	return parseHexColor(t.Color)
}

// parseHexColor accepts "#rrggbb" and "#rgb"; anything else falls back to
// black rather than erroring.
func parseHexColor(s string) color.NRGBA {
	black := color.NRGBA{A: 255}
	if len(s) == 0 || s[0] != '#' {
		return black
	}
	hex := s[1:]
	switch len(hex) {
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return black
		}
		return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
	case 3:
		v, err := strconv.ParseUint(hex, 16, 16)
		if err != nil {
			return black
		}
		r := uint8(v >> 8 & 0xf)
		g := uint8(v >> 4 & 0xf)
		b := uint8(v & 0xf)
		return color.NRGBA{R: r * 17, G: g * 17, B: b * 17, A: 255}
	}
	return black
}
