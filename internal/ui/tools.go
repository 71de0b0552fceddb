package ui

import (
	"fmt"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"LayerBoard/internal/export"
	"LayerBoard/internal/state"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

func hexOf(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// --- The Main Toolbar ---
func NewToolbar(session *state.Session, board *BoardWidget, win fyne.Window) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() {
			session.SetTool(state.ToolBrush)
		}), // Brush
		widget.NewToolbarAction(theme.DeleteIcon(), func() {
			session.SetTool(state.ToolEraser)
		}), // Eraser
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentUndoIcon(), func() {
			session.Undo()
		}),
		widget.NewToolbarAction(theme.ContentRedoIcon(), func() {
			session.Redo()
		}),
		widget.NewToolbarAction(theme.ContentClearIcon(), func() {
			session.Clear()
			board.Refresh()
			if board.OnCommitted != nil {
				board.OnCommitted()
			}
		}),
	)

	rectBtn := widget.NewButton("Rect", func() {
		session.SetTool(state.ToolRectangle)
	})
	circleBtn := widget.NewButton("Circle", func() {
		session.SetTool(state.ToolCircle)
	})

	// --- Color Palette ---
	onColorTapped := func(c color.Color) {
		session.SetColor(hexOf(c))
	}
	colorBox := container.NewHBox(
		newColorSwatch(color.Black, onColorTapped),
		newColorSwatch(color.NRGBA{R: 255, A: 255}, onColorTapped),         // Red
		newColorSwatch(color.NRGBA{G: 255, A: 255}, onColorTapped),         // Green
		newColorSwatch(color.NRGBA{B: 255, A: 255}, onColorTapped),         // Blue
		newColorSwatch(color.NRGBA{R: 255, G: 255, A: 255}, onColorTapped), // Yellow
	)

	// --- Stroke Width Slider ---
	strokeSlider := widget.NewSlider(state.MinStrokeWidth, state.MaxStrokeWidth)
	strokeSlider.SetValue(state.DefaultStrokeWidth)
	strokeSlider.OnChanged = func(val float64) {
		session.SetStrokeWidth(int(val))
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), strokeSlider)

	// --- Export ---
	exportPNG := widget.NewButtonWithIcon("PNG", theme.DocumentSaveIcon(), func() {
		d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
			if err != nil || wc == nil {
				return
			}
			defer wc.Close()
			if err := export.WritePNG(wc, session.DisplayedSnapshot()); err != nil {
				log.Printf("[export] png failed: %v", err)
			}
		}, win)
		d.SetFileName(export.DefaultPNGName)
		d.Show()
	})
	exportPDF := widget.NewButtonWithIcon("PDF", theme.DocumentSaveIcon(), func() {
		d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
			if err != nil || wc == nil {
				return
			}
			defer wc.Close()
			if err := export.WritePDF(wc, session.DisplayedSnapshot()); err != nil {
				log.Printf("[export] pdf failed: %v", err)
			}
		}, win)
		d.SetFileName("drawing.pdf")
		d.Show()
	})

	// --- Assemble everything ---
	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tb,
		rectBtn,
		circleBtn,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		layout.NewSpacer(),
		exportPNG,
		exportPDF,
	)
}
