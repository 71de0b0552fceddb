package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"LayerBoard/internal/raster"
	"LayerBoard/internal/state"
)

// BoardWidget is the drawing surface. It forwards pointer events to the
// session and displays whatever the session's canvas holds.
type BoardWidget struct {
	widget.BaseWidget
	session *state.Session

	// OnCommitted fires after a gesture finished and was committed, so the
	// chrome (layer panel, undo buttons) can refresh its indicators.
	OnCommitted func()
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(s *state.Session) *BoardWidget {
	b := &BoardWidget{session: s}
	b.ExtendBaseWidget(b)
	// Async replays land on a worker goroutine; hop back to the UI loop.
	s.OnRepaint = func() {
		fyne.Do(func() { b.Refresh() })
	}
	return b
}

func pointOf(p fyne.Position) raster.Point {
	return raster.Point{X: float64(p.X), Y: float64(p.Y)}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.session.PointerDown(pointOf(e.Position))
		b.Refresh()
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.session.PointerUp()
		b.Refresh()
		if b.OnCommitted != nil {
			b.OnCommitted()
		}
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.session.PointerMove(pointOf(e.Position))
	b.Refresh()
}

func (b *BoardWidget) DragEnd()                       {}
func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseOut()                      {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{board: b}
	r.raster = canvas.NewRaster(func(w, h int) image.Image {
		return b.session.Displayed()
	})
	return r
}

type boardRenderer struct {
	board  *BoardWidget
	raster *canvas.Raster
}

// Layout resizes the session canvas to fill the widget. The session clears
// pixel content on resize; there is no content-preserving rescale.
func (r *boardRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
	w := int(size.Width)
	h := int(size.Height)
	cw, ch := r.board.session.Size()
	if w > 0 && h > 0 && (w != cw || h != ch) {
		r.board.session.Resize(w, h)
	}
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster}
}

func (r *boardRenderer) Refresh() {
	canvas.Refresh(r.raster)
}

func (r *boardRenderer) Destroy() {}
