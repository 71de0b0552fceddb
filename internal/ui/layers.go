package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	xdraw "golang.org/x/image/draw"

	"LayerBoard/internal/raster"
	"LayerBoard/internal/state"
)

const (
	thumbWidth  = 48
	thumbHeight = 36
)

// LayerPanel lists the session's layers top-most first, with a visibility
// indicator, a switch button and a raster thumbnail per layer.
type LayerPanel struct {
	session *state.Session
	rows    *fyne.Container
	root    fyne.CanvasObject
}

func NewLayerPanel(s *state.Session) *LayerPanel {
	p := &LayerPanel{
		session: s,
		rows:    container.NewVBox(),
	}
	addBtn := widget.NewButton("New Layer", func() {
		p.session.AddLayer()
		p.Rebuild()
	})
	p.root = container.NewVBox(widget.NewLabel("Layers"), p.rows, addBtn)
	p.Rebuild()
	return p
}

func (p *LayerPanel) Container() fyne.CanvasObject {
	return p.root
}

// Rebuild recreates the layer rows from the session's current layer list.
func (p *LayerPanel) Rebuild() {
	layers := p.session.Layers()
	activeID := p.session.ActiveLayerID()

	rows := make([]fyne.CanvasObject, 0, len(layers))
	for i := len(layers) - 1; i >= 0; i-- {
		l := layers[i]

		visLabel := "-"
		if l.Visible {
			visLabel = "V"
		}
		visBtn := widget.NewButton(visLabel, func() {
			p.session.ToggleVisibility(l.ID)
			p.Rebuild()
		})

		nameBtn := widget.NewButton(l.Name, func() {
			p.session.SwitchLayer(l.ID)
			p.Rebuild()
		})
		if l.ID == activeID {
			nameBtn.Importance = widget.HighImportance
		}

		thumb := canvas.NewImageFromImage(thumbnail(l.Raster))
		thumb.FillMode = canvas.ImageFillContain
		thumb.SetMinSize(fyne.NewSize(thumbWidth, thumbHeight))

		rows = append(rows, container.NewHBox(visBtn, nameBtn, thumb))
	}

	p.rows.Objects = rows
	p.rows.Refresh()
}

// thumbnail scales a layer's raster down for the panel. A snapshot that does
// not decode shows as a blank thumbnail.
func thumbnail(snap raster.Snapshot) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, thumbWidth, thumbHeight))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(raster.Background), image.Point{}, xdraw.Src)
	src, err := snap.Decode()
	if err != nil {
		return dst
	}
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}
