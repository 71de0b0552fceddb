package export

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jung-kurt/gofpdf"

	"LayerBoard/internal/raster"
)

const pdfMargin = 10.0 // mm

// WritePDF embeds the displayed raster into a single A4 page, scaled to fit
// inside the page margins while keeping its aspect ratio.
func WritePDF(w io.Writer, snap raster.Snapshot) error {
	img, err := snap.Decode()
	if err != nil {
		return fmt.Errorf("decoding snapshot: %w", err)
	}
	bounds := img.Bounds()
	iw := float64(bounds.Dx())
	ih := float64(bounds.Dy())
	if iw == 0 || ih == 0 {
		return fmt.Errorf("nothing to export")
	}

	orientation := "P"
	if iw > ih {
		orientation = "L"
	}
	p := gofpdf.New(orientation, "mm", "A4", "")
	p.AddPage()

	pageW, pageH := p.GetPageSize()
	availW := pageW - 2*pdfMargin
	availH := pageH - 2*pdfMargin
	scale := availW / iw
	if s := availH / ih; s < scale {
		scale = s
	}
	drawW := iw * scale
	drawH := ih * scale

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("canvas", opts, bytes.NewReader(snap))
	p.ImageOptions("canvas", pdfMargin+(availW-drawW)/2, pdfMargin+(availH-drawH)/2, drawW, drawH, false, opts, 0, "")

	if err := p.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

// SavePDF writes the PDF rendition to the given file path.
func SavePDF(path string, snap raster.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := WritePDF(f, snap); err != nil {
		return err
	}
	log.Printf("[export] wrote %s", path)
	return nil
}
