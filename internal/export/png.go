package export

import (
	"fmt"
	"io"
	"log"
	"os"

	"LayerBoard/internal/raster"
)

// DefaultPNGName is the artifact name used when the caller does not pick one.
const DefaultPNGName = "drawing.png"

// WritePNG writes the snapshot to w. Snapshots already are PNG-encoded, so
// export is a plain copy of the displayed raster: no format parameter, no
// resizing.
func WritePNG(w io.Writer, snap raster.Snapshot) error {
	if snap.Empty() {
		return fmt.Errorf("nothing to export")
	}
	if _, err := w.Write(snap); err != nil {
		return fmt.Errorf("writing png: %w", err)
	}
	return nil
}

// SavePNG writes the snapshot to the given file path.
func SavePNG(path string, snap raster.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := WritePNG(f, snap); err != nil {
		return err
	}
	log.Printf("[export] wrote %s (%d bytes)", path, len(snap))
	return nil
}
