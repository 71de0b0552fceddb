package raster

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"log"
)

// Snapshot is a self-contained PNG encoding of a whole canvas at one instant.
// Snapshots are immutable once captured; layers and history entries hold them
// by value and replay them by decoding.
type Snapshot []byte

// Capture synchronously encodes the canvas pixels.
func Capture(c *Canvas) Snapshot {
	var buf bytes.Buffer
	if err := png.Encode(&buf, c.Image()); err != nil {
		// Encoding an in-memory RGBA cannot fail short of OOM; log and move on.
		log.Printf("[raster] snapshot encode failed: %v", err)
		return nil
	}
	return Snapshot(buf.Bytes())
}

// Decode realizes the snapshot's pixels. Callers that replay snapshots onto
// a canvas are expected to drop the result on error and leave the canvas
// untouched.
func (s Snapshot) Decode() (image.Image, error) {
	if len(s) == 0 {
		return nil, errors.New("empty snapshot")
	}
	img, err := png.Decode(bytes.NewReader(s))
	if err != nil {
		return nil, err
	}
	return img, nil
}

func (s Snapshot) Empty() bool {
	return len(s) == 0
}
