package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LayerBoard/internal/raster"
)

func TestWritePDFProducesPDFDocument(t *testing.T) {
	snap := testSnapshot(t)
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, snap))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestWritePDFRejectsCorruptSnapshot(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WritePDF(&buf, raster.Snapshot("garbage")))
	assert.Error(t, WritePDF(&buf, nil))
}

func TestSavePDFWritesFile(t *testing.T) {
	snap := testSnapshot(t)
	path := filepath.Join(t.TempDir(), "drawing.pdf")
	require.NoError(t, SavePDF(path, snap))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
