package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"LocalPaint/internal/persist"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 30, 20))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	img.SetRGBA(7, 9, color.RGBA{G: 200, A: 255})
	return img
}

func TestExportPNGDecodesToSamePixels(t *testing.T) {
	img := testImage()
	var buf bytes.Buffer
	require.NoError(t, ExportPNG(&buf, img))

	got, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, img.Bounds(), got.Bounds())
	r, g, b, a := got.At(7, 9).RGBA()
	require.Equal(t, []uint32{0, 200, 0, 255}, []uint32{r >> 8, g >> 8, b >> 8, a >> 8})
}

func TestDataURLMatchesPersistEncoding(t *testing.T) {
	img := testImage()
	url, err := DataURL(img)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "data:image/png;base64,"))

	back, err := persist.DecodeDataURL(url)
	require.NoError(t, err)
	require.Equal(t, img.Bounds(), back.Bounds())
}

func TestExportPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportPDF(&buf, testImage()))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestPDFName(t *testing.T) {
	require.Equal(t, "canvas-image.pdf", PDFName("canvas-image.png"))
	require.Equal(t, "drawing.pdf", PDFName("drawing"))
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteFile(dir, DefaultFileName, testImage())
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	path, err = WriteFile(dir, PDFName(DefaultFileName), testImage())
	require.NoError(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
