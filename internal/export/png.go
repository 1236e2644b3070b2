package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"LocalPaint/internal/persist"
)

// DefaultFileName is what the save dialog proposes.
const DefaultFileName = "canvas-image.png"

// ExportPNG writes img to w as PNG.
func ExportPNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	log.Println("[EXPORT] Canvas saved as an image.")
	return nil
}

// DataURL returns img as a PNG data URL, the form a browser download link
// takes.
func DataURL(img image.Image) (string, error) {
	return persist.EncodeDataURL(img)
}

// PDFName derives the PDF filename from the PNG one.
func PDFName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".pdf"
}

// WriteFile exports img into dir under name, choosing PNG or PDF from the
// extension. It returns the written path.
func WriteFile(dir, name string, img image.Image) (string, error) {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(name), ".pdf") {
		err = ExportPDF(f, img)
	} else {
		err = ExportPNG(f, img)
	}
	if err != nil {
		return "", err
	}
	return path, f.Close()
}
