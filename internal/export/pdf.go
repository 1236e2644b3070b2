package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"

	"github.com/jung-kurt/gofpdf"
)

const pdfImageName = "canvas"

// ExportPDF writes a single-page PDF the size of img with img on it, one
// point per pixel.
func ExportPDF(w io.Writer, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}

	b := img.Bounds()
	wd, ht := float64(b.Dx()), float64(b.Dy())

	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: wd, Ht: ht},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader(pdfImageName, opts, &buf)
	p.ImageOptions(pdfImageName, 0, 0, wd, ht, false, opts, 0, "")

	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	log.Printf("[EXPORT] Canvas exported as PDF (%dx%d).", b.Dx(), b.Dy())
	return nil
}
