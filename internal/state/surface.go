package state

import (
	"image"
	"image/color"
	"image/draw"
)

// Surface is the fixed-size raster the session paints on. Its backing image
// is allocated once and never resized.
type Surface struct {
	img        *image.RGBA
	background color.Color
}

// NewSurface allocates a w×h surface filled with background.
func NewSurface(w, h int, background color.Color) *Surface {
	s := &Surface{
		img:        image.NewRGBA(image.Rect(0, 0, w, h)),
		background: background,
	}
	s.Clear()
	return s
}

func (s *Surface) Bounds() image.Rectangle { return s.img.Bounds() }

func (s *Surface) Background() color.Color { return s.background }

// Image returns the live backing image. Callers must not keep writing to it
// outside the session.
func (s *Surface) Image() *image.RGBA { return s.img }

// Clear resets every pixel to the background color.
func (s *Surface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(s.background), image.Point{}, draw.Src)
}

// DrawImage composites src at the origin with source-over. Pixels outside
// src's bounds are left alone.
func (s *Surface) DrawImage(src image.Image) {
	b := src.Bounds()
	r := image.Rect(0, 0, b.Dx(), b.Dy()).Intersect(s.img.Bounds())
	draw.Draw(s.img, r, src, b.Min, draw.Over)
}

// Snapshot returns a copy of the current pixels.
func (s *Surface) Snapshot() *image.RGBA {
	cp := image.NewRGBA(s.img.Bounds())
	copy(cp.Pix, s.img.Pix)
	return cp
}

// IsBlank reports whether every pixel equals the background color.
func (s *Surface) IsBlank() bool {
	bg := color.RGBAModel.Convert(s.background).(color.RGBA)
	p := s.img.Pix
	for i := 0; i+3 < len(p); i += 4 {
		if p[i] != bg.R || p[i+1] != bg.G || p[i+2] != bg.B || p[i+3] != bg.A {
			return false
		}
	}
	return true
}
