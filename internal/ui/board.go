package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// CreateRenderer shows the live surface rather than a copy. The session only
// writes it on the fyne event goroutine, which is also where it is painted.
func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	var live *image.RGBA
	b.Session.View(func(img *image.RGBA) { live = img })
	img := canvas.NewImageFromImage(live)
	img.FillMode = canvas.ImageFillOriginal
	img.ScaleMode = canvas.ImageScalePixels
	return &boardWidgetRenderer{board: b, image: img}
}

type boardWidgetRenderer struct {
	board *BoardWidget
	image *canvas.Image
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.image}
}

// Refresh re-uploads the surface texture.
func (r *boardWidgetRenderer) Refresh() {
	r.image.Refresh()
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.image.Resize(r.image.MinSize())
	r.image.Move(fyne.NewPos(0, 0))
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return r.image.MinSize()
}

func (r *boardWidgetRenderer) Destroy() {}

// surfaceImage is the image currently shown, exposed for tests.
func (r *boardWidgetRenderer) surfaceImage() image.Image {
	return r.image.Image
}
