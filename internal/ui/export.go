package ui

import (
	"fmt"
	"image"
	"io"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// exportFunc writes an image in one format.
type exportFunc func(w io.Writer, img image.Image) error

// showExportDialog offers a save dialog preset to name and writes snapshot
// through write once the user picks a location.
func (a *PaintApp) showExportDialog(name string, write exportFunc) {
	snapshot := a.Session.Snapshot()
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			log.Printf("[UI] Save dialog failed: %v", err)
			return
		}
		if writer == nil {
			return
		}
		a.saveTo(writer, snapshot, write)
	}, a.Window)
	d.SetFileName(name)
	d.Show()
}

func (a *PaintApp) saveTo(writer fyne.URIWriteCloser, snapshot image.Image, write exportFunc) {
	defer func() {
		if err := writer.Close(); err != nil {
			log.Printf("[UI] Error closing writer: %v", err)
		}
	}()

	if err := write(writer, snapshot); err != nil {
		log.Printf("[UI] Export to %s failed: %v", writer.URI(), err)
		a.SetStatus("Export failed")
		return
	}
	a.SetStatus(fmt.Sprintf("Saved %s", writer.URI().Name()))
}
