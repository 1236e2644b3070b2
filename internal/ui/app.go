package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/export"
	"LocalPaint/internal/input"
	"LocalPaint/internal/state"
)

// PaintApp is the window around one drawing session.
type PaintApp struct {
	App     fyne.App
	Window  fyne.Window
	Session *state.Session
	Board   *BoardWidget
	// Input arbitrates stroke ownership between the board and remote devices.
	Input   *input.Arbiter

	exportName string
	statusBar  *widget.Label
}

// NewPaintApp builds the window for s. exportName is the filename the save
// dialog proposes; the PDF dialog derives its name from it.
func NewPaintApp(a fyne.App, s *state.Session, exportName string) *PaintApp {
	arbiter := input.NewArbiter(s)
	p := &PaintApp{
		App:        a,
		Window:     a.NewWindow("Local Paint"),
		Session:    s,
		Board:      NewBoardWidget(s, arbiter.Source()),
		Input:      arbiter,
		exportName: exportName,
		statusBar:  widget.NewLabel("Ready"),
	}
	s.OnChange = p.Board.Refresh

	toolbar := NewToolbar(s.Tools, Actions{
		Clear:     p.Clear,
		SavePNG:   p.SavePNG,
		SavePDF:   p.SavePDF,
		CopyImage: p.CopyImage,
		SetStatus: p.SetStatus,
	})

	content := container.NewBorder(toolbar, p.statusBar, nil, nil,
		container.NewScroll(container.NewCenter(p.Board)))
	p.Window.SetContent(content)

	size := s.Snapshot().Bounds()
	p.Window.Resize(fyne.NewSize(float32(size.Dx())+40, float32(size.Dy())+120))
	return p
}

// Run shows the window and blocks until it is closed.
func (p *PaintApp) Run() {
	p.Window.ShowAndRun()
}

func (p *PaintApp) Clear() {
	if p.Session.Clear() {
		p.SetStatus("Cleared")
	}
}

func (p *PaintApp) SavePNG() {
	p.showExportDialog(p.exportName, export.ExportPNG)
}

func (p *PaintApp) SavePDF() {
	p.showExportDialog(export.PDFName(p.exportName), export.ExportPDF)
}

// SetStatus updates the status line; safe from any goroutine.
func (p *PaintApp) SetStatus(text string) {
	fyne.Do(func() {
		p.statusBar.SetText(text)
	})
}

// CopyImage puts the surface on the clipboard as a PNG data URL.
func (p *PaintApp) CopyImage() {
	url, err := export.DataURL(p.Session.Snapshot())
	if err != nil {
		log.Printf("[UI] Copy failed: %v", err)
		p.SetStatus("Copy failed")
		return
	}
	p.App.Clipboard().SetContent(url)
	p.SetStatus("Image copied as data URL")
}
