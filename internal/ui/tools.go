package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/state"
)

// penDefault is the selector entry that maps to the default width.
const penDefault = "default"

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(value string)
}

func newColorSwatch(c color.Color, tapped func(string)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

// Tapped reports the swatch's background color in the rgb() form a
// browser would hand back.
func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(state.FormatColor(s.Color))
	}
}

// Actions are the button handlers the toolbar needs from the app.
type Actions struct {
	Clear     func()
	SavePNG   func()
	SavePDF   func()
	CopyImage func()
	SetStatus func(string)
}

// NewToolbar builds the pen selector, palette and action buttons for tools.
func NewToolbar(tools *state.ToolState, actions Actions) fyne.CanvasObject {
	pens := append(append([]string{}, state.PenKinds...), penDefault)
	penSelect := widget.NewSelect(pens, func(kind string) {
		tools.SelectPen(kind)
	})
	penSelect.PlaceHolder = "Pen type"

	onColorTapped := func(value string) {
		tools.SelectColor(value)
		if actions.SetStatus != nil {
			actions.SetStatus("Color " + value)
		}
	}
	swatches := make([]fyne.CanvasObject, 0, len(state.Palette))
	for _, c := range state.Palette {
		swatches = append(swatches, newColorSwatch(c, onColorTapped))
	}
	colorBox := container.NewHBox(swatches...)

	eraser := widget.NewButtonWithIcon("Eraser", theme.ContentRemoveIcon(), func() {
		tools.SelectEraser()
		if actions.SetStatus != nil {
			actions.SetStatus("Eraser")
		}
	})
	clearBtn := widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), actions.Clear)
	save := widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), actions.SavePNG)
	pdf := widget.NewButtonWithIcon("PDF", theme.DocumentPrintIcon(), actions.SavePDF)
	copyBtn := widget.NewButtonWithIcon("Copy", theme.ContentCopyIcon(), actions.CopyImage)

	// --- Assemble everything ---
	return container.NewHBox(
		widget.NewLabel("Pen:"),
		penSelect,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		eraser,
		clearBtn,
		save,
		pdf,
		copyBtn,
		layout.NewSpacer(),
	)
}
