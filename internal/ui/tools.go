package ui

import (
	"fmt"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"artboardpro/internal/config"
	"artboardpro/internal/export"
	"artboardpro/internal/state"
)

// The eraser overrides the brush color, so remember the last picked one for
// when the user switches back.
var lastSelectedColor = color.NRGBA{A: 255}

// --- Custom widget for color swatches ---

type colorSwatch struct {
	widget.BaseWidget
	Color    color.NRGBA
	OnTapped func(color.NRGBA)
}

func newColorSwatch(c color.NRGBA, tapped func(color.NRGBA)) *colorSwatch {
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

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// --- The main toolbar ---

// NewToolbar builds the tool, color and thickness controls plus the
// undo/redo/clear/export actions. setStatus feeds the status bar.
func NewToolbar(win fyne.Window, board *state.Board, cfg *config.Config, setStatus func(string)) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() {
			board.SetTool(state.KindStroke)
			board.SetColor(lastSelectedColor)
			setStatus("Brush")
		}),
		widget.NewToolbarAction(theme.ContentClearIcon(), func() {
			board.SetTool(state.KindErase)
			setStatus("Eraser")
		}),
		widget.NewToolbarAction(theme.CheckButtonIcon(), func() {
			board.SetTool(state.KindRectangle)
			board.SetColor(lastSelectedColor)
			setStatus("Rectangle")
		}),
		widget.NewToolbarAction(theme.RadioButtonIcon(), func() {
			board.SetTool(state.KindCircle)
			board.SetColor(lastSelectedColor)
			setStatus("Circle")
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentUndoIcon(), board.Undo),
		widget.NewToolbarAction(theme.ContentRedoIcon(), board.Redo),
		widget.NewToolbarAction(theme.DeleteIcon(), func() {
			board.ClearActiveLayer()
			setStatus(fmt.Sprintf("Cleared layer %d", board.ActiveLayer()+1))
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			exportBoard(win, board, cfg, setStatus)
		}),
	)

	// --- Color palette ---
	onColorTapped := func(c color.NRGBA) {
		lastSelectedColor = c
		board.SetColor(c)
	}
	colorBox := container.NewHBox(
		newColorSwatch(color.NRGBA{A: 255}, onColorTapped),
		newColorSwatch(color.NRGBA{R: 255, A: 255}, onColorTapped),
		newColorSwatch(color.NRGBA{G: 200, A: 255}, onColorTapped),
		newColorSwatch(color.NRGBA{B: 255, A: 255}, onColorTapped),
		newColorSwatch(color.NRGBA{R: 255, G: 200, A: 255}, onColorTapped),
	)

	// --- Thickness slider ---
	thicknessSlider := widget.NewSlider(1, 50)
	thicknessSlider.SetValue(board.Thickness())
	thicknessSlider.OnChanged = func(val float64) {
		board.SetThickness(val)
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), thicknessSlider)

	return container.NewHBox(
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		layout.NewSpacer(),
	)
}

// exportBoard renders the committed state to a PNG picked via the save
// dialog, pre-filled with the standard file name.
func exportBoard(win fyne.Window, board *state.Board, cfg *config.Config, setStatus func(string)) {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if writer == nil {
			return // cancelled
		}
		defer func() {
			if err := writer.Close(); err != nil {
				log.Printf("[EXPORT] error closing writer: %v", err)
			}
		}()

		if err := export.WritePNG(writer, board, cfg.CanvasWidth, cfg.CanvasHeight, cfg.BackgroundColor()); err != nil {
			log.Printf("[EXPORT] %v", err)
			setStatus("Export failed")
			return
		}
		log.Printf("[EXPORT] wrote %s", writer.URI())
		setStatus(fmt.Sprintf("Exported %s", writer.URI().Name()))
	}, win)
	fd.SetFileName(export.FileName)
	fd.Show()
}
