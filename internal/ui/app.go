package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"artboardpro/internal/config"
	"artboardpro/internal/state"
)

// RunApp builds the main window and runs the event loop until it closes.
func RunApp(cfg *config.Config, board *state.Board) {
	myApp := app.New()
	myWindow := myApp.NewWindow("ArtBoard Pro")

	status := widget.NewLabel("Ready")
	setStatus := func(text string) { status.SetText(text) }

	boardWidget := NewBoardWidget(board, cfg)
	toolbar := NewToolbar(myWindow, board, cfg, setStatus)
	layerPanel := NewLayerPanel(board)

	content := container.NewBorder(
		toolbar, status, nil, layerPanel,
		container.NewScroll(boardWidget),
	)

	myWindow.SetContent(content)
	myWindow.Resize(fyne.NewSize(float32(cfg.CanvasWidth)+200, float32(cfg.CanvasHeight)+120))
	myWindow.ShowAndRun()
}
