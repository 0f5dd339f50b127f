package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"artboardpro/internal/state"
)

// NewLayerPanel builds the layer list: a visibility checkbox and a select
// button per layer, plus an add button. The panel subscribes to the board
// and rebuilds itself on every change, so new layers and visibility flips
// show up immediately.
func NewLayerPanel(board *state.Board) fyne.CanvasObject {
	rows := container.NewVBox()

	rebuild := func() {
		layers := board.Layers()
		active := board.ActiveLayer()

		objects := make([]fyne.CanvasObject, 0, len(layers))
		for i, l := range layers {
			i := i
			check := widget.NewCheck("", nil)
			// Assign Checked before OnChanged so the initial state does
			// not fire a toggle.
			check.Checked = l.Visible
			check.OnChanged = func(bool) { board.ToggleLayer(i) }

			sel := widget.NewButton(l.Name, func() { board.SelectLayer(i) })
			if i == active {
				sel.Importance = widget.HighImportance
			}
			objects = append(objects, container.NewHBox(check, sel))
		}
		rows.Objects = objects
		rows.Refresh()
	}

	board.Subscribe(rebuild)
	rebuild()

	addBtn := widget.NewButtonWithIcon("Add Layer", theme.ContentAddIcon(), func() {
		board.AddLayer("")
	})

	return container.NewVBox(
		widget.NewLabel("Layers"),
		rows,
		addBtn,
	)
}
