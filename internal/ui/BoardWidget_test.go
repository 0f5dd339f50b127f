package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"

	"artboardpro/internal/config"
	"artboardpro/internal/state"
)

func testWidget(t *testing.T) (*BoardWidget, *state.Board) {
	t.Helper()
	test.NewApp()
	cfg := config.Default()
	cfg.CanvasWidth = 64
	cfg.CanvasHeight = 64
	b := state.NewBoard()
	return NewBoardWidget(b, cfg), b
}

func mouseEvent(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func dragEvent(x, y float32) *fyne.DragEvent {
	return &fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func TestGestureCommitsOneAction(t *testing.T) {
	w, b := testWidget(t)

	w.MouseDown(mouseEvent(5, 5))
	w.Dragged(dragEvent(10, 10))
	w.Dragged(dragEvent(20, 15))
	w.MouseUp(mouseEvent(20, 15))

	got := b.Committed()
	if len(got) != 1 {
		t.Fatalf("committed %d actions, want 1", len(got))
	}
	if got[0].Kind != state.KindStroke {
		t.Errorf("kind = %v, want stroke", got[0].Kind)
	}
	if len(got[0].Points) != 3 {
		t.Errorf("stroke has %d points, want 3", len(got[0].Points))
	}
}

func TestClickWithoutDragCommitsDot(t *testing.T) {
	w, b := testWidget(t)

	w.MouseDown(mouseEvent(5, 5))
	w.MouseUp(mouseEvent(5, 5))

	got := b.Committed()
	if len(got) != 1 {
		t.Fatalf("committed %d actions, want 1", len(got))
	}
	if len(got[0].Points) != 1 {
		t.Errorf("dot stroke has %d points, want 1", len(got[0].Points))
	}
}

func TestPointerLeavingBoardCancelsGesture(t *testing.T) {
	w, b := testWidget(t)

	w.MouseDown(mouseEvent(5, 5))
	w.Dragged(dragEvent(10, 10))
	w.MouseOut()
	w.MouseUp(mouseEvent(10, 10))

	if got := len(b.Committed()); got != 0 {
		t.Errorf("cancelled gesture committed %d actions, want 0", got)
	}
}

func TestSecondaryButtonIsIgnored(t *testing.T) {
	w, b := testWidget(t)

	e := mouseEvent(5, 5)
	e.Button = desktop.MouseButtonSecondary
	w.MouseDown(e)
	w.Dragged(dragEvent(10, 10))
	w.MouseUp(e)

	if got := len(b.Committed()); got != 0 {
		t.Errorf("secondary-button gesture committed %d actions, want 0", got)
	}
}

func TestShapeToolCommitsTwoPointAction(t *testing.T) {
	w, b := testWidget(t)
	b.SetTool(state.KindRectangle)

	w.MouseDown(mouseEvent(5, 5))
	w.Dragged(dragEvent(10, 10))
	w.Dragged(dragEvent(30, 25))
	w.MouseUp(mouseEvent(30, 25))

	got := b.Committed()
	if len(got) != 1 {
		t.Fatalf("committed %d actions, want 1", len(got))
	}
	if got[0].Kind != state.KindRectangle {
		t.Errorf("kind = %v, want rectangle", got[0].Kind)
	}
	if len(got[0].Points) != 2 {
		t.Fatalf("rectangle has %d points, want 2", len(got[0].Points))
	}
	if got[0].Points[1] != (state.Point{X: 30, Y: 25}) {
		t.Errorf("endpoint = %v, want {30 25}", got[0].Points[1])
	}
}
