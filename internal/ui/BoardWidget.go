package ui

import (
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"artboardpro/internal/config"
	"artboardpro/internal/render"
	"artboardpro/internal/state"
)

// BoardWidget is the interactive drawing surface. Pointer gestures build a
// state.Gesture; every board change triggers a full replay of the committed
// log into an offscreen surface, shown through a canvas.Image.
type BoardWidget struct {
	widget.BaseWidget
	board   *state.Board
	cfg     *config.Config
	surface *render.ImageSurface
	frame   *canvas.Image

	mu      sync.Mutex
	gesture *state.Gesture
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget(b *state.Board, cfg *config.Config) *BoardWidget {
	w := &BoardWidget{
		board:   b,
		cfg:     cfg,
		surface: render.NewImageSurface(cfg.CanvasWidth, cfg.CanvasHeight),
	}
	w.frame = canvas.NewImageFromImage(w.surface.Image())
	w.frame.FillMode = canvas.ImageFillOriginal
	w.frame.SetMinSize(fyne.NewSize(float32(cfg.CanvasWidth), float32(cfg.CanvasHeight)))
	w.ExtendBaseWidget(w)

	// Dirty -> redraw: the board notifies on every log or layer mutation.
	b.Subscribe(w.Redraw)
	w.Redraw()
	return w
}

// Redraw replays the full action log, plus any live gesture preview, into
// the offscreen surface and refreshes the on-screen frame.
func (w *BoardWidget) Redraw() {
	w.mu.Lock()
	g := w.gesture
	w.mu.Unlock()
	render.Frame(w.surface, w.board, w.cfg.BackgroundColor(), g)
	w.frame.Image = w.surface.Image()
	w.frame.Refresh()
}

func (w *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	g := w.board.BeginGesture(eventPoint(e.Position))
	w.mu.Lock()
	w.gesture = g
	w.mu.Unlock()
	w.Redraw()
}

func (w *BoardWidget) Dragged(e *fyne.DragEvent) {
	w.mu.Lock()
	g := w.gesture
	w.mu.Unlock()
	if g == nil {
		return
	}
	g.Extend(eventPoint(e.Position))
	w.Redraw()
}

func (w *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.mu.Lock()
	g := w.gesture
	w.gesture = nil
	w.mu.Unlock()
	if g == nil {
		return
	}
	a, err := g.Finish()
	if err != nil {
		log.Printf("[UI] dropping malformed gesture: %v", err)
		w.Redraw()
		return
	}
	// Commit notifies the board's subscribers, which redraws the frame
	// without the preview.
	w.board.Commit(a)
}

// MouseOut abandons an in-progress gesture: the pointer left the board, so
// the preview is discarded and nothing is committed.
func (w *BoardWidget) MouseOut() {
	w.mu.Lock()
	g := w.gesture
	w.gesture = nil
	w.mu.Unlock()
	if g != nil {
		w.Redraw()
	}
}

func (w *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (w *BoardWidget) MouseMoved(*desktop.MouseEvent) {}
func (w *BoardWidget) DragEnd()                       {}

func (w *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(w.frame)
}

func eventPoint(p fyne.Position) state.Point {
	return state.Point{X: float64(p.X), Y: float64(p.Y)}
}
