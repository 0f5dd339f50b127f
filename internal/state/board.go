package state

import (
	"fmt"
	"image/color"
	"log"
	"sync"
)

// Board aggregates the action log, the layer list and the current tool
// selection. Every mutation of the log or of the layer list synchronously
// notifies subscribers before returning, which is how the UI schedules its
// full redraw: there is no incremental compositing, a change always means a
// complete replay.
type Board struct {
	mu        sync.RWMutex
	log       *ActionLog
	layers    []Layer
	active    int
	tool      Kind
	color     color.NRGBA
	thickness float64

	observers []func()
}

// NewBoard creates a board with a single visible layer and a black brush.
func NewBoard() *Board {
	return &Board{
		log:       NewActionLog(),
		layers:    []Layer{{Name: "Layer 1", Visible: true}},
		tool:      KindStroke,
		color:     color.NRGBA{A: 255},
		thickness: 3,
	}
}

// Subscribe registers fn to run after every change that requires a redraw.
func (b *Board) Subscribe(fn func()) {
	b.mu.Lock()
	b.observers = append(b.observers, fn)
	b.mu.Unlock()
}

func (b *Board) notify() {
	b.mu.RLock()
	obs := make([]func(), len(b.observers))
	copy(obs, b.observers)
	b.mu.RUnlock()
	for _, fn := range obs {
		fn()
	}
}

// BeginGesture starts a gesture at start using the current tool selection.
func (b *Board) BeginGesture(start Point) *Gesture {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return BeginGesture(b.tool, b.color, b.thickness, b.active, start)
}

// Commit appends a completed action and discards redo history.
func (b *Board) Commit(a Action) {
	b.log.Commit(a)
	log.Printf("[BOARD] committed %s %s on layer %d (%d points)", a.Kind, a.ID, a.Layer, len(a.Points))
	b.notify()
}

// Undo takes back the most recent action. Empty history is a silent no-op.
func (b *Board) Undo() {
	if !b.log.Undo() {
		log.Println("[BOARD] nothing to undo")
		return
	}
	b.notify()
}

// Redo reapplies the most recently undone action. A no-op when nothing is
// undone or when a commit has invalidated the redo history.
func (b *Board) Redo() {
	if !b.log.Redo() {
		log.Println("[BOARD] nothing to redo")
		return
	}
	b.notify()
}

// ClearActiveLayer removes every action on the currently selected layer.
func (b *Board) ClearActiveLayer() {
	b.mu.RLock()
	active := b.active
	b.mu.RUnlock()
	n := b.log.ClearLayer(active)
	if n == 0 {
		return
	}
	log.Printf("[BOARD] cleared %d actions from layer %d", n, active)
	b.notify()
}

// AddLayer appends a new visible layer, makes it current and returns its
// index. An empty name gets a generated one.
func (b *Board) AddLayer(name string) int {
	b.mu.Lock()
	if name == "" {
		name = fmt.Sprintf("Layer %d", len(b.layers)+1)
	}
	b.layers = append(b.layers, Layer{Name: name, Visible: true})
	b.active = len(b.layers) - 1
	idx := b.active
	b.mu.Unlock()
	log.Printf("[BOARD] added layer %d (%q)", idx, name)
	b.notify()
	return idx
}

// ToggleLayer flips the visibility of layer i. Out-of-range indices are
// ignored. Hiding a layer skips its actions during replay but never removes
// or reorders them.
func (b *Board) ToggleLayer(i int) {
	b.mu.Lock()
	if i < 0 || i >= len(b.layers) {
		b.mu.Unlock()
		return
	}
	b.layers[i].Visible = !b.layers[i].Visible
	b.mu.Unlock()
	b.notify()
}

// SelectLayer makes layer i the target of new actions. Out-of-range indices
// are ignored.
func (b *Board) SelectLayer(i int) {
	b.mu.Lock()
	if i < 0 || i >= len(b.layers) {
		b.mu.Unlock()
		return
	}
	b.active = i
	b.mu.Unlock()
	b.notify()
}

// Tool setters. These adjust what the next gesture will produce and do not
// dirty the frame, so they do not notify.

func (b *Board) SetTool(k Kind) {
	b.mu.Lock()
	b.tool = k
	b.mu.Unlock()
}

func (b *Board) SetColor(c color.NRGBA) {
	b.mu.Lock()
	b.color = c
	b.mu.Unlock()
}

func (b *Board) SetThickness(t float64) {
	if t <= 0 {
		return
	}
	b.mu.Lock()
	b.thickness = t
	b.mu.Unlock()
}

func (b *Board) Tool() Kind {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tool
}

func (b *Board) Color() color.NRGBA {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.color
}

func (b *Board) Thickness() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.thickness
}

func (b *Board) ActiveLayer() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.active
}

// Layers returns a copy of the layer list in paint order.
func (b *Board) Layers() []Layer {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Layer, len(b.layers))
	copy(out, b.layers)
	return out
}

// Committed returns the committed actions in replay order.
func (b *Board) Committed() []Action {
	return b.log.Committed()
}

func (b *Board) CanUndo() bool { return b.log.CanUndo() }
func (b *Board) CanRedo() bool { return b.log.CanRedo() }
