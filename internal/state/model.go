package state

import (
	"fmt"
	"image/color"
	"time"

	"github.com/google/uuid"
)

// Kind identifies the drawing primitive an Action encodes.
type Kind int

const (
	KindStroke Kind = iota
	KindErase
	KindRectangle
	KindCircle
)

func (k Kind) String() string {
	switch k {
	case KindStroke:
		return "stroke"
	case KindErase:
		return "erase"
	case KindRectangle:
		return "rectangle"
	case KindCircle:
		return "circle"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Point is a position on the canvas in pixels.
type Point struct {
	X, Y float64
}

// Action is one completed drawing operation. Actions are immutable once
// built; the log only ever moves them between its committed and undone
// sequences.
type Action struct {
	ID        string
	Kind      Kind
	Points    []Point
	Color     color.NRGBA // ignored for erase, which paints the background
	Thickness float64
	Layer     int
	Time      time.Time
}

// NewAction validates and builds an Action. Shape kinds take exactly two
// points (two corners for a rectangle, center and a rim point for a circle);
// stroke kinds take at least one. Malformed geometry is rejected here so the
// renderer never sees it.
func NewAction(kind Kind, points []Point, c color.NRGBA, thickness float64, layer int) (Action, error) {
	switch kind {
	case KindRectangle, KindCircle:
		if len(points) != 2 {
			return Action{}, fmt.Errorf("%s action needs exactly 2 points, got %d", kind, len(points))
		}
	case KindStroke, KindErase:
		if len(points) < 1 {
			return Action{}, fmt.Errorf("%s action needs at least 1 point", kind)
		}
	default:
		return Action{}, fmt.Errorf("unknown action kind %d", int(kind))
	}
	if thickness <= 0 {
		return Action{}, fmt.Errorf("thickness must be positive, got %g", thickness)
	}
	if layer < 0 {
		return Action{}, fmt.Errorf("negative layer index %d", layer)
	}

	pts := make([]Point, len(points))
	copy(pts, points)
	return Action{
		ID:        uuid.NewString(),
		Kind:      kind,
		Points:    pts,
		Color:     c,
		Thickness: thickness,
		Layer:     layer,
		Time:      time.Now(),
	}, nil
}

// Layer is a named, independently hideable bucket that actions are tagged
// into. The layer list is append-only: the index is the identity actions
// refer back to, so layers are never removed or reordered, only hidden.
type Layer struct {
	Name    string
	Visible bool
}
