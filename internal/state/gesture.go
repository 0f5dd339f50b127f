package state

import "image/color"

// Gesture accumulates the transient state of one pointer-down to pointer-up
// interaction. It lives outside the log so an abandoned gesture never
// pollutes undo history: Finish is the only way its points become an Action,
// and a cancelled gesture is simply dropped.
type Gesture struct {
	kind      Kind
	color     color.NRGBA
	thickness float64
	layer     int
	points    []Point
}

// BeginGesture starts a gesture at the pointer-down position using the given
// tool settings. Shape gestures track two endpoints from the start so the
// preview is well-formed before the first drag arrives.
func BeginGesture(kind Kind, c color.NRGBA, thickness float64, layer int, start Point) *Gesture {
	g := &Gesture{kind: kind, color: c, thickness: thickness, layer: layer}
	switch kind {
	case KindRectangle, KindCircle:
		g.points = []Point{start, start}
	default:
		g.points = []Point{start}
	}
	return g
}

// Extend feeds a pointer-move position into the gesture. Strokes grow their
// path; shapes replace the tracked endpoint.
func (g *Gesture) Extend(p Point) {
	switch g.kind {
	case KindRectangle, KindCircle:
		g.points[1] = p
	default:
		g.points = append(g.points, p)
	}
}

// Preview returns the action the gesture would commit right now, so the
// renderer can draw it on top of the replayed frame. The result is transient:
// it carries no ID and must never enter the log.
func (g *Gesture) Preview() Action {
	return Action{
		Kind:      g.kind,
		Points:    g.points,
		Color:     g.color,
		Thickness: g.thickness,
		Layer:     g.layer,
	}
}

// Finish seals the gesture into an immutable Action.
func (g *Gesture) Finish() (Action, error) {
	return NewAction(g.kind, g.points, g.color, g.thickness, g.layer)
}
