package render

import (
	"image/color"
	"math"

	"artboardpro/internal/state"
)

// Replay reproduces the frame from scratch: clear to the background color,
// then paint each visible layer in ascending index order, replaying that
// layer's actions in commit order. Hidden layers are skipped, never dropped;
// showing a layer again reproduces the exact raster it had before.
func Replay(s Surface, actions []state.Action, layers []state.Layer, bg color.Color) {
	s.Clear(bg)
	for i, layer := range layers {
		if !layer.Visible {
			continue
		}
		for _, a := range actions {
			if a.Layer == i {
				Draw(s, a, bg)
			}
		}
	}
}

// Draw executes one action's primitive against the surface. Erase actions
// paint the background color: the erase effect exists only because the
// background is painted beneath.
func Draw(s Surface, a state.Action, bg color.Color) {
	c := color.Color(a.Color)
	if a.Kind == state.KindErase {
		c = bg
	}
	switch a.Kind {
	case state.KindStroke, state.KindErase:
		s.StrokePath(a.Points, c, a.Thickness)
	case state.KindRectangle:
		s.StrokeRect(a.Points[0], a.Points[1], c, a.Thickness)
	case state.KindCircle:
		s.StrokeCircle(a.Points[0], Radius(a.Points[0], a.Points[1]), c, a.Thickness)
	}
}

// Radius is the Euclidean distance between a circle's center and rim points.
func Radius(center, rim state.Point) float64 {
	return math.Hypot(rim.X-center.X, rim.Y-center.Y)
}

// Frame renders the full board state plus an optional in-progress gesture
// preview on top. The preview never enters the log; the next replay simply
// paints over it.
func Frame(s Surface, b *state.Board, bg color.Color, g *state.Gesture) {
	Replay(s, b.Committed(), b.Layers(), bg)
	if g != nil {
		Draw(s, g.Preview(), bg)
	}
}
