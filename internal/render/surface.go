// Package render turns the board's committed action log into pixels by full
// replay. The renderer is stateless: the same (actions, layers) input always
// produces the same frame, so every state change can simply trigger a
// complete redraw.
package render

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"

	"artboardpro/internal/state"
)

// Surface is the drawing contract the replay renderer needs. Any 2D
// immediate-mode rasterizer that can stroke round-capped polylines,
// rectangles and circles can sit behind it.
type Surface interface {
	Clear(bg color.Color)
	StrokePath(pts []state.Point, c color.Color, width float64)
	StrokeRect(a, b state.Point, c color.Color, width float64)
	StrokeCircle(center state.Point, radius float64, c color.Color, width float64)
}

// ImageSurface rasterizes through fogleman/gg into an in-memory image.
type ImageSurface struct {
	dc     *gg.Context
	width  int
	height int
}

var _ Surface = (*ImageSurface)(nil)

func NewImageSurface(width, height int) *ImageSurface {
	dc := gg.NewContext(width, height)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	return &ImageSurface{dc: dc, width: width, height: height}
}

func (s *ImageSurface) Clear(bg color.Color) {
	s.dc.SetColor(bg)
	s.dc.Clear()
}

func (s *ImageSurface) StrokePath(pts []state.Point, c color.Color, width float64) {
	if len(pts) == 0 {
		return
	}
	s.dc.SetColor(c)
	if len(pts) == 1 {
		// A single-point path degenerates to its round cap: a filled dot.
		s.dc.DrawCircle(pts[0].X, pts[0].Y, width/2)
		s.dc.Fill()
		return
	}
	s.dc.SetLineWidth(width)
	s.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.dc.LineTo(p.X, p.Y)
	}
	s.dc.Stroke()
}

func (s *ImageSurface) StrokeRect(a, b state.Point, c color.Color, width float64) {
	// Normalize so reversed corners rasterize identically.
	x := math.Min(a.X, b.X)
	y := math.Min(a.Y, b.Y)
	w := math.Abs(b.X - a.X)
	h := math.Abs(b.Y - a.Y)
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Stroke()
}

func (s *ImageSurface) StrokeCircle(center state.Point, radius float64, c color.Color, width float64) {
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
	s.dc.DrawCircle(center.X, center.Y, radius)
	s.dc.Stroke()
}

// Image exposes the rendered frame.
func (s *ImageSurface) Image() image.Image {
	return s.dc.Image()
}

// EncodePNG writes the current frame as a PNG byte stream.
func (s *ImageSurface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

func (s *ImageSurface) Size() (int, int) {
	return s.width, s.height
}
