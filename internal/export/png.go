// Package export serializes the rendered board to a PNG byte stream.
package export

import (
	"fmt"
	"image/color"
	"io"

	"artboardpro/internal/render"
	"artboardpro/internal/state"
)

// FileName is the suggested name for the exported image.
const FileName = "artboard-pro.png"

// WritePNG renders the board's committed state at the given resolution and
// writes it to w as PNG. Only committed actions on visible layers appear in
// the output; an in-progress gesture never does.
func WritePNG(w io.Writer, b *state.Board, width, height int, bg color.NRGBA) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid export size %dx%d", width, height)
	}
	surf := render.NewImageSurface(width, height)
	render.Replay(surf, b.Committed(), b.Layers(), bg)
	if err := surf.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
