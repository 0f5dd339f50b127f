package export

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"artboardpro/internal/state"
)

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

func TestWritePNG(t *testing.T) {
	b := state.NewBoard()
	b.SetColor(color.NRGBA{R: 255, A: 255})
	b.SetThickness(6)

	g := b.BeginGesture(state.Point{X: 5, Y: 15})
	g.Extend(state.Point{X: 35, Y: 15})
	a, err := g.Finish()
	if err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	b.Commit(a)

	var buf bytes.Buffer
	if err := WritePNG(&buf, b, 40, 30, white); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not decodable PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 40 || bounds.Dy() != 30 {
		t.Fatalf("decoded size = %dx%d, want 40x30", bounds.Dx(), bounds.Dy())
	}

	r, g2, b2, _ := img.At(20, 15).RGBA()
	if r != 0xffff || g2 != 0 || b2 != 0 {
		t.Errorf("pixel under stroke = (%d,%d,%d), want red", r, g2, b2)
	}
	r, g2, b2, _ = img.At(0, 0).RGBA()
	if r != 0xffff || g2 != 0xffff || b2 != 0xffff {
		t.Errorf("background pixel = (%d,%d,%d), want white", r, g2, b2)
	}
}

func TestWritePNGRejectsBadSize(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, state.NewBoard(), 0, 100, white); err == nil {
		t.Error("WritePNG accepted a zero width")
	}
	if err := WritePNG(&buf, state.NewBoard(), 100, -1, white); err == nil {
		t.Error("WritePNG accepted a negative height")
	}
}

func TestFileName(t *testing.T) {
	if FileName != "artboard-pro.png" {
		t.Errorf("FileName = %q, want %q", FileName, "artboard-pro.png")
	}
}
