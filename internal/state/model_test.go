package state

import (
	"image/color"
	"testing"
)

func TestNewActionValidation(t *testing.T) {
	black := color.NRGBA{A: 255}
	two := []Point{{0, 0}, {10, 10}}

	tests := []struct {
		name      string
		kind      Kind
		points    []Point
		thickness float64
		layer     int
		wantErr   bool
	}{
		{"stroke one point", KindStroke, []Point{{5, 5}}, 3, 0, false},
		{"stroke many points", KindStroke, []Point{{0, 0}, {1, 1}, {2, 2}}, 3, 0, false},
		{"stroke no points", KindStroke, nil, 3, 0, true},
		{"erase no points", KindErase, nil, 3, 0, true},
		{"rectangle two points", KindRectangle, two, 3, 0, false},
		{"rectangle one point", KindRectangle, []Point{{0, 0}}, 3, 0, true},
		{"rectangle three points", KindRectangle, []Point{{0, 0}, {1, 1}, {2, 2}}, 3, 0, true},
		{"circle two points", KindCircle, two, 3, 0, false},
		{"circle one point", KindCircle, []Point{{0, 0}}, 3, 0, true},
		{"zero thickness", KindStroke, two, 0, 0, true},
		{"negative thickness", KindStroke, two, -1, 0, true},
		{"negative layer", KindStroke, two, 3, -1, true},
		{"unknown kind", Kind(99), two, 3, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAction(tt.kind, tt.points, black, tt.thickness, tt.layer)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewAction error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if a.ID == "" {
				t.Error("action has empty ID")
			}
			if a.Time.IsZero() {
				t.Error("action has zero timestamp")
			}
		})
	}
}

func TestNewActionCopiesPoints(t *testing.T) {
	pts := []Point{{0, 0}, {10, 10}}
	a, err := NewAction(KindStroke, pts, color.NRGBA{A: 255}, 3, 0)
	if err != nil {
		t.Fatalf("NewAction failed: %v", err)
	}

	pts[0] = Point{99, 99}
	if a.Points[0] != (Point{0, 0}) {
		t.Errorf("action points aliased the caller's slice: %v", a.Points[0])
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindStroke, "stroke"},
		{KindErase, "erase"},
		{KindRectangle, "rectangle"},
		{KindCircle, "circle"},
		{Kind(42), "Kind(42)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}
