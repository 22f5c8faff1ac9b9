package main

import (
	"math"
	"strings"
	"testing"
)

func TestCameraProjection(t *testing.T) {
	const r, cx, cy = 9, 40, 12
	cam := newCamera(0, 0, r, cx, cy)

	tests := []struct {
		name      string
		p         vec3
		col, row  int
		depthSign int
	}{
		{"+x faces the viewer", vec3{1, 0, 0}, cx, cy, 1},
		{"-x is behind", vec3{-1, 0, 0}, cx, cy, -1},
		{"+y is right, doubled", vec3{0, 1, 0}, cx + 2*r, cy, 0},
		{"+z is up", vec3{0, 0, 1}, cx, cy - r, 0},
		{"-z is down", vec3{0, 0, -1}, cx, cy + r, 0},
	}
	for _, tt := range tests {
		col, row, depth := cam.project(tt.p)
		if col != tt.col || row != tt.row {
			t.Errorf("%s: projected to (%d,%d), want (%d,%d)", tt.name, col, row, tt.col, tt.row)
		}
		switch {
		case tt.depthSign > 0 && depth <= 0,
			tt.depthSign < 0 && depth >= 0,
			tt.depthSign == 0 && math.Abs(depth) > 1e-12:
			t.Errorf("%s: depth = %g, want sign %d", tt.name, depth, tt.depthSign)
		}
	}

	// Elevation tilts the north pole toward the viewer.
	cam = newCamera(0, math.Pi/6, r, cx, cy)
	if _, _, depth := cam.project(vec3{0, 0, 1}); depth <= 0 {
		t.Errorf("with positive elevation +z depth = %g, want > 0", depth)
	}
}

func TestCanvasLayering(t *testing.T) {
	cv := newCanvas(3, 1)
	cv.set(1, 0, 'v', layerVector)
	cv.set(1, 0, '.', layerBack)
	if got := cv.runes[0][1]; got != 'v' {
		t.Errorf("lower layer overwrote higher: got %q", got)
	}
	cv.set(1, 0, '●', layerHead)
	if got := cv.runes[0][1]; got != '●' {
		t.Errorf("higher layer did not win: got %q", got)
	}
	// Out of bounds is ignored.
	cv.set(-1, 0, 'x', layerLabel)
	cv.set(3, 0, 'x', layerLabel)
	cv.set(0, 1, 'x', layerLabel)
	if visibleLen(cv.String()) != 3 {
		t.Errorf("canvas width changed: %q", cv.String())
	}
}

func TestBlochViewDimensions(t *testing.T) {
	for _, v := range []vec3{{0, 0, 1}, {0, 0, -1}, {1, 0, 0}, {0, -1, 0}, {0.5, 0.5, math.Sqrt(0.5)}} {
		view := blochView{vector: v, azimuth: math.Pi / 6, elevation: math.Pi / 9, radius: sphereRadius}
		w, h := view.size()
		lines := strings.Split(view.render(), "\n")
		if len(lines) != h {
			t.Fatalf("vector %v: %d lines, want %d", v, len(lines), h)
		}
		for i, line := range lines {
			if n := visibleLen(line); n != w {
				t.Errorf("vector %v line %d: width %d, want %d", v, i, n, w)
			}
		}
	}
}

func TestBlochViewLabelsAndHead(t *testing.T) {
	view := blochView{vector: vec3{0, 0, 1}, azimuth: math.Pi / 6, elevation: math.Pi / 9, radius: sphereRadius}
	out := view.render()
	for _, want := range []string{"|0⟩", "|1⟩", "x", "y", "●"} {
		if !strings.Contains(out, want) {
			t.Errorf("render is missing %q:\n%s", want, out)
		}
	}
}

func TestSlopeGlyph(t *testing.T) {
	tests := []struct {
		dc, dr int
		want   rune
	}{
		{10, 0, '─'},
		{-10, 1, '─'},
		{0, 5, '│'},
		{1, -5, '│'},
		{4, 2, '╲'},
		{-4, -2, '╲'},
		{4, -2, '╱'},
		{-4, 2, '╱'},
	}
	for _, tt := range tests {
		if got := slopeGlyph(tt.dc, tt.dr); got != tt.want {
			t.Errorf("slopeGlyph(%d, %d) = %q, want %q", tt.dc, tt.dr, got, tt.want)
		}
	}
}

func TestOverlayAt(t *testing.T) {
	got := overlayAt("abcdef\nghijkl", "XY", 2, 1)
	if want := "abcdef\nghXYkl"; got != want {
		t.Errorf("overlayAt = %q, want %q", got, want)
	}

	// Past the end of a short line the background is padded.
	got = overlayAt("ab", "XY", 4, 0)
	if want := "ab  XY"; got != want {
		t.Errorf("overlayAt past end = %q, want %q", got, want)
	}

	// Rows outside the background are dropped.
	got = overlayAt("ab", "X\nY", 0, 0)
	if want := "Xb"; got != want {
		t.Errorf("overlayAt clipped = %q, want %q", got, want)
	}
}

func TestSpliceLineAtKeepsEscapes(t *testing.T) {
	bg := "\x1b[31mabcdef\x1b[0m"
	got := spliceLineAt(bg, "XY", 2)
	if want := "\x1b[31mabXYef\x1b[0m"; got != want {
		t.Errorf("spliceLineAt = %q, want %q", got, want)
	}
	if n := visibleLen(got); n != 6 {
		t.Errorf("visibleLen = %d, want 6", n)
	}
}

func TestPadCenter(t *testing.T) {
	tests := []struct {
		s     string
		width int
		want  string
	}{
		{"ab", 6, "  ab  "},
		{"abc", 6, " abc  "},
		{"|0⟩", 5, " |0⟩ "},
		{"abcdef", 3, "abc"},
	}
	for _, tt := range tests {
		if got := padCenter(tt.s, tt.width); got != tt.want {
			t.Errorf("padCenter(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
		}
	}
}
