package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// vec3 is a point or direction in Bloch-sphere coordinates.
type vec3 [3]float64

func (a vec3) dot(b vec3) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

func (a vec3) scale(k float64) vec3 { return vec3{a[0] * k, a[1] * k, a[2] * k} }

// layer orders what may be drawn over what. Higher layers win a cell.
type layer int

const (
	layerEmpty layer = iota
	layerBack
	layerOutline
	layerFront
	layerAxis
	layerVector
	layerHead
	layerLabel
)

var layerStyles = map[layer]lipgloss.Style{
	layerBack:    sphereBackStyle,
	layerOutline: sphereFrontStyle,
	layerFront:   sphereFrontStyle,
	layerAxis:    axisStyle,
	layerVector:  vectorStyle,
	layerHead:    vectorHeadStyle,
	layerLabel:   labelStyle,
}

// canvas is a fixed grid of runes, each tagged with the layer that drew it.
type canvas struct {
	w, h   int
	runes  [][]rune
	layers [][]layer
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, runes: make([][]rune, h), layers: make([][]layer, h)}
	for row := range h {
		c.runes[row] = []rune(strings.Repeat(" ", w))
		c.layers[row] = make([]layer, w)
	}
	return c
}

// set draws r at (col, row) unless a higher layer already owns the cell.
func (c *canvas) set(col, row int, r rune, l layer) {
	if col < 0 || col >= c.w || row < 0 || row >= c.h {
		return
	}
	if c.layers[row][col] > l {
		return
	}
	c.runes[row][col] = r
	c.layers[row][col] = l
}

func (c *canvas) text(col, row int, s string, l layer) {
	for i, r := range []rune(s) {
		c.set(col+i, row, r, l)
	}
}

// String renders the grid, styling each run of cells from one layer at once.
func (c *canvas) String() string {
	lines := make([]string, c.h)
	for row := range c.h {
		var sb strings.Builder
		start := 0
		for col := 1; col <= c.w; col++ {
			if col < c.w && c.layers[row][col] == c.layers[row][start] {
				continue
			}
			run := string(c.runes[row][start:col])
			if style, ok := layerStyles[c.layers[row][start]]; ok {
				run = style.Render(run)
			}
			sb.WriteString(run)
			start = col
		}
		lines[row] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// camera is an orthographic view of the unit sphere. Azimuth turns about
// the z axis; elevation tilts the view above the equator.
type camera struct {
	right, up, fwd vec3
	radius         int
	cx, cy         int
}

func newCamera(azimuth, elevation float64, radius, cx, cy int) camera {
	sa, ca := math.Sincos(azimuth)
	se, ce := math.Sincos(elevation)
	return camera{
		fwd:    vec3{ce * ca, ce * sa, se},
		right:  vec3{-sa, ca, 0},
		up:     vec3{-se * ca, -se * sa, ce},
		radius: radius,
		cx:     cx,
		cy:     cy,
	}
}

// project maps p to a grid cell. Columns are doubled to make up for
// terminal cells being about twice as tall as they are wide. depth > 0
// means p faces the viewer.
func (c camera) project(p vec3) (col, row int, depth float64) {
	r := float64(c.radius)
	col = c.cx + int(math.Round(p.dot(c.right)*r*2))
	row = c.cy - int(math.Round(p.dot(c.up)*r))
	return col, row, p.dot(c.fwd)
}

// blochView holds everything needed to draw one frame of the sphere.
type blochView struct {
	vector    vec3
	azimuth   float64
	elevation float64
	radius    int
}

func (v blochView) size() (w, h int) {
	return 4*v.radius + 1 + 2*sphereLabelPad, 2*v.radius + 3
}

// render draws the sphere outline, the equator and the xz meridian, the
// three axes with their labels, and the state vector.
func (v blochView) render() string {
	w, h := v.size()
	cv := newCanvas(w, h)
	cam := newCamera(v.azimuth, v.elevation, v.radius, w/2, h/2)

	const samples = 360
	for i := range samples {
		t := 2 * math.Pi * float64(i) / samples
		s, c := math.Sincos(t)

		// Silhouette is always in the picture plane.
		col, row, _ := cam.project(vec3{
			c*cam.right[0] + s*cam.up[0],
			c*cam.right[1] + s*cam.up[1],
			c*cam.right[2] + s*cam.up[2],
		})
		cv.set(col, row, '·', layerOutline)

		for _, p := range []vec3{{c, s, 0}, {c, 0, s}} {
			col, row, depth := cam.project(p)
			if depth >= 0 {
				cv.set(col, row, '·', layerFront)
			} else {
				cv.set(col, row, '.', layerBack)
			}
		}
	}

	axes := []struct {
		dir      vec3
		pos, neg string
	}{
		{vec3{1, 0, 0}, "x", ""},
		{vec3{0, 1, 0}, "y", ""},
		{vec3{0, 0, 1}, "|0⟩", "|1⟩"},
	}
	for _, a := range axes {
		drawSegment(cv, cam, a.dir.scale(-1), a.dir, layerAxis, 0)
		if a.pos != "" {
			label(cv, cam, a.dir.scale(1.2), a.pos)
		}
		if a.neg != "" {
			label(cv, cam, a.dir.scale(-1.2), a.neg)
		}
	}

	drawSegment(cv, cam, vec3{}, v.vector, layerVector, '•')
	col, row, _ := cam.project(v.vector)
	cv.set(col, row, '●', layerHead)

	return cv.String()
}

// drawSegment samples the segment from a to b. A zero glyph picks a line
// character from the on-screen slope.
func drawSegment(cv *canvas, cam camera, a, b vec3, l layer, glyph rune) {
	ac, ar, _ := cam.project(a)
	bc, br, _ := cam.project(b)
	if glyph == 0 {
		glyph = slopeGlyph(bc-ac, br-ar)
	}
	steps := max(abs(bc-ac), abs(br-ar), 1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := vec3{
			a[0] + (b[0]-a[0])*t,
			a[1] + (b[1]-a[1])*t,
			a[2] + (b[2]-a[2])*t,
		}
		col, row, _ := cam.project(p)
		cv.set(col, row, glyph, l)
	}
}

func label(cv *canvas, cam camera, at vec3, s string) {
	col, row, _ := cam.project(at)
	cv.text(col-len([]rune(s))/2, row, s, layerLabel)
}

// slopeGlyph picks a box-drawing character for a screen-space direction.
// dc is in doubled columns, so it is halved before comparing.
func slopeGlyph(dc, dr int) rune {
	x, y := math.Abs(float64(dc)/2), math.Abs(float64(dr))
	switch {
	case y < 0.5*x:
		return '─'
	case x < 0.5*y:
		return '│'
	case (dc > 0) == (dr > 0):
		return '╲'
	default:
		return '╱'
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
