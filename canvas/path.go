package canvas

import (
	"image"

	"golang.org/x/image/vector"
)

type verb uint8

const (
	verbMove verb = iota
	verbLine
	verbQuad
	verbCubic
	verbClose
)

// path stores points already mapped to device space, as the HTML canvas
// applies the transform current at each call.
type path struct {
	verbs []verb
	pts   []float32
}

func (p *path) reset() {
	p.verbs = p.verbs[:0]
	p.pts = p.pts[:0]
}

func (p *path) empty() bool { return len(p.verbs) == 0 }

func (c *Canvas) add(v verb, xy ...float64) {
	c.path.verbs = append(c.path.verbs, v)
	for i := 0; i+1 < len(xy); i += 2 {
		x, y := c.state.matrix.Apply(xy[i], xy[i+1])
		c.path.pts = append(c.path.pts, float32(x), float32(y))
	}
}

// BeginPath discards the current path.
func (c *Canvas) BeginPath() { c.path.reset() }

// MoveTo starts a new subpath at (x, y).
func (c *Canvas) MoveTo(x, y float64) { c.add(verbMove, x, y) }

// LineTo adds a line to (x, y).
func (c *Canvas) LineTo(x, y float64) {
	if c.path.empty() {
		c.MoveTo(x, y)
		return
	}
	c.add(verbLine, x, y)
}

// QuadraticTo adds a quadratic Bézier curve with control point (cx, cy).
func (c *Canvas) QuadraticTo(cx, cy, x, y float64) {
	if c.path.empty() {
		c.MoveTo(cx, cy)
	}
	c.add(verbQuad, cx, cy, x, y)
}

// CubicTo adds a cubic Bézier curve with control points (c1x, c1y) and
// (c2x, c2y).
func (c *Canvas) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if c.path.empty() {
		c.MoveTo(c1x, c1y)
	}
	c.add(verbCubic, c1x, c1y, c2x, c2y, x, y)
}

// ClosePath closes the current subpath.
func (c *Canvas) ClosePath() {
	if c.path.empty() {
		return
	}
	c.path.verbs = append(c.path.verbs, verbClose)
}

// Fill fills the current path with the fill style. The path is kept, as in
// the HTML canvas; call BeginPath to start over.
func (c *Canvas) Fill() {
	if c.path.empty() {
		return
	}
	w, h := c.Width(), c.Height()
	if c.rast == nil {
		c.rast = vector.NewRasterizer(w, h)
	} else {
		c.rast.Reset(w, h)
	}

	pts := c.path.pts
	for _, v := range c.path.verbs {
		switch v {
		case verbMove:
			// The rasterizer does not close subpaths implicitly.
			c.rast.ClosePath()
			c.rast.MoveTo(pts[0], pts[1])
			pts = pts[2:]
		case verbLine:
			c.rast.LineTo(pts[0], pts[1])
			pts = pts[2:]
		case verbQuad:
			c.rast.QuadTo(pts[0], pts[1], pts[2], pts[3])
			pts = pts[4:]
		case verbCubic:
			c.rast.CubeTo(pts[0], pts[1], pts[2], pts[3], pts[4], pts[5])
			pts = pts[6:]
		case verbClose:
			c.rast.ClosePath()
		}
	}
	c.rast.ClosePath()

	b := c.img.Bounds()
	c.rast.Draw(c.img, image.Rect(0, 0, w, h).Add(b.Min), image.NewUniform(c.state.fill), image.Point{})
}
