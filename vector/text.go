// Package vector is a text service in the style of classic vector arcade
// engines: every character is traced from a typeface.js outline and the whole
// string is filled as one path.
//
// The service is deliberately strict. RenderGlyph panics when the face lacks a
// character and RenderText panics without a face, as the engines it models
// do. Wrap it in a [vbtext.Fallback] to draw safely.
package vector

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/vbtext"
	"github.com/gogpu/vbtext/internal/outline"
)

// PathCanvas is the drawing surface the outline renderer needs.
type PathCanvas interface {
	vbtext.Canvas
	Scale(sx, sy float64)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
	Fill()
}

// Text renders strings from a vector face. It is not safe for concurrent use.
type Text struct {
	canvas PathCanvas
	face   *vbtext.Face
	glyphs vbtext.GlyphRenderer
	cache  map[string][]outline.Segment
}

// Ensure Text implements vbtext.Service.
var _ vbtext.Service = (*Text)(nil)

// New returns a text service drawing onto c with no face set.
func New(c PathCanvas) *Text {
	t := &Text{
		canvas: c,
		cache:  make(map[string][]outline.Segment),
	}
	t.glyphs = t
	return t
}

// Canvas returns the drawing surface, or nil if none is attached.
func (t *Text) Canvas() vbtext.Canvas {
	if t.canvas == nil {
		return nil
	}
	return t.canvas
}

// SetCanvas attaches a drawing surface.
func (t *Text) SetCanvas(c PathCanvas) { t.canvas = c }

// Face returns the active face.
func (t *Text) Face() *vbtext.Face { return t.face }

// SetFace sets the active face.
func (t *Text) SetFace(f *vbtext.Face) { t.face = f }

// SetGlyphRenderer routes the per-character calls of RenderText through g.
// Passing nil restores the service's own RenderGlyph.
func (t *Text) SetGlyphRenderer(g vbtext.GlyphRenderer) {
	if g == nil {
		t.glyphs = t
		return
	}
	t.glyphs = g
}

// RenderText draws text with its origin at (x, y). Glyph coordinates are in
// font units with y up; size is converted to a scale of
// size*72/(resolution*100).
func (t *Text) RenderText(text string, size, x, y float64) {
	c := t.canvas
	face := t.face

	c.Save()
	defer c.Restore()

	c.Translate(x, y)
	pixels := size * 72 / (float64(face.Resolution) * 100)
	c.Scale(pixels, -pixels)
	c.BeginPath()
	for _, ch := range text {
		t.glyphs.RenderGlyph(c, face, ch)
	}
	c.Fill()
}

// RenderGlyph traces the outline of ch into the current path and advances
// the canvas by the glyph's advance. It panics if face has no entry for ch.
func (t *Text) RenderGlyph(c vbtext.Canvas, face *vbtext.Face, ch rune) {
	g, ok := face.Glyphs[ch]
	if !ok {
		panic(fmt.Sprintf("vector: face %q has no glyph for %q", face.FamilyName, ch))
	}

	if g.HasOutline() {
		if p, ok := c.(outline.Pather); ok {
			segs, err := t.segments(g.Outline)
			if err != nil {
				vbtext.Logger().Warn("vector: bad glyph outline",
					slog.String("glyph", string(ch)),
					slog.Any("error", err))
			} else {
				outline.Trace(p, segs)
			}
		}
	}
	if g.Advance != 0 {
		c.Translate(g.Advance, 0)
	}
}

// segments returns the parsed outline, caching it by source string.
func (t *Text) segments(o string) ([]outline.Segment, error) {
	if segs, ok := t.cache[o]; ok {
		return segs, nil
	}
	segs, err := outline.Parse(o)
	if err != nil {
		return nil, err
	}
	t.cache[o] = segs
	return segs, nil
}
