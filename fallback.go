package vbtext

import "log/slog"

// Fallback decorates a host Service so text drawing never fails on missing
// glyph data. It delegates Canvas and Face to the wrapped service and keeps
// the wrapped RenderText and RenderGlyph for delegation.
type Fallback struct {
	base Service
	opts options
}

// Ensure Fallback implements Service.
var _ Service = (*Fallback)(nil)

// NewFallback wraps base with the fallback policy selected by opts.
func NewFallback(base Service, opts ...Option) *Fallback {
	return &Fallback{base: base, opts: buildOptions(opts)}
}

// Base returns the wrapped host service.
func (f *Fallback) Base() Service { return f.base }

// Canvas returns the wrapped service's canvas.
func (f *Fallback) Canvas() Canvas { return f.base.Canvas() }

// Face returns the wrapped service's active face.
func (f *Fallback) Face() *Face { return f.base.Face() }

// RenderText draws text at (x, y).
//
// With vector outlines preferred and a face that has a glyph for every rune
// of text as given, the call is forwarded unchanged to the host renderer. Otherwise
// text is drawn natively with the configured color, a font of the given size,
// and the configured baseline. Without a canvas the call does nothing.
func (f *Fallback) RenderText(text string, size, x, y float64) {
	c := f.base.Canvas()
	if c == nil {
		return
	}

	if f.opts.preferVectorOutlines {
		if f.base.Face().Covers(text) {
			f.base.RenderText(text, size, x, y)
			return
		}
		Logger().Debug("vbtext: glyphs missing, drawing natively", slog.String("text", text))
	}

	c.Save()
	defer c.Restore()
	c.SetFillStyle(f.opts.fillColor)
	c.SetFont(Font{Family: f.opts.fontFamily, Size: size})
	c.SetTextBaseline(f.opts.baseline)
	c.FillText(text, x, y)
}

// RenderGlyph draws ch from face onto c.
//
// A glyph with an outline is forwarded to the host renderer. A glyph without
// one only advances the cursor by its horizontal advance. A character the face
// lacks, or a missing face, draws nothing.
func (f *Fallback) RenderGlyph(c Canvas, face *Face, ch rune) {
	g, ok := face.Glyph(ch)
	if !ok || !g.HasOutline() {
		if ok && g.Advance != 0 && c != nil {
			c.Translate(g.Advance, 0)
		}
		return
	}
	f.base.RenderGlyph(c, face, ch)
}
