package vbtext

import (
	"fmt"
	"image/color"
	"time"
)

// recordingCanvas logs every call as a short string.
type recordingCanvas struct {
	calls []string
}

func (c *recordingCanvas) Save()    { c.calls = append(c.calls, "save") }
func (c *recordingCanvas) Restore() { c.calls = append(c.calls, "restore") }

func (c *recordingCanvas) SetFillStyle(col color.Color) {
	r, g, b, a := col.RGBA()
	c.calls = append(c.calls, fmt.Sprintf("fill %02x%02x%02x%02x", r>>8, g>>8, b>>8, a>>8))
}

func (c *recordingCanvas) SetFont(f Font) { c.calls = append(c.calls, "font "+f.String()) }

func (c *recordingCanvas) SetTextBaseline(b Baseline) {
	c.calls = append(c.calls, "baseline "+b.String())
}

func (c *recordingCanvas) FillText(text string, x, y float64) {
	c.calls = append(c.calls, fmt.Sprintf("fillText %q %g %g", text, x, y))
}

func (c *recordingCanvas) Translate(dx, dy float64) {
	c.calls = append(c.calls, fmt.Sprintf("translate %g %g", dx, dy))
}

type textCall struct {
	text       string
	size, x, y float64
}

type glyphCall struct {
	canvas Canvas
	face   *Face
	ch     rune
}

// fakeService records delegated calls. Its RenderGlyph panics on missing
// glyphs like a strict host.
type fakeService struct {
	canvas Canvas
	face   *Face
	texts  []textCall
	glyphs []glyphCall
}

func (s *fakeService) Canvas() Canvas {
	if s.canvas == nil {
		return nil
	}
	return s.canvas
}

func (s *fakeService) Face() *Face { return s.face }

func (s *fakeService) RenderText(text string, size, x, y float64) {
	s.texts = append(s.texts, textCall{text, size, x, y})
}

func (s *fakeService) RenderGlyph(c Canvas, face *Face, ch rune) {
	if _, ok := face.Glyphs[ch]; !ok {
		panic("fakeService: missing glyph")
	}
	s.glyphs = append(s.glyphs, glyphCall{c, face, ch})
}

// manualScheduler queues callbacks until Run is called.
type manualScheduler struct {
	delays  []time.Duration
	pending []func()
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) {
	s.delays = append(s.delays, d)
	s.pending = append(s.pending, f)
}

// Run fires the callbacks queued so far and returns how many ran.
func (s *manualScheduler) Run() int {
	fs := s.pending
	s.pending = nil
	for _, f := range fs {
		f()
	}
	return len(fs)
}

func outlineFace() *Face {
	return &Face{
		FamilyName: "Test",
		Resolution: 1000,
		Glyphs: map[rune]Glyph{
			' ':      {Advance: 250},
			'A':      {Advance: 700, Outline: "m 0 0 l 350 700 l 700 0 z"},
			'B':      {Advance: 650, Outline: "m 0 0 l 0 700 l 600 350 z"},
			'\u00e9': {Advance: 600, Outline: "m 0 0 l 600 0 l 300 500 z"},
			'-':      {},
		},
	}
}
