package vbtext

// TextRenderer draws a string at a position on the service's canvas.
type TextRenderer interface {
	RenderText(text string, size, x, y float64)
}

// GlyphRenderer draws a single character of face onto c.
type GlyphRenderer interface {
	RenderGlyph(c Canvas, face *Face, ch rune)
}

// Service is the host's text-rendering service.
//
// Canvas returns nil while the host has no drawing surface. Face returns the
// currently active face, which may be nil.
type Service interface {
	TextRenderer
	GlyphRenderer
	Canvas() Canvas
	Face() *Face
}

// GlyphRouter is implemented by services whose RenderText draws each
// character through a replaceable GlyphRenderer. The installer routes those
// calls through the Fallback so delegated vector text is guarded too.
type GlyphRouter interface {
	SetGlyphRenderer(g GlyphRenderer)
}
