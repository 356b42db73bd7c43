package vbtext

import "errors"

// Sentinel errors for vbtext. Render paths never return errors; these are
// reported only by face loading.
var (
	// ErrInvalidFace is returned when face data cannot be decoded.
	ErrInvalidFace = errors.New("vbtext: invalid face data")

	// ErrGlyphKey is returned when a glyph key is not exactly one character.
	ErrGlyphKey = errors.New("vbtext: glyph key must be a single character")
)
