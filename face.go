package vbtext

import (
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"
)

// FaceName is the name under which RegisterFace publishes the fallback face.
const FaceName = "vector_battle"

// Glyph holds the drawing instructions for one character.
type Glyph struct {
	// Advance is the horizontal advance in font units ("ha").
	Advance float64

	// Outline is a typeface.js path description ("o"). Empty means the glyph
	// has no visible shape and only advances the cursor.
	Outline string
}

// HasOutline reports whether the glyph carries a visible shape.
func (g Glyph) HasOutline() bool { return g.Outline != "" }

// Face is a named collection of glyphs plus the scale constant the legacy
// renderer uses to convert font units into pixels.
//
// Glyphs may be partial or empty. All lookups go through [Face.Glyph], which
// tolerates a nil face and a nil map.
type Face struct {
	FamilyName string
	Resolution int
	Glyphs     map[rune]Glyph
}

// Glyph returns the glyph for ch and whether the face has an entry for it.
func (f *Face) Glyph(ch rune) (Glyph, bool) {
	if f == nil || f.Glyphs == nil {
		return Glyph{}, false
	}
	g, ok := f.Glyphs[ch]
	return g, ok
}

// Covers reports whether every rune of s has an entry in the face.
// The empty string is covered by any non-nil face.
func (f *Face) Covers(s string) bool {
	if f == nil {
		return false
	}
	for _, r := range s {
		if _, ok := f.Glyph(r); !ok {
			return false
		}
	}
	return true
}

// VectorBattle returns the minimal fallback face: a space glyph that advances
// without drawing. A fresh value is returned on every call.
func VectorBattle() *Face {
	return &Face{
		FamilyName: "Vector Battle (Fallback)",
		Resolution: 1000,
		Glyphs: map[rune]Glyph{
			' ': {Advance: 250},
		},
	}
}

// RegisterFace builds the fallback face and publishes it in env under
// FaceName so host setup code can assign it as the active face.
// Calling it again replaces the previous value.
func RegisterFace(env *Env) *Face {
	f := VectorBattle()
	env.SetFace(FaceName, f)
	return f
}

// typefaceJSON mirrors the typeface.js font format.
type typefaceJSON struct {
	FamilyName string                   `json:"familyName"`
	Resolution int                      `json:"resolution"`
	Glyphs     map[string]typefaceGlyph `json:"glyphs"`
}

type typefaceGlyph struct {
	HA float64 `json:"ha"`
	O  string  `json:"o"`
}

// LoadFace decodes a typeface.js JSON face, replacing the fallback face with a
// full glyph set. Glyph keys must be exactly one character.
func LoadFace(r io.Reader) (*Face, error) {
	var raw typefaceJSON
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFace, err)
	}
	if raw.Resolution <= 0 {
		return nil, fmt.Errorf("%w: resolution %d", ErrInvalidFace, raw.Resolution)
	}

	f := &Face{
		FamilyName: raw.FamilyName,
		Resolution: raw.Resolution,
		Glyphs:     make(map[rune]Glyph, len(raw.Glyphs)),
	}
	for key, g := range raw.Glyphs {
		ch, size := utf8.DecodeRuneInString(key)
		if size == 0 || size != len(key) || ch == utf8.RuneError {
			return nil, fmt.Errorf("%w: %q", ErrGlyphKey, key)
		}
		f.Glyphs[ch] = Glyph{Advance: g.HA, Outline: g.O}
	}
	return f, nil
}
