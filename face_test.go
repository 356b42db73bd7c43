package vbtext

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestVectorBattle(t *testing.T) {
	f := VectorBattle()
	if f.FamilyName != "Vector Battle (Fallback)" {
		t.Errorf("FamilyName = %q", f.FamilyName)
	}
	if f.Resolution != 1000 {
		t.Errorf("Resolution = %d, want 1000", f.Resolution)
	}
	g, ok := f.Glyph(' ')
	if !ok {
		t.Fatal("space glyph missing")
	}
	if g.Advance != 250 || g.HasOutline() {
		t.Errorf("space glyph = %+v, want advance 250 and no outline", g)
	}
	if _, ok := f.Glyph('A'); ok {
		t.Error("fallback face should not have 'A'")
	}
	if VectorBattle() == f {
		t.Error("VectorBattle should return a fresh face")
	}
}

func TestFaceGlyphNil(t *testing.T) {
	var f *Face
	if _, ok := f.Glyph('A'); ok {
		t.Error("nil face reported a glyph")
	}
	if _, ok := (&Face{}).Glyph('A'); ok {
		t.Error("face with nil map reported a glyph")
	}
}

func TestFaceCovers(t *testing.T) {
	tests := []struct {
		name string
		face *Face
		s    string
		want bool
	}{
		{"nil face", nil, "A", false},
		{"nil face empty text", nil, "", false},
		{"empty text", VectorBattle(), "", true},
		{"spaces", VectorBattle(), "   ", true},
		{"missing", VectorBattle(), "A ", false},
		{"full", outlineFace(), "A B-", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.face.Covers(tt.s); got != tt.want {
				t.Errorf("Covers(%q) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestRegisterFace(t *testing.T) {
	env := NewEnv()
	first := RegisterFace(env)
	got, ok := env.Face(FaceName)
	if !ok || got != first {
		t.Fatalf("Face(%q) = %v, %v; want registered face", FaceName, got, ok)
	}

	second := RegisterFace(env)
	got, _ = env.Face(FaceName)
	if got != second {
		t.Error("second RegisterFace did not replace the first")
	}
	if got.FamilyName != first.FamilyName {
		t.Error("re-registered face differs")
	}
}

func TestLoadFace(t *testing.T) {
	f, err := os.Open("testdata/arcade.typeface.json")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	face, err := LoadFace(f)
	if err != nil {
		t.Fatalf("LoadFace() error = %v", err)
	}
	if face.FamilyName != "Arcade Test" || face.Resolution != 1000 {
		t.Errorf("face = %q/%d", face.FamilyName, face.Resolution)
	}
	if len(face.Glyphs) != 4 {
		t.Errorf("len(Glyphs) = %d, want 4", len(face.Glyphs))
	}
	a, ok := face.Glyph('A')
	if !ok || a.Advance != 760 || !a.HasOutline() {
		t.Errorf("glyph A = %+v, %v", a, ok)
	}
	if !face.Covers("A-O") {
		t.Error("face should cover \"A-O\"")
	}
}

func TestLoadFaceErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"not json", "{", ErrInvalidFace},
		{"no resolution", `{"familyName":"x","glyphs":{}}`, ErrInvalidFace},
		{"multi rune key", `{"resolution":1000,"glyphs":{"AB":{"ha":1}}}`, ErrGlyphKey},
		{"empty key", `{"resolution":1000,"glyphs":{"":{"ha":1}}}`, ErrGlyphKey},
		{"replacement character key", "{\"resolution\":1000,\"glyphs\":{\"\\ufffd\":{\"ha\":1}}}", ErrGlyphKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFace(strings.NewReader(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("LoadFace() error = %v, want %v", err, tt.want)
			}
		})
	}
}
