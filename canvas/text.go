package canvas

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"log/slog"
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/vbtext"
)

// ErrEmptyFontData is returned by RegisterFamily for empty font data.
var ErrEmptyFontData = errors.New("canvas: empty font data")

// DefaultFamily is used when FillText is asked for an unregistered family.
const DefaultFamily = "monospace"

// family holds one font parsed twice: by x/image for rasterization and by
// go-text for shaping. Both parsed forms are read-only and safe to share.
type family struct {
	sfnt   *opentype.Font
	shaped *gtfont.Font
}

var (
	familiesMu sync.RWMutex
	families   = map[string][]byte{
		"monospace":  gomono.TTF,
		"sans-serif": goregular.TTF,
	}
	parsed = map[string]*family{}

	shaperPool = sync.Pool{
		New: func() any { return &shaping.HarfbuzzShaper{} },
	}
)

// RegisterFamily makes a TrueType or OpenType font available to FillText
// under name, replacing any previous font of that name.
func RegisterFamily(name string, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyFontData
	}
	fam, err := parseFamily(data)
	if err != nil {
		return err
	}
	familiesMu.Lock()
	defer familiesMu.Unlock()
	families[name] = data
	parsed[name] = fam
	return nil
}

func parseFamily(data []byte) (*family, error) {
	sf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("canvas: failed to parse font: %w", err)
	}
	gf, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("canvas: failed to parse font for shaping: %w", err)
	}
	return &family{sfnt: sf, shaped: gf.Font}, nil
}

// lookupFamily returns the parsed font for name, falling back to
// DefaultFamily for unknown names.
func lookupFamily(name string) (*family, error) {
	familiesMu.RLock()
	fam, ok := parsed[name]
	_, known := families[name]
	familiesMu.RUnlock()
	if ok {
		return fam, nil
	}
	if !known {
		vbtext.Logger().Debug("canvas: unknown font family, using default",
			slog.String("family", name))
		name = DefaultFamily
	}

	familiesMu.Lock()
	defer familiesMu.Unlock()
	if fam, ok := parsed[name]; ok {
		return fam, nil
	}
	fam, err := parseFamily(families[name])
	if err != nil {
		return nil, err
	}
	parsed[name] = fam
	return fam, nil
}

// positioned is a shaped glyph: the rune it came from and its pen offset
// from the text origin, y growing downward.
type positioned struct {
	r    rune
	x, y float64
}

// shape lays out text with the HarfBuzz shaper and returns one entry per
// glyph plus the total advance. Text is composed to NFC first so accented
// letters use the font's precomposed glyphs.
func shape(fam *family, text string, size float64) ([]positioned, float64) {
	runes := []rune(norm.NFC.String(text))
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gtfont.NewFace(fam.shaped),
		Size:      fixed.Int26_6(size * 64),
		Script:    language.LookupScript(firstLetter(runes)),
		Language:  language.NewLanguage("en"),
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	shaperPool.Put(hb)

	glyphs := make([]positioned, 0, len(out.Glyphs))
	var pen float64
	for _, g := range out.Glyphs {
		idx := g.TextIndex()
		if idx < 0 || idx >= len(runes) {
			continue
		}
		glyphs = append(glyphs, positioned{
			r: runes[idx],
			x: pen + float64(g.XOffset)/64,
			y: -float64(g.YOffset) / 64,
		})
		pen += float64(g.Advance) / 64
	}
	return glyphs, pen
}

func firstLetter(runes []rune) rune {
	for _, r := range runes {
		if r != ' ' && r != '\t' {
			return r
		}
	}
	return 'a'
}

// baselineShift returns the offset to add to a y on baseline b to reach the
// alphabetic baseline.
func baselineShift(b vbtext.Baseline, m font.Metrics) float64 {
	ascent := float64(m.Ascent) / 64
	descent := float64(m.Descent) / 64
	switch b {
	case vbtext.BaselineTop:
		return ascent
	case vbtext.BaselineHanging:
		return ascent * 0.8
	case vbtext.BaselineMiddle:
		return (ascent - descent) / 2
	case vbtext.BaselineIdeographic, vbtext.BaselineBottom:
		return -descent
	default:
		return 0
	}
}

// FillText draws text with the current font, fill style and baseline so that
// (x, y), mapped through the current transform, lies on the baseline at the
// start of the text. Text is drawn upright; the transform's scale factor
// scales the font size.
func (c *Canvas) FillText(text string, x, y float64) {
	if text == "" {
		return
	}
	size := c.state.font.Size * c.state.matrix.ScaleFactor()
	if size <= 0 {
		return
	}

	fam, err := lookupFamily(c.state.font.Family)
	if err != nil {
		vbtext.Logger().Warn("canvas: font unavailable", slog.Any("error", err))
		return
	}

	face, err := opentype.NewFace(fam.sfnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		vbtext.Logger().Warn("canvas: face creation failed", slog.Any("error", err))
		return
	}
	defer func() {
		_ = face.Close()
	}()

	ox, oy := c.state.matrix.Apply(x, y)
	oy += baselineShift(c.state.baseline, face.Metrics())

	src := image.NewUniform(c.state.fill)
	bounds := c.img.Bounds()
	glyphs, _ := shape(fam, text, size)
	for _, g := range glyphs {
		px, py := ox+g.x, oy+g.y
		// A glyph reaches at most size pixels from its dot. Anything
		// further out is invisible and may overflow 26.6 fixed point.
		if !(px > float64(bounds.Min.X)-size && px < float64(bounds.Max.X)+size &&
			py > float64(bounds.Min.Y)-size && py < float64(bounds.Max.Y)+size) {
			continue
		}
		dot := fixed.Point26_6{
			X: fixed.Int26_6(px * 64),
			Y: fixed.Int26_6(py * 64),
		}
		dr, mask, maskp, _, ok := face.Glyph(dot, g.r)
		if !ok {
			continue
		}
		draw.DrawMask(c.img, dr, src, image.Point{}, mask, maskp, draw.Over)
	}
}

// MeasureText returns the advance width of text in the current font,
// in user-space units.
func (c *Canvas) MeasureText(text string) float64 {
	if text == "" || c.state.font.Size <= 0 {
		return 0
	}
	fam, err := lookupFamily(c.state.font.Family)
	if err != nil {
		return 0
	}
	_, w := shape(fam, text, c.state.font.Size)
	return w
}
