// Package canvas provides a software drawing surface with an HTML canvas
// style API: a save/restore state stack, affine transforms, path filling and
// native text drawing.
//
// Canvas implements [vbtext.Canvas] and the path operations the vector host
// renderer needs, so a whole game HUD can be drawn headlessly:
//
//	c := canvas.New(320, 240)
//	c.SetFillStyle(color.Black)
//	c.SetFont(vbtext.Font{Family: "monospace", Size: 16})
//	c.FillText("READY", 20, 40)
//	_ = c.SavePNG("hud.png")
package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/vbtext"
)

// state is the part of the canvas saved by Save and restored by Restore.
type state struct {
	matrix   Matrix
	fill     color.Color
	font     vbtext.Font
	baseline vbtext.Baseline
}

func defaultState() state {
	return state{
		matrix:   Identity(),
		fill:     color.Black,
		font:     vbtext.Font{Family: "sans-serif", Size: 10},
		baseline: vbtext.BaselineAlphabetic,
	}
}

// Canvas is a software drawing surface backed by an *image.RGBA.
// A Canvas is not safe for concurrent use.
type Canvas struct {
	img   *image.RGBA
	state state
	stack []state

	path *path
	rast *vector.Rasterizer
}

// Ensure Canvas implements vbtext.Canvas.
var _ vbtext.Canvas = (*Canvas)(nil)

// New creates a transparent canvas with the given dimensions.
func New(width, height int) *Canvas {
	return NewForImage(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewForImage creates a canvas that draws onto img.
func NewForImage(img *image.RGBA) *Canvas {
	return &Canvas{
		img:   img,
		state: defaultState(),
		path:  &path{},
	}
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int { return c.img.Bounds().Dx() }

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Clear fills the whole canvas with col, ignoring the transform.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// Save pushes the current transform, fill style, font and baseline.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the state saved by the matching Save.
// Restore without a matching Save does nothing.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Depth returns the number of saved states.
func (c *Canvas) Depth() int { return len(c.stack) }

// Translate applies a translation to the transformation matrix.
func (c *Canvas) Translate(dx, dy float64) {
	c.state.matrix = c.state.matrix.Multiply(Translate(dx, dy))
}

// Scale applies a scaling transformation.
func (c *Canvas) Scale(sx, sy float64) {
	c.state.matrix = c.state.matrix.Multiply(Scale(sx, sy))
}

// Matrix returns the current transformation matrix.
func (c *Canvas) Matrix() Matrix { return c.state.matrix }

// SetFillStyle sets the color used by Fill and FillText. Nil is ignored.
func (c *Canvas) SetFillStyle(col color.Color) {
	if col == nil {
		return
	}
	c.state.fill = col
}

// FillStyle returns the current fill color.
func (c *Canvas) FillStyle() color.Color { return c.state.fill }

// SetFont sets the font used by FillText.
func (c *Canvas) SetFont(f vbtext.Font) { c.state.font = f }

// Font returns the current font.
func (c *Canvas) Font() vbtext.Font { return c.state.font }

// SetTextBaseline sets the baseline used by FillText.
func (c *Canvas) SetTextBaseline(b vbtext.Baseline) { c.state.baseline = b }

// TextBaseline returns the current text baseline.
func (c *Canvas) TextBaseline() vbtext.Baseline { return c.state.baseline }

// EncodePNG writes the canvas to w as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(name string) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return c.EncodePNG(f)
}
