package vbtext

import (
	"image/color"
	"strconv"
)

// Canvas is the part of the host drawing surface the fallback touches.
// Implementations follow HTML canvas semantics: Save pushes the full drawing
// state and Restore pops it.
type Canvas interface {
	Save()
	Restore()
	SetFillStyle(c color.Color)
	SetFont(f Font)
	SetTextBaseline(b Baseline)
	FillText(text string, x, y float64)
	Translate(dx, dy float64)
}

// Font selects a native font by generic family and pixel size.
type Font struct {
	Family string
	Size   float64
}

// String returns the CSS shorthand, e.g. "16px monospace".
func (f Font) String() string {
	return strconv.FormatFloat(f.Size, 'f', -1, 64) + "px " + f.Family
}

// Baseline specifies which line of the text sits on the y coordinate passed
// to FillText.
type Baseline int

const (
	// BaselineAlphabetic places y on the alphabetic baseline.
	BaselineAlphabetic Baseline = iota
	// BaselineTop places y at the top of the em box.
	BaselineTop
	// BaselineHanging places y on the hanging baseline.
	BaselineHanging
	// BaselineMiddle places y at the middle of the em box.
	BaselineMiddle
	// BaselineIdeographic places y on the ideographic baseline.
	BaselineIdeographic
	// BaselineBottom places y at the bottom of the em box.
	BaselineBottom
)

// String returns the canvas keyword for the baseline.
func (b Baseline) String() string {
	switch b {
	case BaselineAlphabetic:
		return "alphabetic"
	case BaselineTop:
		return "top"
	case BaselineHanging:
		return "hanging"
	case BaselineMiddle:
		return "middle"
	case BaselineIdeographic:
		return "ideographic"
	case BaselineBottom:
		return "bottom"
	default:
		return "unknown"
	}
}
