// Package outline parses typeface.js glyph outlines.
//
// An outline is a whitespace-separated command stream:
//
//	m x y                 move to (x, y)
//	l x y                 line to (x, y)
//	q x y cx cy           quadratic curve to (x, y) with control (cx, cy)
//	b x y c1x c1y c2x c2y cubic curve to (x, y) with controls c1 and c2
//	z                     close the subpath
//
// End points come before control points, as typeface.js writes them.
package outline

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for outline parsing.
var (
	// ErrUnknownCommand is returned for a command letter other than m, l, q, b or z.
	ErrUnknownCommand = errors.New("outline: unknown command")

	// ErrTruncated is returned when a command has fewer operands than it needs.
	ErrTruncated = errors.New("outline: truncated command")
)

// Op is a path command.
type Op byte

// Path commands.
const (
	MoveTo  Op = 'm'
	LineTo  Op = 'l'
	QuadTo  Op = 'q'
	CubicTo Op = 'b'
	Close   Op = 'z'
)

// operands returns how many numbers follow op.
func (op Op) operands() (int, bool) {
	switch op {
	case MoveTo, LineTo:
		return 2, true
	case QuadTo:
		return 4, true
	case CubicTo:
		return 6, true
	case Close:
		return 0, true
	default:
		return 0, false
	}
}

// Segment is one parsed command. X, Y is the end point; C1 and C2 are the
// control points of curves.
type Segment struct {
	Op       Op
	X, Y     float64
	C1X, C1Y float64
	C2X, C2Y float64
}

// Parse splits an outline string into segments. An empty outline yields no
// segments and no error.
func Parse(s string) ([]Segment, error) {
	fields := strings.Fields(s)
	var segs []Segment
	for i := 0; i < len(fields); {
		tok := fields[i]
		if len(tok) != 1 {
			return nil, fmt.Errorf("%w: %q at token %d", ErrUnknownCommand, tok, i)
		}
		op := Op(tok[0])
		n, ok := op.operands()
		if !ok {
			return nil, fmt.Errorf("%w: %q at token %d", ErrUnknownCommand, tok, i)
		}
		i++
		if i+n > len(fields) {
			return nil, fmt.Errorf("%w: %q at token %d", ErrTruncated, tok, i-1)
		}

		var v [6]float64
		for k := 0; k < n; k++ {
			f, err := strconv.ParseFloat(fields[i+k], 64)
			if err != nil {
				return nil, fmt.Errorf("outline: operand %d of %q: %w", k, tok, err)
			}
			v[k] = f
		}
		i += n

		segs = append(segs, Segment{
			Op: op,
			X:  v[0], Y: v[1],
			C1X: v[2], C1Y: v[3],
			C2X: v[4], C2Y: v[5],
		})
	}
	return segs, nil
}

// Pather receives path commands.
type Pather interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
}

// Trace replays segs onto p.
func Trace(p Pather, segs []Segment) {
	for _, s := range segs {
		switch s.Op {
		case MoveTo:
			p.MoveTo(s.X, s.Y)
		case LineTo:
			p.LineTo(s.X, s.Y)
		case QuadTo:
			p.QuadraticTo(s.C1X, s.C1Y, s.X, s.Y)
		case CubicTo:
			p.CubicTo(s.C1X, s.C1Y, s.C2X, s.C2Y, s.X, s.Y)
		case Close:
			p.ClosePath()
		}
	}
}
