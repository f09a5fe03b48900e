package slider

import (
	"fmt"
	"strings"
)

// Point is a pointer position in the renderer's coordinate space.
type Point struct {
	X, Y float64
}

// Bounds is the on-screen rectangle of the track.
type Bounds struct {
	Left, Top     float64
	Width, Height float64
}

// Track reports where the track currently sits on screen. Layout belongs to
// the renderer, so the slider asks for it on every pointer sample.
type Track interface {
	Bounds() Bounds
}

// TrackFunc adapts a function to the Track interface.
type TrackFunc func() Bounds

// Bounds calls f.
func (f TrackFunc) Bounds() Bounds { return f() }

// Axis maps pointer positions to track fractions and back. Horizontal and
// vertical sliders share every other piece of behavior.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ParseAxis accepts "horizontal"/"h" and "vertical"/"v", case-insensitively.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	}

	return Horizontal, fmt.Errorf("invalid axis %q: must be 'horizontal' or 'vertical'", s)
}

// Coord returns the coordinate of p along the axis.
func (a Axis) Coord(p Point) float64 {
	if a == Vertical {
		return p.Y
	}

	return p.X
}

// Origin returns the leading edge of b along the axis.
func (a Axis) Origin(b Bounds) float64 {
	if a == Vertical {
		return b.Top
	}

	return b.Left
}

// Extent returns the length of b along the axis.
func (a Axis) Extent(b Bounds) float64 {
	if a == Vertical {
		return b.Height
	}

	return b.Width
}

// Fraction converts p to a position along the track. The result is not
// clamped; points before the origin give negative fractions and points past
// the end give fractions above one. A zero-length track yields 0.
func (a Axis) Fraction(p Point, b Bounds) float64 {
	extent := a.Extent(b)
	if extent == 0 {
		return 0
	}

	return (a.Coord(p) - a.Origin(b)) / extent
}

// Position converts a fraction back to a coordinate along the track.
func (a Axis) Position(fraction float64, b Bounds) float64 {
	return a.Origin(b) + fraction*a.Extent(b)
}
