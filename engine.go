package engine

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R float64 `yaml:"r" validate:"gte=0,lte=1"`
	G float64 `yaml:"g" validate:"gte=0,lte=1"`
	B float64 `yaml:"b" validate:"gte=0,lte=1"`
	A float64 `yaml:"a" validate:"gte=0,lte=1"`
}

// ColorWhite is the default draw color.
var ColorWhite = Color{1, 1, 1, 1}

// RGBA converts c to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	clamp := func(v float64) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}
	return color.RGBA{
		R: clamp(c.R * c.A),
		G: clamp(c.G * c.A),
		B: clamp(c.B * c.A),
		A: clamp(c.A),
	}
}

// Vec2 is a 2D vector used for positions, sizes, scales and offsets.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul returns the component-wise product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

// Point truncates v toward negative infinity on each axis.
func (v Vec2) Point() image.Point {
	return image.Pt(int(math.Floor(v.X)), int(math.Floor(v.Y)))
}

// WhitePixel is a 1x1 white image used to fill solid rectangles and triangles.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.RGBA())
}

// Axes selects the X axis, the Y axis, both or neither.
type Axes uint8

const (
	AxesNone Axes = 0
	AxesX    Axes = 1
	AxesY    Axes = 2
	AxesBoth      = AxesX | AxesY
)

// Has reports whether every axis in o is set in a.
func (a Axes) Has(o Axes) bool { return a&o == o && o != AxesNone }

// Anchor names one of the nine standard points on a rectangle. Each value is
// the union of one horizontal selector (AnchorX0..AnchorX2) and one vertical
// selector (AnchorY0..AnchorY2).
type Anchor uint8

const (
	AnchorY0 Anchor = 1 << iota // top
	AnchorY1                    // vertical centre
	AnchorY2                    // bottom
	AnchorX0                    // left
	AnchorX1                    // horizontal centre
	AnchorX2                    // right

	// AnchorCustom marks a node whose offsets are managed by the caller.
	AnchorCustom
)

const (
	TopLeft      = AnchorY0 | AnchorX0
	TopCentre    = AnchorY0 | AnchorX1
	TopRight     = AnchorY0 | AnchorX2
	CentreLeft   = AnchorY1 | AnchorX0
	Centre       = AnchorY1 | AnchorX1
	CentreRight  = AnchorY1 | AnchorX2
	BottomLeft   = AnchorY2 | AnchorX0
	BottomCentre = AnchorY2 | AnchorX1
	BottomRight  = AnchorY2 | AnchorX2
)

// Offset returns the position of the anchor point inside a rectangle of the
// given size, measured from its top-left corner. Start selectors (and
// AnchorCustom) contribute nothing.
func (a Anchor) Offset(size Vec2) Vec2 {
	var off Vec2
	switch {
	case a&AnchorX1 != 0:
		off.X = size.X / 2
	case a&AnchorX2 != 0:
		off.X = size.X
	}
	switch {
	case a&AnchorY1 != 0:
		off.Y = size.Y / 2
	case a&AnchorY2 != 0:
		off.Y = size.Y
	}
	return off
}

// FrameTime is the timing information handed to Update each frame.
type FrameTime struct {
	Elapsed time.Duration // since the previous frame
	Total   time.Duration // since the first frame
}

// Seconds returns Elapsed in seconds.
func (ft FrameTime) Seconds() float64 {
	return ft.Elapsed.Seconds()
}
