package engine

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/opentransit/engine/deps"
)

// Triangle is a filled triangle whose vertices sit inside its Size box. It is
// scaled and rotated (in degrees) about its origin point.
type Triangle struct {
	Drawable

	vertices [3]Vec2 // local, within [0,0]-[Size]
	renderer Renderer
}

// NewTriangle creates an isosceles triangle with the apex at the top centre.
func NewTriangle(name string, base, height float64) *Triangle {
	t := &Triangle{Drawable: NewDrawable(name)}
	t.Size = Vec2{base, height}
	t.vertices = [3]Vec2{
		{base / 2, 0},
		{0, height},
		{base, height},
	}
	return t
}

// NewTriangleSides creates a triangle from its base and the lengths of the
// left and right sides. The base lies along the bottom edge and the apex is
// placed by the law of cosines; the bounding box is shifted so every vertex
// lies inside Size. Panics if base is not positive.
func NewTriangleSides(name string, base, left, right float64) *Triangle {
	if !(base > 0) {
		panic("engine: triangle base must be positive")
	}
	x := (base*base + left*left - right*right) / (2 * base)
	height := math.Sqrt(math.Abs(left*left - x*x))

	minX := math.Min(0, math.Min(base, x))
	maxX := math.Max(0, math.Max(base, x))

	t := &Triangle{Drawable: NewDrawable(name)}
	t.Size = Vec2{maxX - minX, height}
	t.vertices = [3]Vec2{
		{x - minX, 0},
		{-minX, height},
		{base - minX, height},
	}
	return t
}

// ResolvedSlots implements deps.Dependant.
func (t *Triangle) ResolvedSlots() []deps.Slot {
	return []deps.Slot{deps.Resolve("renderer", &t.renderer)}
}

// Vertices returns the local vertices.
func (t *Triangle) Vertices() [3]Vec2 {
	return t.vertices
}

// ScreenVertices returns the vertices in screen space for the geometry
// resolved during the last Update.
func (t *Triangle) ScreenVertices() [3]Vec2 {
	originOffset := t.Origin.Offset(t.DrawSize())
	pivot := t.DrawPosition().Add(originOffset)

	sin, cos := math.Sincos(t.Rotation * math.Pi / 180)

	var out [3]Vec2
	for i, v := range t.vertices {
		local := v.Sub(originOffset).Mul(t.Scale)
		out[i] = Vec2{
			X: local.X*cos - local.Y*sin + pivot.X,
			Y: local.X*sin + local.Y*cos + pivot.Y,
		}
	}
	return out
}

// Draw fills the transformed triangle.
func (t *Triangle) Draw(screen *ebiten.Image) {
	t.renderer.FillTriangle(screen, t.ScreenVertices(), t.Color)
}
