package engine

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Renderer is the drawing backend nodes resolve from their scope. It only
// receives geometry that layout has already resolved.
type Renderer interface {
	FillRect(dst *ebiten.Image, r image.Rectangle, c Color)
	FillTriangle(dst *ebiten.Image, pts [3]Vec2, c Color)
	DebugText(dst *ebiten.Image, text string, at image.Point)
}

// Viewport reports the size of the render surface.
type Viewport interface {
	Size() Vec2
}

// EbitenRenderer draws with Ebitengine primitives using WhitePixel as the
// source texture.
type EbitenRenderer struct {
	vertices [3]ebiten.Vertex
	indices  [3]uint16
}

// NewEbitenRenderer creates a renderer drawing to *ebiten.Image targets.
func NewEbitenRenderer() *EbitenRenderer {
	return &EbitenRenderer{indices: [3]uint16{0, 1, 2}}
}

// FillRect fills r with c. Empty rectangles draw nothing.
func (r *EbitenRenderer) FillRect(dst *ebiten.Image, rect image.Rectangle, c Color) {
	if dst == nil || rect.Empty() {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(c.RGBA())
	dst.DrawImage(WhitePixel, &op)
}

// FillTriangle fills the triangle pts with c.
func (r *EbitenRenderer) FillTriangle(dst *ebiten.Image, pts [3]Vec2, c Color) {
	if dst == nil {
		return
	}
	for i, p := range pts {
		r.vertices[i] = ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: float32(c.R),
			ColorG: float32(c.G),
			ColorB: float32(c.B),
			ColorA: float32(c.A),
		}
	}
	op := ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(r.vertices[:], r.indices[:], WhitePixel, &op)
}

// DebugText prints text with the built-in debug font, top-left at at.
func (r *EbitenRenderer) DebugText(dst *ebiten.Image, text string, at image.Point) {
	if dst == nil {
		return
	}
	ebitenutil.DebugPrintAt(dst, text, at.X, at.Y)
}
