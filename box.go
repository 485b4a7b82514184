package engine

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/opentransit/engine/deps"
)

// Box is a solid rectangle filling its screen rectangle with Color. Rotation
// and Scale are not applied.
type Box struct {
	Drawable

	renderer Renderer
}

// NewBox creates a box of the given size and color.
func NewBox(name string, size Vec2, c Color) *Box {
	b := &Box{Drawable: NewDrawable(name)}
	b.Size = size
	b.Color = c
	return b
}

// ResolvedSlots implements deps.Dependant.
func (b *Box) ResolvedSlots() []deps.Slot {
	return []deps.Slot{deps.Resolve("renderer", &b.renderer)}
}

// Draw fills the screen rectangle resolved during the last Update.
func (b *Box) Draw(screen *ebiten.Image) {
	b.renderer.FillRect(screen, b.ScreenRect(), b.Color)
}
