package engine

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/opentransit/engine/deps"
)

// Node is implemented by every element of the scene graph. Concrete nodes
// embed Drawable (or CompositeDrawable) and override Update and Draw, calling
// the embedded implementation first so geometry is resolved before use.
type Node interface {
	Base() *Drawable
	Update(ft FrameTime)
	Draw(screen *ebiten.Image)
}

// nodeIDCounter is a plain counter (no atomic, the engine is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Drawable holds the geometry of a single node and resolves it against the
// parent once per frame.
type Drawable struct {
	// Identity
	ID   uint32
	Name string

	// Layout inputs
	Position Vec2
	Size     Vec2
	Scale    Vec2
	Rotation float64 // degrees, clockwise
	Color    Color

	RelativeSizeAxes     Axes
	RelativePositionAxes Axes
	Anchor               Anchor
	Origin               Anchor

	zIndex int

	// Hierarchy. The parent owns this node through its child list.
	parent *CompositeDrawable

	// Resolved by updateLayout each frame.
	drawPosition Vec2
	drawSize     Vec2
	screenRect   image.Rectangle

	// Load state
	scope  *deps.Container
	loaded bool
}

// NewDrawable returns a detached Drawable with default scale, color and
// anchoring. Embedders assign it to their Drawable field.
func NewDrawable(name string) Drawable {
	d := Drawable{Name: name}
	drawableDefaults(&d)
	return d
}

// drawableDefaults sets the field values shared by all constructors.
func drawableDefaults(d *Drawable) {
	d.ID = nextNodeID()
	d.Scale = Vec2{1, 1}
	d.Color = ColorWhite
	d.Anchor = TopLeft
	d.Origin = TopLeft
}

// Base returns d. It lets Node values reach the embedded Drawable.
func (d *Drawable) Base() *Drawable { return d }

// Update resolves this node's geometry for the frame.
func (d *Drawable) Update(ft FrameTime) {
	d.updateLayout()
}

// Draw does nothing; visual nodes override it.
func (d *Drawable) Draw(screen *ebiten.Image) {}

// Parent returns the composite this node is attached to, or nil.
func (d *Drawable) Parent() *CompositeDrawable {
	return d.parent
}

// ZIndex returns the draw-order key among siblings.
func (d *Drawable) ZIndex() int {
	return d.zIndex
}

// SetZIndex sets the draw-order key and tells the parent its draw order is
// stale.
func (d *Drawable) SetZIndex(z int) {
	if d.zIndex == z {
		return
	}
	d.zIndex = z
	if d.parent != nil {
		d.parent.ChildOrderChanged()
	}
}

// DrawPosition returns the absolute top-left corner resolved this frame.
func (d *Drawable) DrawPosition() Vec2 {
	return d.drawPosition
}

// DrawSize returns the absolute size resolved this frame.
func (d *Drawable) DrawSize() Vec2 {
	return d.drawSize
}

// ScreenRect returns the integer screen rectangle resolved this frame, for
// hit testing and collision checks.
func (d *Drawable) ScreenRect() image.Rectangle {
	return d.screenRect
}

// Contains reports whether the screen point p lies inside ScreenRect.
func (d *Drawable) Contains(p image.Point) bool {
	return p.In(d.screenRect)
}

// IsLoaded reports whether the node has completed its load sequence and is
// reachable from a loaded root.
func (d *Drawable) IsLoaded() bool {
	return d.loaded
}

// Scope returns the container this node's children resolve from. It is nil
// until the node is loaded.
func (d *Drawable) Scope() *deps.Container {
	return d.scope
}
