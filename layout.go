package engine

import "image"

// updateLayout resolves size, position and screen rectangle against the
// parent's values for the current frame. The parent must already have been
// resolved this frame; the recursion in CompositeDrawable guarantees it.
//
//	size     = Size, or parentSize * Size on relative axes
//	position = parentPos + anchor(parentSize) - origin(size) + offset
//	offset   = Position, or Position * parentSize on relative axes
func (d *Drawable) updateLayout() {
	var parentPos, parentSize Vec2
	if d.parent != nil {
		parentPos = d.parent.drawPosition
		parentSize = d.parent.drawSize
	}

	size := d.Size
	if d.RelativeSizeAxes&AxesX != 0 {
		size.X = parentSize.X * d.Size.X
	}
	if d.RelativeSizeAxes&AxesY != 0 {
		size.Y = parentSize.Y * d.Size.Y
	}
	d.drawSize = size

	offset := d.Position
	if d.RelativePositionAxes&AxesX != 0 {
		offset.X *= parentSize.X
	}
	if d.RelativePositionAxes&AxesY != 0 {
		offset.Y *= parentSize.Y
	}

	d.drawPosition = parentPos.
		Add(d.Anchor.Offset(parentSize)).
		Sub(d.Origin.Offset(size)).
		Add(offset)

	topLeft := d.drawPosition.Point()
	d.screenRect = image.Rectangle{Min: topLeft, Max: topLeft.Add(size.Point())}
}
