package engine

// Container is a composite whose public child operations are restricted to
// nodes of type T.
type Container[T Node] struct {
	CompositeDrawable
}

// Group is a Container accepting any Node.
type Group = Container[Node]

// NewContainer creates a detached container.
func NewContainer[T Node](name string) *Container[T] {
	return &Container[T]{CompositeDrawable: NewComposite(name)}
}

// NewGroup creates a detached Group.
func NewGroup(name string) *Group {
	return NewContainer[Node](name)
}

// Add appends child. See CompositeDrawable.AddInternal.
func (c *Container[T]) Add(child T) error {
	return c.AddInternal(child)
}

// Remove detaches child, reporting whether it was attached here.
func (c *Container[T]) Remove(child T) bool {
	return c.RemoveInternal(child)
}

// Clear detaches every child.
func (c *Container[T]) Clear() {
	c.ClearInternal()
}

// Children returns a copy of the child list in list order.
func (c *Container[T]) Children() []T {
	out := make([]T, 0, len(c.children))
	for _, child := range c.children {
		if t, ok := child.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// SetChildren replaces the children with the given list, preserving its
// order. It stops at the first child that fails to load.
func (c *Container[T]) SetChildren(children []T) error {
	c.ClearInternal()
	for _, child := range children {
		if err := c.Add(child); err != nil {
			return err
		}
	}
	return nil
}
