package engine

import (
	"reflect"

	"github.com/hajimehoshi/ebiten/v2"
)

// compositeNode is satisfied by any node embedding CompositeDrawable.
type compositeNode interface {
	Node
	composite() *CompositeDrawable
}

type childOpKind uint8

const (
	opAdd childOpKind = iota
	opRemove
	opClear
)

// childOp is a child-list mutation requested while the list was being
// iterated. Ops are applied in request order when the pass completes.
type childOp struct {
	kind childOpKind
	node Node
}

// CompositeDrawable is a Drawable that owns an ordered list of children and
// cascades Update and Draw to them, parent first.
//
// Update visits children in list order. Draw visits them in ascending
// ZIndex order, ties keeping list order.
type CompositeDrawable struct {
	Drawable

	children []Node

	// Draw order cache, rebuilt lazily when childrenSorted is false.
	sortedChildren []Node
	childrenSorted bool

	// iterating counts active passes over children; mutations requested
	// meanwhile go to pending.
	iterating int
	pending   []childOp
}

// NewComposite returns a detached CompositeDrawable with Drawable defaults.
func NewComposite(name string) CompositeDrawable {
	return CompositeDrawable{Drawable: NewDrawable(name)}
}

func (c *CompositeDrawable) composite() *CompositeDrawable { return c }

// InternalChildren returns the child list. The returned slice MUST NOT be
// mutated by the caller.
func (c *CompositeDrawable) InternalChildren() []Node {
	return c.children
}

// NumChildren returns the number of children.
func (c *CompositeDrawable) NumChildren() int {
	return len(c.children)
}

// AddInternal attaches child at the end of the child list. A child attached
// elsewhere is detached from its old parent first. If this composite is
// loaded the child is loaded against this composite's scope; on failure the
// child is left detached and the error is returned.
// Panics if child is nil, a typed nil, or an ancestor of this node (cycle).
func (c *CompositeDrawable) AddInternal(child Node) error {
	if isNilNode(child) || child.Base() == nil {
		panic("engine: cannot add nil child")
	}
	cd := child.Base()
	if isAncestor(cd, c) {
		panic("engine: adding child would create a cycle")
	}
	if cd.parent != nil {
		cd.parent.detach(child)
	}

	cd.parent = c
	if c.loaded {
		if err := Load(child, c.scope); err != nil {
			unload(child)
			cd.parent = nil
			return err
		}
	}

	if c.iterating > 0 {
		c.pending = append(c.pending, childOp{kind: opAdd, node: child})
	} else {
		c.children = append(c.children, child)
	}
	c.childrenSorted = false
	if globalDebug {
		debugCheckTreeDepth(cd)
		debugCheckChildCount(c)
	}
	return nil
}

// RemoveInternal detaches child and unloads its subtree. Returns false, and
// changes nothing, if child is not attached to this composite.
func (c *CompositeDrawable) RemoveInternal(child Node) bool {
	if isNilNode(child) || child.Base().parent != c {
		return false
	}
	c.detach(child)
	return true
}

// isNilNode reports whether n is nil or a nil pointer stored in the interface.
func isNilNode(n Node) bool {
	if n == nil {
		return true
	}
	rv := reflect.ValueOf(n)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// ClearInternal detaches and unloads every child.
func (c *CompositeDrawable) ClearInternal() {
	release := func(n Node) {
		if n.Base().parent == c {
			n.Base().parent = nil
			unload(n)
		}
	}
	for _, child := range c.children {
		release(child)
	}
	for _, op := range c.pending {
		if op.kind == opAdd {
			release(op.node)
		}
	}

	if c.iterating > 0 {
		c.pending = append(c.pending, childOp{kind: opClear})
	} else {
		clear(c.children)
		c.children = c.children[:0]
	}
	c.childrenSorted = false
}

// ChildOrderChanged marks the cached draw order stale. Children call it when
// their ZIndex changes.
func (c *CompositeDrawable) ChildOrderChanged() {
	c.childrenSorted = false
}

// Update resolves this node's geometry, then updates every loaded child.
func (c *CompositeDrawable) Update(ft FrameTime) {
	c.Drawable.Update(ft)
	c.UpdateChildren(ft)
}

// Draw draws this node, then every loaded child in draw order.
func (c *CompositeDrawable) Draw(screen *ebiten.Image) {
	c.Drawable.Draw(screen)
	c.DrawChildren(screen)
}

// UpdateChildren updates every loaded child in list order. Embedders that
// override Update call it after their own logic.
func (c *CompositeDrawable) UpdateChildren(ft FrameTime) {
	c.iterating++
	for _, child := range c.children {
		if c.participates(child) {
			child.Update(ft)
		}
	}
	c.endPass()
}

// DrawChildren draws every loaded child in ZIndex order.
func (c *CompositeDrawable) DrawChildren(screen *ebiten.Image) {
	if !c.childrenSorted {
		c.rebuildSortedChildren()
	}
	c.iterating++
	for _, child := range c.sortedChildren {
		if c.participates(child) {
			child.Draw(screen)
		}
	}
	c.endPass()
}

// participates reports whether child takes part in the current pass. Nodes
// detached or unloaded earlier in the pass are skipped.
func (c *CompositeDrawable) participates(child Node) bool {
	cd := child.Base()
	return cd.parent == c && cd.loaded
}

func (c *CompositeDrawable) endPass() {
	c.iterating--
	if c.iterating == 0 && len(c.pending) > 0 {
		c.applyPending()
	}
}

// applyPending replays the mutations queued during a pass.
func (c *CompositeDrawable) applyPending() {
	for _, op := range c.pending {
		switch op.kind {
		case opAdd:
			c.children = append(c.children, op.node)
		case opRemove:
			c.removeChildByPtr(op.node)
		case opClear:
			clear(c.children)
			c.children = c.children[:0]
		}
	}
	clear(c.pending)
	c.pending = c.pending[:0]
	c.childrenSorted = false
}

// detach clears child's parent, unloads it and removes it from the list,
// deferring the list change while a pass is running.
func (c *CompositeDrawable) detach(child Node) {
	child.Base().parent = nil
	unload(child)
	if c.iterating > 0 {
		c.pending = append(c.pending, childOp{kind: opRemove, node: child})
	} else {
		c.removeChildByPtr(child)
	}
	c.childrenSorted = false
}

// removeChildByPtr removes child from c.children without touching its parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (c *CompositeDrawable) removeChildByPtr(child Node) {
	for i, ch := range c.children {
		if ch == child {
			copy(c.children[i:], c.children[i+1:])
			c.children[len(c.children)-1] = nil
			c.children = c.children[:len(c.children)-1]
			return
		}
	}
}

// rebuildSortedChildren rebuilds the ZIndex-sorted draw order.
// Uses insertion sort: zero allocations, stable, and optimal for the typical
// case of few children that are nearly sorted (O(n) when already sorted).
func (c *CompositeDrawable) rebuildSortedChildren() {
	nc := len(c.children)
	if cap(c.sortedChildren) < nc {
		c.sortedChildren = make([]Node, nc)
	}
	clear(c.sortedChildren[nc:cap(c.sortedChildren)])
	c.sortedChildren = c.sortedChildren[:nc]
	copy(c.sortedChildren, c.children)
	for i := 1; i < nc; i++ {
		key := c.sortedChildren[i]
		j := i - 1
		for j >= 0 && c.sortedChildren[j].Base().zIndex > key.Base().zIndex {
			c.sortedChildren[j+1] = c.sortedChildren[j]
			j--
		}
		c.sortedChildren[j+1] = key
	}
	c.childrenSorted = true
}

// isAncestor reports whether candidate is c itself or one of its ancestors.
func isAncestor(candidate *Drawable, c *CompositeDrawable) bool {
	for p := c; p != nil; p = p.parent {
		if &p.Drawable == candidate {
			return true
		}
	}
	return false
}
