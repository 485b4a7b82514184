package engine

import (
	"fmt"

	"github.com/opentransit/engine/deps"
)

// Load runs the load sequence on n and its subtree: derive n's scope from
// parent, inject n's resolved slots from it, mark n loaded, then load each
// attached child against n's scope. Already loaded nodes are skipped.
//
// The first failure stops the sequence and is returned; the failing node and
// everything below it stay unloaded and receive no Update or Draw calls.
func Load(n Node, parent *deps.Container) error {
	d := n.Base()
	if d.loaded {
		return nil
	}

	scope := deps.DeriveScope(n, parent)
	if err := deps.Inject(n, scope); err != nil {
		err = fmt.Errorf("load %T %q: %w", n, d.Name, err)
		emit(parent, LifecycleEvent{Type: EventLoadFailed, NodeID: d.ID, Name: d.Name, Err: err})
		return err
	}
	d.scope = scope
	d.loaded = true
	emit(scope, LifecycleEvent{Type: EventLoaded, NodeID: d.ID, Name: d.Name})

	if cn, ok := n.(compositeNode); ok {
		c := cn.composite()
		for _, child := range c.attached() {
			if err := Load(child, scope); err != nil {
				return err
			}
		}
	}
	return nil
}

// unload drops the load state of n and its subtree so that attaching it
// again reruns the load sequence against the new parent's scope.
func unload(n Node) {
	d := n.Base()
	if !d.loaded {
		return
	}
	emit(d.scope, LifecycleEvent{Type: EventUnloaded, NodeID: d.ID, Name: d.Name})
	d.loaded = false
	d.scope = nil

	if cn, ok := n.(compositeNode); ok {
		for _, child := range cn.composite().attached() {
			unload(child)
		}
	}
}

// attached returns the children whose parent is c, including additions still
// queued by a running pass.
func (c *CompositeDrawable) attached() []Node {
	if len(c.pending) == 0 {
		return c.children
	}
	out := make([]Node, 0, len(c.children)+len(c.pending))
	seen := make(map[Node]bool, len(c.children)+len(c.pending))
	add := func(n Node) {
		if n.Base().parent == c && !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	for _, child := range c.children {
		add(child)
	}
	for _, op := range c.pending {
		if op.kind == opAdd {
			add(op.node)
		}
	}
	return out
}
