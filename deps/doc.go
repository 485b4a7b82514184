// Package deps provides the scoped dependency containers used by the engine's
// scene graph.
//
// A [Container] maps a (type, name) key to an instance and reads through to
// its parent when a key is missing locally. The engine creates one root
// container per [engine.Game] and derives child containers for nodes that
// publish capabilities to their subtree.
//
// Nodes declare what they need and what they publish explicitly, with no
// struct-tag or field scanning:
//
//	type Track struct {
//		engine.Drawable
//		renderer engine.Renderer
//		signals  *SignalBus
//	}
//
//	func (t *Track) ResolvedSlots() []deps.Slot {
//		return []deps.Slot{deps.Resolve("renderer", &t.renderer)}
//	}
//
//	func (t *Track) CachedBindings() []deps.Binding {
//		return []deps.Binding{deps.Cache("signals", t.signals)}
//	}
//
// [DeriveScope] builds the container a node's children will see, and
// [Inject] fills the node's resolved slots from it.
package deps
