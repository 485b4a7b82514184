// Package engine is the layout and dependency core of a retained-mode 2D
// scene graph on [Ebitengine].
//
// A scene is a tree of [Node] values. Every node embeds a [Drawable] holding
// its layout rules (position, size, anchor, origin, relative axes) and
// resolves its on-screen geometry from its parent once per frame.
// [CompositeDrawable] and the typed [Container] hold children; [Group] is
// the untyped container used for most subtrees.
//
// # Quick start
//
//	cfg := engine.DefaultRunConfig()
//	cfg.Title = "Depot"
//	g := engine.NewGame(cfg)
//
//	panel := engine.NewBox("panel", engine.Vec2{1, 0.25}, engine.Color{R: 0.2, G: 0.2, B: 0.3, A: 1})
//	panel.RelativeSizeAxes = engine.AxesBoth
//	panel.Anchor = engine.BottomCentre
//	panel.Origin = engine.BottomCentre
//	g.Root().Add(panel)
//
//	if err := engine.Run(g); err != nil {
//		log.Fatal(err)
//	}
//
// # Layout
//
// Each frame a node computes its draw size (its Size, or a fraction of the
// parent's draw size on relative axes) and its draw position:
// the parent's draw position, plus the anchor point on the parent, plus the
// Position (a fraction of the parent size on relative axes), minus the
// origin point on itself. Layout is recomputed every frame.
//
// # Dependencies
//
// When a node joins a loaded tree it runs the load sequence: it derives its
// scope from its parent's scope (publishing the values it declares through
// [deps.Provider]), fills the slots it declares through [deps.Dependant],
// and then loads its children. The root scope belongs to [Game] and holds
// the [Renderer], the [Viewport], the logger and the [Animator].
//
// # Drawing order
//
// Children update in insertion order and draw in ascending z-index order,
// ties keeping insertion order.
//
// [Ebitengine]: https://ebitengine.org
package engine
