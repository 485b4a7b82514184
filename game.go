package engine

import (
	"context"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/opentransit/engine/deps"
)

// Game owns the root of the scene tree and the root dependency container,
// and drives Update and Draw once per frame. It implements ebiten.Game.
//
// The root container holds *Game, Viewport, Renderer, *zerolog.Logger,
// *Animator, *FrameMetrics (when enabled) and EventSink. Callers cache their
// own capabilities with Dependencies().Cache before Load.
type Game struct {
	cfg  RunConfig
	root *Group
	deps *deps.Container

	renderer Renderer
	animator *Animator
	metrics  *FrameMetrics
	sink     EventSink
	log      zerolog.Logger
	debug    bool

	ctx     context.Context
	loaded  bool
	surface Vec2

	now   func() time.Time
	start time.Time
	last  time.Time

	screenshotQueue []string
	pendingShots    int
}

// GameOption customizes a Game.
type GameOption func(*Game)

// WithLogger sets the logger. Defaults to zerolog's global logger.
func WithLogger(l zerolog.Logger) GameOption {
	return func(g *Game) { g.log = l }
}

// WithRenderer replaces the Ebitengine renderer.
func WithRenderer(r Renderer) GameOption {
	return func(g *Game) { g.renderer = r }
}

// WithEventSink forwards lifecycle events to s in addition to logging and
// metrics.
func WithEventSink(s EventSink) GameOption {
	return func(g *Game) { g.sink = s }
}

// WithMetrics records frame metrics into m, overriding RunConfig.Metrics.
func WithMetrics(m *FrameMetrics) GameOption {
	return func(g *Game) { g.metrics = m }
}

// WithContext ends the frame loop once ctx is done.
func WithContext(ctx context.Context) GameOption {
	return func(g *Game) { g.ctx = ctx }
}

// withClock replaces time.Now; used by tests.
func withClock(now func() time.Time) GameOption {
	return func(g *Game) { g.now = now }
}

// NewGame creates a game with an empty root Group sized to the configured
// window.
func NewGame(cfg RunConfig, opts ...GameOption) *Game {
	g := &Game{
		cfg:      cfg,
		root:     NewGroup("root"),
		deps:     deps.New(nil),
		animator: NewAnimator(),
		log:      log.Logger,
		ctx:      context.Background(),
		now:      time.Now,
		surface:  Vec2{float64(cfg.Width), float64(cfg.Height)},
	}
	if cfg.Metrics {
		g.metrics = NewFrameMetrics("opentransit")
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.renderer == nil {
		g.renderer = NewEbitenRenderer()
	}
	g.SetDebugMode(cfg.Debug)

	c := g.deps
	c.Cache(g)
	deps.CacheAs[Viewport](c, g)
	deps.CacheAs[Renderer](c, g.renderer)
	deps.CacheAs[EventSink](c, EventSink(g))
	c.Cache(&g.log)
	c.Cache(g.animator)
	if g.metrics != nil {
		c.Cache(g.metrics)
	}
	return g
}

// Root returns the root node.
func (g *Game) Root() *Group {
	return g.root
}

// Dependencies returns the root container.
func (g *Game) Dependencies() *deps.Container {
	return g.deps
}

// Config returns the configuration the game was created with.
func (g *Game) Config() RunConfig {
	return g.cfg
}

// Animator returns the animator advanced before each update pass.
func (g *Game) Animator() *Animator {
	return g.animator
}

// Metrics returns the frame metrics, or nil when disabled.
func (g *Game) Metrics() *FrameMetrics {
	return g.metrics
}

// Size implements Viewport.
func (g *Game) Size() Vec2 {
	return g.surface
}

// SetDebugMode enables or disables the tree depth and child count warnings.
func (g *Game) SetDebugMode(enabled bool) {
	g.debug = enabled
	globalDebug = enabled
	debugLogger = g.log
}

// Load runs the load sequence on the tree. It is called by Run before the
// loop starts; calling it again after success is a no-op. On failure the
// whole tree is left unloaded.
func (g *Game) Load() error {
	if g.loaded {
		return nil
	}
	g.root.Size = g.surface
	if err := Load(g.root, g.deps); err != nil {
		unload(g.root)
		g.log.Error().Err(err).Msg("scene load failed")
		return err
	}
	g.loaded = true
	g.log.Debug().Int("nodes", CountNodes(g.root)).Msg("scene loaded")
	return nil
}

// IsLoaded reports whether Load has succeeded.
func (g *Game) IsLoaded() bool {
	return g.loaded
}

// EmitEvent implements EventSink: it logs the event, counts it and forwards
// it to the sink given with WithEventSink.
func (g *Game) EmitEvent(ev LifecycleEvent) {
	if ev.Type == EventLoadFailed {
		g.log.Warn().Err(ev.Err).Uint32("id", ev.NodeID).Str("node", ev.Name).Msg("node load failed")
	} else if g.debug {
		g.log.Debug().Stringer("event", ev.Type).Uint32("id", ev.NodeID).Str("node", ev.Name).Msg("node lifecycle")
	}
	g.metrics.ObserveLifecycle(ev)
	if g.sink != nil {
		g.sink.EmitEvent(ev)
	}
}

// Update implements ebiten.Game. It loads the tree on first use, handles
// the exit key and advances one frame.
func (g *Game) Update() error {
	if err := g.Load(); err != nil {
		return err
	}
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if g.cfg.ExitOnEscape && ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.Tick(g.frameTime())
	return nil
}

// frameTime measures wall-clock time since the previous call.
func (g *Game) frameTime() FrameTime {
	now := g.now()
	if g.start.IsZero() {
		g.start = now
		g.last = now
	}
	ft := FrameTime{Elapsed: now.Sub(g.last), Total: now.Sub(g.start)}
	g.last = now
	return ft
}

// Tick advances one frame: the root is resized to the surface, tweens are
// advanced and the tree is updated.
func (g *Game) Tick(ft FrameTime) {
	t0 := g.now()
	g.root.Size = g.surface
	g.animator.Update(ft)
	g.root.Update(ft)
	if g.metrics != nil {
		g.metrics.ObserveUpdate(g.now().Sub(t0), CountNodes(g.root))
	}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	t0 := g.now()
	if screen != nil {
		screen.Fill(g.cfg.ClearColor.RGBA())
	}
	g.root.Draw(screen)
	g.metrics.ObserveDraw(g.now().Sub(t0))
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The surface matches the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.surface = Vec2{float64(outsideWidth), float64(outsideHeight)}
	return outsideWidth, outsideHeight
}
