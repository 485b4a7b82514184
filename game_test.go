package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/tanema/gween/ease"

	"github.com/opentransit/engine/deps"
)

func TestNewGameRootScope(t *testing.T) {
	g := newTestGame(t)
	c := g.Dependencies()

	if got, ok := deps.Get[*Game](c, ""); !ok || got != g {
		t.Error("*Game not in root scope")
	}
	if vp, ok := deps.Get[Viewport](c, ""); !ok || vp.Size() != (Vec2{800, 600}) {
		t.Error("Viewport not in root scope or wrong size")
	}
	if _, ok := deps.Get[Renderer](c, ""); !ok {
		t.Error("Renderer not in root scope")
	}
	if _, ok := deps.Get[*zerolog.Logger](c, ""); !ok {
		t.Error("*zerolog.Logger not in root scope")
	}
	if a, ok := deps.Get[*Animator](c, ""); !ok || a != g.Animator() {
		t.Error("*Animator not in root scope")
	}
	if _, ok := deps.Get[EventSink](c, ""); !ok {
		t.Error("EventSink not in root scope")
	}
	if _, ok := deps.Get[*FrameMetrics](c, ""); ok {
		t.Error("*FrameMetrics cached although metrics are disabled")
	}
}

func TestGameLoadResolvesFromRootScope(t *testing.T) {
	g := newTestGame(t)
	box := NewBox("box", Vec2{1, 1}, ColorWhite)
	mustAdd(t, g.Root(), box)

	if err := g.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !g.IsLoaded() || !box.IsLoaded() {
		t.Error("tree not loaded")
	}
	if err := g.Load(); err != nil {
		t.Errorf("second Load: %v", err)
	}
}

func TestGameLoadFailure(t *testing.T) {
	g := newTestGame(t)
	c := newConsumer("needs-service")
	mustAdd(t, g.Root(), c)

	if err := g.Load(); !errors.Is(err, deps.ErrUnresolved) {
		t.Fatalf("Load err = %v, want ErrUnresolved", err)
	}
	if err := g.Update(); err == nil {
		t.Error("Update should report the load failure")
	}
	if c.updates != 0 {
		t.Errorf("unloaded node updated %d times", c.updates)
	}
}

func TestGameCallerCapabilities(t *testing.T) {
	g := newTestGame(t)
	svc := &service{name: "timetable"}
	g.Dependencies().Cache(svc)
	c := newConsumer("board")
	mustAdd(t, g.Root(), c)

	if err := g.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.svc != svc {
		t.Error("node did not resolve a capability cached before Load")
	}
}

func TestGameTickSizesRootToSurface(t *testing.T) {
	g := newTestGame(t)
	panel := NewBox("panel", Vec2{0.5, 0.5}, ColorWhite)
	panel.RelativeSizeAxes = AxesBoth
	mustAdd(t, g.Root(), panel)
	if err := g.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	g.Tick(frame)
	assertVec(t, "panel size", panel.DrawSize(), Vec2{400, 300})

	if w, h := g.Layout(1024, 768); w != 1024 || h != 768 {
		t.Errorf("Layout = %d,%d, want 1024,768", w, h)
	}
	assertVec(t, "Size", g.Size(), Vec2{1024, 768})
	g.Tick(frame)
	assertVec(t, "panel size after resize", panel.DrawSize(), Vec2{512, 384})
}

func TestGameUpdateLoadsLazily(t *testing.T) {
	g := newTestGame(t)
	c := newConsumer("c")
	g.Dependencies().Cache(&service{})
	mustAdd(t, g.Root(), c)

	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !g.IsLoaded() || c.updates != 1 {
		t.Errorf("loaded=%v updates=%d, want true 1", g.IsLoaded(), c.updates)
	}
}

func TestGameUpdateStopsWhenContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	g := newTestGame(t, WithContext(ctx))
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	cancel()
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update err = %v, want ebiten.Termination", err)
	}
}

func TestGameFrameTime(t *testing.T) {
	g := newTestGame(t, withClock(fixedClock(10*time.Millisecond)))

	first := g.frameTime()
	if first.Elapsed != 0 || first.Total != 0 {
		t.Errorf("first frame = %+v, want zero", first)
	}
	g.frameTime()
	third := g.frameTime()
	if third.Elapsed != 10*time.Millisecond || third.Total != 20*time.Millisecond {
		t.Errorf("third frame = %+v, want 10ms/20ms", third)
	}
}

func TestGameAdvancesAnimator(t *testing.T) {
	g := newTestGame(t)
	node := NewDrawable("n")
	g.Animator().Play(TweenRotation(&node, 90, 0.5, ease.Linear))
	g.Tick(FrameTime{Elapsed: 500 * time.Millisecond})
	if g.Animator().Active() != 0 {
		t.Errorf("Active = %d, want 0", g.Animator().Active())
	}
}

func TestGameDraw(t *testing.T) {
	r := &fakeRenderer{}
	g := newTestGame(t, WithRenderer(r))
	mustAdd(t, g.Root(), NewBox("a", Vec2{10, 10}, ColorWhite), NewBox("b", Vec2{10, 10}, ColorWhite))
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	g.Draw(nil)
	if len(r.rects) != 2 {
		t.Errorf("FillRect calls = %d, want 2", len(r.rects))
	}
}

func TestGameEmitEventFansOut(t *testing.T) {
	sink := &recordingSink{}
	m := NewFrameMetrics("test")
	g := newTestGame(t, WithEventSink(sink), WithMetrics(m))
	mustAdd(t, g.Root(), newProbe("p"))

	if err := g.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if n := sink.count(EventLoaded); n != 2 {
		t.Errorf("loaded events = %d, want 2", n)
	}
	if got := lifecycleCount(t, m, "loaded"); got != 2 {
		t.Errorf("loaded metric = %v, want 2", got)
	}
}
