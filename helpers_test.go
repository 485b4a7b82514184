package engine

import (
	"image"
	"math"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/opentransit/engine/deps"
)

// --- Test helpers -----------------------------------------------------------

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec(t *testing.T, name string, got, want Vec2) {
	t.Helper()
	if math.Abs(got.X-want.X) > epsilon || math.Abs(got.Y-want.Y) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

type rectCall struct {
	rect  image.Rectangle
	color Color
}

type textCall struct {
	text string
	at   image.Point
}

// fakeRenderer records draw calls instead of drawing.
type fakeRenderer struct {
	rects     []rectCall
	triangles [][3]Vec2
	texts     []textCall
}

func (r *fakeRenderer) FillRect(dst *ebiten.Image, rect image.Rectangle, c Color) {
	r.rects = append(r.rects, rectCall{rect, c})
}

func (r *fakeRenderer) FillTriangle(dst *ebiten.Image, pts [3]Vec2, c Color) {
	r.triangles = append(r.triangles, pts)
}

func (r *fakeRenderer) DebugText(dst *ebiten.Image, text string, at image.Point) {
	r.texts = append(r.texts, textCall{text, at})
}

// recordingSink collects lifecycle events.
type recordingSink struct {
	events []LifecycleEvent
}

func (s *recordingSink) EmitEvent(ev LifecycleEvent) {
	s.events = append(s.events, ev)
}

func (s *recordingSink) count(typ LifecycleEventType) int {
	n := 0
	for _, ev := range s.events {
		if ev.Type == typ {
			n++
		}
	}
	return n
}

// rootScope returns a root container holding a fake renderer.
func rootScope() (*deps.Container, *fakeRenderer) {
	r := &fakeRenderer{}
	c := deps.New(nil)
	deps.CacheAs[Renderer](c, r)
	return c, r
}

// loadTree loads root against a fresh root scope and fails the test on error.
func loadTree(t *testing.T, root Node) *fakeRenderer {
	t.Helper()
	scope, r := rootScope()
	if err := Load(root, scope); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return r
}

// frame is a 16ms FrameTime.
var frame = FrameTime{Elapsed: 16 * time.Millisecond, Total: 16 * time.Millisecond}

// fixedClock returns a clock that advances by step on every call.
func fixedClock(step time.Duration) func() time.Time {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

// newTestGame returns an 800x600 game with a fake renderer and a silent
// logger.
func newTestGame(t *testing.T, opts ...GameOption) *Game {
	t.Helper()
	cfg := DefaultRunConfig()
	cfg.Width = 800
	cfg.Height = 600
	cfg.ScreenshotDir = t.TempDir()
	cfg.ExitOnEscape = false
	base := []GameOption{
		WithRenderer(&fakeRenderer{}),
		WithLogger(zerolog.Nop()),
		withClock(fixedClock(time.Millisecond)),
	}
	return NewGame(cfg, append(base, opts...)...)
}

// probe is a leaf node that counts its Update and Draw calls.
type probe struct {
	Drawable
	updates, draws int
	onUpdate       func()
	drawLog        *[]string
}

func newProbe(name string) *probe {
	return &probe{Drawable: NewDrawable(name)}
}

func (p *probe) Update(ft FrameTime) {
	p.Drawable.Update(ft)
	p.updates++
	if p.onUpdate != nil {
		p.onUpdate()
	}
}

func (p *probe) Draw(screen *ebiten.Image) {
	p.draws++
	if p.drawLog != nil {
		*p.drawLog = append(*p.drawLog, p.Name)
	}
}
