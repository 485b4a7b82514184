package engine

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/opentransit/engine/deps"
)

const fpsRefreshInterval = 500 * time.Millisecond

// FPSCounter displays the current FPS and TPS, refreshed every half second.
type FPSCounter struct {
	Drawable

	text       string
	sinceFlush time.Duration
	sample     func() (fps, tps float64)

	renderer Renderer
}

// NewFPSCounter creates a counter pinned to the top-right corner of its
// parent.
func NewFPSCounter() *FPSCounter {
	f := &FPSCounter{
		Drawable:   NewDrawable("fps_counter"),
		sinceFlush: fpsRefreshInterval,
		sample: func() (float64, float64) {
			return ebiten.ActualFPS(), ebiten.ActualTPS()
		},
	}
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	f.Size = Vec2{100, 32}
	f.Anchor = TopRight
	f.Origin = TopRight
	f.SetZIndex(1 << 16)
	return f
}

// ResolvedSlots implements deps.Dependant.
func (f *FPSCounter) ResolvedSlots() []deps.Slot {
	return []deps.Slot{deps.Resolve("renderer", &f.renderer)}
}

// Text returns the text drawn last frame.
func (f *FPSCounter) Text() string {
	return f.text
}

// Update resolves layout and refreshes the text when the interval elapsed.
func (f *FPSCounter) Update(ft FrameTime) {
	f.Drawable.Update(ft)

	f.sinceFlush += ft.Elapsed
	if f.sinceFlush < fpsRefreshInterval {
		return
	}
	f.sinceFlush = 0
	fps, tps := f.sample()
	f.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", fps, tps)
}

// Draw prints the text at the resolved position.
func (f *FPSCounter) Draw(screen *ebiten.Image) {
	f.renderer.DebugText(screen, f.text, f.ScreenRect().Min)
}
