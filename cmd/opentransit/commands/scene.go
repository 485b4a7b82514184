package commands

import (
	"github.com/rs/zerolog"
	"github.com/tanema/gween/ease"

	"github.com/opentransit/engine"
	"github.com/opentransit/engine/deps"
)

const (
	groundHeight = 0.2 // fraction of the window
	tripSeconds  = 8
)

// lineStyle is published by a line to everything running on it.
type lineStyle struct {
	livery engine.Color
}

// line is the layer holding the track and its trains. It publishes its
// style to its subtree.
type line struct {
	engine.Group
	style *lineStyle
}

func newLine(livery engine.Color) *line {
	l := &line{Group: *engine.NewGroup("line"), style: &lineStyle{livery: livery}}
	l.RelativeSizeAxes = engine.AxesBoth
	l.Size = engine.Vec2{X: 1, Y: 1}
	return l
}

func (l *line) CachedBindings() []deps.Binding {
	return []deps.Binding{deps.Cache("style", l.style)}
}

// carriage is a box painted in the livery of the line it runs on.
type carriage struct {
	engine.Box
	style *lineStyle
}

func newCarriage(i int) *carriage {
	c := &carriage{Box: *engine.NewBox("carriage", engine.Vec2{X: 100, Y: 44}, engine.ColorWhite)}
	c.Anchor = engine.BottomLeft
	c.Origin = engine.BottomLeft
	c.Position = engine.Vec2{X: float64(i) * 110}
	return c
}

func (c *carriage) ResolvedSlots() []deps.Slot {
	return append(c.Box.ResolvedSlots(), deps.Resolve("style", &c.style))
}

func (c *carriage) Update(ft engine.FrameTime) {
	c.Color = c.style.livery
	c.Box.Update(ft)
}

// shuttle moves back and forth along the track, tweening its relative
// position with the scene's animator.
type shuttle struct {
	engine.Group
	animator *engine.Animator
	log      *zerolog.Logger

	trip     *engine.TweenGroup
	outbound bool
}

func newShuttle(carriages int) (*shuttle, error) {
	s := &shuttle{Group: *engine.NewGroup("shuttle")}
	s.Anchor = engine.BottomLeft
	s.Origin = engine.BottomLeft
	s.RelativePositionAxes = engine.AxesBoth
	s.Position = engine.Vec2{X: 0.05, Y: -groundHeight}
	s.Size = engine.Vec2{X: float64(carriages)*110 + 60, Y: 60}

	train := engine.NewContainer[*carriage]("carriages")
	train.RelativeSizeAxes = engine.AxesBoth
	train.Size = engine.Vec2{X: 1, Y: 1}
	for i := 0; i < carriages; i++ {
		if err := train.Add(newCarriage(i)); err != nil {
			return nil, err
		}
	}

	loco := engine.NewTriangleSides("locomotive", 44, 60, 60)
	loco.Color = engine.Color{R: 0.85, G: 0.2, B: 0.15, A: 1}
	loco.Anchor = engine.BottomRight
	loco.Origin = engine.Centre
	loco.Position = engine.Vec2{X: -30, Y: -22}
	loco.Rotation = 90

	if err := s.Add(train); err != nil {
		return nil, err
	}
	if err := s.Add(loco); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *shuttle) ResolvedSlots() []deps.Slot {
	return []deps.Slot{
		deps.Resolve("animator", &s.animator),
		deps.Resolve("log", &s.log),
	}
}

func (s *shuttle) Update(ft engine.FrameTime) {
	if s.trip == nil || s.trip.Done {
		s.outbound = !s.outbound
		to := 0.05
		if s.outbound {
			to = 0.6
		}
		s.trip = engine.TweenPosition(s.Base(), engine.Vec2{X: to, Y: s.Position.Y}, tripSeconds, ease.InOutSine)
		s.animator.Play(s.trip)
		s.log.Debug().Bool("outbound", s.outbound).Msg("Shuttle departing")
	}
	s.Group.Update(ft)
}

// buildDemoScene adds the sky, ground, track and a shuttle train to g.
func buildDemoScene(g *engine.Game) error {
	root := g.Root()

	sky := engine.NewBox("sky", engine.Vec2{X: 1, Y: 1}, engine.Color{R: 0.55, G: 0.75, B: 0.95, A: 1})
	sky.RelativeSizeAxes = engine.AxesBoth
	sky.SetZIndex(-10)

	ground := engine.NewBox("ground", engine.Vec2{X: 1, Y: groundHeight}, engine.Color{R: 0.3, G: 0.5, B: 0.25, A: 1})
	ground.RelativeSizeAxes = engine.AxesBoth
	ground.Anchor = engine.BottomLeft
	ground.Origin = engine.BottomLeft

	l := newLine(engine.Color{R: 0.95, G: 0.8, B: 0.1, A: 1})

	track := engine.NewBox("track", engine.Vec2{X: 1, Y: 6}, engine.Color{R: 0.25, G: 0.25, B: 0.25, A: 1})
	track.RelativeSizeAxes = engine.AxesX
	track.RelativePositionAxes = engine.AxesY
	track.Anchor = engine.BottomLeft
	track.Origin = engine.TopLeft
	track.Position = engine.Vec2{Y: -groundHeight}

	s, err := newShuttle(3)
	if err != nil {
		return err
	}

	for _, n := range []engine.Node{track, s} {
		if err := l.Add(n); err != nil {
			return err
		}
	}
	for _, n := range []engine.Node{ground, sky, l} {
		if err := root.Add(n); err != nil {
			return err
		}
	}
	return nil
}
