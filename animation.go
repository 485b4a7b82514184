package engine

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Drawable simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenSize,
// TweenScale, TweenColor, TweenRotation) and either call Update(dt) each
// frame or hand it to an Animator.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Drawable
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Target returns the animated node.
func (g *TweenGroup) Target() *Drawable {
	return g.target
}

func newTweenGroup(d *Drawable, duration float32, fn ease.TweenFunc, fields []*float64, to []float64) *TweenGroup {
	g := &TweenGroup{count: len(fields), target: d}
	for i, f := range fields {
		g.tweens[i] = gween.New(float32(*f), float32(to[i]), duration, fn)
		g.fields[i] = f
	}
	return g
}

// TweenPosition animates Position to the given value.
func TweenPosition(d *Drawable, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(d, duration, fn,
		[]*float64{&d.Position.X, &d.Position.Y},
		[]float64{to.X, to.Y})
}

// TweenSize animates Size to the given value. On relative axes the values are
// fractions of the parent size.
func TweenSize(d *Drawable, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(d, duration, fn,
		[]*float64{&d.Size.X, &d.Size.Y},
		[]float64{to.X, to.Y})
}

// TweenScale animates Scale to the given value.
func TweenScale(d *Drawable, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(d, duration, fn,
		[]*float64{&d.Scale.X, &d.Scale.Y},
		[]float64{to.X, to.Y})
}

// TweenRotation animates Rotation (degrees) to the given value.
func TweenRotation(d *Drawable, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(d, duration, fn,
		[]*float64{&d.Rotation},
		[]float64{to})
}

// TweenColor animates all four components of Color.
func TweenColor(d *Drawable, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(d, duration, fn,
		[]*float64{&d.Color.R, &d.Color.G, &d.Color.B, &d.Color.A},
		[]float64{to.R, to.G, to.B, to.A})
}

// Animator advances tween groups once per frame and drops finished ones.
// The Game caches one in the root scope so nodes can resolve it.
type Animator struct {
	groups []*TweenGroup
}

// NewAnimator creates an empty animator.
func NewAnimator() *Animator {
	return &Animator{}
}

// Play schedules g. Finished groups are removed on the next Update.
func (a *Animator) Play(g *TweenGroup) {
	a.groups = append(a.groups, g)
}

// Active returns the number of scheduled groups.
func (a *Animator) Active() int {
	return len(a.groups)
}

// Update advances every group by ft.
func (a *Animator) Update(ft FrameTime) {
	dt := float32(ft.Seconds())
	kept := a.groups[:0]
	for _, g := range a.groups {
		g.Update(dt)
		if !g.Done {
			kept = append(kept, g)
		}
	}
	clear(a.groups[len(kept):])
	a.groups = kept
}
