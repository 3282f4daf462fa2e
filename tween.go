package rowan

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// tweenKind selects which transform component a TweenBehavior animates.
type tweenKind uint8

const (
	tweenMove tweenKind = iota
	tweenRotate
	tweenScale
)

// TweenBehavior animates one transform component of its entity toward an
// absolute target over a fixed duration. It implements [Behavior]: the
// tweens are created from the entity's current state in Init and advanced
// once per Update at the engine tick rate. When the target is reached, Done
// is set and further updates are no-ops.
//
// There is no global animation manager; attach the behavior and let the
// scene's update loop drive it.
type TweenBehavior struct {
	kind     tweenKind
	target   Pointf  // move/scale target, or
	angle    float64 // rotate target in degrees
	duration float32
	fn       ease.TweenFunc

	x, y *gween.Tween // y is nil for rotation
	Done bool
}

// NewMoveTo creates a behavior that moves its entity to the given absolute
// translation over duration seconds.
func NewMoveTo(to Pointf, duration float32, fn ease.TweenFunc) *TweenBehavior {
	return &TweenBehavior{kind: tweenMove, target: to, duration: duration, fn: fn}
}

// NewRotateTo creates a behavior that rotates its entity to the given
// absolute rotation (degrees) over duration seconds.
func NewRotateTo(deg float64, duration float32, fn ease.TweenFunc) *TweenBehavior {
	return &TweenBehavior{kind: tweenRotate, angle: deg, duration: duration, fn: fn}
}

// NewScaleTo creates a behavior that scales its entity to the given
// absolute scale over duration seconds.
func NewScaleTo(to Pointf, duration float32, fn ease.TweenFunc) *TweenBehavior {
	return &TweenBehavior{kind: tweenScale, target: to, duration: duration, fn: fn}
}

// Init captures the entity's current transform state as the tween start.
func (b *TweenBehavior) Init(e *Entity) {
	switch b.kind {
	case tweenMove:
		from := e.Translation()
		b.x = gween.New(float32(from.X), float32(b.target.X), b.duration, b.fn)
		b.y = gween.New(float32(from.Y), float32(b.target.Y), b.duration, b.fn)
	case tweenRotate:
		b.x = gween.New(float32(e.Rotation()), float32(b.angle), b.duration, b.fn)
	case tweenScale:
		from := e.Scale()
		b.x = gween.New(float32(from.X), float32(b.target.X), b.duration, b.fn)
		b.y = gween.New(float32(from.Y), float32(b.target.Y), b.duration, b.fn)
	}
	b.Done = false
}

// Update advances the tween by one engine tick and applies the value
// through the entity's absolute setters.
func (b *TweenBehavior) Update(e *Entity) {
	if b.Done || b.x == nil {
		return
	}

	dt := float32(1.0 / float64(ebiten.TPS()))

	switch b.kind {
	case tweenMove:
		x, doneX := b.x.Update(dt)
		y, doneY := b.y.Update(dt)
		e.SetTranslation(Pointf{float64(x), float64(y)})
		b.Done = doneX && doneY
	case tweenRotate:
		deg, done := b.x.Update(dt)
		e.SetRotation(float64(deg))
		b.Done = done
	case tweenScale:
		x, doneX := b.x.Update(dt)
		y, doneY := b.y.Update(dt)
		e.SetScale(Pointf{float64(x), float64(y)})
		b.Done = doneX && doneY
	}
}

// Destroy releases the tweens. The behavior can be re-attached; Init
// recreates them.
func (b *TweenBehavior) Destroy() {
	b.x = nil
	b.y = nil
	b.Done = false
}
