package rowan

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

// Tween values accumulate float32 ticks; comparisons get a loose tolerance.
const tweenTolerance = 1e-2

func assertTweenNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > tweenTolerance {
		t.Errorf("%s = %v, want %v (±%v)", name, got, want, tweenTolerance)
	}
}

// runTween drives the behavior for the given number of ticks.
func runTween(b *TweenBehavior, e *Entity, ticks int) {
	for range ticks {
		b.Update(e)
	}
}

func TestMoveToReachesTarget(t *testing.T) {
	f := newFakeShape()
	b := NewMoveTo(Pointf{10, -20}, 1, ease.Linear)
	b.Init(&f.Entity)

	// Halfway through a one-second tween at 60 ticks/second.
	runTween(b, &f.Entity, 30)
	assertTweenNear(t, "mid x", f.Translation().X, 5)
	assertTweenNear(t, "mid y", f.Translation().Y, -10)
	if b.Done {
		t.Error("tween should not be done at the halfway mark")
	}

	runTween(b, &f.Entity, 31)
	assertTweenNear(t, "final x", f.Translation().X, 10)
	assertTweenNear(t, "final y", f.Translation().Y, -20)
	if !b.Done {
		t.Error("tween should be done after the full duration")
	}

	// Further updates hold the target.
	runTween(b, &f.Entity, 10)
	assertTweenNear(t, "held x", f.Translation().X, 10)
}

func TestRotateToReachesTarget(t *testing.T) {
	f := newFakeShape()
	b := NewRotateTo(90, 1, ease.Linear)
	b.Init(&f.Entity)

	runTween(b, &f.Entity, 61)
	assertTweenNear(t, "rotation", f.Rotation(), 90)
	if !b.Done {
		t.Error("tween should be done after the full duration")
	}
}

func TestScaleToReachesTarget(t *testing.T) {
	f := newFakeShape()
	b := NewScaleTo(Pointf{2, 3}, 1, ease.Linear)
	b.Init(&f.Entity)

	runTween(b, &f.Entity, 61)
	assertTweenNear(t, "scale x", f.Scale().X, 2)
	assertTweenNear(t, "scale y", f.Scale().Y, 3)
}

func TestTweenUpdateBeforeInitIsNoOp(t *testing.T) {
	f := newFakeShape()
	b := NewMoveTo(Pointf{10, 10}, 1, ease.Linear)

	b.Update(&f.Entity)
	assertPointNear(t, "translation", f.Translation(), Pointf{0, 0})
}

func TestTweenDestroyAllowsReattach(t *testing.T) {
	f := newFakeShape()
	b := NewMoveTo(Pointf{10, 0}, 1, ease.Linear)
	b.Init(&f.Entity)
	runTween(b, &f.Entity, 61)

	b.Destroy()
	if b.Done {
		t.Error("Destroy should reset the done flag")
	}

	// Re-init picks up the entity's current translation as the new start.
	b.Init(&f.Entity)
	runTween(b, &f.Entity, 61)
	assertTweenNear(t, "x after reattach", f.Translation().X, 10)
}

func TestTweenDrivenThroughBehaviorLifecycle(t *testing.T) {
	scene := newStubScene("level")
	f := newFakeShape()
	b := NewMoveTo(Pointf{6, 0}, 0.5, ease.Linear)

	f.AddBehavior(b, scene)
	f.InitBehaviors()
	for range 31 {
		f.UpdateBehaviors()
	}

	assertTweenNear(t, "x", f.Translation().X, 6)
	if !b.Done {
		t.Error("tween should finish under the behavior lifecycle")
	}
}
