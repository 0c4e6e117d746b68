package creature

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func newTestWanderer(t Tunables) *Wanderer {
	return NewWanderer(t, NewTransform(mgl64.Vec3{}, 0), testRand())
}

func TestWandererStartsBothCycles(t *testing.T) {
	w := newTestWanderer(DefaultWanderTunables())
	w.Update(0.016)

	if !w.IsWandering() {
		t.Error("wander cycle should be running after the first tick")
	}
	if !w.IsRotating() {
		t.Error("rotation cycle should be running after the first tick")
	}
}

func TestWandererWalkPhase(t *testing.T) {
	tun := DefaultWanderTunables()
	tun.WalkWaitBias = []float64{0}
	tun.WalkTimeMin, tun.WalkTimeMax = 20, 20
	w := newTestWanderer(tun)

	// first tick schedules the zero-length wait
	w.Update(1)
	if w.IsWalking() {
		t.Fatal("should not walk before the wait expires")
	}

	w.Update(1)
	if !w.IsWalking() {
		t.Fatal("should be walking once the wait expired")
	}

	w.Update(1)
	if !w.IsWalking() {
		t.Fatal("walk of 2s should still be running after 1s")
	}

	w.Update(1)
	if w.IsWalking() {
		t.Error("walk should have ended after 2s")
	}
	if !w.IsWandering() {
		t.Error("a new wander cycle should start on the tick the previous one ends")
	}
}

func TestWandererMovesForwardWhileWalking(t *testing.T) {
	w := newTestWanderer(DefaultWanderTunables())
	w.cycles.start(CycleWander, 100, nil)
	w.cycles.start(CycleRotation, 100, nil)
	w.walking = true
	w.rate = 0

	w.Update(0.5)

	want := mgl64.Vec3{0, 0, 2}
	if !w.Transform().Position.ApproxEqualThreshold(want, 1e-9) {
		t.Errorf("position = %v, want %v", w.Transform().Position, want)
	}
}

func TestWandererIdleDoesNotMove(t *testing.T) {
	w := newTestWanderer(DefaultWanderTunables())
	w.cycles.start(CycleWander, 100, nil)
	w.cycles.start(CycleRotation, 100, nil)
	w.rate = 7

	w.Update(0.5)

	if w.Transform().Position != (mgl64.Vec3{}) {
		t.Errorf("idle creature moved to %v", w.Transform().Position)
	}
}

func TestDeadZoneKeepsHeading(t *testing.T) {
	for step := -3; step <= 3; step++ {
		w := newTestWanderer(DefaultWanderTunables())
		before := w.Transform().Rotation
		w.rate = applyDeadZone(step)
		w.turn(1)

		if !w.Transform().Rotation.ApproxEqual(before) {
			t.Errorf("step %d changed orientation", step)
		}
	}
}

func TestTurnRate(t *testing.T) {
	w := newTestWanderer(DefaultWanderTunables())
	w.rate = 10

	// 75 deg/s at full rate for 1.2s
	w.turn(1.2)

	if got := mgl64.RadToDeg(w.Transform().Yaw()); math.Abs(got-90) > 1e-6 {
		t.Errorf("yaw = %f deg, want 90", got)
	}
}

func TestRotationStepsStayInRange(t *testing.T) {
	w := newTestWanderer(DefaultWanderTunables())
	for i := 0; i < 2000; i++ {
		w.Update(0.05)
		r := w.Rate()
		if r < -10 || r > 10 || (r != 0 && r > -4 && r < 4) {
			t.Fatalf("tick %d: rate %d outside allowed values", i, r)
		}
	}
}

func TestWandererRotationIsSinglePass(t *testing.T) {
	w := newTestWanderer(DefaultWanderTunables())
	w.startRotation(0)
	w.cycles.advance(1)

	if w.IsRotating() {
		t.Error("wander rotation cycle should end after one pass")
	}
}

func TestWandererTurnsAwayFromAgent(t *testing.T) {
	for _, cat := range []Category{CategoryPlayer, CategoryCreature} {
		w := newTestWanderer(DefaultWanderTunables())
		w.Transform().Position = mgl64.Vec3{1, 0, 1}

		w.OnCollisionEnter(Contact{Category: cat, Position: mgl64.Vec3{1, 3, 4}})

		assertFacing(t, w.Transform(), mgl64.Vec3{0, 0, -1})
	}
}

func TestWandererTurnsAwayFromBoundary(t *testing.T) {
	w := newTestWanderer(DefaultWanderTunables())
	w.Update(0.016)
	w.Transform().Position = mgl64.Vec3{2, 0.5, 3}

	w.OnCollisionEnter(Contact{
		Category: CategoryBoundary,
		Position: mgl64.Vec3{100, 0, 100},
		Surface:  fixedSurface{point: mgl64.Vec3{0, 0, 0}},
	})

	assertFacing(t, w.Transform(), mgl64.Vec3{2, 0, 3})
	if w.IsRotating() {
		t.Error("boundary contact should cancel the rotation cycle")
	}
}

func TestWandererBoundaryWithoutSurfaceUsesPosition(t *testing.T) {
	w := newTestWanderer(DefaultWanderTunables())
	w.Transform().Position = mgl64.Vec3{0, 0, 0}

	w.OnCollisionEnter(Contact{Category: CategoryBoundary, Position: mgl64.Vec3{-1, 0, 0}})

	assertFacing(t, w.Transform(), mgl64.Vec3{1, 0, 0})
}

func TestWandererIgnoresGround(t *testing.T) {
	w := newTestWanderer(DefaultWanderTunables())
	before := w.Transform().Rotation

	w.OnCollisionEnter(Contact{Category: CategoryGround, Position: mgl64.Vec3{0, -1, 5}})

	if w.Transform().Rotation != before {
		t.Error("ground contact changed orientation")
	}
}

func TestWandererLastContactWins(t *testing.T) {
	w := newTestWanderer(DefaultWanderTunables())

	w.OnCollisionEnter(Contact{Category: CategoryPlayer, Position: mgl64.Vec3{0, 0, 5}})
	w.OnCollisionEnter(Contact{
		Category: CategoryBoundary,
		Surface:  fixedSurface{point: mgl64.Vec3{5, 0, 0}},
	})

	assertFacing(t, w.Transform(), mgl64.Vec3{-1, 0, 0})
}

func TestWandererIgnoresTriggers(t *testing.T) {
	w := newTestWanderer(DefaultWanderTunables())
	before := *w.Transform()

	w.OnTriggerEnter(Contact{Category: CategoryPlayer, Position: mgl64.Vec3{0, 0, 1}})

	if *w.Transform() != before {
		t.Error("trigger contact changed wanderer transform")
	}
}
