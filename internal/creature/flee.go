package creature

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Fleer wanders like Wanderer until an entity of the flee-from category enters
// its trigger volume. It then runs off at an increased speed until the spook
// countdown runs out.
type Fleer struct {
	motor
	tunables Tunables
	rng      *rand.Rand
	cycles   cycles

	anim  Animator
	alert Indicator

	walking     bool
	fleeing     bool
	undisturbed bool
	spookTimer  float64
}

// NewFleer attaches a flee-capable behavior to tr. Nil sinks are ignored.
func NewFleer(t Tunables, tr *Transform, rng *rand.Rand, anim Animator, alert Indicator) *Fleer {
	if anim == nil {
		anim = noopAnimator{}
	}
	if alert == nil {
		alert = noopIndicator{}
	}

	f := &Fleer{
		motor: motor{
			transform:   tr,
			moveSpeed:   t.MoveSpeed,
			rotateSpeed: t.RotateSpeed,
		},
		tunables:    t,
		rng:         ensureRand(rng),
		anim:        anim,
		alert:       alert,
		undisturbed: true,
		spookTimer:  t.SpookInterval,
	}
	f.anim.SetForward(false)
	f.alert.SetActive(false)
	return f
}

// Update runs one tick of the disturbance state machine, then turns and moves.
func (f *Fleer) Update(dt float64) {
	f.cycles.advance(dt)

	if f.undisturbed {
		// keep idle motion going
		if !f.cycles.active(CycleWander) {
			f.startWander()
		}
		if !f.cycles.active(CycleRotation) {
			f.startRotation(f.tunables.MaxRotateTime)
		}
	} else if f.spookTimer > 0 {
		if !f.cycles.active(CycleFlee) {
			f.startFlee()
		}
		if !f.cycles.active(CycleRotation) {
			f.startRotation(f.tunables.FleeRotateTime)
		}
		f.spookTimer -= dt
	} else {
		f.calmDown()
	}

	f.turn(dt)
	if f.walking {
		f.advance(dt, 1)
	}
	if f.fleeing {
		f.advance(dt, f.tunables.FleeMultiplier)
	}
}

// OnTriggerEnter reacts to the flee-from category and to boundaries.
// Both checks run, so a creature configured to flee from boundaries ends up
// with the boundary heading.
func (f *Fleer) OnTriggerEnter(c Contact) {
	if c.Category == CategoryGround {
		return
	}
	if c.Category == f.tunables.FleeFrom {
		f.disturb(c.Position)
	}
	if c.Category == CategoryBoundary {
		closest := c.ClosestPoint(f.transform.Position)
		f.cycles.cancel(CycleRotation)
		f.faceAwayFrom(closest)
	}
}

// OnCollisionEnter is a no-op: a fleer senses through its trigger volume only.
func (f *Fleer) OnCollisionEnter(Contact) {}

func (f *Fleer) disturb(source mgl64.Vec3) {
	f.undisturbed = false
	f.fleeing = true
	f.alert.SetActive(true)

	// a repeat scare buys more time but never restarts the countdown
	if f.spookTimer < f.tunables.SpookInterval {
		f.spookTimer += f.tunables.SpookInterval * spookExtension
	}

	f.faceAwayFrom(source)
}

func (f *Fleer) calmDown() {
	f.spookTimer = f.tunables.SpookInterval
	f.undisturbed = true
	f.alert.SetActive(false)

	f.cycles.cancel(CycleFlee)
	f.fleeing = false
	f.anim.SetForward(f.walking)
}

// startWander repeats rest/walk passes for as long as the creature is undisturbed.
// A pass that ends after a scare lets the cycle lapse.
func (f *Fleer) startWander() {
	wait := sampleWait(f.rng, f.tunables.WalkWaitBias)
	walk := tenthsBetween(f.rng, f.tunables.WalkTimeMin, f.tunables.WalkTimeMax)

	f.cycles.start(CycleWander, wait, func() {
		f.anim.SetForward(true)
		f.walking = true
		f.cycles.start(CycleWander, walk, func() {
			f.anim.SetForward(false)
			f.walking = false
			if f.undisturbed {
				f.startWander()
			}
		})
	})
}

// startRotation re-samples turn rate and duration until the disturbance
// state differs from the one seen when the cycle began.
func (f *Fleer) startRotation(maxTenths int) {
	started := f.undisturbed

	var pass func()
	pass = func() {
		d := tenthsBetween(f.rng, 0, maxTenths)
		f.rate = sampleRotationStep(f.rng)
		f.cycles.start(CycleRotation, d, func() {
			if f.undisturbed == started {
				pass()
			}
		})
	}
	pass()
}

// startFlee runs one forward burst for a sampled duration.
func (f *Fleer) startFlee() {
	d := tenthsBetween(f.rng, 10, f.tunables.MaxFleeTime)
	f.anim.SetForward(true)
	f.cycles.start(CycleFlee, d, func() {
		f.anim.SetForward(false)
	})
}

func (f *Fleer) Transform() *Transform { return f.transform }
func (f *Fleer) IsWalking() bool       { return f.walking }
func (f *Fleer) IsFleeing() bool       { return f.fleeing }
func (f *Fleer) IsWandering() bool     { return f.cycles.active(CycleWander) }
func (f *Fleer) IsRotating() bool      { return f.cycles.active(CycleRotation) }
func (f *Fleer) IsFleeCycleActive() bool {
	return f.cycles.active(CycleFlee)
}

// Disturbed reports whether the creature is in the spooked state.
func (f *Fleer) Disturbed() bool { return !f.undisturbed }

// SpookTimer returns the remaining disturbance countdown in seconds.
func (f *Fleer) SpookTimer() float64 { return f.spookTimer }

// Rate returns the current rotation step in [-10, 10].
func (f *Fleer) Rate() int { return f.rate }
