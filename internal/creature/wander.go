package creature

import "math/rand"

// Wanderer alternates rest, walk and random turns, and turns away from
// whatever it bumps into.
type Wanderer struct {
	motor
	tunables Tunables
	rng      *rand.Rand
	cycles   cycles
	walking  bool
}

// NewWanderer attaches a wander behavior to tr. A nil rng gets a time-seeded source.
func NewWanderer(t Tunables, tr *Transform, rng *rand.Rand) *Wanderer {
	return &Wanderer{
		motor: motor{
			transform:   tr,
			moveSpeed:   t.MoveSpeed,
			rotateSpeed: t.RotateSpeed,
		},
		tunables: t,
		rng:      ensureRand(rng),
	}
}

// Update runs one tick: resume expired cycles, start missing ones, then turn and move.
func (w *Wanderer) Update(dt float64) {
	w.cycles.advance(dt)

	if !w.cycles.active(CycleWander) {
		w.startWander()
	}
	if !w.cycles.active(CycleRotation) {
		w.startRotation(w.tunables.MaxRotateTime)
	}

	w.turn(dt)
	if w.walking {
		w.advance(dt, 1)
	}
}

// OnCollisionEnter turns away from other agents and from boundaries.
func (w *Wanderer) OnCollisionEnter(c Contact) {
	if c.Category == CategoryGround {
		return
	}
	if c.Category.IsAgent() {
		w.faceAwayFrom(c.Position)
	}
	if c.Category == CategoryBoundary {
		closest := c.ClosestPoint(w.transform.Position)
		w.cycles.cancel(CycleRotation)
		w.faceAwayFrom(closest)
	}
}

// OnTriggerEnter is a no-op: wanderers carry no trigger volume.
func (w *Wanderer) OnTriggerEnter(Contact) {}

// startWander waits a biased rest time, then walks for a sampled duration.
func (w *Wanderer) startWander() {
	wait := sampleWait(w.rng, w.tunables.WalkWaitBias)
	walk := tenthsBetween(w.rng, w.tunables.WalkTimeMin, w.tunables.WalkTimeMax)

	w.cycles.start(CycleWander, wait, func() {
		w.walking = true
		w.cycles.start(CycleWander, walk, func() {
			w.walking = false
		})
	})
}

// startRotation picks a turn rate and holds it for a sampled duration.
func (w *Wanderer) startRotation(maxTenths int) {
	d := tenthsBetween(w.rng, 0, maxTenths)
	w.rate = sampleRotationStep(w.rng)
	w.cycles.start(CycleRotation, d, nil)
}

func (w *Wanderer) Transform() *Transform { return w.transform }
func (w *Wanderer) IsWalking() bool       { return w.walking }
func (w *Wanderer) IsWandering() bool     { return w.cycles.active(CycleWander) }
func (w *Wanderer) IsRotating() bool      { return w.cycles.active(CycleRotation) }

// Rate returns the current rotation step in [-10, 10].
func (w *Wanderer) Rate() int { return w.rate }
