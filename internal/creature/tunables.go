package creature

// spookExtension is the fraction of SpookInterval added when a disturbed
// creature is triggered again before its countdown is back to full.
const spookExtension = 0.25

// Tunables are the per-creature numbers fixed at configuration time.
// Timer bounds are in tenths of a second; upper bounds are exclusive.
type Tunables struct {
	MoveSpeed   float64
	RotateSpeed float64 // degrees per second at the largest rotation step

	MaxRotateTime  int
	FleeRotateTime int
	MaxFleeTime    int

	WalkTimeMin  int
	WalkTimeMax  int
	WalkWaitBias []float64 // seconds; one bucket is picked uniformly

	FleeMultiplier float64
	SpookInterval  float64 // seconds
	FleeFrom       Category
}

// DefaultWanderTunables returns the settings of the plain wandering creature.
func DefaultWanderTunables() Tunables {
	return Tunables{
		MoveSpeed:     4,
		RotateSpeed:   75,
		MaxRotateTime: 20,
		WalkTimeMin:   20,
		WalkTimeMax:   60,
		WalkWaitBias:  []float64{0, 0, 0, 1, 2},
	}
}

// DefaultFleeTunables returns the settings of the skittish creature.
func DefaultFleeTunables() Tunables {
	return Tunables{
		MoveSpeed:      6,
		RotateSpeed:    75,
		MaxRotateTime:  20,
		FleeRotateTime: 10,
		MaxFleeTime:    40,
		WalkTimeMin:    20,
		WalkTimeMax:    60,
		WalkWaitBias:   []float64{0, 0, 0, 2, 4},
		FleeMultiplier: 1.5,
		SpookInterval:  3,
		FleeFrom:       CategoryPlayer,
	}
}
