package creature

import "math/rand"

const (
	// Rotation steps are sampled from [rotationStepMin, rotationStepMax].
	rotationStepMin = -10
	rotationStepMax = 10

	// Steps with |step| < deadZone collapse to zero so creatures travel straight.
	deadZone = 4

	// Timer bounds are configured in tenths of a second.
	tenthsPerSecond = 10.0
)

// tenthsBetween samples an integer uniformly from [lo, hi) and returns it as
// seconds at tenth-of-a-second resolution. An empty range yields lo.
func tenthsBetween(rng *rand.Rand, lo, hi int) float64 {
	if hi <= lo {
		return float64(lo) / tenthsPerSecond
	}
	return float64(lo+rng.Intn(hi-lo)) / tenthsPerSecond
}

// sampleWait picks one of the equally likely bias buckets.
func sampleWait(rng *rand.Rand, bias []float64) float64 {
	if len(bias) == 0 {
		return 0
	}
	return bias[rng.Intn(len(bias))]
}

// sampleRotationStep draws a signed rotation step with the dead zone applied.
func sampleRotationStep(rng *rand.Rand) int {
	step := rotationStepMin + rng.Intn(rotationStepMax-rotationStepMin+1)
	return applyDeadZone(step)
}

func applyDeadZone(step int) int {
	if step > -deadZone && step < deadZone {
		return 0
	}
	return step
}
