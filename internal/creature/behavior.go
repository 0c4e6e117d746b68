package creature

import (
	"math/rand"
	"time"
)

// Behavior is a per-creature controller ticked once per frame by the host.
// Contacts are delivered between ticks.
type Behavior interface {
	Update(dt float64)
	OnCollisionEnter(c Contact)
	OnTriggerEnter(c Contact)
	Transform() *Transform
	IsWalking() bool
}

func ensureRand(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
