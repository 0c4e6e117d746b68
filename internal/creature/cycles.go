package creature

// CycleKind names the timed actions a behavior can run. Each entity holds at
// most one active cycle per kind.
type CycleKind int

const (
	CycleWander CycleKind = iota
	CycleRotation
	CycleFlee
	cycleKindCount
)

func (k CycleKind) String() string {
	switch k {
	case CycleWander:
		return "wander"
	case CycleRotation:
		return "rotation"
	case CycleFlee:
		return "flee"
	default:
		return "unknown"
	}
}

// cycleTimer counts down seconds and fires onExpire once.
type cycleTimer struct {
	remaining float64
	onExpire  func()
}

// cycles replaces engine coroutines with one countdown slot per kind.
// A multi-phase cycle is a chain of timers started from onExpire in the
// same slot, so the slot stays occupied until the last phase ends.
type cycles struct {
	slots [cycleKindCount]*cycleTimer
}

// start cancels any timer of this kind and schedules a new one.
func (c *cycles) start(kind CycleKind, seconds float64, onExpire func()) {
	c.slots[kind] = &cycleTimer{remaining: seconds, onExpire: onExpire}
}

// cancel drops the timer of this kind without firing it.
func (c *cycles) cancel(kind CycleKind) {
	c.slots[kind] = nil
}

func (c *cycles) active(kind CycleKind) bool {
	return c.slots[kind] != nil
}

func (c *cycles) remaining(kind CycleKind) float64 {
	if t := c.slots[kind]; t != nil {
		return t.remaining
	}
	return 0
}

// advance moves every active timer forward by dt and fires the expired ones.
// The slot is cleared before the callback runs.
func (c *cycles) advance(dt float64) {
	for kind := CycleKind(0); kind < cycleKindCount; kind++ {
		t := c.slots[kind]
		if t == nil {
			continue
		}
		t.remaining -= dt
		if t.remaining > 0 {
			continue
		}
		c.slots[kind] = nil
		if t.onExpire != nil {
			t.onExpire()
		}
	}
}
