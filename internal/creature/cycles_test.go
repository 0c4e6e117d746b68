package creature

import "testing"

func TestCyclesStartReplacesExisting(t *testing.T) {
	var c cycles
	firstFired, secondFired := false, false

	c.start(CycleRotation, 1, func() { firstFired = true })
	c.start(CycleRotation, 5, func() { secondFired = true })

	c.advance(2)
	if firstFired {
		t.Error("replaced timer fired")
	}
	if !c.active(CycleRotation) {
		t.Fatal("replacement timer should still be active")
	}
	if got := c.remaining(CycleRotation); got != 3 {
		t.Errorf("remaining = %v, want 3", got)
	}

	c.advance(3)
	if !secondFired {
		t.Error("replacement timer did not fire")
	}
	if c.active(CycleRotation) {
		t.Error("expired timer should leave its slot empty")
	}
}

func TestCyclesCancel(t *testing.T) {
	var c cycles
	fired := false
	c.start(CycleFlee, 1, func() { fired = true })
	c.cancel(CycleFlee)
	c.advance(10)

	if fired {
		t.Error("cancelled timer fired")
	}
	if c.active(CycleFlee) {
		t.Error("cancelled timer still active")
	}
}

func TestCyclesChainKeepsSlotOccupied(t *testing.T) {
	var c cycles
	phase := 0
	c.start(CycleWander, 0, func() {
		phase = 1
		c.start(CycleWander, 2, func() { phase = 2 })
	})

	c.advance(0.5)
	if phase != 1 || !c.active(CycleWander) {
		t.Fatalf("after first expiry phase=%d active=%v, want 1/true", phase, c.active(CycleWander))
	}

	c.advance(2)
	if phase != 2 || c.active(CycleWander) {
		t.Fatalf("after second expiry phase=%d active=%v, want 2/false", phase, c.active(CycleWander))
	}
}

func TestCyclesKindsAreIndependent(t *testing.T) {
	var c cycles
	c.start(CycleWander, 1, nil)
	c.start(CycleRotation, 3, nil)

	c.advance(1)
	if c.active(CycleWander) {
		t.Error("wander should have expired")
	}
	if !c.active(CycleRotation) {
		t.Error("rotation should still be running")
	}
}
