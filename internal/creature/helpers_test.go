package creature

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

type recordingAnimator struct {
	forward bool
	calls   int
}

func (a *recordingAnimator) SetForward(forward bool) {
	a.forward = forward
	a.calls++
}

type recordingIndicator struct {
	active bool
	calls  int
}

func (i *recordingIndicator) SetActive(active bool) {
	i.active = active
	i.calls++
}

// fixedSurface reports the same closest point for every query.
type fixedSurface struct {
	point mgl64.Vec3
}

func (s fixedSurface) ClosestPoint(mgl64.Vec3) mgl64.Vec3 {
	return s.point
}

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func assertFacing(t *testing.T, tr *Transform, want mgl64.Vec3) {
	t.Helper()
	want = mgl64.Vec3{want.X(), 0, want.Z()}.Normalize()
	got := tr.Forward()
	if math.Abs(got.Y()) > 1e-9 {
		t.Errorf("forward has vertical component %f, want level heading", got.Y())
	}
	if !got.ApproxEqualThreshold(want, 1e-9) {
		t.Errorf("forward = %v, want %v", got, want)
	}
}
