package mathutil

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestYawOf(t *testing.T) {
	yaw, ok := YawOf(mgl64.Vec3{1, 5, 0})
	if !ok || math.Abs(yaw-math.Pi/2) > 1e-12 {
		t.Errorf("YawOf(+X) = %v,%v want pi/2,true", yaw, ok)
	}

	if _, ok := YawOf(mgl64.Vec3{0, 3, 0}); ok {
		t.Error("vertical vector should have no heading")
	}
}

func TestAwayFromIsLevel(t *testing.T) {
	q, ok := AwayFrom(mgl64.Vec3{2, 1, 3}, mgl64.Vec3{0, -4, 0})
	if !ok {
		t.Fatal("expected a heading")
	}
	fwd := q.Rotate(WorldForward)
	want := mgl64.Vec3{2, 0, 3}.Normalize()
	if !fwd.ApproxEqualThreshold(want, 1e-9) {
		t.Errorf("forward = %v, want %v", fwd, want)
	}
}

func TestAwayFromDegenerate(t *testing.T) {
	if _, ok := AwayFrom(mgl64.Vec3{1, 0, 1}, mgl64.Vec3{1, 7, 1}); ok {
		t.Error("source directly above should give no heading")
	}
}

func TestYawFromRotationRoundTrip(t *testing.T) {
	for _, yaw := range []float64{-3, -1.2, 0, 0.5, 2.9} {
		if got := YawFromRotation(YawRotation(yaw)); math.Abs(got-yaw) > 1e-9 {
			t.Errorf("YawFromRotation(YawRotation(%v)) = %v", yaw, got)
		}
	}
}

func TestIntClamp(t *testing.T) {
	if IntClamp(10, 30, 120) != 30 || IntClamp(500, 30, 120) != 120 || IntClamp(60, 30, 120) != 60 {
		t.Error("IntClamp returned wrong bound")
	}
}
