package mathutil

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// The world is Y-up; creatures live on the XZ plane and face +Z at yaw 0.
var (
	WorldUp      = mgl64.Vec3{0, 1, 0}
	WorldForward = mgl64.Vec3{0, 0, 1}
)

// headingEpsilon is the smallest horizontal length treated as a direction.
const headingEpsilon = 1e-9

// Flatten drops the vertical component of v.
func Flatten(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// YawOf returns the yaw (radians about WorldUp) that turns WorldForward onto
// the horizontal part of v. ok is false when v is vertical or zero.
func YawOf(v mgl64.Vec3) (yaw float64, ok bool) {
	flat := Flatten(v)
	if flat.Len() < headingEpsilon {
		return 0, false
	}
	return math.Atan2(flat.X(), flat.Z()), true
}

// YawRotation returns a level rotation of yaw radians about WorldUp.
func YawRotation(yaw float64) mgl64.Quat {
	return mgl64.QuatRotate(yaw, WorldUp)
}

// LookRotation returns the level rotation facing the horizontal part of dir.
func LookRotation(dir mgl64.Vec3) (mgl64.Quat, bool) {
	yaw, ok := YawOf(dir)
	if !ok {
		return mgl64.QuatIdent(), false
	}
	return YawRotation(yaw), true
}

// AwayFrom returns the level rotation at self that faces directly away from
// source, i.e. along (self - source) with the vertical component removed.
func AwayFrom(self, source mgl64.Vec3) (mgl64.Quat, bool) {
	return LookRotation(self.Sub(source))
}

// YawFromRotation extracts the heading of q on the XZ plane.
func YawFromRotation(q mgl64.Quat) float64 {
	yaw, _ := YawOf(q.Rotate(WorldForward))
	return yaw
}
