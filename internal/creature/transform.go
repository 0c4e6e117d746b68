package creature

import (
	"github.com/esklarski/SmallCreatureAI/internal/mathutil"
	"github.com/go-gl/mathgl/mgl64"
)

// Transform is the host-owned position and orientation of an entity.
// Behaviors mutate it in place every tick.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewTransform creates a level transform at pos facing yaw radians.
func NewTransform(pos mgl64.Vec3, yaw float64) *Transform {
	return &Transform{
		Position: pos,
		Rotation: mathutil.YawRotation(yaw),
	}
}

// Forward returns the unit facing direction.
func (t *Transform) Forward() mgl64.Vec3 {
	return t.Rotation.Rotate(mathutil.WorldForward)
}

// Up returns the local up axis.
func (t *Transform) Up() mgl64.Vec3 {
	return t.Rotation.Rotate(mathutil.WorldUp)
}

// Yaw returns the heading on the XZ plane in radians.
func (t *Transform) Yaw() float64 {
	return mathutil.YawFromRotation(t.Rotation)
}

// Rotate turns the transform by degrees about axis (world space).
func (t *Transform) Rotate(axis mgl64.Vec3, degrees float64) {
	delta := mgl64.QuatRotate(mgl64.DegToRad(degrees), axis)
	t.Rotation = delta.Mul(t.Rotation).Normalize()
}

// Translate moves the transform by delta.
func (t *Transform) Translate(delta mgl64.Vec3) {
	t.Position = t.Position.Add(delta)
}
