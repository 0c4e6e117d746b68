package creature

import (
	"github.com/esklarski/SmallCreatureAI/internal/mathutil"
	"github.com/go-gl/mathgl/mgl64"
)

// motor holds the movement math shared by both behaviors.
type motor struct {
	transform   *Transform
	moveSpeed   float64
	rotateSpeed float64
	rate        int // current rotation step, already dead-zoned
}

// turn applies the current rotation rate for dt seconds.
func (m *motor) turn(dt float64) {
	if m.rate == 0 {
		return
	}
	m.transform.Rotate(mathutil.WorldUp, dt*m.rotateSpeed*float64(m.rate)/rotationStepMax)
}

// advance moves along the facing direction at moveSpeed*multiplier.
func (m *motor) advance(dt, multiplier float64) {
	m.transform.Translate(m.transform.Forward().Mul(dt * m.moveSpeed * multiplier))
}

// faceAwayFrom snaps orientation to the level heading pointing away from
// point. A point straight above or below leaves the orientation unchanged.
func (m *motor) faceAwayFrom(point mgl64.Vec3) {
	if heading, ok := mathutil.AwayFrom(m.transform.Position, point); ok {
		m.transform.Rotation = heading
	}
}
