package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// Rect is an axis-aligned box on the XZ plane, centered at (X, Z).
type Rect struct {
	X, Z         float64
	Width, Depth float64
}

// Circle is a round patch on the XZ plane.
type Circle struct {
	X, Z, Radius float64
}

// WorldBounds describes the static geometry of the pen.
// The pen is centered on the origin.
type WorldBounds struct {
	Width, Depth float64
	Rocks        []Rect
	Meadows      []Circle
}

// Contains reports whether p lies inside the pen walls, at least margin away.
func (b WorldBounds) Contains(p mgl64.Vec3, margin float64) bool {
	hw, hd := b.Width/2-margin, b.Depth/2-margin
	return p.X() >= -hw && p.X() <= hw && p.Z() >= -hd && p.Z() <= hd
}

// Overlaps reports whether a circle at p with radius r touches rect.
func (r Rect) Overlaps(p mgl64.Vec3, radius float64) bool {
	bb := r.bb()
	return p.X()+radius > bb.L && p.X()-radius < bb.R &&
		p.Z()+radius > bb.B && p.Z()-radius < bb.T
}

func (r Rect) bb() cp.BB {
	return cp.BB{
		L: r.X - r.Width/2,
		B: r.Z - r.Depth/2,
		R: r.X + r.Width/2,
		T: r.Z + r.Depth/2,
	}
}

// toPlane maps a world position onto the physics plane (X, Z).
func toPlane(p mgl64.Vec3) cp.Vector {
	return cp.Vector{X: p.X(), Y: p.Z()}
}

// fromPlane maps a plane point back to world space at height y.
func fromPlane(v cp.Vector, y float64) mgl64.Vec3 {
	return mgl64.Vec3{v.X, y, v.Y}
}
