package creature

import "github.com/go-gl/mathgl/mgl64"

// Surface answers closest-point queries against the geometry that was touched.
type Surface interface {
	ClosestPoint(p mgl64.Vec3) mgl64.Vec3
}

// Contact is a collision or trigger event as seen by the receiving creature.
type Contact struct {
	Category Category
	Position mgl64.Vec3 // world position of the other entity
	Surface  Surface    // nil when the other party has no queryable geometry
}

// ClosestPoint returns the point of the contacted geometry nearest to p.
func (c Contact) ClosestPoint(p mgl64.Vec3) mgl64.Vec3 {
	if c.Surface == nil {
		return c.Position
	}
	return c.Surface.ClosestPoint(p)
}
