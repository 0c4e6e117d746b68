package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// shapeSurface answers closest-point queries against a static shape.
type shapeSurface struct {
	shape *cp.Shape
}

// ClosestPoint returns the point on the shape's outline nearest to p, at p's height.
func (s shapeSurface) ClosestPoint(p mgl64.Vec3) mgl64.Vec3 {
	info := s.shape.PointQuery(toPlane(p))
	return fromPlane(info.Point, p.Y())
}
