package rowan

import "fmt"

// Path is a closed polygon outline used for exact collision testing.
// The closing edge from the last point back to the first is implicit.
// Points may describe a convex or concave simple polygon.
type Path struct {
	points []Pointf
}

// NewPath creates a collision path from the given points. The points are
// copied. Panics if fewer than 3 points are given.
func NewPath(points []Pointf) *Path {
	if len(points) < 3 {
		panic("rowan: a collision path needs at least 3 points")
	}
	p := &Path{points: make([]Pointf, len(points))}
	copy(p.points, points)
	return p
}

// NewRectanglePath creates a rectangular collision path with its top-left
// corner at (x, y).
func NewRectanglePath(x, y, width, height float64) *Path {
	return NewPath([]Pointf{
		{x, y},
		{x + width, y},
		{x + width, y + height},
		{x, y + height},
	})
}

// Points returns the path's points. The returned slice MUST NOT be mutated.
func (p *Path) Points() []Pointf {
	return p.points
}

// Translate moves every point of the path by delta.
func (p *Path) Translate(delta Pointf) {
	for i := range p.points {
		p.points[i] = p.points[i].Add(delta)
	}
}

// Bounds returns the path's axis-aligned bounding quad in [Boundary] order.
func (p *Path) Bounds() []Pointf {
	return BoundingQuad(p.points)
}

// CollisionResult is the outcome of an intersection test between two
// collision paths.
type CollisionResult uint8

const (
	// CollisionNoGeometry means at least one side had no collision path.
	// This is a valid transient state during destruction or a scene
	// transition, and tests treat it as "not colliding".
	CollisionNoGeometry CollisionResult = iota

	// CollisionNoIntersection means both paths exist and do not overlap.
	CollisionNoIntersection

	// CollisionIntersects means the closed regions overlap. Boundary
	// contact counts as an intersection.
	CollisionIntersects
)

// Intersection performs an exact narrow-phase test between two collision
// paths, treating each as a closed region. Either path being nil yields
// CollisionNoGeometry.
func Intersection(a, b *Path) CollisionResult {
	if a == nil || b == nil {
		return CollisionNoGeometry
	}
	if pathsIntersect(a.points, b.points) {
		return CollisionIntersects
	}
	return CollisionNoIntersection
}

// CollidesWith reports whether the two entities' collision paths intersect.
//
// If either side's path is missing the test degrades to false. The missing
// side reports the condition through the package error reporter, unless its
// scene is mid-transition, in which case the condition is expected and
// suppressed.
func (e *Entity) CollidesWith(other *Entity) bool {
	if other.collisionPath == nil {
		other.reportMissingCollisionPath()
		return false
	}
	if e.collisionPath == nil {
		e.reportMissingCollisionPath()
		return false
	}
	return Intersection(e.collisionPath, other.collisionPath) == CollisionIntersects
}

func (e *Entity) reportMissingCollisionPath() {
	if e.scene != nil && e.scene.IsSwitchingScenes() {
		return
	}
	reporter.Error("the game crashed due to a collision error",
		fmt.Errorf("rowan: collision path for entity %s is nil", e.ID()))
}

// --- Polygon intersection ---

// pathsIntersect reports whether two simple polygons overlap as closed
// regions: any pair of edges intersects, or one polygon contains the other
// entirely.
func pathsIntersect(a, b []Pointf) bool {
	for i := range a {
		a1 := a[i]
		a2 := a[(i+1)%len(a)]
		for j := range b {
			if segmentsIntersect(a1, a2, b[j], b[(j+1)%len(b)]) {
				return true
			}
		}
	}
	// No edge crossings: overlap is only possible by full containment.
	return pointInPolygon(a[0], b) || pointInPolygon(b[0], a)
}

// orientation returns the sign of the cross product (q-p) x (r-p):
// 1 for counter-clockwise, -1 for clockwise, 0 for collinear
// (within FloatPrecision).
func orientation(p, q, r Pointf) int {
	cross := (q.X-p.X)*(r.Y-p.Y) - (q.Y-p.Y)*(r.X-p.X)
	if FloatEquals(cross, 0) {
		return 0
	}
	if cross > 0 {
		return 1
	}
	return -1
}

// onSegment reports whether the collinear point q lies on segment pr.
func onSegment(p, q, r Pointf) bool {
	return q.X <= max(p.X, r.X)+FloatPrecision && q.X >= min(p.X, r.X)-FloatPrecision &&
		q.Y <= max(p.Y, r.Y)+FloatPrecision && q.Y >= min(p.Y, r.Y)-FloatPrecision
}

// segmentsIntersect reports whether segments a1a2 and b1b2 intersect.
// Endpoint contact and collinear overlap count as intersecting.
func segmentsIntersect(a1, a2, b1, b2 Pointf) bool {
	o1 := orientation(a1, a2, b1)
	o2 := orientation(a1, a2, b2)
	o3 := orientation(b1, b2, a1)
	o4 := orientation(b1, b2, a2)

	if o1 != o2 && o3 != o4 {
		return true
	}

	// Collinear special cases.
	if o1 == 0 && onSegment(a1, b1, a2) {
		return true
	}
	if o2 == 0 && onSegment(a1, b2, a2) {
		return true
	}
	if o3 == 0 && onSegment(b1, a1, b2) {
		return true
	}
	if o4 == 0 && onSegment(b1, a2, b2) {
		return true
	}
	return false
}

// pointInPolygon reports whether pt lies inside the polygon using an
// even-odd ray cast toward +X.
func pointInPolygon(pt Pointf, polygon []Pointf) bool {
	inside := false
	n := len(polygon)
	for i := range n {
		p1 := polygon[i]
		p2 := polygon[(i+1)%n]
		if (p1.Y > pt.Y) == (p2.Y > pt.Y) {
			continue
		}
		crossX := p1.X + (pt.Y-p1.Y)/(p2.Y-p1.Y)*(p2.X-p1.X)
		if pt.X < crossX {
			inside = !inside
		}
	}
	return inside
}
