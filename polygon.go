package rowan

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Polygon2D is the reference concrete entity: a solid-color polygon that
// owns its points outright. Transform state is derived from the point list,
// which also feeds the collision path and boundary quad, so the three can
// never drift apart.
//
// The polygon implements [Transformable]; all of the base [Entity]
// operations (absolute setters, center-pivoted rotate/scale, collision)
// work on it unchanged.
type Polygon2D struct {
	Entity

	points      []Pointf
	translation Pointf // tracks the original anchor point (points[0])
	rotation    float64
	scale       Pointf

	// Color is the fill color used by Render.
	Color Color
}

// NewPolygon2D creates a polygon entity from the given points. The points
// are copied; the first point becomes the polygon's translation anchor.
// Panics if fewer than 3 points are given.
func NewPolygon2D(points []Pointf) *Polygon2D {
	if len(points) < 3 {
		panic("rowan: a polygon needs at least 3 points")
	}
	p := &Polygon2D{
		points:      make([]Pointf, len(points)),
		translation: points[0],
		scale:       Uniform(1),
		Color:       ColorWhite,
	}
	copy(p.points, points)
	p.Init("Polygon2D", p)
	p.SetShouldRender(true)
	p.updateGeometry()
	return p
}

// NewRectangle creates a rectangular polygon entity with its top-left
// corner at (x, y).
func NewRectangle(x, y, width, height float64) *Polygon2D {
	return NewPolygon2D([]Pointf{
		{x, y},
		{x + width, y},
		{x + width, y + height},
		{x, y + height},
	})
}

// Points returns the polygon's points. The returned slice MUST NOT be
// mutated; use the transform operations instead.
func (p *Polygon2D) Points() []Pointf {
	return p.points
}

// Translation returns the polygon's translation anchor.
func (p *Polygon2D) Translation() Pointf {
	return p.translation
}

// Rotation returns the polygon's accumulated rotation in degrees.
func (p *Polygon2D) Rotation() float64 {
	return p.rotation
}

// Scale returns the polygon's accumulated scale.
func (p *Polygon2D) Scale() Pointf {
	return p.scale
}

// Translate moves every point by delta and shifts the boundary quad and
// collision path to match.
func (p *Polygon2D) Translate(delta Pointf) {
	for i := range p.points {
		p.points[i] = p.points[i].Add(delta)
	}
	p.translation = p.translation.Add(delta)

	// Translation preserves shape; shift the cached geometry in place
	// rather than rebuilding it.
	p.TranslateBounds(delta)
	if path := p.CollisionPath(); path != nil {
		path.Translate(delta)
	}
}

// RotateAround rotates every point by deg degrees about the pivot and
// recomputes the boundary quad and collision path.
func (p *Polygon2D) RotateAround(deg float64, pivot Pointf) {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	for i := range p.points {
		p.points[i] = rotatePoint(p.points[i], pivot, sin, cos)
	}
	p.translation = rotatePoint(p.translation, pivot, sin, cos)
	p.rotation += deg
	p.updateGeometry()
}

// ScaleAround adds factor to the polygon's scale, scaling every point about
// the pivot, and recomputes the boundary quad and collision path.
func (p *Polygon2D) ScaleAround(factor Pointf, pivot Pointf) {
	oldScale := p.scale
	p.scale = p.scale.Add(factor)

	// Point offsets from the pivot grow by the ratio of new to old scale.
	ratio := Pointf{
		X: scaleRatio(p.scale.X, oldScale.X),
		Y: scaleRatio(p.scale.Y, oldScale.Y),
	}
	for i := range p.points {
		p.points[i] = pivot.Add(p.points[i].Sub(pivot).Mul(ratio))
	}
	p.translation = pivot.Add(p.translation.Sub(pivot).Mul(ratio))
	p.updateGeometry()
}

// Destroy resets the polygon's geometry and severs every scene reference.
func (p *Polygon2D) Destroy(origin Scene) {
	p.points = nil
	p.translation = Pointf{}
	p.rotation = 0
	p.scale = Uniform(1)
	p.SetShouldRender(false)
	p.Entity.Destroy(origin)
}

// Render draws the polygon as a fan-triangulated solid-color mesh.
// Concave polygons render incorrectly (fan triangulation); their collision
// behavior is still exact.
func (p *Polygon2D) Render(dst *ebiten.Image) {
	if !p.ShouldRender() || len(p.points) < 3 {
		return
	}

	n := len(p.points)
	verts := make([]ebiten.Vertex, n)
	inds := make([]uint16, (n-2)*3)

	for i, pt := range p.points {
		v := &verts[i]
		v.DstX = float32(pt.X)
		v.DstY = float32(pt.Y)
		// Sample the center of the white pixel; color comes from the
		// vertex tint.
		v.SrcX = 0.5
		v.SrcY = 0.5
		v.ColorR = float32(p.Color.R)
		v.ColorG = float32(p.Color.G)
		v.ColorB = float32(p.Color.B)
		v.ColorA = float32(p.Color.A)
	}
	for i := 0; i < n-2; i++ {
		inds[i*3+0] = 0
		inds[i*3+1] = uint16(i + 1)
		inds[i*3+2] = uint16(i + 2)
	}

	dst.DrawTriangles(verts, inds, WhitePixel, &ebiten.DrawTrianglesOptions{})
}

// updateGeometry rebuilds the boundary quad and collision path from the
// current points.
func (p *Polygon2D) updateGeometry() {
	p.SetBounds(BoundingQuad(p.points))
	p.SetCollisionPath(NewPath(p.points))
}

func rotatePoint(pt, pivot Pointf, sin, cos float64) Pointf {
	dx := pt.X - pivot.X
	dy := pt.Y - pivot.Y
	return Pointf{
		X: pivot.X + dx*cos - dy*sin,
		Y: pivot.Y + dx*sin + dy*cos,
	}
}

func scaleRatio(newScale, oldScale float64) float64 {
	if FloatEquals(oldScale, 0) {
		return 0
	}
	return newScale / oldScale
}
