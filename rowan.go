package rowan

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Pointf is a 2D point or vector used for translations, scales, pivots, and
// polygon vertices throughout the API.
type Pointf struct {
	X, Y float64
}

// Add returns the component-wise sum of p and other.
func (p Pointf) Add(other Pointf) Pointf {
	return Pointf{p.X + other.X, p.Y + other.Y}
}

// Sub returns the component-wise difference of p and other.
func (p Pointf) Sub(other Pointf) Pointf {
	return Pointf{p.X - other.X, p.Y - other.Y}
}

// Mul returns the component-wise product of p and other.
func (p Pointf) Mul(other Pointf) Pointf {
	return Pointf{p.X * other.X, p.Y * other.Y}
}

// MulScalar returns p with both components multiplied by s.
func (p Pointf) MulScalar(s float64) Pointf {
	return Pointf{p.X * s, p.Y * s}
}

// Magnitude returns the length of p as a vector from the origin.
func (p Pointf) Magnitude() float64 {
	return Magnitude(p.X, p.Y)
}

// Equals reports whether p and other are equal within FloatPrecision.
func (p Pointf) Equals(other Pointf) bool {
	return FloatEquals(p.X, other.X) && FloatEquals(p.Y, other.Y)
}

// Uniform returns a Pointf with both components set to v.
// Useful for uniform scale factors.
func Uniform(v float64) Pointf {
	return Pointf{v, v}
}

// Boundary names one corner of an entity's 4-point boundary quad.
// The values double as indices into the slice returned by [Entity.Bounds].
type Boundary uint8

const (
	BoundaryTopLeft Boundary = iota
	BoundaryTopRight
	BoundaryBottomRight
	BoundaryBottomLeft
)

// boundaryCount is the required length of every entity boundary slice.
const boundaryCount = 4

// String returns the corner name.
func (b Boundary) String() string {
	switch b {
	case BoundaryTopLeft:
		return "TopLeft"
	case BoundaryTopRight:
		return "TopRight"
	case BoundaryBottomRight:
		return "BottomRight"
	case BoundaryBottomLeft:
		return "BottomLeft"
	default:
		return "Unknown"
	}
}

// CenterOf returns the centroid of the given points.
func CenterOf(points []Pointf) Pointf {
	var sum Pointf
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.MulScalar(1 / float64(len(points)))
}

// BoundingQuad returns the axis-aligned bounding quad of the given points,
// ordered top-left, top-right, bottom-right, bottom-left to match [Boundary].
func BoundingQuad(points []Pointf) []Pointf {
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return []Pointf{
		{minX, minY},
		{maxX, minY},
		{maxX, maxY},
		{minX, maxY},
	}
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default entity fill color.
var ColorWhite = Color{1, 1, 1, 1}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

// WhitePixel is a 1x1 white image used as the texture for solid-color
// polygon rendering.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}
