package primitives

import "math"

// Point is a location in 3D space.
type Point struct {
	xyz Double3
}

// NewPoint returns the point (x, y, z).
func NewPoint(x, y, z float64) Point {
	return Point{xyz: Double3{x, y, z}}
}

func PointOf(xyz Double3) Point {
	return Point{xyz: xyz}
}

func (p Point) X() float64 { return p.xyz.D1 }
func (p Point) Y() float64 { return p.xyz.D2 }
func (p Point) Z() float64 { return p.xyz.D3 }

// XYZ returns the coordinates as a Double3.
func (p Point) XYZ() Double3 { return p.xyz }

// Add moves p by v.
func (p Point) Add(v Vector) Point {
	return Point{xyz: p.xyz.Add(v.xyz)}
}

// Subtract returns the vector pointing from o to p.
func (p Point) Subtract(o Point) (Vector, error) {
	d := p.xyz.Subtract(o.xyz)
	if d.IsZero() {
		return Vector{}, zeroVectorError("subtract", d)
	}
	return Vector{Point{d}}, nil
}

// DistanceSquared returns the squared Euclidean distance between p and o.
func (p Point) DistanceSquared(o Point) float64 {
	d := p.xyz.Subtract(o.xyz)
	return d.D1*d.D1 + d.D2*d.D2 + d.D3*d.D3
}

func (p Point) Distance(o Point) float64 {
	return math.Sqrt(p.DistanceSquared(o))
}

func (p Point) Equal(o Point) bool {
	return p.xyz.Equal(o.xyz)
}

func (p Point) String() string {
	return "Point" + p.xyz.String()
}
