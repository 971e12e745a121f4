package primitives

import (
	"math"

	"github.com/golang/geo/s1"
)

// Vector is a non-zero direction in 3D space. It embeds Point, so the
// coordinate accessors of Point are available on every Vector.
// The zero value is not a valid Vector; build one with NewVector or VectorOf.
type Vector struct {
	Point
}

func NewVector(x, y, z float64) (Vector, error) {
	return VectorOf(Double3{x, y, z})
}

func VectorOf(xyz Double3) (Vector, error) {
	if xyz.IsZero() {
		return Vector{}, zeroVectorError("new vector", xyz)
	}
	return Vector{Point{xyz}}, nil
}

// MustVector is NewVector for coordinates known to be non-zero.
func MustVector(x, y, z float64) Vector {
	return Must(NewVector(x, y, z))
}

func (v Vector) LengthSquared() float64 {
	return v.xyz.D1*v.xyz.D1 +
		v.xyz.D2*v.xyz.D2 +
		v.xyz.D3*v.xyz.D3
}

// Length avoids overflow in the intermediate squares.
func (v Vector) Length() float64 {
	return math.Hypot(math.Hypot(v.xyz.D1, v.xyz.D2), v.xyz.D3)
}

func (v Vector) Dot(o Vector) float64 {
	return v.xyz.D1*o.xyz.D1 +
		v.xyz.D2*o.xyz.D2 +
		v.xyz.D3*o.xyz.D3
}

// Cross returns the right-handed cross product v × o. Parallel vectors
// yield ErrZeroVector.
func (v Vector) Cross(o Vector) (Vector, error) {
	c := cross(v.xyz, o.xyz)
	if c.IsZero() {
		return Vector{}, zeroVectorError("cross product", c)
	}
	return Vector{Point{c}}, nil
}

// Normalize returns the unit vector along v. Components are first divided
// by the largest magnitude so huge vectors do not overflow to a zero result.
func (v Vector) Normalize() Vector {
	m := math.Max(math.Abs(v.xyz.D1), math.Max(math.Abs(v.xyz.D2), math.Abs(v.xyz.D3)))
	d := Vector{Point{v.xyz.Reduce(m)}}
	return Vector{Point{d.xyz.Reduce(d.Length())}}
}

func (v Vector) Add(o Vector) (Vector, error) {
	sum := v.xyz.Add(o.xyz)
	if sum.IsZero() {
		return Vector{}, zeroVectorError("add", sum)
	}
	return Vector{Point{sum}}, nil
}

func (v Vector) Scale(k float64) (Vector, error) {
	scaled := v.xyz.Scale(k)
	if scaled.IsZero() {
		return Vector{}, zeroVectorError("scale", scaled)
	}
	return Vector{Point{scaled}}, nil
}

// RotateX rotates v about the x axis by deg degrees, counter-clockwise
// when looking down the axis towards the origin.
func (v Vector) RotateX(deg float64) Vector {
	sin, cos := math.Sincos(radians(deg))
	x, y, z := v.xyz.D1, v.xyz.D2, v.xyz.D3
	return Vector{Point{Double3{
		x,
		y*cos - z*sin,
		y*sin + z*cos,
	}}}
}

func (v Vector) RotateY(deg float64) Vector {
	sin, cos := math.Sincos(radians(deg))
	x, y, z := v.xyz.D1, v.xyz.D2, v.xyz.D3
	return Vector{Point{Double3{
		x*cos + z*sin,
		y,
		-x*sin + z*cos,
	}}}
}

func (v Vector) RotateZ(deg float64) Vector {
	sin, cos := math.Sincos(radians(deg))
	x, y, z := v.xyz.D1, v.xyz.D2, v.xyz.D3
	return Vector{Point{Double3{
		x*cos - y*sin,
		x*sin + y*cos,
		z,
	}}}
}

// Rotate rotates v about axis by deg degrees using Rodrigues' formula:
// v·cos + (k × v)·sin + k·(k·v)·(1 − cos), with k the unit axis.
// A zero axis leaves v unchanged.
func (v Vector) Rotate(axis Vector, deg float64) Vector {
	if axis.xyz.IsZero() {
		return v
	}
	sin, cos := math.Sincos(radians(deg))
	k := axis.Normalize()
	r := v.xyz.Scale(cos).
		Add(cross(k.xyz, v.xyz).Scale(sin)).
		Add(k.xyz.Scale(k.Dot(v) * (1 - cos)))
	return Vector{Point{r}}
}

func (v Vector) Equal(o Vector) bool {
	return v.xyz.Equal(o.xyz)
}

func (v Vector) String() string {
	return "Vector" + v.xyz.String()
}

func cross(a, b Double3) Double3 {
	return Double3{
		a.D2*b.D3 - a.D3*b.D2, // ay * bz - az * by
		a.D3*b.D1 - a.D1*b.D3, // az * bx - ax * bz
		a.D1*b.D2 - a.D2*b.D1, // ax * by - ay * bx
	}
}

func radians(deg float64) float64 {
	return (s1.Angle(deg) * s1.Degree).Radians()
}
