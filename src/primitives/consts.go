package primitives

import "math"

const (
	Infinity = math.MaxFloat64

	// Accuracy is the binary exponent below which a value counts as zero.
	Accuracy = -40

	exponentMask = 0x7FF
	exponentBias = 1023
)

var (
	Zero3 = Double3{}
	One3  = Double3{1, 1, 1}

	Origin = Point{}

	// Unit axes. Treat as read-only.

	AxisX = Vector{Point{Double3{1, 0, 0}}}
	AxisY = Vector{Point{Double3{0, 1, 0}}}
	AxisZ = Vector{Point{Double3{0, 0, 1}}}
)
