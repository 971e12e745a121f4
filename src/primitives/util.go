package primitives

import (
	"math"
	"math/rand"
)

// exponent returns the unbiased binary exponent of x.
func exponent(x float64) int {
	return int((math.Float64bits(x)>>52)&exponentMask) - exponentBias
}

// IsZero reports whether x is closer to zero than 2^Accuracy.
func IsZero(x float64) bool {
	return exponent(x) < Accuracy
}

// AlignZero snaps values that IsZero to exactly 0.
func AlignZero(x float64) float64 {
	if IsZero(x) {
		return 0
	}
	return x
}

// CheckSign reports whether a and b are both positive or both negative.
func CheckSign(a, b float64) bool {
	return (a < 0 && b < 0) || (a > 0 && b > 0)
}

// Random returns a uniform value in [min, max) from the global math/rand
// source, which is deterministic unless the caller seeds it.
func Random(min, max float64) float64 {
	return rand.Float64()*(max-min) + min
}
