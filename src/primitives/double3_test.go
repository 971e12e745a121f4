package primitives

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDouble3Arithmetic(t *testing.T) {
	a := Double3{1, 2, 3}
	b := Double3{4, -5, 0.5}

	assert.Equal(t, Double3{5, -3, 3.5}, a.Add(b))
	assert.Equal(t, Double3{-3, 7, 2.5}, a.Subtract(b))
	assert.Equal(t, Double3{2, 4, 6}, a.Scale(2))
	assert.Equal(t, Double3{0.5, 1, 1.5}, a.Reduce(2))
	assert.Equal(t, Double3{4, -10, 1.5}, a.Product(b))
	assert.Equal(t, a, a.Product(One3))
	assert.Equal(t, Zero3, a.Product(Zero3))
}

func TestDouble3Compare(t *testing.T) {
	for idx, tc := range []struct {
		a, b  Double3
		lower bool
		equal bool
	}{
		{Double3{1, 2, 3}, Double3{2, 3, 4}, true, false},
		{Double3{1, 2, 3}, Double3{2, 2, 4}, false, false},
		{Double3{1, 2, 3}, Double3{1, 2, 3}, false, true},
		{Double3{1, 2, 3}, Double3{1, 2, 3 + 1e-14}, false, true},
		{Zero3, Double3{1e-20, -1e-20, 0}, false, true},
	} {
		t.Run(fmt.Sprintf("%d/%s<%s", idx, tc.a, tc.b), func(t *testing.T) {
			require.Equal(t, tc.lower, tc.a.LowerThanTriple(tc.b))
			require.Equal(t, tc.equal, tc.a.Equal(tc.b))
			require.Equal(t, tc.equal, tc.b.Equal(tc.a))
		})
	}

	require.True(t, Double3{1, 2, 3}.LowerThan(3.5))
	require.False(t, Double3{1, 2, 3}.LowerThan(3))
}

func TestDouble3IsZero(t *testing.T) {
	require.True(t, Zero3.IsZero())
	require.True(t, Double3{1e-13, 0, -1e-13}.IsZero())
	require.False(t, Double3{0, 0, 1e-6}.IsZero())
	require.False(t, One3.IsZero())
}

func TestDouble3String(t *testing.T) {
	require.Equal(t, "(1,-2.5,0)", Double3{1, -2.5, 0}.String())
}
