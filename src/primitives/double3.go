package primitives

import "fmt"

// Double3 is a triple of float64 coordinates.
type Double3 struct {
	D1, D2, D3 float64
}

func (d Double3) Add(o Double3) Double3 {
	return Double3{d.D1 + o.D1, d.D2 + o.D2, d.D3 + o.D3}
}

func (d Double3) Subtract(o Double3) Double3 {
	return Double3{d.D1 - o.D1, d.D2 - o.D2, d.D3 - o.D3}
}

func (d Double3) Scale(k float64) Double3 {
	return Double3{d.D1 * k, d.D2 * k, d.D3 * k}
}

// Reduce divides every component by k.
func (d Double3) Reduce(k float64) Double3 {
	return Double3{d.D1 / k, d.D2 / k, d.D3 / k}
}

// Product multiplies d and o component by component.
func (d Double3) Product(o Double3) Double3 {
	return Double3{d.D1 * o.D1, d.D2 * o.D2, d.D3 * o.D3}
}

// LowerThan reports whether every component is strictly below k.
func (d Double3) LowerThan(k float64) bool {
	return d.D1 < k && d.D2 < k && d.D3 < k
}

func (d Double3) LowerThanTriple(o Double3) bool {
	return d.D1 < o.D1 && d.D2 < o.D2 && d.D3 < o.D3
}

// IsZero reports whether every component is zero within the IsZero tolerance.
func (d Double3) IsZero() bool {
	return IsZero(d.D1) && IsZero(d.D2) && IsZero(d.D3)
}

// Equal compares within the IsZero tolerance.
func (d Double3) Equal(o Double3) bool {
	return d.Subtract(o).IsZero()
}

func (d Double3) String() string {
	return fmt.Sprintf("(%v,%v,%v)", d.D1, d.D2, d.D3)
}
