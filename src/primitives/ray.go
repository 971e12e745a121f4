package primitives

import "fmt"

// Ray is a half-line starting at a head point with a unit direction.
type Ray struct {
	head Point
	dir  Vector
}

func NewRay(head Point, dir Vector) Ray {
	return Ray{head: head, dir: dir.Normalize()}
}

func (r Ray) Head() Point       { return r.head }
func (r Ray) Direction() Vector { return r.dir }

// PointAt returns head + t·direction.
func (r Ray) PointAt(t float64) Point {
	if IsZero(t) {
		return r.head
	}
	return PointOf(r.head.xyz.Add(r.dir.xyz.Scale(t)))
}

func (r Ray) Equal(o Ray) bool {
	return r.head.Equal(o.head) && r.dir.Equal(o.dir)
}

func (r Ray) String() string {
	return fmt.Sprintf("Ray{%s -> %s}", r.head, r.dir)
}
