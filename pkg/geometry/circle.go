package geometry

import (
	"fmt"
	"math"

	"geomcalc/pkg/serrors"

	"gonum.org/v1/gonum/spatial/r2"
)

// Circle is the set of points at distance radius from center.
type Circle struct {
	center Point
	radius float64
}

// NewCircle returns the circle with the given center and radius. The radius
// must be positive and finite.
func NewCircle(center Point, radius float64) (Circle, error) {
	if !(radius > 0) || math.IsInf(radius, 1) {
		return Circle{}, serrors.With(ErrCircle, "radius must be a positive finite number, got %v", radius)
	}

	return Circle{center: center, radius: radius}, nil
}

// Center returns the center of the circle.
func (c Circle) Center() Point { return c.center }

// Radius returns the radius of the circle.
func (c Circle) Radius() float64 { return c.radius }

// Area returns π·r².
func (c Circle) Area() float64 {
	return math.Pi * c.radius * c.radius
}

// Circumference returns 2π·r.
func (c Circle) Circumference() float64 {
	return 2 * math.Pi * c.radius
}

// Equation renders the standard form, e.g. "(x - 1)² + (y + 2)² = 3²".
func (c Circle) Equation() string {
	return fmt.Sprintf("%s² + %s² = %s²",
		axisTerm("x", c.center.X), axisTerm("y", c.center.Y), formatNumber(c.radius))
}

func axisTerm(variable string, offset float64) string {
	switch {
	case offset == 0:
		return variable
	case offset < 0:
		return "(" + variable + " + " + formatNumber(-offset) + ")"
	default:
		return "(" + variable + " - " + formatNumber(offset) + ")"
	}
}

// ContainsPoint reports whether p lies inside the circle or on its boundary.
func (c Circle) ContainsPoint(p Point) bool {
	return c.center.DistanceTo(p) <= c.radius
}

// TangentLines returns the tangents to the circle passing through p: one line
// when p is on the circle, two when p is outside. Points strictly inside the
// circle have no tangent and yield an error.
func (c Circle) TangentLines(p Point) ([]Line, error) {
	dist := c.center.DistanceTo(p)

	if NearEqual(dist, c.radius) {
		var second Point
		switch {
		case p.X == c.center.X:
			// vertical radius, horizontal tangent
			second = Point{X: p.X + 1, Y: p.Y}
		case p.Y == c.center.Y:
			second = Point{X: p.X, Y: p.Y + 1}
		default:
			m := (p.Y - c.center.Y) / (p.X - c.center.X)
			second = Point{X: p.X + 1, Y: p.Y - 1/m}
		}

		tangent, err := NewLine(p, second)
		if err != nil {
			return nil, serrors.Wrap(ErrCircle, err, "could not build tangent at %s", p)
		}

		return []Line{tangent}, nil
	}

	if dist < c.radius {
		return nil, serrors.With(ErrCircle, "cannot draw a tangent from point %s inside the circle", p)
	}

	// The chord of contact crosses the center→p axis at distance r²/dist from
	// the center; the tangent points sit h away from it on either side.
	d := c.radius * c.radius / dist
	h := math.Sqrt(c.radius*c.radius - d*d)
	axis := r2.Scale(1/dist, r2.Sub(p.vec(), c.center.vec()))
	normal := r2.Vec{X: -axis.Y, Y: axis.X}
	base := r2.Add(c.center.vec(), r2.Scale(d, axis))

	lines := make([]Line, 0, 2)
	for _, sign := range []float64{1, -1} {
		touch := fromVec(r2.Add(base, r2.Scale(sign*h, normal)))
		tangent, err := NewLine(p, touch)
		if err != nil {
			return nil, serrors.Wrap(ErrCircle, err, "could not build tangent through %s", touch)
		}
		lines = append(lines, tangent)
	}

	return lines, nil
}

// IntersectionWithLine returns the points where l meets the circle: none, one
// (tangency) or two.
func (c Circle) IntersectionWithLine(l Line) []Point {
	dist := l.distanceTo(c.center)
	foot := l.foot(c.center)

	if NearEqual(dist, c.radius) {
		return []Point{foot}
	}
	if dist > c.radius {
		return nil
	}

	offset := math.Sqrt(c.radius*c.radius - dist*dist)
	dir := r2.Unit(r2.Vec{X: -l.b, Y: l.a})

	return []Point{
		fromVec(r2.Add(foot.vec(), r2.Scale(offset, dir))),
		fromVec(r2.Sub(foot.vec(), r2.Scale(offset, dir))),
	}
}

// IntersectionWithCircle returns the points shared by both circles: none when
// they are separate or nested, one when tangent (externally or internally) and
// two otherwise. Coincident circles share infinitely many points and yield an
// error.
func (c Circle) IntersectionWithCircle(other Circle) ([]Point, error) {
	ra, rb := c.radius, other.radius
	d := c.center.DistanceTo(other.center)

	if NearZero(d) {
		if NearEqual(ra, rb) {
			return nil, serrors.With(ErrCircle, "circles are coincident and share infinitely many points")
		}

		return nil, nil
	}

	axis := r2.Scale(1/d, r2.Sub(other.center.vec(), c.center.vec()))

	switch {
	case NearEqual(d, ra+rb):
		return []Point{fromVec(r2.Add(c.center.vec(), r2.Scale(ra, axis)))}, nil
	case NearEqual(d, math.Abs(ra-rb)):
		// internal tangency lies on the far side of the smaller circle
		if ra < rb {
			return []Point{fromVec(r2.Sub(c.center.vec(), r2.Scale(ra, axis)))}, nil
		}

		return []Point{fromVec(r2.Add(c.center.vec(), r2.Scale(ra, axis)))}, nil
	case d > ra+rb || d < math.Abs(ra-rb):
		return nil, nil
	}

	a := (ra*ra - rb*rb + d*d) / (2 * d)
	h := math.Sqrt(math.Max(0, ra*ra-a*a))
	mid := r2.Add(c.center.vec(), r2.Scale(a, axis))
	normal := r2.Vec{X: axis.Y, Y: -axis.X}

	return []Point{
		fromVec(r2.Add(mid, r2.Scale(h, normal))),
		fromVec(r2.Sub(mid, r2.Scale(h, normal))),
	}, nil
}

// Summary returns the canonical representation of the circle.
func (c Circle) Summary() CircleSummary {
	return CircleSummary{
		Center:        c.center,
		Radius:        c.radius,
		Equation:      c.Equation(),
		Area:          c.Area(),
		Circumference: c.Circumference(),
	}
}
