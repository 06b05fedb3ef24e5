package geometry

import (
	"math"

	"geomcalc/pkg/serrors"
)

// Triangle is a non-degenerate triangle. Its sides p1→p2, p2→p3 and p3→p1 are
// derived at construction.
type Triangle struct {
	p1, p2, p3 Point
	sides      [3]Line
}

// NewTriangle returns the triangle p1, p2, p3. Collinear vertices are rejected.
func NewTriangle(p1, p2, p3 Point) (Triangle, error) {
	if NearZero(signedArea(p1, p2, p3)) {
		return Triangle{}, serrors.With(ErrTriangle, "points %s, %s and %s are collinear, cannot form a triangle", p1, p2, p3)
	}

	t := Triangle{p1: p1, p2: p2, p3: p3}
	for i, pair := range [3][2]Point{{p1, p2}, {p2, p3}, {p3, p1}} {
		side, err := NewLine(pair[0], pair[1])
		if err != nil {
			return Triangle{}, serrors.Wrap(ErrTriangle, err, "invalid side %d", i+1)
		}
		t.sides[i] = side
	}

	return t, nil
}

// Points returns the three vertices in construction order.
func (t Triangle) Points() [3]Point { return [3]Point{t.p1, t.p2, t.p3} }

// Sides returns the sides p1→p2, p2→p3 and p3→p1.
func (t Triangle) Sides() [3]Line { return t.sides }

// Area returns the unsigned area.
func (t Triangle) Area() float64 {
	return math.Abs(signedArea(t.p1, t.p2, t.p3))
}

// Perimeter returns the sum of the side lengths.
func (t Triangle) Perimeter() float64 {
	return t.sides[0].Length() + t.sides[1].Length() + t.sides[2].Length()
}

// Centroid returns the mean of the vertices.
func (t Triangle) Centroid() Point {
	return Point{
		X: (t.p1.X + t.p2.X + t.p3.X) / 3,
		Y: (t.p1.Y + t.p2.Y + t.p3.Y) / 3,
	}
}

// Orthocenter returns the intersection of the altitudes from p1 and p2.
func (t Triangle) Orthocenter() (Point, error) {
	alt1, err := t.sides[1].perpendicularThrough(t.p1)
	if err != nil {
		return Point{}, serrors.Wrap(ErrTriangle, err, "altitude from %s", t.p1)
	}
	alt2, err := t.sides[2].perpendicularThrough(t.p2)
	if err != nil {
		return Point{}, serrors.Wrap(ErrTriangle, err, "altitude from %s", t.p2)
	}

	p, ok := alt1.IntersectionWith(alt2)
	if !ok {
		return Point{}, serrors.With(ErrTriangle, "altitudes do not intersect")
	}

	return p, nil
}

// Circumcenter returns the intersection of the perpendicular bisectors of
// p1→p2 and p2→p3.
func (t Triangle) Circumcenter() (Point, error) {
	bis1, err := t.sides[0].perpendicularThrough(t.p1.Midpoint(t.p2))
	if err != nil {
		return Point{}, serrors.Wrap(ErrTriangle, err, "bisector of side 1")
	}
	bis2, err := t.sides[1].perpendicularThrough(t.p2.Midpoint(t.p3))
	if err != nil {
		return Point{}, serrors.Wrap(ErrTriangle, err, "bisector of side 2")
	}

	p, ok := bis1.IntersectionWith(bis2)
	if !ok {
		return Point{}, serrors.With(ErrTriangle, "perpendicular bisectors do not intersect")
	}

	return p, nil
}

// Incenter returns the mean of the vertices weighted by the length of the
// opposite side.
func (t Triangle) Incenter() Point {
	a := t.p2.DistanceTo(t.p3)
	b := t.p1.DistanceTo(t.p3)
	c := t.p1.DistanceTo(t.p2)
	sum := a + b + c

	return Point{
		X: (a*t.p1.X + b*t.p2.X + c*t.p3.X) / sum,
		Y: (a*t.p1.Y + b*t.p2.Y + c*t.p3.Y) / sum,
	}
}

// Circumcircle returns the circle passing through all three vertices.
func (t Triangle) Circumcircle() (Circle, error) {
	center, err := t.Circumcenter()
	if err != nil {
		return Circle{}, err
	}

	c, err := NewCircle(center, center.DistanceTo(t.p1))
	if err != nil {
		return Circle{}, serrors.Wrap(ErrTriangle, err, "circumcircle")
	}

	return c, nil
}

// Incircle returns the circle tangent to all three sides. Its radius is
// 2·area / perimeter.
func (t Triangle) Incircle() (Circle, error) {
	c, err := NewCircle(t.Incenter(), 2*t.Area()/t.Perimeter())
	if err != nil {
		return Circle{}, serrors.Wrap(ErrTriangle, err, "incircle")
	}

	return c, nil
}

// Summary returns the canonical representation of the triangle. A center the
// triangle cannot provide within tolerance is left unset and flagged absent.
func (t Triangle) Summary() TriangleSummary {
	s := TriangleSummary{
		Points:    t.Points(),
		Area:      t.Area(),
		Perimeter: t.Perimeter(),
		Centroid:  t.Centroid(),
		Incenter:  t.Incenter(),
	}
	if p, err := t.Orthocenter(); err == nil {
		s.Orthocenter, s.HasOrthocenter = p, true
	}
	if p, err := t.Circumcenter(); err == nil {
		s.Circumcenter, s.HasCircumcenter = p, true
	}

	return s
}
