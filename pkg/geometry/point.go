package geometry

import (
	"strconv"
	"strings"

	"geomcalc/pkg/serrors"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a location in the plane. Points are plain values; copies never
// share state.
type Point struct {
	X float64
	Y float64
}

// NewPoint returns the point (x, y). Both coordinates must be finite.
func NewPoint(x, y float64) (Point, error) {
	if !isFinite(x) || !isFinite(y) {
		return Point{}, serrors.With(ErrPoint, "coordinates must be finite numbers, got (%v, %v)", x, y)
	}

	return Point{X: x, Y: y}, nil
}

// ParsePoint builds a point from textual coordinates such as "3", " -1.5 " or
// "2e3".
func ParsePoint(x, y string) (Point, error) {
	fx, err := ParseNumber(x)
	if err != nil {
		return Point{}, serrors.Wrap(ErrPoint, err, "invalid x coordinate %q", x)
	}
	fy, err := ParseNumber(y)
	if err != nil {
		return Point{}, serrors.Wrap(ErrPoint, err, "invalid y coordinate %q", y)
	}

	return NewPoint(fx, fy)
}

// ParseNumber parses a finite decimal number, ignoring surrounding whitespace.
func ParseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrInvalidArgument, err, "not a number")
	}
	if !isFinite(v) {
		return 0, serrors.With(serrors.ErrInvalidArgument, "not a finite number")
	}

	return v, nil
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return r2.Norm(r2.Sub(q.vec(), p.vec()))
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// SectionFormula returns the point dividing the segment p→q internally in the
// ratio m:n, where ratio = m/n. A ratio of 1 yields the midpoint and a ratio of
// 0 yields p itself.
func (p Point) SectionFormula(q Point, ratio float64) (Point, error) {
	if !(ratio >= 0) || !isFinite(ratio) {
		return Point{}, serrors.Wrap(ErrPoint,
			serrors.With(serrors.ErrInvalidArgument, "ratio must be a non-negative finite number, got %v", ratio),
			"section formula")
	}

	return Point{
		X: (ratio*q.X + p.X) / (ratio + 1),
		Y: (ratio*q.Y + p.Y) / (ratio + 1),
	}, nil
}

// ApproxEqual reports whether both coordinates of p and q agree within Epsilon.
func (p Point) ApproxEqual(q Point) bool {
	return NearEqual(p.X, q.X) && NearEqual(p.Y, q.Y)
}

// String formats the point as "(x, y)".
func (p Point) String() string {
	return "(" + formatNumber(p.X) + ", " + formatNumber(p.Y) + ")"
}

func (p Point) vec() r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

func fromVec(v r2.Vec) Point { return Point{X: v.X, Y: v.Y} }

// cross returns the z component of (a-o) × (b-o). It is positive when o, a, b
// make a counter-clockwise turn.
func cross(o, a, b Point) float64 {
	return r2.Cross(r2.Sub(a.vec(), o.vec()), r2.Sub(b.vec(), o.vec()))
}

// signedArea returns the signed area of the triangle p1, p2, p3, positive for
// counter-clockwise order.
func signedArea(p1, p2, p3 Point) float64 {
	return 0.5 * (p1.X*(p2.Y-p3.Y) + p2.X*(p3.Y-p1.Y) + p3.X*(p1.Y-p2.Y))
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
