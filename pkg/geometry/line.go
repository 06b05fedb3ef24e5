package geometry

import (
	"math"
	"strings"

	"geomcalc/pkg/serrors"
)

// Line is the infinite line through two distinct points, stored together with
// its implicit form a·x + b·y + c = 0 where a = y2−y1, b = x1−x2 and
// c = x2·y1 − x1·y2.
type Line struct {
	p1, p2  Point
	a, b, c float64
}

// NewLine returns the line through p1 and p2.
func NewLine(p1, p2 Point) (Line, error) {
	if p1 == p2 {
		return Line{}, serrors.With(ErrLine, "cannot create a line through identical points %s", p1)
	}

	return Line{
		p1: p1,
		p2: p2,
		a:  p2.Y - p1.Y,
		b:  p1.X - p2.X,
		c:  p2.X*p1.Y - p1.X*p2.Y,
	}, nil
}

// Point1 returns the first defining point.
func (l Line) Point1() Point { return l.p1 }

// Point2 returns the second defining point.
func (l Line) Point2() Point { return l.p2 }

// Coefficients returns a, b and c of the implicit form.
func (l Line) Coefficients() (a, b, c float64) { return l.a, l.b, l.c }

// Slope returns the slope of the line. ok is false for vertical lines.
func (l Line) Slope() (m float64, ok bool) {
	if l.p2.X == l.p1.X {
		return 0, false
	}

	return (l.p2.Y - l.p1.Y) / (l.p2.X - l.p1.X), true
}

// Equation renders the implicit form, e.g. "3x - 4y + 5 = 0". Zero terms are
// omitted and unit coefficients of x and y are elided.
func (l Line) Equation() string {
	var sb strings.Builder
	writeTerm(&sb, l.a, "x")
	writeTerm(&sb, l.b, "y")
	writeTerm(&sb, l.c, "")
	sb.WriteString(" = 0")

	return sb.String()
}

func writeTerm(sb *strings.Builder, coef float64, variable string) {
	if coef == 0 {
		return
	}

	switch {
	case sb.Len() == 0 && coef < 0:
		sb.WriteString("-")
	case sb.Len() > 0 && coef < 0:
		sb.WriteString(" - ")
	case sb.Len() > 0:
		sb.WriteString(" + ")
	}

	if mag := math.Abs(coef); mag != 1 || variable == "" {
		sb.WriteString(formatNumber(mag))
	}
	sb.WriteString(variable)
}

// Length returns the distance between the two defining points.
func (l Line) Length() float64 {
	return l.p1.DistanceTo(l.p2)
}

// IsParallel reports whether both lines are vertical or their slopes differ by
// less than Epsilon.
func (l Line) IsParallel(other Line) bool {
	m1, ok1 := l.Slope()
	m2, ok2 := other.Slope()

	switch {
	case !ok1 && !ok2:
		return true
	case !ok1 || !ok2:
		return false
	default:
		return NearEqual(m1, m2)
	}
}

// IsPerpendicular reports whether one line is vertical and the other exactly
// horizontal, or the product of both slopes is -1 within Epsilon.
func (l Line) IsPerpendicular(other Line) bool {
	m1, ok1 := l.Slope()
	m2, ok2 := other.Slope()

	switch {
	case !ok1 && ok2:
		return m2 == 0
	case ok1 && !ok2:
		return m1 == 0
	case ok1 && ok2:
		return NearZero(m1*m2 + 1)
	default:
		return false
	}
}

// AngleWith returns the acute angle between the two lines in degrees, in
// [0, 90].
func (l Line) AngleWith(other Line) float64 {
	m1, ok1 := l.Slope()
	m2, ok2 := other.Slope()

	switch {
	case !ok1 && !ok2:
		return 0
	case !ok1 || !ok2:
		return 90
	case l.IsPerpendicular(other):
		// 1 + m1·m2 vanishes here.
		return 90
	}

	tan := math.Abs((m2 - m1) / (1 + m1*m2))

	return math.Atan(tan) * 180 / math.Pi
}

// PointOnLine reports whether p satisfies the implicit equation within Epsilon.
func (l Line) PointOnLine(p Point) bool {
	return NearZero(l.eval(p))
}

// IntersectionWith returns the single point shared by two non-parallel lines.
// ok is false for parallel or numerically parallel lines.
func (l Line) IntersectionWith(other Line) (p Point, ok bool) {
	if l.IsParallel(other) {
		return Point{}, false
	}

	det := l.a*other.b - other.a*l.b
	if NearZero(det) {
		return Point{}, false
	}

	return Point{
		X: (l.b*other.c - other.b*l.c) / det,
		Y: (other.a*l.c - l.a*other.c) / det,
	}, true
}

// Summary returns the canonical representation of the line.
func (l Line) Summary() LineSummary {
	slope, ok := l.Slope()

	return LineSummary{
		Point1:   l.p1,
		Point2:   l.p2,
		Equation: l.Equation(),
		Slope:    slope,
		Vertical: !ok,
		Length:   l.Length(),
	}
}

func (l Line) eval(p Point) float64 {
	return l.a*p.X + l.b*p.Y + l.c
}

// distanceTo returns the perpendicular distance from p to the line.
func (l Line) distanceTo(p Point) float64 {
	return math.Abs(l.eval(p)) / math.Sqrt(l.a*l.a+l.b*l.b)
}

// foot returns the orthogonal projection of p onto the line.
func (l Line) foot(p Point) Point {
	k := -l.eval(p) / (l.a*l.a + l.b*l.b)

	return Point{X: p.X + k*l.a, Y: p.Y + k*l.b}
}

// perpendicularThrough returns the line through p perpendicular to l.
// Vertical and horizontal lines are handled without dividing by the slope.
func (l Line) perpendicularThrough(p Point) (Line, error) {
	m, ok := l.Slope()

	switch {
	case !ok:
		return NewLine(p, Point{X: p.X + 1, Y: p.Y})
	case m == 0:
		return NewLine(p, Point{X: p.X, Y: p.Y + 1})
	default:
		return NewLine(p, Point{X: p.X + 1, Y: p.Y - 1/m})
	}
}
