package geometry

import (
	"math"

	"geomcalc/pkg/serrors"

	"gonum.org/v1/gonum/spatial/r2"
)

// checked rejects a transformation result that overflowed or was fed a
// non-finite parameter.
func checked(op string, p Point) (Point, error) {
	if !isFinite(p.X) || !isFinite(p.Y) {
		return Point{}, serrors.With(ErrGeometry, "%s produced a non-finite point (%v, %v)", op, p.X, p.Y)
	}

	return p, nil
}

// Translate moves p by (dx, dy).
func Translate(p Point, dx, dy float64) (Point, error) {
	return checked("translate", Point{X: p.X + dx, Y: p.Y + dy})
}

// Rotate turns p counter-clockwise around center by angle degrees.
func Rotate(p, center Point, angle float64) (Point, error) {
	rad := angle * math.Pi / 180
	sin, cos := math.Sincos(rad)
	t := r2.Sub(p.vec(), center.vec())

	return checked("rotate", Point{
		X: t.X*cos - t.Y*sin + center.X,
		Y: t.X*sin + t.Y*cos + center.Y,
	})
}

// ReflectOverX mirrors p across the x axis.
func ReflectOverX(p Point) Point { return Point{X: p.X, Y: -p.Y} }

// ReflectOverY mirrors p across the y axis.
func ReflectOverY(p Point) Point { return Point{X: -p.X, Y: p.Y} }

// ReflectOverLine mirrors p across l.
func ReflectOverLine(p Point, l Line) (Point, error) {
	switch {
	case l.b == 0:
		x := -l.c / l.a
		return checked("reflect", Point{X: 2*x - p.X, Y: p.Y})
	case l.a == 0:
		y := -l.c / l.b
		return checked("reflect", Point{X: p.X, Y: 2*y - p.Y})
	}

	f := l.foot(p)

	return checked("reflect", Point{X: 2*f.X - p.X, Y: 2*f.Y - p.Y})
}

// Scale stretches p away from center by sx horizontally and sy vertically.
// Negative factors flip and zero collapses onto the center's axis.
func Scale(p, center Point, sx, sy float64) (Point, error) {
	return checked("scale", Point{
		X: (p.X-center.X)*sx + center.X,
		Y: (p.Y-center.Y)*sy + center.Y,
	})
}

func mapShape(points []Point, fn func(Point) (Point, error)) ([]Point, error) {
	out := make([]Point, len(points))
	for i, p := range points {
		q, err := fn(p)
		if err != nil {
			return nil, serrors.Wrap(ErrGeometry, err, "point %d", i+1)
		}
		out[i] = q
	}

	return out, nil
}

// TranslateShape applies Translate to every point, preserving order.
func TranslateShape(points []Point, dx, dy float64) ([]Point, error) {
	return mapShape(points, func(p Point) (Point, error) { return Translate(p, dx, dy) })
}

// RotateShape applies Rotate to every point, preserving order.
func RotateShape(points []Point, center Point, angle float64) ([]Point, error) {
	return mapShape(points, func(p Point) (Point, error) { return Rotate(p, center, angle) })
}

// ReflectShapeOverX applies ReflectOverX to every point, preserving order.
func ReflectShapeOverX(points []Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = ReflectOverX(p)
	}

	return out
}

// ReflectShapeOverY applies ReflectOverY to every point, preserving order.
func ReflectShapeOverY(points []Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = ReflectOverY(p)
	}

	return out
}

// ReflectShape applies ReflectOverLine to every point, preserving order.
func ReflectShape(points []Point, l Line) ([]Point, error) {
	return mapShape(points, func(p Point) (Point, error) { return ReflectOverLine(p, l) })
}

// ScaleShape applies Scale to every point, preserving order.
func ScaleShape(points []Point, center Point, sx, sy float64) ([]Point, error) {
	return mapShape(points, func(p Point) (Point, error) { return Scale(p, center, sx, sy) })
}
