package geometry

import (
	"math"

	"geomcalc/pkg/serrors"

	"gonum.org/v1/gonum/spatial/r2"
)

// MinPolygonPoints is the smallest number of vertices a polygon may have.
const MinPolygonPoints = 3

// Polygon is a closed chain of vertices. Vertex order defines the edges and the
// winding; the last vertex connects back to the first.
type Polygon struct {
	points []Point
	edges  []Line
}

// NewPolygon returns the polygon through points in order. The slice is copied.
// Consecutive identical vertices are rejected since they do not define an edge.
func NewPolygon(points []Point) (Polygon, error) {
	if len(points) < MinPolygonPoints {
		return Polygon{}, serrors.With(ErrPolygon, "a polygon must have at least %d points, got %d", MinPolygonPoints, len(points))
	}

	pts := make([]Point, len(points))
	copy(pts, points)

	edges := make([]Line, len(pts))
	for i := range pts {
		edge, err := NewLine(pts[i], pts[(i+1)%len(pts)])
		if err != nil {
			return Polygon{}, serrors.Wrap(ErrPolygon, err, "invalid edge %d", i+1)
		}
		edges[i] = edge
	}

	return Polygon{points: pts, edges: edges}, nil
}

// Points returns a copy of the vertices.
func (p Polygon) Points() []Point {
	out := make([]Point, len(p.points))
	copy(out, p.points)

	return out
}

// Len returns the number of vertices.
func (p Polygon) Len() int { return len(p.points) }

// shoelace returns twice the signed area, positive for counter-clockwise order.
func (p Polygon) shoelace() float64 {
	var sum float64
	for i, a := range p.points {
		b := p.points[(i+1)%len(p.points)]
		sum += a.X*b.Y - b.X*a.Y
	}

	return sum
}

// Area returns the unsigned area computed with the shoelace formula.
func (p Polygon) Area() float64 {
	return math.Abs(p.shoelace()) / 2
}

// Perimeter returns the sum of the edge lengths.
func (p Polygon) Perimeter() float64 {
	var sum float64
	for _, e := range p.edges {
		sum += e.Length()
	}

	return sum
}

// Centroid returns the area centroid. Polygons whose signed area vanishes
// (degenerate or self-cancelling) have no centroid.
func (p Polygon) Centroid() (Point, error) {
	signed := p.shoelace() / 2
	if NearZero(signed) {
		return Point{}, serrors.With(ErrPolygon, "centroid is undefined for a polygon with zero signed area")
	}

	var cx, cy float64
	for i, a := range p.points {
		b := p.points[(i+1)%len(p.points)]
		f := a.X*b.Y - b.X*a.Y
		cx += (a.X + b.X) * f
		cy += (a.Y + b.Y) * f
	}

	return Point{X: cx / (6 * signed), Y: cy / (6 * signed)}, nil
}

// IsConvex reports whether every turn along the boundary has the same
// orientation. Collinear consecutive edges are ignored.
func (p Polygon) IsConvex() bool {
	n := len(p.points)
	sign := 0

	for i := range n {
		a, b, c := p.points[i], p.points[(i+1)%n], p.points[(i+2)%n]
		cr := r2.Cross(r2.Sub(b.vec(), a.vec()), r2.Sub(c.vec(), b.vec()))

		switch {
		case cr == 0:
			continue
		case sign == 0:
			sign = signOf(cr)
		case signOf(cr) != sign:
			return false
		}
	}

	return true
}

func signOf(v float64) int {
	if v < 0 {
		return -1
	}

	return 1
}

// ContainsPoint reports whether q lies inside the polygon or on its boundary.
// Boundary points are detected first; the interior test counts crossings of a
// horizontal ray cast from q.
func (p Polygon) ContainsPoint(q Point) bool {
	n := len(p.points)
	inside := false

	for i := range n {
		a, b := p.points[i], p.points[(i+1)%n]
		if onSegment(p.edges[i], q) {
			return true
		}

		if (a.Y > q.Y) != (b.Y > q.Y) &&
			q.X < (b.X-a.X)*(q.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}

	return inside
}

// onSegment reports whether q is on the line and within the bounding box of
// its defining points.
func onSegment(l Line, q Point) bool {
	if !l.PointOnLine(q) {
		return false
	}

	return q.X >= math.Min(l.p1.X, l.p2.X)-Epsilon && q.X <= math.Max(l.p1.X, l.p2.X)+Epsilon &&
		q.Y >= math.Min(l.p1.Y, l.p2.Y)-Epsilon && q.Y <= math.Max(l.p1.Y, l.p2.Y)+Epsilon
}

// Summary returns the canonical representation of the polygon. HasCentroid is
// false when the centroid is undefined.
func (p Polygon) Summary() PolygonSummary {
	s := PolygonSummary{
		Points:    p.Points(),
		Area:      p.Area(),
		Perimeter: p.Perimeter(),
		IsConvex:  p.IsConvex(),
	}
	if c, err := p.Centroid(); err == nil {
		s.Centroid = c
		s.HasCentroid = true
	}

	return s
}
