package geometry

import (
	"cmp"
	"math"
	"slices"
)

// AreCollinear reports whether the triangle p1, p2, p3 has (near) zero area.
func AreCollinear(p1, p2, p3 Point) bool {
	return NearZero(signedArea(p1, p2, p3))
}

// DistancePointToLine returns the perpendicular distance from p to l.
func DistancePointToLine(p Point, l Line) float64 {
	return l.distanceTo(p)
}

// AngleBetweenLines returns the acute angle between l1 and l2 in degrees.
func AngleBetweenLines(l1, l2 Line) float64 {
	return l1.AngleWith(l2)
}

// IsPointInsidePolygon reports whether p lies inside poly or on its boundary.
func IsPointInsidePolygon(p Point, poly Polygon) bool {
	return poly.ContainsPoint(p)
}

// ConvexHull returns the strict convex hull of points in counter-clockwise
// order, starting from the lowest (then leftmost) point. Points on a hull edge
// are dropped. Fewer than three points are returned as given.
func ConvexHull(points []Point) []Point {
	if len(points) < MinPolygonPoints {
		return slices.Clone(points)
	}
	points = distinctPoints(points)
	if len(points) < MinPolygonPoints {
		return points
	}

	pivot := points[0]
	for _, p := range points[1:] {
		if p.Y < pivot.Y || (p.Y == pivot.Y && p.X < pivot.X) {
			pivot = p
		}
	}

	angle := func(p Point) float64 {
		if p == pivot {
			return math.Inf(-1)
		}

		return math.Atan2(p.Y-pivot.Y, p.X-pivot.X)
	}

	sorted := slices.Clone(points)
	slices.SortStableFunc(sorted, func(a, b Point) int {
		if c := cmp.Compare(angle(a), angle(b)); c != 0 {
			return c
		}

		// same ray from the pivot, nearest first
		return cmp.Compare(pivot.DistanceTo(a), pivot.DistanceTo(b))
	})

	hull := make([]Point, 0, len(sorted))
	hull = append(hull, sorted[0], sorted[1])
	for _, p := range sorted[2:] {
		for len(hull) > 1 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	return hull
}

// distinctPoints returns a copy of points without repeats, keeping the first
// occurrence of each.
func distinctPoints(points []Point) []Point {
	seen := make(map[Point]struct{}, len(points))
	out := make([]Point, 0, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	return out
}
