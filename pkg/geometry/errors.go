package geometry

import (
	"errors"

	"geomcalc/pkg/serrors"
)

// Error kinds, one per entity family.
var (
	// ErrGeometry is raised by transformations and engine utilities.
	ErrGeometry = serrors.NewKind("GEOMETRY_ERROR")
	// ErrPoint is raised for invalid coordinates and point derivations.
	ErrPoint = serrors.NewKind("POINT_ERROR")
	// ErrLine is raised for degenerate lines.
	ErrLine = serrors.NewKind("LINE_ERROR")
	// ErrCircle is raised for non-positive radii and impossible circle constructions.
	ErrCircle = serrors.NewKind("CIRCLE_ERROR")
	// ErrTriangle is raised for collinear vertices and failed triangle derivations.
	ErrTriangle = serrors.NewKind("TRIANGLE_ERROR")
	// ErrPolygon is raised for too few vertices, degenerate edges and undefined centroids.
	ErrPolygon = serrors.NewKind("POLYGON_ERROR")
)

// Kinds returns every error kind raised by this package.
func Kinds() []serrors.Kind {
	return []serrors.Kind{ErrGeometry, ErrPoint, ErrLine, ErrCircle, ErrTriangle, ErrPolygon}
}

// IsGeometryError reports whether err carries one of the kinds returned by Kinds.
func IsGeometryError(err error) bool {
	for _, k := range Kinds() {
		if errors.Is(err, k) {
			return true
		}
	}

	return false
}
