// Package geometry implements classical 2-D Euclidean geometry: points, lines,
// circles, triangles and polygons, rigid and affine transformations, and a few
// engine utilities such as collinearity tests and convex hulls.
//
// Every entity is an immutable value validated at construction. Constructors
// and fallible derivations return a *serrors.Error whose kind identifies the
// entity family (ErrPoint, ErrLine, ErrCircle, ErrTriangle, ErrPolygon) or
// ErrGeometry for transformation and engine failures. Optional results are
// returned as (value, ok) pairs.
//
// Tolerance-based comparisons all go through NearZero and NearEqual, which use
// the single Epsilon constant.
package geometry
