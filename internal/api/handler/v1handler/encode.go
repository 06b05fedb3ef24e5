package v1handler

import (
	"math"
	"strconv"

	"github.com/go-faster/jx"

	"geomcalc/pkg/geometry"
)

// writeNumber writes v, or null when v is not finite.
func writeNumber(e *jx.Encoder, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		e.Null()

		return
	}
	e.Float64(v)
}

func writePoint(e *jx.Encoder, p geometry.Point) {
	e.ObjStart()
	e.FieldStart("x")
	writeNumber(e, p.X)
	e.FieldStart("y")
	writeNumber(e, p.Y)
	e.ObjEnd()
}

// writeOptionalPoint writes p, or null when ok is false.
func writeOptionalPoint(e *jx.Encoder, p geometry.Point, ok bool) {
	if !ok {
		e.Null()

		return
	}
	writePoint(e, p)
}

func writePoints(e *jx.Encoder, points []geometry.Point) {
	e.ArrStart()
	for _, p := range points {
		writePoint(e, p)
	}
	e.ArrEnd()
}

func writeLine(e *jx.Encoder, l geometry.Line) {
	e.ObjStart()
	writeLineFields(e, l)
	e.ObjEnd()
}

func writeLineFields(e *jx.Encoder, l geometry.Line) {
	s := l.Summary()

	e.FieldStart("point1")
	writePoint(e, s.Point1)
	e.FieldStart("point2")
	writePoint(e, s.Point2)
	e.FieldStart("equation")
	e.Str(s.Equation)
	e.FieldStart("slope")
	if s.Vertical {
		e.Null()
	} else {
		writeNumber(e, s.Slope)
	}
	e.FieldStart("length")
	writeNumber(e, s.Length)
}

func writeLines(e *jx.Encoder, lines []geometry.Line) {
	e.ArrStart()
	for _, l := range lines {
		writeLine(e, l)
	}
	e.ArrEnd()
}

func writeCircle(e *jx.Encoder, c geometry.Circle) {
	e.ObjStart()
	writeCircleFields(e, c)
	e.ObjEnd()
}

func writeCircleFields(e *jx.Encoder, c geometry.Circle) {
	s := c.Summary()

	e.FieldStart("center")
	writePoint(e, s.Center)
	e.FieldStart("radius")
	writeNumber(e, s.Radius)
	e.FieldStart("equation")
	e.Str(s.Equation)
	e.FieldStart("area")
	writeNumber(e, s.Area)
	e.FieldStart("circumference")
	writeNumber(e, s.Circumference)
}

func writeTriangle(e *jx.Encoder, s geometry.TriangleSummary) {
	e.ObjStart()
	writeTriangleFields(e, s)
	e.ObjEnd()
}

func writeTriangleFields(e *jx.Encoder, s geometry.TriangleSummary) {
	e.FieldStart("points")
	writePoints(e, s.Points[:])
	e.FieldStart("area")
	writeNumber(e, s.Area)
	e.FieldStart("perimeter")
	writeNumber(e, s.Perimeter)
	e.FieldStart("centroid")
	writePoint(e, s.Centroid)
	e.FieldStart("orthocenter")
	writeOptionalPoint(e, s.Orthocenter, s.HasOrthocenter)
	e.FieldStart("circumcenter")
	writeOptionalPoint(e, s.Circumcenter, s.HasCircumcenter)
	e.FieldStart("incenter")
	writePoint(e, s.Incenter)
}

func writePolygon(e *jx.Encoder, p geometry.Polygon) {
	e.ObjStart()
	writePolygonFields(e, p)
	e.ObjEnd()
}

func writePolygonFields(e *jx.Encoder, p geometry.Polygon) {
	s := p.Summary()

	e.FieldStart("points")
	writePoints(e, s.Points)
	e.FieldStart("area")
	writeNumber(e, s.Area)
	e.FieldStart("perimeter")
	writeNumber(e, s.Perimeter)
	e.FieldStart("centroid")
	writeOptionalPoint(e, s.Centroid, s.HasCentroid)
	e.FieldStart("is_convex")
	e.Bool(s.IsConvex)
}

func itoa(i int) string { return strconv.Itoa(i) }
