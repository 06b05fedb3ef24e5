package v1handler

import (
	"github.com/go-faster/jx"

	"geomcalc/pkg/geometry"
)

func engineCollinear(req object, e *jx.Encoder) error {
	pts, err := req.triple()
	if err != nil {
		return err
	}

	e.FieldStart("is_collinear")
	e.Bool(geometry.AreCollinear(pts[0], pts[1], pts[2]))
	e.FieldStart("points")
	writePoints(e, pts[:])

	return nil
}

func engineDistanceToLine(req object, e *jx.Encoder) error {
	p, err := req.point("point")
	if err != nil {
		return err
	}
	l, err := req.line("line")
	if err != nil {
		return err
	}

	e.FieldStart("distance")
	writeNumber(e, geometry.DistancePointToLine(p, l))
	e.FieldStart("point")
	writePoint(e, p)
	e.FieldStart("line")
	writeLine(e, l)

	return nil
}

func (h *Handler) engineConvexHull(req object, e *jx.Encoder) error {
	points, err := req.points("points", h.deps.MaxPoints)
	if err != nil {
		return err
	}

	e.FieldStart("original_points")
	writePoints(e, points)
	e.FieldStart("hull_points")
	writePoints(e, geometry.ConvexHull(points))

	return nil
}
