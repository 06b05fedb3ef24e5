package v1handler

import (
	"github.com/go-faster/jx"
)

func (h *Handler) polygonCreate(req object, e *jx.Encoder) error {
	p, err := req.polygon("points", h.deps.MaxPoints)
	if err != nil {
		return err
	}

	writePolygonFields(e, p)

	return nil
}

func (h *Handler) polygonArea(req object, e *jx.Encoder) error {
	p, err := req.polygon("points", h.deps.MaxPoints)
	if err != nil {
		return err
	}

	e.FieldStart("area")
	writeNumber(e, p.Area())
	e.FieldStart("polygon")
	writePolygon(e, p)

	return nil
}

func (h *Handler) polygonPerimeter(req object, e *jx.Encoder) error {
	p, err := req.polygon("points", h.deps.MaxPoints)
	if err != nil {
		return err
	}

	e.FieldStart("perimeter")
	writeNumber(e, p.Perimeter())
	e.FieldStart("polygon")
	writePolygon(e, p)

	return nil
}

func (h *Handler) polygonCentroid(req object, e *jx.Encoder) error {
	p, err := req.polygon("points", h.deps.MaxPoints)
	if err != nil {
		return err
	}
	c, err := p.Centroid()
	if err != nil {
		return err
	}

	e.FieldStart("centroid")
	writePoint(e, c)
	e.FieldStart("polygon")
	writePolygon(e, p)

	return nil
}

func (h *Handler) polygonIsConvex(req object, e *jx.Encoder) error {
	p, err := req.polygon("points", h.deps.MaxPoints)
	if err != nil {
		return err
	}

	e.FieldStart("is_convex")
	e.Bool(p.IsConvex())
	e.FieldStart("polygon")
	writePolygon(e, p)

	return nil
}

func (h *Handler) polygonContains(req object, e *jx.Encoder) error {
	p, err := req.polygon("points", h.deps.MaxPoints)
	if err != nil {
		return err
	}
	q, err := req.point("point")
	if err != nil {
		return err
	}

	e.FieldStart("contains")
	e.Bool(p.ContainsPoint(q))
	e.FieldStart("polygon")
	writePolygon(e, p)
	e.FieldStart("point")
	writePoint(e, q)

	return nil
}
