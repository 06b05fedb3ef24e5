package v1handler

import (
	"github.com/go-faster/jx"

	"geomcalc/pkg/geometry"
)

func writeTransformed(e *jx.Encoder, original, transformed []geometry.Point) {
	e.FieldStart("original_points")
	writePoints(e, original)
	e.FieldStart("transformed_points")
	writePoints(e, transformed)
}

func (h *Handler) transformTranslate(req object, e *jx.Encoder) error {
	points, err := req.points("points", h.deps.MaxPoints)
	if err != nil {
		return err
	}
	dx, err := req.number("dx")
	if err != nil {
		return err
	}
	dy, err := req.number("dy")
	if err != nil {
		return err
	}
	moved, err := geometry.TranslateShape(points, dx, dy)
	if err != nil {
		return err
	}

	writeTransformed(e, points, moved)
	e.FieldStart("dx")
	writeNumber(e, dx)
	e.FieldStart("dy")
	writeNumber(e, dy)

	return nil
}

func (h *Handler) transformRotate(req object, e *jx.Encoder) error {
	points, err := req.points("points", h.deps.MaxPoints)
	if err != nil {
		return err
	}
	center, err := req.point("center")
	if err != nil {
		return err
	}
	angle, err := req.number("angle")
	if err != nil {
		return err
	}
	turned, err := geometry.RotateShape(points, center, angle)
	if err != nil {
		return err
	}

	writeTransformed(e, points, turned)
	e.FieldStart("center")
	writePoint(e, center)
	e.FieldStart("angle")
	writeNumber(e, angle)

	return nil
}

func (h *Handler) transformReflect(req object, e *jx.Encoder) error {
	points, err := req.points("points", h.deps.MaxPoints)
	if err != nil {
		return err
	}
	l, err := req.line("line")
	if err != nil {
		return err
	}
	mirrored, err := geometry.ReflectShape(points, l)
	if err != nil {
		return err
	}

	writeTransformed(e, points, mirrored)
	e.FieldStart("line")
	writeLine(e, l)

	return nil
}

func (h *Handler) transformReflectX(req object, e *jx.Encoder) error {
	points, err := req.points("points", h.deps.MaxPoints)
	if err != nil {
		return err
	}

	writeTransformed(e, points, geometry.ReflectShapeOverX(points))

	return nil
}

func (h *Handler) transformReflectY(req object, e *jx.Encoder) error {
	points, err := req.points("points", h.deps.MaxPoints)
	if err != nil {
		return err
	}

	writeTransformed(e, points, geometry.ReflectShapeOverY(points))

	return nil
}

func (h *Handler) transformScale(req object, e *jx.Encoder) error {
	points, err := req.points("points", h.deps.MaxPoints)
	if err != nil {
		return err
	}
	center, err := req.point("center")
	if err != nil {
		return err
	}
	sx, err := req.number("sx")
	if err != nil {
		return err
	}
	sy, err := req.number("sy")
	if err != nil {
		return err
	}
	scaled, err := geometry.ScaleShape(points, center, sx, sy)
	if err != nil {
		return err
	}

	writeTransformed(e, points, scaled)
	e.FieldStart("center")
	writePoint(e, center)
	e.FieldStart("sx")
	writeNumber(e, sx)
	e.FieldStart("sy")
	writeNumber(e, sy)

	return nil
}
