package v1handler

import (
	"github.com/go-faster/jx"
)

func circleCreate(req object, e *jx.Encoder) error {
	c, err := req.asCircle()
	if err != nil {
		return err
	}

	writeCircleFields(e, c)

	return nil
}

func circleArea(req object, e *jx.Encoder) error {
	c, err := req.asCircle()
	if err != nil {
		return err
	}

	e.FieldStart("area")
	writeNumber(e, c.Area())
	e.FieldStart("circle")
	writeCircle(e, c)

	return nil
}

func circleCircumference(req object, e *jx.Encoder) error {
	c, err := req.asCircle()
	if err != nil {
		return err
	}

	e.FieldStart("circumference")
	writeNumber(e, c.Circumference())
	e.FieldStart("circle")
	writeCircle(e, c)

	return nil
}

func circleContains(req object, e *jx.Encoder) error {
	c, err := req.circle("circle")
	if err != nil {
		return err
	}
	p, err := req.point("point")
	if err != nil {
		return err
	}

	e.FieldStart("contains")
	e.Bool(c.ContainsPoint(p))
	e.FieldStart("circle")
	writeCircle(e, c)
	e.FieldStart("point")
	writePoint(e, p)

	return nil
}

func circleLineIntersection(req object, e *jx.Encoder) error {
	c, err := req.circle("circle")
	if err != nil {
		return err
	}
	l, err := req.line("line")
	if err != nil {
		return err
	}

	e.FieldStart("intersections")
	writePoints(e, c.IntersectionWithLine(l))
	e.FieldStart("circle")
	writeCircle(e, c)
	e.FieldStart("line")
	writeLine(e, l)

	return nil
}

func circleCircleIntersection(req object, e *jx.Encoder) error {
	c1, err := req.circle("circle1")
	if err != nil {
		return err
	}
	c2, err := req.circle("circle2")
	if err != nil {
		return err
	}
	points, err := c1.IntersectionWithCircle(c2)
	if err != nil {
		return err
	}

	e.FieldStart("intersections")
	writePoints(e, points)
	e.FieldStart("circle1")
	writeCircle(e, c1)
	e.FieldStart("circle2")
	writeCircle(e, c2)

	return nil
}

func circleTangents(req object, e *jx.Encoder) error {
	c, err := req.circle("circle")
	if err != nil {
		return err
	}
	p, err := req.point("point")
	if err != nil {
		return err
	}
	tangents, err := c.TangentLines(p)
	if err != nil {
		return err
	}

	e.FieldStart("tangents")
	writeLines(e, tangents)
	e.FieldStart("circle")
	writeCircle(e, c)
	e.FieldStart("point")
	writePoint(e, p)

	return nil
}
