package v1handler

import (
	"github.com/go-faster/jx"

	"geomcalc/pkg/geometry"
)

func pointPair(req object) (geometry.Point, geometry.Point, error) {
	p1, err := req.point("point1")
	if err != nil {
		return geometry.Point{}, geometry.Point{}, err
	}
	p2, err := req.point("point2")
	if err != nil {
		return geometry.Point{}, geometry.Point{}, err
	}

	return p1, p2, nil
}

func writePointPair(e *jx.Encoder, p1, p2 geometry.Point) {
	e.FieldStart("point1")
	writePoint(e, p1)
	e.FieldStart("point2")
	writePoint(e, p2)
}

func pointDistance(req object, e *jx.Encoder) error {
	p1, p2, err := pointPair(req)
	if err != nil {
		return err
	}

	e.FieldStart("distance")
	writeNumber(e, p1.DistanceTo(p2))
	writePointPair(e, p1, p2)

	return nil
}

func pointMidpoint(req object, e *jx.Encoder) error {
	p1, p2, err := pointPair(req)
	if err != nil {
		return err
	}

	e.FieldStart("midpoint")
	writePoint(e, p1.Midpoint(p2))
	writePointPair(e, p1, p2)

	return nil
}

func pointSection(req object, e *jx.Encoder) error {
	p1, p2, err := pointPair(req)
	if err != nil {
		return err
	}
	ratio, err := req.number("ratio")
	if err != nil {
		return err
	}
	p, err := p1.SectionFormula(p2, ratio)
	if err != nil {
		return err
	}

	e.FieldStart("section_point")
	writePoint(e, p)
	writePointPair(e, p1, p2)
	e.FieldStart("ratio")
	writeNumber(e, ratio)

	return nil
}
