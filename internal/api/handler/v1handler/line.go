package v1handler

import (
	"github.com/go-faster/jx"

	"geomcalc/pkg/geometry"
)

func linePair(req object) (geometry.Line, geometry.Line, error) {
	l1, err := req.line("line1")
	if err != nil {
		return geometry.Line{}, geometry.Line{}, err
	}
	l2, err := req.line("line2")
	if err != nil {
		return geometry.Line{}, geometry.Line{}, err
	}

	return l1, l2, nil
}

func writeLinePair(e *jx.Encoder, l1, l2 geometry.Line) {
	e.FieldStart("line1")
	writeLine(e, l1)
	e.FieldStart("line2")
	writeLine(e, l2)
}

// lineCreate answers with the line summary itself.
func lineCreate(req object, e *jx.Encoder) error {
	l, err := req.asLine()
	if err != nil {
		return err
	}

	writeLineFields(e, l)

	return nil
}

func lineSlope(req object, e *jx.Encoder) error {
	l, err := req.asLine()
	if err != nil {
		return err
	}

	e.FieldStart("slope")
	if m, ok := l.Slope(); ok {
		writeNumber(e, m)
	} else {
		e.Null()
	}
	e.FieldStart("line")
	writeLine(e, l)

	return nil
}

func lineEquation(req object, e *jx.Encoder) error {
	l, err := req.asLine()
	if err != nil {
		return err
	}

	e.FieldStart("equation")
	e.Str(l.Equation())
	e.FieldStart("line")
	writeLine(e, l)

	return nil
}

func lineLength(req object, e *jx.Encoder) error {
	l, err := req.asLine()
	if err != nil {
		return err
	}

	e.FieldStart("length")
	writeNumber(e, l.Length())
	e.FieldStart("line")
	writeLine(e, l)

	return nil
}

func lineParallel(req object, e *jx.Encoder) error {
	l1, l2, err := linePair(req)
	if err != nil {
		return err
	}

	e.FieldStart("is_parallel")
	e.Bool(l1.IsParallel(l2))
	writeLinePair(e, l1, l2)

	return nil
}

func linePerpendicular(req object, e *jx.Encoder) error {
	l1, l2, err := linePair(req)
	if err != nil {
		return err
	}

	e.FieldStart("is_perpendicular")
	e.Bool(l1.IsPerpendicular(l2))
	writeLinePair(e, l1, l2)

	return nil
}

func lineAngle(req object, e *jx.Encoder) error {
	l1, l2, err := linePair(req)
	if err != nil {
		return err
	}

	e.FieldStart("angle")
	writeNumber(e, l1.AngleWith(l2))
	writeLinePair(e, l1, l2)

	return nil
}

func lineIntersection(req object, e *jx.Encoder) error {
	l1, l2, err := linePair(req)
	if err != nil {
		return err
	}

	e.FieldStart("intersection")
	if p, ok := l1.IntersectionWith(l2); ok {
		writePoint(e, p)
	} else {
		e.Null()
	}
	writeLinePair(e, l1, l2)

	return nil
}

func lineContains(req object, e *jx.Encoder) error {
	l, err := req.line("line")
	if err != nil {
		return err
	}
	p, err := req.point("point")
	if err != nil {
		return err
	}

	e.FieldStart("on_line")
	e.Bool(l.PointOnLine(p))
	e.FieldStart("line")
	writeLine(e, l)
	e.FieldStart("point")
	writePoint(e, p)

	return nil
}
