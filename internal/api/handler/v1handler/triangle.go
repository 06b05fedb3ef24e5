package v1handler

import (
	"github.com/go-faster/jx"

	"geomcalc/pkg/geometry"
)

// triangleOp decodes the triangle of a request, lets fn write the operation
// specific members and then writes the triangle summary.
func triangleOp(fn func(t geometry.Triangle, e *jx.Encoder) error) operation {
	return func(req object, e *jx.Encoder) error {
		t, err := req.asTriangle()
		if err != nil {
			return err
		}
		if err := fn(t, e); err != nil {
			return err
		}

		e.FieldStart("triangle")
		writeTriangle(e, t.Summary())

		return nil
	}
}

func triangleCreate(req object, e *jx.Encoder) error {
	t, err := req.asTriangle()
	if err != nil {
		return err
	}

	writeTriangleFields(e, t.Summary())

	return nil
}

//nolint: gochecknoglobals
var (
	triangleArea = triangleOp(func(t geometry.Triangle, e *jx.Encoder) error {
		e.FieldStart("area")
		writeNumber(e, t.Area())

		return nil
	})

	trianglePerimeter = triangleOp(func(t geometry.Triangle, e *jx.Encoder) error {
		e.FieldStart("perimeter")
		writeNumber(e, t.Perimeter())

		return nil
	})

	triangleCentroid = triangleOp(func(t geometry.Triangle, e *jx.Encoder) error {
		e.FieldStart("centroid")
		writePoint(e, t.Centroid())

		return nil
	})

	triangleOrthocenter = triangleOp(func(t geometry.Triangle, e *jx.Encoder) error {
		p, err := t.Orthocenter()
		if err != nil {
			return err
		}
		e.FieldStart("orthocenter")
		writePoint(e, p)

		return nil
	})

	triangleCircumcenter = triangleOp(func(t geometry.Triangle, e *jx.Encoder) error {
		p, err := t.Circumcenter()
		if err != nil {
			return err
		}
		e.FieldStart("circumcenter")
		writePoint(e, p)

		return nil
	})

	triangleIncenter = triangleOp(func(t geometry.Triangle, e *jx.Encoder) error {
		e.FieldStart("incenter")
		writePoint(e, t.Incenter())

		return nil
	})

	triangleCircumcircle = triangleOp(func(t geometry.Triangle, e *jx.Encoder) error {
		c, err := t.Circumcircle()
		if err != nil {
			return err
		}
		e.FieldStart("circumcircle")
		writeCircle(e, c)

		return nil
	})

	triangleIncircle = triangleOp(func(t geometry.Triangle, e *jx.Encoder) error {
		c, err := t.Incircle()
		if err != nil {
			return err
		}
		e.FieldStart("incircle")
		writeCircle(e, c)

		return nil
	})
)
