package v1handler

import (
	"io"
	"math"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"geomcalc/pkg/geometry"
	"geomcalc/pkg/serrors"
)

// object is a decoded JSON object whose members are kept raw until an
// operation asks for them by name. path locates the object in the request
// body and prefixes every error message.
type object struct {
	path    string
	members map[string]jx.Raw
}

func decodeObject(path string, data []byte) (object, error) {
	obj := object{path: path, members: map[string]jx.Raw{}}

	d := jx.DecodeBytes(data)
	if d.Next() != jx.Object {
		return object{}, serrors.With(serrors.ErrBadRequest, "%s must be a JSON object", obj.describe())
	}

	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		raw, err := d.Raw()
		if err != nil {
			return errors.Wrapf(err, "read member %q", key)
		}
		obj.members[string(key)] = append(jx.Raw(nil), raw...)

		return nil
	})
	if err != nil {
		return object{}, serrors.Wrap(serrors.ErrBadRequest, err, "malformed JSON in %s", obj.describe())
	}
	if err := d.Skip(); !errors.Is(err, io.EOF) {
		return object{}, serrors.With(serrors.ErrBadRequest, "unexpected data after %s", obj.describe())
	}

	return obj, nil
}

func (o object) describe() string {
	if o.path == "" {
		return "request body"
	}

	return o.path
}

func (o object) child(name string) string {
	if o.path == "" {
		return name
	}

	return o.path + "." + name
}

// raw returns the named member. Missing and null members are rejected.
func (o object) raw(name string) (jx.Raw, error) {
	raw, ok := o.members[name]
	if !ok || raw.Type() == jx.Null {
		return nil, serrors.With(serrors.ErrBadRequest, "missing field %q", o.child(name))
	}

	return raw, nil
}

func (o object) object(name string) (object, error) {
	raw, err := o.raw(name)
	if err != nil {
		return object{}, err
	}

	return decodeObject(o.child(name), raw)
}

// number accepts a JSON number or a numeric string.
func (o object) number(name string) (float64, error) {
	raw, err := o.raw(name)
	if err != nil {
		return 0, err
	}
	path := o.child(name)
	d := jx.DecodeBytes(raw)

	switch raw.Type() {
	case jx.Number:
		v, err := d.Float64()
		if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, serrors.With(serrors.ErrInvalidArgument, "%s must be a finite number, got %s", path, raw)
		}

		return v, nil
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return 0, serrors.Wrap(serrors.ErrBadRequest, err, "malformed string in %s", path)
		}
		v, err := geometry.ParseNumber(s)
		if err != nil {
			return 0, serrors.Wrap(serrors.ErrInvalidArgument, err, "%s: %q", path, s)
		}

		return v, nil
	default:
		return 0, serrors.With(serrors.ErrBadRequest, "%s must be a number, got %s", path, raw.Type())
	}
}

// point decodes {"x": ..., "y": ...}. Unusable coordinates are point errors.
func (o object) point(name string) (geometry.Point, error) {
	obj, err := o.object(name)
	if err != nil {
		return geometry.Point{}, err
	}

	return obj.asPoint()
}

func (o object) asPoint() (geometry.Point, error) {
	var coords [2]float64
	for i, axis := range [2]string{"x", "y"} {
		v, err := o.number(axis)
		if errors.Is(err, serrors.ErrInvalidArgument) {
			return geometry.Point{}, serrors.Wrap(geometry.ErrPoint, err, "invalid point %s", o.describe())
		}
		if err != nil {
			return geometry.Point{}, err
		}
		coords[i] = v
	}

	return geometry.NewPoint(coords[0], coords[1])
}

// asLine reads point1 and point2 of o.
func (o object) asLine() (geometry.Line, error) {
	p1, err := o.point("point1")
	if err != nil {
		return geometry.Line{}, err
	}
	p2, err := o.point("point2")
	if err != nil {
		return geometry.Line{}, err
	}

	return geometry.NewLine(p1, p2)
}

func (o object) line(name string) (geometry.Line, error) {
	obj, err := o.object(name)
	if err != nil {
		return geometry.Line{}, err
	}

	return obj.asLine()
}

// asCircle reads center and radius of o.
func (o object) asCircle() (geometry.Circle, error) {
	center, err := o.point("center")
	if err != nil {
		return geometry.Circle{}, err
	}
	radius, err := o.number("radius")
	if errors.Is(err, serrors.ErrInvalidArgument) {
		return geometry.Circle{}, serrors.Wrap(geometry.ErrCircle, err, "invalid radius")
	}
	if err != nil {
		return geometry.Circle{}, err
	}

	return geometry.NewCircle(center, radius)
}

func (o object) circle(name string) (geometry.Circle, error) {
	obj, err := o.object(name)
	if err != nil {
		return geometry.Circle{}, err
	}

	return obj.asCircle()
}

// asTriangle reads point1, point2 and point3 of o.
func (o object) asTriangle() (geometry.Triangle, error) {
	pts, err := o.triple()
	if err != nil {
		return geometry.Triangle{}, err
	}

	return geometry.NewTriangle(pts[0], pts[1], pts[2])
}

func (o object) triple() ([3]geometry.Point, error) {
	var pts [3]geometry.Point
	for i, name := range [3]string{"point1", "point2", "point3"} {
		p, err := o.point(name)
		if err != nil {
			return pts, err
		}
		pts[i] = p
	}

	return pts, nil
}

// points decodes an array of points holding at most limit elements. A
// non-positive limit disables the check.
func (o object) points(name string, limit int) ([]geometry.Point, error) {
	raw, err := o.raw(name)
	if err != nil {
		return nil, err
	}
	path := o.child(name)
	if raw.Type() != jx.Array {
		return nil, serrors.With(serrors.ErrBadRequest, "%s must be an array of points", path)
	}

	var items []jx.Raw
	err = jx.DecodeBytes(raw).Arr(func(d *jx.Decoder) error {
		item, err := d.Raw()
		if err != nil {
			return errors.Wrap(err, "read element")
		}
		items = append(items, append(jx.Raw(nil), item...))

		return nil
	})
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "malformed JSON in %s", path)
	}
	if limit > 0 && len(items) > limit {
		return nil, serrors.With(serrors.ErrInvalidArgument, "%s holds %d points, at most %d are accepted", path, len(items), limit)
	}

	out := make([]geometry.Point, 0, len(items))
	for i, item := range items {
		obj, err := decodeObject(path+"["+itoa(i)+"]", item)
		if err != nil {
			return nil, err
		}
		p, err := obj.asPoint()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}

func (o object) polygon(name string, limit int) (geometry.Polygon, error) {
	pts, err := o.points(name, limit)
	if err != nil {
		return geometry.Polygon{}, err
	}

	return geometry.NewPolygon(pts)
}
