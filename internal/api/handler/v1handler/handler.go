// Package v1handler implements the v1 geometry API: request decoding, the
// operation table shared by the HTTP server and the CLI, error to status
// mapping and bearer token security.
package v1handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"geomcalc/pkg/geometry"
	"geomcalc/pkg/logger"
	"geomcalc/pkg/serrors"
)

const (
	// UnknownOperation labels observations of requests naming no known operation.
	UnknownOperation = "unknown"

	tracerName = "geomcalc/v1handler"
)

// operation reads its arguments from req and writes the members of the result
// object to e.
type operation func(req object, e *jx.Encoder) error

// Deps holds the collaborators of Handler. Every field is optional.
type Deps struct {
	// Observer is notified after every evaluated operation.
	Observer Observer
	// MaxPoints caps the length of point lists in a request. Zero disables the cap.
	MaxPoints int
	// Tracer starts one span per operation. Defaults to the global provider's tracer.
	Tracer trace.Tracer
}

// Handler evaluates geometry operations addressed as "group/operation".
type Handler struct {
	deps Deps
	ops  map[string]operation
}

func New(deps Deps) *Handler {
	if deps.Tracer == nil {
		deps.Tracer = otel.Tracer(tracerName)
	}

	h := &Handler{deps: deps}
	h.ops = map[string]operation{
		"point/distance": pointDistance,
		"point/midpoint": pointMidpoint,
		"point/section":  pointSection,

		"line/create":        lineCreate,
		"line/slope":         lineSlope,
		"line/equation":      lineEquation,
		"line/length":        lineLength,
		"line/parallel":      lineParallel,
		"line/perpendicular": linePerpendicular,
		"line/angle":         lineAngle,
		"line/intersection":  lineIntersection,
		"line/contains":      lineContains,

		"circle/create":              circleCreate,
		"circle/area":                circleArea,
		"circle/circumference":       circleCircumference,
		"circle/contains":            circleContains,
		"circle/line_intersection":   circleLineIntersection,
		"circle/circle_intersection": circleCircleIntersection,
		"circle/tangents":            circleTangents,

		"triangle/create":       triangleCreate,
		"triangle/area":         triangleArea,
		"triangle/perimeter":    trianglePerimeter,
		"triangle/centroid":     triangleCentroid,
		"triangle/orthocenter":  triangleOrthocenter,
		"triangle/circumcenter": triangleCircumcenter,
		"triangle/incenter":     triangleIncenter,
		"triangle/circumcircle": triangleCircumcircle,
		"triangle/incircle":     triangleIncircle,

		"polygon/create":    h.polygonCreate,
		"polygon/area":      h.polygonArea,
		"polygon/perimeter": h.polygonPerimeter,
		"polygon/centroid":  h.polygonCentroid,
		"polygon/is_convex": h.polygonIsConvex,
		"polygon/contains":  h.polygonContains,

		"transform/translate": h.transformTranslate,
		"transform/rotate":    h.transformRotate,
		"transform/reflect":   h.transformReflect,
		"transform/reflect_x": h.transformReflectX,
		"transform/reflect_y": h.transformReflectY,
		"transform/scale":     h.transformScale,

		"engine/collinear":        engineCollinear,
		"engine/distance_to_line": engineDistanceToLine,
		"engine/convex_hull":      h.engineConvexHull,
	}

	return h
}

// Operations returns the names of all operations in lexical order.
func (h *Handler) Operations() []string {
	names := make([]string, 0, len(h.ops))
	for name := range h.ops {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// Evaluate runs the named operation on a JSON request body and returns the
// JSON result object.
func (h *Handler) Evaluate(ctx context.Context, name string, body []byte) (jx.Raw, error) {
	op, ok := h.ops[name]
	if !ok {
		return nil, serrors.With(serrors.ErrNotFound, "unknown operation %q", name)
	}
	if err := ctx.Err(); err != nil {
		return nil, serrors.Wrap(serrors.ErrTimeout, err, "request cancelled")
	}

	req, err := decodeObject("", body)
	if err != nil {
		return nil, err
	}

	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ObjStart()
	if err := op(req, e); err != nil {
		return nil, err
	}
	e.ObjEnd()

	return append(jx.Raw(nil), e.Bytes()...), nil
}

// Respond evaluates the named operation and renders the response envelope
// together with its HTTP status code.
func (h *Handler) Respond(ctx context.Context, name string, body []byte) (int, []byte) {
	label := name
	if _, ok := h.ops[name]; !ok {
		label = UnknownOperation
	}
	ctx = logger.WithFields(ctx, zap.String("operation", label))

	ctx, span := h.deps.Tracer.Start(ctx, label,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.Int("geomcalc.request.bytes", len(body))),
	)
	defer span.End()

	start := time.Now()
	result, err := h.Evaluate(ctx, name, body)
	if h.deps.Observer != nil {
		h.deps.Observer.Observe(ctx, label, time.Since(start), err)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "operation failed")

		return h.failure(ctx, err)
	}

	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ObjStart()
	e.FieldStart("success")
	e.Bool(true)
	e.FieldStart("result")
	e.Raw(result)
	e.ObjEnd()

	return http.StatusOK, append([]byte(nil), e.Bytes()...)
}

func (h *Handler) failure(ctx context.Context, err error) (int, []byte) {
	res := h.NewError(ctx, err)

	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ObjStart()
	e.FieldStart("success")
	e.Bool(false)
	e.FieldStart("error")
	res.Response.Encode(e)
	e.ObjEnd()

	return res.StatusCode, append([]byte(nil), e.Bytes()...)
}

// Register mounts the operation routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/operations", h.ListOperations)
	r.Post("/{group}/{operation}", h.ServeOperation)
}

// ServeOperation handles POST /{group}/{operation}.
func (h *Handler) ServeOperation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "group") + "/" + chi.URLParam(r, "operation")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			err = serrors.Wrap(serrors.ErrBadRequest, err, "request body exceeds %d bytes", tooLarge.Limit)
		} else {
			err = serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body")
		}
		status, payload := h.failure(ctx, err)
		writeJSON(w, status, payload)

		return
	}

	status, payload := h.Respond(ctx, name, body)
	writeJSON(w, status, payload)
}

// ListOperations handles GET /operations.
func (h *Handler) ListOperations(w http.ResponseWriter, _ *http.Request) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ObjStart()
	e.FieldStart("operations")
	e.ArrStart()
	for _, name := range h.Operations() {
		e.Str(name)
	}
	e.ArrEnd()
	e.ObjEnd()

	writeJSON(w, http.StatusOK, e.Bytes())
}

func writeJSON(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

// ErrorBody is the error member of a failure envelope.
type ErrorBody struct {
	Code    string
	Message string
}

// Encode writes b as a JSON object.
func (b ErrorBody) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("code")
	e.Str(b.Code)
	e.FieldStart("message")
	e.Str(b.Message)
	e.ObjEnd()
}

// ErrorResponse pairs an ErrorBody with its HTTP status code.
type ErrorResponse struct {
	StatusCode int
	Response   ErrorBody
}

//nolint: gochecknoglobals
var defaultMessages = map[serrors.Kind]string{
	serrors.ErrNotFound:        "resource not found",
	serrors.ErrUnauthorized:    "unauthorized",
	serrors.ErrForbidden:       "forbidden",
	serrors.ErrBadRequest:      "bad request",
	serrors.ErrInvalidArgument: "invalid argument",
	serrors.ErrConflict:        "conflict",
	serrors.ErrInternal:        "internal error",
	serrors.ErrTimeout:         "request timed out",
	serrors.ErrUnavailable:     "service unavailable",
	serrors.ErrRateLimited:     "too many requests",
}

// NewError maps err to an ErrorResponse. Errors without a semantic kind are
// internal; their details are logged and never returned to the caller.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	kind := serrors.KindOf(err)
	if kind == nil {
		kind = serrors.ErrInternal
	}

	status := serrors.Status(kind)
	if slices.Contains(geometry.Kinds(), kind) {
		status = http.StatusBadRequest
	}

	message := messageOf(err)
	if message == "" || status >= http.StatusInternalServerError {
		message = defaultMessage(kind)
	}

	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.String("kind", kind.Error()), zap.Error(err))
	} else {
		logger.Warn(ctx, "request rejected", zap.String("kind", kind.Error()), zap.Error(err))
	}

	return &ErrorResponse{
		StatusCode: status,
		Response: ErrorBody{
			Code:    kind.Error(),
			Message: message,
		},
	}
}

func defaultMessage(kind serrors.Kind) string {
	if m, ok := defaultMessages[kind]; ok {
		return m
	}
	if slices.Contains(geometry.Kinds(), kind) {
		return "invalid geometry"
	}

	return defaultMessages[serrors.ErrInternal]
}

// messageOf joins the messages of the semantic errors at the head of err's
// chain. Plain causes are left out as they may expose internals.
func messageOf(err error) string {
	var parts []string
	for err != nil {
		se, ok := err.(*serrors.Error) //nolint: errorlint
		if !ok {
			break
		}
		if m := se.Message(); m != "" {
			parts = append(parts, m)
		}
		err = se.Cause()
	}

	return strings.Join(parts, ": ")
}
