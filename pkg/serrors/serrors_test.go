package serrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"geomcalc/pkg/serrors"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrForbidden,
		serrors.ErrBadRequest,
		serrors.ErrInvalidArgument,
		serrors.ErrConflict,
		serrors.ErrInternal,
		serrors.ErrTimeout,
		serrors.ErrUnavailable,
		serrors.ErrRateLimited,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}

	require.NotEqual(t, serrors.ErrBadRequest, serrors.ErrInvalidArgument)
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("division by zero")

	e1 := serrors.With(serrors.ErrInvalidArgument, "ratio %d is negative", -2)
	require.Equal(t, "ratio -2 is negative", e1.Error(), "With() Error() mismatch")

	e2 := serrors.Wrap(serrors.ErrBadRequest, base, "decoding body")
	require.Equal(t, "decoding body: division by zero", e2.Error(), "Wrap() Error() mismatch")

	e3 := serrors.KindOnly(serrors.ErrNotFound)
	require.Equal(t, "NOT_FOUND", e3.Error(), "KindOnly Error() mismatch")
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrBadRequest, base, "reading")

	require.ErrorIs(t, e, serrors.ErrBadRequest)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrUnauthorized, "errors.Is should not match a different kind")
}

func TestIsMatchesNestedKinds(t *testing.T) {
	outerKind := serrors.NewKind("OUTER")
	inner := serrors.With(serrors.ErrInvalidArgument, "negative")
	e := serrors.Wrap(outerKind, inner, "building shape")

	require.ErrorIs(t, e, outerKind)
	require.ErrorIs(t, e, serrors.ErrInvalidArgument)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k, "errors.As should extract Kind")
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce, "errors.As should extract wrapped error type")
	require.Equal(t, base, ce, "extracted cause pointer mismatch")
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	outerKind := serrors.NewKind("OUTER")

	tests := []struct {
		name string
		err  error
		want serrors.Kind
	}{
		{name: "plain error", err: errors.New("boom"), want: nil},
		{name: "bare sentinel", err: serrors.ErrNotFound, want: serrors.ErrNotFound},
		{name: "semantic error", err: serrors.With(serrors.ErrTimeout, "slow"), want: serrors.ErrTimeout},
		{
			name: "outermost kind wins",
			err:  serrors.Wrap(outerKind, serrors.KindOnly(serrors.ErrInvalidArgument), "outer"),
			want: outerKind,
		},
		{
			name: "wrapped by fmt",
			err:  fmt.Errorf("handler: %w", serrors.KindOnly(serrors.ErrConflict)),
			want: serrors.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, serrors.KindOf(tt.err))
		})
	}
}

func TestStatus(t *testing.T) {
	require.Equal(t, http.StatusBadRequest, serrors.Status(serrors.ErrBadRequest))
	require.Equal(t, http.StatusBadRequest, serrors.Status(serrors.ErrInvalidArgument))
	require.Equal(t, http.StatusUnauthorized, serrors.Status(serrors.ErrUnauthorized))
	require.Equal(t, http.StatusNotFound, serrors.Status(serrors.ErrNotFound))
	require.Equal(t, http.StatusInternalServerError, serrors.Status(serrors.NewKind("UNKNOWN")))
	require.Equal(t, http.StatusInternalServerError, serrors.Status(nil))
}
