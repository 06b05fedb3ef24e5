package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"geomcalc/pkg/controller"
)

func TestPprofMux(t *testing.T) {
	mux := controller.PprofMux()

	for _, path := range []string{"", "cmdline", "goroutine?debug=1"} {
		req := httptest.NewRequest(http.MethodGet, "http://pprof.local"+controller.PprofPrefix+path, nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		res := rec.Result()
		require.Equal(t, http.StatusOK, res.StatusCode, "path %q", path)
		require.NotEmpty(t, res.Header.Get("Content-Type"), "path %q", path)
	}
}
