package api_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"geomcalc/internal/api"
	"geomcalc/internal/api/handler/v1handler"
	"geomcalc/internal/config"
)

func newTestServer(t *testing.T, mutate func(*api.Options)) *httptest.Server {
	t.Helper()

	cfg, err := config.Load("does-not-exist.yml")
	require.NoError(t, err)
	opts := api.NewOptions(cfg)
	if mutate != nil {
		mutate(&opts)
	}

	reg := prometheus.NewRegistry()
	srv, err := api.NewServer(t.Context(), api.Deps{Registerer: reg, Gatherer: reg}, opts)
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)

	return ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()

	res, err := http.Get(url) //nolint: noctx
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res, string(body)
}

func TestServerRoutes(t *testing.T) {
	ts := newTestServer(t, nil)

	res, err := http.Post(ts.URL+"/api/circle/area", "application/json", //nolint: noctx
		strings.NewReader(`{"center":{"x":0,"y":0},"radius":1}`))
	require.NoError(t, err)
	_ = res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NotEmpty(t, res.Header.Get("X-Request-Id"))
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))

	res, err = http.Post(ts.URL+"/api/triangle/area", "application/json", //nolint: noctx
		strings.NewReader(`{"point1":{"x":0,"y":0},"point2":{"x":1,"y":1},"point3":{"x":2,"y":2}}`))
	require.NoError(t, err)
	_ = res.Body.Close()
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, body := get(t, ts.URL+"/metrics")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, body, "geomcalc_operation")
	require.Contains(t, body, `geomcalc_geometry_errors_total{kind="TRIANGLE_ERROR",operation="triangle/area"} 1`)

	res, body = get(t, ts.URL+"/specs/v1.yaml")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "application/yaml", res.Header.Get("Content-Type"))
	require.Contains(t, body, "openapi: 3.0.3")

	res, _ = get(t, ts.URL+"/v1/docs/")
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body = get(t, ts.URL+"/api/operations")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, body, "polygon/is_convex")

	res, _ = get(t, ts.URL+"/debug/pprof/")
	require.Equal(t, http.StatusNotFound, res.StatusCode, "pprof is disabled by default")
}

func TestServerPprofAndBodyLimit(t *testing.T) {
	ts := newTestServer(t, func(o *api.Options) {
		o.EnablePprof = true
		o.MaxBodyBytes = 32
	})

	res, _ := get(t, ts.URL+"/debug/pprof/cmdline")
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, err := http.Post(ts.URL+"/api/point/distance", "application/json", //nolint: noctx
		strings.NewReader(`{"point1":{"x":0,"y":0},"point2":{"x":3,"y":4}}`))
	require.NoError(t, err)
	_ = res.Body.Close()
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestServerRequiresTokenWhenKeyConfigured(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)
	pubPEM := string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))

	ts := newTestServer(t, func(o *api.Options) {
		o.SecHandlerOptions = &v1handler.SecHandlerOptions{PublicKey: pubPEM}
	})

	res, body := get(t, ts.URL+"/api/operations")
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	require.Contains(t, body, `"code":"UNAUTHORIZED"`)

	res, _ = get(t, ts.URL+"/specs/v1.yaml")
	require.Equal(t, http.StatusOK, res.StatusCode, "docs stay public")
}
