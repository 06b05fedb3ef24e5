// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the geometry calculator.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"geomcalc/internal/api/handler/v1handler"
	"geomcalc/internal/config"
	"geomcalc/pkg/controller"
	"geomcalc/pkg/logger"
	"geomcalc/pkg/metrics"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

const timeoutBody = `{"success":false,"error":{"code":"TIMEOUT","message":"request timed out"}}`

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// SecHandlerOptions configures bearer token authentication. Nil disables it.
	SecHandlerOptions *v1handler.SecHandlerOptions

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MaxBodyBytes caps operation request bodies. Zero disables the cap.
	MaxBodyBytes int64
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// EnablePprof mounts the profiling endpoints.
	EnablePprof bool
	// CORSAllowedOrigin is the origin allowed by CORS responses.
	CORSAllowedOrigin string
	// MaxPoints caps the length of point lists in a request.
	MaxPoints int
}

// NewOptions constructs an Options value from the provided application configuration.
// It maps HTTP server-related settings from config.Config to the Options used by the API server.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MaxBodyBytes:      cfg.HTTP.MaxBodyBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		EnablePprof:       cfg.HTTP.EnablePprof,
		CORSAllowedOrigin: cfg.HTTP.CORSAllowedOrigin,
		MaxPoints:         cfg.Limits.MaxPoints,
	}
}

// Deps holds the prometheus registry backing the metrics endpoint. Nil
// fields select the prometheus default registry.
type Deps struct {
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

func (d Deps) registry() (prometheus.Registerer, prometheus.Gatherer) {
	reg, gatherer := d.Registerer, d.Gatherer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	return reg, gatherer
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - OpenTelemetry metrics exporter (Prometheus) feeding the operation observer
// - Embedded OpenAPI v1 spec and Swagger UI
// - geometry operation routes under /api
// - pprof endpoints for profiling, when enabled
// It also wraps the router with CORS and logging middlewares and applies a request timeout.
func NewServer(ctx context.Context, deps Deps, opts Options) (*http.Server, error) {
	reg, gatherer := deps.registry()
	r := chi.NewRouter()

	// prometheus metrics server
	r.Handle(opts.MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// otel
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	observer, err := metrics.NewOperationObserver(mp, reg)
	if err != nil {
		return nil, fmt.Errorf("could not create operation observer: %w", err)
	}

	// v1 specs file
	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	r.Handle("/v1/docs/*", v5emb.New(
		"Geometry Calculator",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// geometry api
	handler := v1handler.New(v1handler.Deps{
		Observer:  observer,
		MaxPoints: opts.MaxPoints,
	})
	var secHandler *v1handler.SecHandler
	if opts.SecHandlerOptions != nil {
		secHandler, err = v1handler.NewSecHandler(opts.SecHandlerOptions)
		if err != nil {
			return nil, fmt.Errorf("could not create sec handler: %w", err)
		}
	}
	r.Route("/api", func(r chi.Router) {
		r.Use(controller.WithBodyLimit(opts.MaxBodyBytes))
		if secHandler != nil {
			r.Use(handler.WithBearerAuth(secHandler))
		}
		handler.Register(r)
	})

	// pprof
	if opts.EnablePprof {
		r.Handle(controller.PprofPrefix+"*", controller.PprofMux())
	}

	// cors
	root := controller.WithCORS(opts.CORSAllowedOrigin)(r)

	// logger
	root = controller.WithLogger(root)

	if opts.RequestTimeout > 0 {
		root = http.TimeoutHandler(root, opts.RequestTimeout, timeoutBody)
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           root,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
		ErrorLog:          slog.NewLogLogger(logger.Slog(ctx).Handler(), slog.LevelError),
	}, nil
}
