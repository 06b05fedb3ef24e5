// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Middlewares:
//   - WithCORS: CORS headers for a configured origin and OPTIONS preflight.
//   - WithLogger: request ID, request-scoped logger and access log.
//   - WithBodyLimit: caps request body size.
//
// Helpers:
//   - PprofMux: net/http/pprof handlers under /debug/pprof/.
//   - GetClientIP, RequestID.
package controller
