package v1handler

import (
	"context"
	"crypto/rsa"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"geomcalc/internal/config"
	"geomcalc/pkg/logger"
	"geomcalc/pkg/serrors"
)

type ctxKey string

// SubjectKey stores the authenticated token subject in the request context.
const SubjectKey ctxKey = "subject"

// SecHandlerOptions configures SecHandler.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key verifying RS256 tokens.
	PublicKey string
}

// NewSecHandlerOptions returns nil when no public key is configured, which
// leaves the API unauthenticated.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	if strings.TrimSpace(cfg.Auth.PublicKey) == "" {
		return nil
	}

	return &SecHandlerOptions{PublicKey: cfg.Auth.PublicKey}
}

// SecHandler validates bearer tokens.
type SecHandler struct {
	publicKey *rsa.PublicKey
	parser    *jwt.Parser
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil {
		return nil, serrors.With(serrors.ErrInternal, "security options are required")
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not parse RSA public key")
	}

	return &SecHandler{
		publicKey: key,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// HandleBearerAuth verifies token and stores its subject in the returned
// context. operation is only used for logging.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, operation string, token string) (context.Context, error) {
	var claims jwt.RegisteredClaims
	_, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	})
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return ctx, serrors.With(serrors.ErrUnauthorized, "token has no subject")
	}

	ctx = context.WithValue(ctx, SubjectKey, claims.Subject)
	ctx = logger.WithFields(ctx, zap.String("subject", claims.Subject))
	logger.Debug(ctx, "authenticated request", zap.String("operation", operation))

	return ctx, nil
}

// GetSubjectFromContext returns the authenticated subject, if any.
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(SubjectKey).(string)

	return sub, ok && sub != ""
}

// WithBearerAuth rejects requests to the operation routes that carry no
// valid "Authorization: Bearer" header. The failure envelope matches the one
// produced for operation errors.
func (h *Handler) WithBearerAuth(sec *SecHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			header := r.Header.Get("Authorization")
			scheme, token, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				status, payload := h.failure(ctx, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))
				writeJSON(w, status, payload)

				return
			}

			ctx, err := sec.HandleBearerAuth(ctx, r.URL.Path, strings.TrimSpace(token))
			if err != nil {
				status, payload := h.failure(ctx, err)
				writeJSON(w, status, payload)

				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
