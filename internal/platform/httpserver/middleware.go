package httpserver

import (
	"context"
	"net/http"
	"strings"

	"inkwell/internal/platform/token"
)

type contextKey string

const callerKey contextKey = "caller"

// claimsFromContext returns the verified claims for the request, or nil
// when the request is anonymous.
func claimsFromContext(ctx context.Context) *token.Claims {
	claims, _ := ctx.Value(callerKey).(*token.Claims)
	return claims
}

func bearerToken(r *http.Request) (string, bool) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	raw := strings.TrimSpace(parts[1])
	return raw, raw != ""
}

// requireAuth rejects requests without a valid bearer token.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := bearerToken(r)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"code":    "unauthorized",
				"message": "Authorization bearer token is required",
			})
			return
		}
		claims, err := s.codec.Verify(raw)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"code":    "unauthorized",
				"message": "token is invalid or expired",
			})
			return
		}
		ctx := context.WithValue(r.Context(), callerKey, &claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// optionalAuth attaches claims when a valid token is present and lets
// anonymous requests through. An invalid or expired token is ignored and
// the request proceeds anonymously, so a stale token in a client never
// breaks a public read.
func (s *Server) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := bearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		claims, err := s.codec.Verify(raw)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		ctx := context.WithValue(r.Context(), callerKey, &claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
