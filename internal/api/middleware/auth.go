// Package middleware provides HTTP middleware for authentication, request
// validation and logging.
package middleware

import (
	"net/http"
	"strings"

	"github.com/nlandman/Brokerage-Simulation-Backend/internal/api/response"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/auth"
)

// Authenticator validates the Bearer token on every request and attaches the
// principal it carries to the request context. Role checks are layered on top
// with RequireRole.
func Authenticator(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				response.RespondError(w, http.StatusUnauthorized, "authorization header is required", nil)
				return
			}

			tokenString := strings.TrimPrefix(header, "Bearer ")
			if tokenString == header {
				response.RespondError(w, http.StatusUnauthorized, "invalid authorization header format", nil)
				return
			}

			principal, err := tokens.Validate(tokenString)
			if err != nil {
				response.RespondError(w, http.StatusUnauthorized, "invalid or expired token", nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
		})
	}
}

// RequireRole rejects requests whose principal does not carry exactly the
// given role tag. Roles form a flat enumeration; there is no hierarchy, so a
// superadmin is not implicitly a subadmin.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := auth.PrincipalFromContext(r.Context())
			if !ok {
				response.RespondError(w, http.StatusUnauthorized, "authentication required", nil)
				return
			}
			if principal.Role != role {
				response.RespondError(w, http.StatusForbidden, "insufficient role", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
