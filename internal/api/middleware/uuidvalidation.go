package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nlandman/Brokerage-Simulation-Backend/internal/api/response"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/validation"
)

// ValidateUUIDParam validates that the named URL parameter is present and is
// a valid UUID. Returns 400 Bad Request otherwise.
//
// Example usage in router:
//
//	r.Route("/{companyId}", func(r chi.Router) {
//	    r.Use(middleware.ValidateUUIDParam("companyId"))
//	    r.Get("/price-history", handler.PriceHistory)
//	})
func ValidateUUIDParam(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			value := chi.URLParam(r, name)

			if value == "" {
				response.RespondError(w, http.StatusBadRequest, "valid UUID is required", nil)
				return
			}

			if err := validation.ValidateUUID(value); err != nil {
				response.RespondError(w, http.StatusBadRequest, "invalid UUID format", err.Error())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
