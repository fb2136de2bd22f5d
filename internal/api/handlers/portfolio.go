package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nlandman/Brokerage-Simulation-Backend/internal/api/response"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/apperrors"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/service"
)

// PortfolioHandler handles HTTP requests for portfolio valuation endpoints.
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler with the provided service dependency.
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// Valuation handles GET requests for a customer's portfolio valued at live
// prices. A customer without holdings gets an empty valuation.
//
// Endpoint: GET /api/portfolio/{customerId}
// Response: 200 OK with PortfolioValuation
// Error: 400 Bad Request if the customer ID is invalid (validated by middleware)
// Error: 404 Not Found if the customer does not exist
// Error: 500 Internal Server Error if the valuation fails
func (h *PortfolioHandler) Valuation(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerId")

	valuation, err := h.portfolioService.GetValuation(r.Context(), customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.RespondError(w, http.StatusNotFound, err.Error(), nil)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetValuation.Error(), nil)
		return
	}

	response.RespondJSON(w, http.StatusOK, valuation)
}

// ValueHistory handles GET requests for a customer's materialized daily
// portfolio values.
//
// Endpoint: GET /api/portfolio/{customerId}/history
// Response: 200 OK with array of PortfolioValueSnapshot, oldest first
// Error: 400 Bad Request if the customer ID is invalid (validated by middleware)
// Error: 404 Not Found if the customer does not exist
// Error: 500 Internal Server Error if retrieval fails
func (h *PortfolioHandler) ValueHistory(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerId")

	snapshots, err := h.portfolioService.GetValueHistory(r.Context(), customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.RespondError(w, http.StatusNotFound, err.Error(), nil)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetValuation.Error(), nil)
		return
	}

	response.RespondJSON(w, http.StatusOK, snapshots)
}
