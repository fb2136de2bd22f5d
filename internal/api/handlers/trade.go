package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nlandman/Brokerage-Simulation-Backend/internal/api/request"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/api/response"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/apperrors"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/auth"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/service"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/validation"
)

// TradeHandler handles HTTP requests for trade endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the trading service.
type TradeHandler struct {
	tradingService *service.TradingService
}

// NewTradeHandler creates a new TradeHandler with the provided service dependency.
func NewTradeHandler(tradingService *service.TradingService) *TradeHandler {
	return &TradeHandler{
		tradingService: tradingService,
	}
}

// ExecuteTrade handles POST requests to execute a buy or sell for a customer.
// The acting sub-admin is taken from the authenticated principal, never from
// the request body.
//
// Endpoint: POST /api/trade
// Request Body: ExecuteTradeRequest (customerId, companyId, operation, quantity, idempotencyKey?)
// Response: 201 Created with the recorded Trade
// Error: 400 Bad Request on validation failure, insufficient inventory or holdings, or unknown operation
// Error: 404 Not Found if the company does not exist
// Error: 500 Internal Server Error if execution fails
func (h *TradeHandler) ExecuteTrade(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		response.RespondError(w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	req, err := parseJSON[request.ExecuteTradeRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateExecuteTrade(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	trade, err := h.tradingService.ExecuteTrade(r.Context(), req, principal.UserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrCompanyNotFound):
			response.RespondError(w, http.StatusNotFound, err.Error(), nil)
		case errors.Is(err, apperrors.ErrInvalidQuantity),
			errors.Is(err, apperrors.ErrInvalidOperation),
			errors.Is(err, apperrors.ErrInsufficientInventory),
			errors.Is(err, apperrors.ErrInsufficientHoldings):
			response.RespondError(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToExecuteTrade.Error(), nil)
		}
		return
	}

	response.RespondJSON(w, http.StatusCreated, trade)
}

// CustomerTrades handles GET requests for a customer's trade history.
//
// Endpoint: GET /api/trade/customer/{customerId}
// Response: 200 OK with array of Trade, most recent first
// Error: 400 Bad Request if the customer ID is invalid (validated by middleware)
// Error: 500 Internal Server Error if retrieval fails
func (h *TradeHandler) CustomerTrades(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerId")

	trades, err := h.tradingService.GetTradesByCustomer(r.Context(), customerID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTrades.Error(), nil)
		return
	}

	response.RespondJSON(w, http.StatusOK, trades)
}

// SubAdminTrades handles GET requests for the authenticated sub-admin's own
// trade history.
//
// Endpoint: GET /api/trade/subadmin
// Response: 200 OK with array of Trade, most recent first
// Error: 500 Internal Server Error if retrieval fails
func (h *TradeHandler) SubAdminTrades(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		response.RespondError(w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	trades, err := h.tradingService.GetTradesBySubAdmin(r.Context(), principal.UserID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTrades.Error(), nil)
		return
	}

	response.RespondJSON(w, http.StatusOK, trades)
}

// AllTrades handles GET requests for the full ledger.
//
// Endpoint: GET /api/trade
// Response: 200 OK with array of Trade, most recent first
// Error: 500 Internal Server Error if retrieval fails
func (h *TradeHandler) AllTrades(w http.ResponseWriter, r *http.Request) {
	trades, err := h.tradingService.GetAllTrades(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTrades.Error(), nil)
		return
	}

	response.RespondJSON(w, http.StatusOK, trades)
}
