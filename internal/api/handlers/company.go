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

// CompanyHandler handles HTTP requests for catalog administration and price
// adjustment endpoints.
type CompanyHandler struct {
	companyService *service.CompanyService
	priceService   *service.PriceService
}

// NewCompanyHandler creates a new CompanyHandler with the provided service dependencies.
func NewCompanyHandler(companyService *service.CompanyService, priceService *service.PriceService) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
		priceService:   priceService,
	}
}

// CreateCompany handles POST requests to add a company to the catalog.
//
// Endpoint: POST /api/company
// Request Body: CreateCompanyRequest (name, price, quantity)
// Response: 201 Created with the Company
// Error: 400 Bad Request if validation fails
// Error: 409 Conflict if the name is already listed
// Error: 500 Internal Server Error if creation fails
func (h *CompanyHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateCompanyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateCompany(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	company, err := h.companyService.CreateCompany(r.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateCompanyName) {
			response.RespondError(w, http.StatusConflict, err.Error(), nil)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create company", nil)
		return
	}

	response.RespondJSON(w, http.StatusCreated, company)
}

// Companies handles GET requests to list the catalog.
//
// Endpoint: GET /api/company
// Response: 200 OK with array of Company
// Error: 500 Internal Server Error if retrieval fails
func (h *CompanyHandler) Companies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.companyService.GetCompanies(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveCompanies.Error(), nil)
		return
	}

	response.RespondJSON(w, http.StatusOK, companies)
}

// DeleteCompany handles DELETE requests to remove a company from the catalog.
// Companies referenced by holdings or ledger entries cannot be deleted.
//
// Endpoint: DELETE /api/company/{companyId}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if the company ID is invalid (validated by middleware)
// Error: 404 Not Found if the company does not exist
// Error: 409 Conflict if holdings or trades still reference the company
// Error: 500 Internal Server Error if deletion fails
func (h *CompanyHandler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyId")

	err := h.companyService.DeleteCompany(r.Context(), companyID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrCompanyNotFound):
			response.RespondError(w, http.StatusNotFound, err.Error(), nil)
		case errors.Is(err, apperrors.ErrCompanyInUse):
			response.RespondError(w, http.StatusConflict, err.Error(), nil)
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to delete company", nil)
		}
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// AdjustPrice handles POST requests to change a company's share price.
// The acting user is taken from the authenticated principal.
//
// Endpoint: POST /api/company/{companyId}/price
// Request Body: AdjustPriceRequest (direction, delta)
// Response: 200 OK with PriceChange (oldPrice, newPrice, change)
// Error: 400 Bad Request if validation fails, the direction is unknown, or
// the decrease would take the price to zero or below
// Error: 404 Not Found if the company does not exist
// Error: 500 Internal Server Error if the adjustment fails
func (h *CompanyHandler) AdjustPrice(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		response.RespondError(w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	companyID := chi.URLParam(r, "companyId")

	req, err := parseJSON[request.AdjustPriceRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateAdjustPrice(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	change, err := h.priceService.AdjustPrice(r.Context(), companyID, req.Direction, req.Delta, principal.UserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrCompanyNotFound):
			response.RespondError(w, http.StatusNotFound, err.Error(), nil)
		case errors.Is(err, apperrors.ErrNegativePrice),
			errors.Is(err, apperrors.ErrInvalidDirection):
			response.RespondError(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToAdjustPrice.Error(), nil)
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, change)
}

// PriceHistory handles GET requests for a company's recent price changes.
//
// Endpoint: GET /api/company/{companyId}/price-history
// Response: 200 OK with the latest 30 PriceHistoryRecord entries, oldest first
// Error: 400 Bad Request if the company ID is invalid (validated by middleware)
// Error: 404 Not Found if the company does not exist
// Error: 500 Internal Server Error if retrieval fails
func (h *CompanyHandler) PriceHistory(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyId")

	history, err := h.priceService.GetPriceHistory(r.Context(), companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCompanyNotFound) {
			response.RespondError(w, http.StatusNotFound, err.Error(), nil)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveHistory.Error(), nil)
		return
	}

	response.RespondJSON(w, http.StatusOK, history)
}
