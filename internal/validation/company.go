package validation

import (
	"strings"

	"github.com/nlandman/Brokerage-Simulation-Backend/internal/api/request"
)

// ValidateCreateCompany validates a company creation request.
//
// Required fields:
//   - name: non-empty
//   - price: strictly positive
//   - quantity: strictly positive issued share count
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateCompany(req request.CreateCompanyRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}

	if !req.Price.IsPositive() {
		errors["price"] = "price must be positive"
	}

	if req.Quantity <= 0 {
		errors["quantity"] = "quantity must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateAdjustPrice validates a price adjustment request.
// The direction tag itself is checked by the price service so unknown tags
// surface as the engine's typed failure rather than a field error.
func ValidateAdjustPrice(req request.AdjustPriceRequest) error {
	errors := make(map[string]string)

	if !req.Delta.IsPositive() {
		errors["delta"] = "delta must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
