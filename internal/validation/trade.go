package validation

import (
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/api/request"
)

// ValidateExecuteTrade validates the shape of a trade execution request.
// Only identifier formats are checked here; the ordered business checks
// (quantity, company existence, sufficiency, operation tag) belong to the
// trading service so their fail-fast order is preserved.
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateExecuteTrade(req request.ExecuteTradeRequest) error {
	errors := make(map[string]string)

	if err := ValidateUUID(req.CustomerID); err != nil {
		errors["customerId"] = err.Error()
	}
	if err := ValidateUUID(req.CompanyID); err != nil {
		errors["companyId"] = err.Error()
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
