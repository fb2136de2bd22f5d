package request

import "github.com/shopspring/decimal"

// CreateCompanyRequest is the body for POST /api/company.
// Quantity is the issued share count; all of it starts as available inventory.
type CreateCompanyRequest struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
}

// AdjustPriceRequest is the body for POST /api/company/{companyId}/price.
type AdjustPriceRequest struct {
	Direction string          `json:"direction"`
	Delta     decimal.Decimal `json:"delta"`
}
