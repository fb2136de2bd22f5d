package model

import "github.com/shopspring/decimal"

// Company represents a company in the share catalog.
// AvailableQuantity is the unallocated inventory still available for
// purchase; IssuedQuantity is fixed at creation. At any point
// available + sum of customer holdings == issued.
type Company struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Price             decimal.Decimal `json:"price"`
	AvailableQuantity int64           `json:"availableQuantity"`
	IssuedQuantity    int64           `json:"issuedQuantity"`
}

// PriceChange describes the outcome of a price adjustment for display.
type PriceChange struct {
	CompanyID string          `json:"companyId"`
	OldPrice  decimal.Decimal `json:"oldPrice"`
	NewPrice  decimal.Decimal `json:"newPrice"`
	Change    decimal.Decimal `json:"change"`
}
