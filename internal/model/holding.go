package model

import "github.com/shopspring/decimal"

// Holding represents a customer's position in one company.
// Rows only exist while Shares > 0.
type Holding struct {
	ID         string `json:"id"`
	CustomerID string `json:"customerId"`
	CompanyID  string `json:"companyId"`
	Shares     int64  `json:"shares"`
}

// HoldingValuation is a holding joined with the company's live price.
// TotalValue is Shares times the current price, computed at read time.
type HoldingValuation struct {
	CompanyID   string          `json:"companyId"`
	CompanyName string          `json:"companyName"`
	Shares      int64           `json:"shares"`
	SharePrice  decimal.Decimal `json:"sharePrice"`
	TotalValue  decimal.Decimal `json:"totalValue"`
}

// PortfolioValuation is the full read-side projection of a customer's
// portfolio against current prices. It is recomputed on every request and
// never stored.
type PortfolioValuation struct {
	CustomerID          string             `json:"customerId"`
	Holdings            []HoldingValuation `json:"holdings"`
	TotalPortfolioValue decimal.Decimal    `json:"totalPortfolioValue"`
}

// PortfolioValueSnapshot is one day's materialized total portfolio value,
// written by the scheduled snapshot job.
type PortfolioValueSnapshot struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customerId"`
	Date         string          `json:"date"` // YYYY-MM-DD
	TotalValue   decimal.Decimal `json:"totalValue"`
	CalculatedAt string          `json:"calculatedAt"`
}
