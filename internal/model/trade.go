package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trade operation tags.
const (
	TradeTypeBuy  = "buy"
	TradeTypeSell = "sell"
)

// Trade is one immutable ledger entry. PriceAtExecution is a snapshot of the
// company price at the moment the trade committed; later price changes never
// alter it or TotalValue.
type Trade struct {
	ID               string          `json:"id"`
	CustomerID       string          `json:"customerId"`
	CompanyID        string          `json:"companyId"`
	SubAdminID       string          `json:"subAdminId"`
	Type             string          `json:"type"`
	Quantity         int64           `json:"quantity"`
	PriceAtExecution decimal.Decimal `json:"priceAtExecution"`
	TotalValue       decimal.Decimal `json:"totalValue"`
	CreatedAt        time.Time       `json:"createdAt"`
}
