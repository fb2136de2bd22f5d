package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceHistoryRecord is one immutable price change entry. Price is the
// resulting price after the adjustment was applied.
type PriceHistoryRecord struct {
	ID         string          `json:"id"`
	CompanyID  string          `json:"companyId"`
	Price      decimal.Decimal `json:"price"`
	ModifiedBy string          `json:"modifiedBy"`
	CreatedAt  time.Time       `json:"createdAt"`
}
