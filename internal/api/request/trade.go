// Package request defines the JSON request bodies accepted by the API.
package request

// ExecuteTradeRequest is the body for POST /api/trade.
// IdempotencyKey is optional; when present, resubmitting the same key returns
// the originally recorded trade instead of executing again.
type ExecuteTradeRequest struct {
	CustomerID     string `json:"customerId"`
	CompanyID      string `json:"companyId"`
	Operation      string `json:"operation"`
	Quantity       int64  `json:"quantity"`
	IdempotencyKey string `json:"idempotencyKey,omitempty"`
}
