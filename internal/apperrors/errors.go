// Package apperrors defines the sentinel errors shared across services and
// handlers. Handlers match them with errors.Is to pick an HTTP status.
package apperrors

import "errors"

// Domain entity errors represent missing entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrCompanyNotFound indicates that a company with the given ID does not exist.
	ErrCompanyNotFound = errors.New("company not found")

	// ErrUserNotFound indicates that a user with the given ID or email does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrTradeNotFound indicates that a trade with the given ID does not exist.
	ErrTradeNotFound = errors.New("trade not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidQuantity indicates that a trade quantity is zero or negative.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")

	// ErrInvalidOperation indicates that a trade carries an unknown operation tag.
	ErrInvalidOperation = errors.New("invalid trade operation")

	// ErrInvalidDirection indicates that a price adjustment carries an unknown direction.
	ErrInvalidDirection = errors.New("invalid price adjustment direction")

	// ErrInsufficientInventory indicates that a buy requests more shares than
	// the company has available.
	ErrInsufficientInventory = errors.New("not enough shares available")

	// ErrInsufficientHoldings indicates that a sell requests more shares than
	// the customer holds. A customer with no holding row at all is treated as
	// holding zero, not as a distinct error.
	ErrInsufficientHoldings = errors.New("not enough shares owned")

	// ErrNegativePrice indicates that a decrease would take the price to zero
	// or below. The price must stay strictly positive.
	ErrNegativePrice = errors.New("share price must stay above zero")

	// ErrCompanyInUse indicates that a company cannot be deleted because
	// holdings or ledger entries still reference it.
	ErrCompanyInUse = errors.New("company has outstanding holdings or trades")

	// ErrDuplicateEmail indicates that an account with the email already exists.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrDuplicateCompanyName indicates that a company with the name is
	// already listed in the catalog.
	ErrDuplicateCompanyName = errors.New("company name already listed")

	// ErrInvalidCredentials indicates a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidRole indicates an unknown role tag.
	ErrInvalidRole = errors.New("invalid role")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. Handlers surface these with a generic message; the
// underlying persistence detail is logged, not returned.
var (
	ErrFailedToExecuteTrade      = errors.New("failed to execute trade")
	ErrFailedToRetrieveTrades    = errors.New("failed to retrieve trades")
	ErrFailedToAdjustPrice       = errors.New("failed to adjust share price")
	ErrFailedToRetrieveHistory   = errors.New("failed to retrieve price history")
	ErrFailedToRetrieveCompanies = errors.New("failed to retrieve companies")
	ErrFailedToRetrieveUsers     = errors.New("failed to retrieve users")
	ErrFailedToGetValuation      = errors.New("failed to compute portfolio valuation")
)
