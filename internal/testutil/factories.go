package testutil

import (
	"database/sql"
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nlandman/Brokerage-Simulation-Backend/internal/model"
)

// MakeID returns a fresh UUID string.
func MakeID() string {
	return uuid.New().String()
}

// MakeEmail returns a unique email for the given prefix.
func MakeEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, rand.Intn(1_000_000))
}

// UserBuilder provides a fluent interface for creating test users.
//
// Example usage:
//
//	customer := testutil.NewUser().WithRole(model.RoleCustomer).Build(t, db)
type UserBuilder struct {
	ID           string
	Email        string
	PasswordHash string
	Role         string
}

// NewUser creates a UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	return &UserBuilder{
		ID:           MakeID(),
		Email:        MakeEmail("user"),
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Role:         model.RoleCustomer,
	}
}

// WithID sets a custom ID.
func (b *UserBuilder) WithID(id string) *UserBuilder {
	b.ID = id
	return b
}

// WithEmail sets a custom email.
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

// WithPasswordHash sets a custom bcrypt hash.
func (b *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	b.PasswordHash = hash
	return b
}

// WithRole sets the role tag.
func (b *UserBuilder) WithRole(role string) *UserBuilder {
	b.Role = role
	return b
}

// Build creates the user in the database and returns it.
func (b *UserBuilder) Build(t *testing.T, db *sql.DB) model.User {
	t.Helper()

	query := `
		INSERT INTO user (id, email, password_hash, role)
		VALUES (?, ?, ?, ?)
	`
	if _, err := db.Exec(query, b.ID, b.Email, b.PasswordHash, b.Role); err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return model.User{
		ID:           b.ID,
		Email:        b.Email,
		PasswordHash: b.PasswordHash,
		Role:         b.Role,
	}
}

// CompanyBuilder provides a fluent interface for creating test companies.
//
// Example usage:
//
//	company := testutil.NewCompany().
//	    WithName("Acme").
//	    WithPrice("10.00").
//	    WithQuantity(100).
//	    Build(t, db)
type CompanyBuilder struct {
	ID                string
	Name              string
	Price             decimal.Decimal
	AvailableQuantity int64
	IssuedQuantity    int64
}

// NewCompany creates a CompanyBuilder with sensible defaults.
func NewCompany() *CompanyBuilder {
	return &CompanyBuilder{
		ID:                MakeID(),
		Name:              fmt.Sprintf("Test Company %d", rand.Intn(1_000_000)),
		Price:             decimal.RequireFromString("10.00"),
		AvailableQuantity: 100,
		IssuedQuantity:    100,
	}
}

// WithID sets a custom ID.
func (b *CompanyBuilder) WithID(id string) *CompanyBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *CompanyBuilder) WithName(name string) *CompanyBuilder {
	b.Name = name
	return b
}

// WithPrice sets the share price from a decimal string.
func (b *CompanyBuilder) WithPrice(price string) *CompanyBuilder {
	b.Price = decimal.RequireFromString(price)
	return b
}

// WithQuantity sets both the issued and available quantities.
func (b *CompanyBuilder) WithQuantity(quantity int64) *CompanyBuilder {
	b.AvailableQuantity = quantity
	b.IssuedQuantity = quantity
	return b
}

// WithAvailableQuantity sets only the available quantity, for states where
// some shares are already held.
func (b *CompanyBuilder) WithAvailableQuantity(quantity int64) *CompanyBuilder {
	b.AvailableQuantity = quantity
	return b
}

// Build creates the company in the database and returns it.
func (b *CompanyBuilder) Build(t *testing.T, db *sql.DB) model.Company {
	t.Helper()

	query := `
		INSERT INTO company (id, name, price, available_quantity, issued_quantity)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := db.Exec(query, b.ID, b.Name, b.Price.String(), b.AvailableQuantity, b.IssuedQuantity)
	if err != nil {
		t.Fatalf("Failed to create test company: %v", err)
	}

	return model.Company{
		ID:                b.ID,
		Name:              b.Name,
		Price:             b.Price,
		AvailableQuantity: b.AvailableQuantity,
		IssuedQuantity:    b.IssuedQuantity,
	}
}

// CreateHolding creates a holding row directly, for test states that start
// with shares already owned. The caller is responsible for keeping the
// company's available quantity consistent (use WithAvailableQuantity).
func CreateHolding(t *testing.T, db *sql.DB, customerID, companyID string, shares int64) model.Holding {
	t.Helper()

	h := model.Holding{
		ID:         MakeID(),
		CustomerID: customerID,
		CompanyID:  companyID,
		Shares:     shares,
	}

	query := `
		INSERT INTO holding (id, customer_id, company_id, shares)
		VALUES (?, ?, ?, ?)
	`
	if _, err := db.Exec(query, h.ID, h.CustomerID, h.CompanyID, h.Shares); err != nil {
		t.Fatalf("Failed to create test holding: %v", err)
	}

	return h
}

// Convenience functions

// CreateCustomer creates a customer account with default values.
func CreateCustomer(t *testing.T, db *sql.DB) model.User {
	t.Helper()
	return NewUser().WithRole(model.RoleCustomer).Build(t, db)
}

// CreateSubAdmin creates a sub-admin account with default values.
func CreateSubAdmin(t *testing.T, db *sql.DB) model.User {
	t.Helper()
	return NewUser().WithRole(model.RoleSubAdmin).Build(t, db)
}

// CreateSuperAdmin creates a super-admin account with default values.
func CreateSuperAdmin(t *testing.T, db *sql.DB) model.User {
	t.Helper()
	return NewUser().WithRole(model.RoleSuperAdmin).Build(t, db)
}
