package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nlandman/Brokerage-Simulation-Backend/internal/apperrors"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/model"
)

// CompanyRepository provides data access methods for the company table.
// Quantity and price mutations are exposed as tx-scoped guarded writes so the
// trading and pricing services can compose them into a single transaction.
type CompanyRepository struct {
	db *sql.DB
}

// NewCompanyRepository creates a new CompanyRepository with the provided database connection.
func NewCompanyRepository(db *sql.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

const companyColumns = "id, name, price, available_quantity, issued_quantity"

func scanCompany(row *sql.Row) (model.Company, error) {
	var c model.Company
	var priceStr string

	err := row.Scan(&c.ID, &c.Name, &priceStr, &c.AvailableQuantity, &c.IssuedQuantity)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Company{}, apperrors.ErrCompanyNotFound
	}
	if err != nil {
		return model.Company{}, fmt.Errorf("failed to scan company: %w", err)
	}

	c.Price, err = ParseDecimal(priceStr)
	if err != nil {
		return model.Company{}, err
	}
	return c, nil
}

// GetCompany retrieves a company by ID.
// Returns apperrors.ErrCompanyNotFound if no row exists.
func (r *CompanyRepository) GetCompany(ctx context.Context, id string) (model.Company, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+companyColumns+" FROM company WHERE id = ?", id)
	return scanCompany(row)
}

// GetCompanyTx retrieves a company by ID inside an open transaction, so the
// price read and any subsequent guarded write see the same state.
func (r *CompanyRepository) GetCompanyTx(ctx context.Context, tx *sql.Tx, id string) (model.Company, error) {
	row := tx.QueryRowContext(ctx, "SELECT "+companyColumns+" FROM company WHERE id = ?", id)
	return scanCompany(row)
}

// ListCompanies retrieves the full catalog ordered by name.
func (r *CompanyRepository) ListCompanies(ctx context.Context) ([]model.Company, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+companyColumns+" FROM company ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query company table: %w", err)
	}
	defer rows.Close()

	companies := []model.Company{}
	for rows.Next() {
		var c model.Company
		var priceStr string

		if err := rows.Scan(&c.ID, &c.Name, &priceStr, &c.AvailableQuantity, &c.IssuedQuantity); err != nil {
			return nil, fmt.Errorf("failed to scan company table results: %w", err)
		}
		if c.Price, err = ParseDecimal(priceStr); err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating company table: %w", err)
	}

	return companies, nil
}

// InsertCompany creates a new catalog entry.
// Returns apperrors.ErrDuplicateCompanyName when the name is already listed.
func (r *CompanyRepository) InsertCompany(ctx context.Context, c *model.Company) error {
	query := `
		INSERT INTO company (id, name, price, available_quantity, issued_quantity)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.Price.String(), c.AvailableQuantity, c.IssuedQuantity)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return apperrors.ErrDuplicateCompanyName
		}
		return fmt.Errorf("failed to insert company: %w", err)
	}
	return nil
}

// DeleteCompanyTx removes a catalog entry inside the caller's transaction.
// Returns apperrors.ErrCompanyNotFound if no row was deleted.
func (r *CompanyRepository) DeleteCompanyTx(ctx context.Context, tx *sql.Tx, id string) error {
	result, err := tx.ExecContext(ctx, "DELETE FROM company WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrCompanyNotFound
	}
	return nil
}

// InUseTx reports whether any holdings or ledger entries still reference the
// company. Runs inside the caller's transaction so the answer cannot be
// invalidated by a trade committing between the check and a delete.
func (r *CompanyRepository) InUseTx(ctx context.Context, tx *sql.Tx, id string) (bool, error) {
	var count int
	query := `
		SELECT
			(SELECT COUNT(*) FROM holding WHERE company_id = ?) +
			(SELECT COUNT(*) FROM trade WHERE company_id = ?)
	`
	if err := tx.QueryRowContext(ctx, query, id, id).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count company references: %w", err)
	}
	return count > 0, nil
}

// ReserveSharesTx decrements available inventory by quantity, guarded so the
// count can never go below zero. Returns false when the company does not hold
// enough inventory; the guard is the race-safe sufficiency check, not a
// pre-read.
func (r *CompanyRepository) ReserveSharesTx(ctx context.Context, tx *sql.Tx, id string, quantity int64) (bool, error) {
	query := `
		UPDATE company
		SET available_quantity = available_quantity - ?
		WHERE id = ? AND available_quantity >= ?
	`
	result, err := tx.ExecContext(ctx, query, quantity, id, quantity)
	if err != nil {
		return false, fmt.Errorf("failed to reserve shares: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read reserve result: %w", err)
	}
	return affected == 1, nil
}

// ReleaseSharesTx returns quantity shares to available inventory.
func (r *CompanyRepository) ReleaseSharesTx(ctx context.Context, tx *sql.Tx, id string, quantity int64) error {
	query := `
		UPDATE company
		SET available_quantity = available_quantity + ?
		WHERE id = ?
	`
	if _, err := tx.ExecContext(ctx, query, quantity, id); err != nil {
		return fmt.Errorf("failed to release shares: %w", err)
	}
	return nil
}

// UpdatePriceTx sets the company's current price inside an open transaction.
func (r *CompanyRepository) UpdatePriceTx(ctx context.Context, tx *sql.Tx, id string, price decimal.Decimal) error {
	if _, err := tx.ExecContext(ctx, "UPDATE company SET price = ? WHERE id = ?", price.String(), id); err != nil {
		return fmt.Errorf("failed to update company price: %w", err)
	}
	return nil
}
