package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/nlandman/Brokerage-Simulation-Backend/internal/model"
)

// HoldingRepository provides data access methods for the holding table.
// A missing row is a valid zero-holdings state; rows are deleted the moment
// their share count reaches zero.
type HoldingRepository struct {
	db *sql.DB
}

// NewHoldingRepository creates a new HoldingRepository with the provided database connection.
func NewHoldingRepository(db *sql.DB) *HoldingRepository {
	return &HoldingRepository{db: db}
}

// GetHoldings retrieves all of a customer's holdings ordered by company name.
func (r *HoldingRepository) GetHoldings(ctx context.Context, customerID string) ([]model.Holding, error) {
	query := `
		SELECT h.id, h.customer_id, h.company_id, h.shares
		FROM holding h
		JOIN company c ON h.company_id = c.id
		WHERE h.customer_id = ?
		ORDER BY c.name ASC
	`
	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query holding table: %w", err)
	}
	defer rows.Close()

	holdings := []model.Holding{}
	for rows.Next() {
		var h model.Holding
		if err := rows.Scan(&h.ID, &h.CustomerID, &h.CompanyID, &h.Shares); err != nil {
			return nil, fmt.Errorf("failed to scan holding table results: %w", err)
		}
		holdings = append(holdings, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holding table: %w", err)
	}

	return holdings, nil
}

// AddSharesTx adds quantity shares to the customer's holding of the company,
// creating the holding row lazily on first purchase.
func (r *HoldingRepository) AddSharesTx(ctx context.Context, tx *sql.Tx, customerID, companyID string, quantity int64) error {
	query := `
		INSERT INTO holding (id, customer_id, company_id, shares)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(customer_id, company_id) DO UPDATE SET shares = shares + excluded.shares
	`
	if _, err := tx.ExecContext(ctx, query, uuid.New().String(), customerID, companyID, quantity); err != nil {
		return fmt.Errorf("failed to add shares to holding: %w", err)
	}
	return nil
}

// RemoveSharesTx subtracts quantity shares from the customer's holding,
// guarded so the count can never go below zero. A holding that reaches
// exactly zero is deleted, never retained. Returns false when the customer
// does not hold enough shares (including when no holding row exists at all).
func (r *HoldingRepository) RemoveSharesTx(ctx context.Context, tx *sql.Tx, customerID, companyID string, quantity int64) (bool, error) {
	query := `
		UPDATE holding
		SET shares = shares - ?
		WHERE customer_id = ? AND company_id = ? AND shares >= ?
	`
	result, err := tx.ExecContext(ctx, query, quantity, customerID, companyID, quantity)
	if err != nil {
		return false, fmt.Errorf("failed to remove shares from holding: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read remove result: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	cleanup := "DELETE FROM holding WHERE customer_id = ? AND company_id = ? AND shares = 0"
	if _, err := tx.ExecContext(ctx, cleanup, customerID, companyID); err != nil {
		return false, fmt.Errorf("failed to clean up empty holding: %w", err)
	}
	return true, nil
}
