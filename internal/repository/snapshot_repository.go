package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nlandman/Brokerage-Simulation-Backend/internal/model"
)

// SnapshotRepository provides data access methods for the
// portfolio_value_history table.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SnapshotRepository with the provided database connection.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// UpsertSnapshot records a customer's total portfolio value for a date.
// Re-running the job on the same day overwrites that day's snapshot.
func (r *SnapshotRepository) UpsertSnapshot(ctx context.Context, customerID, date string, total decimal.Decimal) error {
	query := `
		INSERT INTO portfolio_value_history (id, customer_id, date, total_value, calculated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(customer_id, date) DO UPDATE SET
			total_value = excluded.total_value,
			calculated_at = excluded.calculated_at
	`
	_, err := r.db.ExecContext(ctx, query,
		uuid.New().String(),
		customerID,
		date,
		total.String(),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert portfolio value snapshot: %w", err)
	}
	return nil
}

// ListByCustomer retrieves a customer's snapshots in chronological order.
func (r *SnapshotRepository) ListByCustomer(ctx context.Context, customerID string) ([]model.PortfolioValueSnapshot, error) {
	query := `
		SELECT id, customer_id, date, total_value, calculated_at
		FROM portfolio_value_history
		WHERE customer_id = ?
		ORDER BY date ASC
	`
	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio_value_history table: %w", err)
	}
	defer rows.Close()

	snapshots := []model.PortfolioValueSnapshot{}
	for rows.Next() {
		var s model.PortfolioValueSnapshot
		var totalStr string

		if err := rows.Scan(&s.ID, &s.CustomerID, &s.Date, &totalStr, &s.CalculatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan portfolio_value_history results: %w", err)
		}
		if s.TotalValue, err = ParseDecimal(totalStr); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating portfolio_value_history table: %w", err)
	}

	return snapshots, nil
}
