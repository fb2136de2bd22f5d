package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nlandman/Brokerage-Simulation-Backend/internal/model"
)

// PriceHistoryRepository provides data access methods for the price_history
// table. History rows are append-only.
type PriceHistoryRepository struct {
	db *sql.DB
}

// NewPriceHistoryRepository creates a new PriceHistoryRepository with the provided database connection.
func NewPriceHistoryRepository(db *sql.DB) *PriceHistoryRepository {
	return &PriceHistoryRepository{db: db}
}

// InsertTx appends one price history entry inside an open transaction, so the
// entry commits atomically with the price mutation it records.
func (r *PriceHistoryRepository) InsertTx(ctx context.Context, tx *sql.Tx, rec *model.PriceHistoryRecord) error {
	query := `
		INSERT INTO price_history (id, company_id, price, modified_by, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := tx.ExecContext(ctx, query,
		rec.ID,
		rec.CompanyID,
		rec.Price.String(),
		rec.ModifiedBy,
		rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to insert price history: %w", err)
	}
	return nil
}

// Latest retrieves the most recent limit entries for a company in
// chronological order. Older entries stay stored; they are just not returned.
func (r *PriceHistoryRepository) Latest(ctx context.Context, companyID string, limit int) ([]model.PriceHistoryRecord, error) {
	// rowid breaks ties between entries written in the same nanosecond.
	query := `
		SELECT id, company_id, price, modified_by, created_at
		FROM (
			SELECT rowid AS seq, id, company_id, price, modified_by, created_at
			FROM price_history
			WHERE company_id = ?
			ORDER BY created_at DESC, seq DESC
			LIMIT ?
		)
		ORDER BY created_at ASC, seq ASC
	`
	rows, err := r.db.QueryContext(ctx, query, companyID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query price_history table: %w", err)
	}
	defer rows.Close()

	records := []model.PriceHistoryRecord{}
	for rows.Next() {
		var rec model.PriceHistoryRecord
		var priceStr, createdAtStr string

		if err := rows.Scan(&rec.ID, &rec.CompanyID, &priceStr, &rec.ModifiedBy, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan price_history table results: %w", err)
		}
		if rec.Price, err = ParseDecimal(priceStr); err != nil {
			return nil, err
		}
		if rec.CreatedAt, err = ParseTime(createdAtStr); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating price_history table: %w", err)
	}

	return records, nil
}
