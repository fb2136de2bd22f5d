package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/nlandman/Brokerage-Simulation-Backend/internal/model"
)

// TradeRepository provides data access methods for the trade ledger.
// The ledger is append-only: this repository exposes inserts and reads, and
// nothing else in the codebase touches the table.
type TradeRepository struct {
	db *sql.DB
}

// NewTradeRepository creates a new TradeRepository with the provided database connection.
func NewTradeRepository(db *sql.DB) *TradeRepository {
	return &TradeRepository{db: db}
}

const tradeColumns = "id, customer_id, company_id, sub_admin_id, type, quantity, price_at_execution, total_value, created_at"

// InsertTradeTx appends one ledger entry inside an open transaction, so the
// entry commits atomically with the inventory and holding mutations it records.
// An empty idempotency key is stored as NULL to keep the unique index inert.
func (r *TradeRepository) InsertTradeTx(ctx context.Context, tx *sql.Tx, t *model.Trade, idempotencyKey string) error {
	var key sql.NullString
	if idempotencyKey != "" {
		key = sql.NullString{String: idempotencyKey, Valid: true}
	}

	query := `
		INSERT INTO trade (id, customer_id, company_id, sub_admin_id, type, quantity, price_at_execution, total_value, idempotency_key, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := tx.ExecContext(ctx, query,
		t.ID,
		t.CustomerID,
		t.CompanyID,
		t.SubAdminID,
		t.Type,
		t.Quantity,
		t.PriceAtExecution.String(),
		t.TotalValue.String(),
		key,
		t.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to insert trade: %w", err)
	}
	return nil
}

// GetByIdempotencyKeyTx looks up a previously recorded trade by its
// idempotency key inside an open transaction. The second return value is
// false when no trade carries the key.
func (r *TradeRepository) GetByIdempotencyKeyTx(ctx context.Context, tx *sql.Tx, key string) (model.Trade, bool, error) {
	row := tx.QueryRowContext(ctx, "SELECT "+tradeColumns+" FROM trade WHERE idempotency_key = ?", key)

	t, err := scanTradeRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Trade{}, false, nil
	}
	if err != nil {
		return model.Trade{}, false, err
	}
	return t, true, nil
}

// ListByCustomer retrieves a customer's trades in reverse chronological order.
func (r *TradeRepository) ListByCustomer(ctx context.Context, customerID string) ([]model.Trade, error) {
	query := "SELECT " + tradeColumns + " FROM trade WHERE customer_id = ? ORDER BY created_at DESC, rowid DESC"
	return r.listTrades(ctx, query, customerID)
}

// ListBySubAdmin retrieves the trades executed by a sub-admin in reverse chronological order.
func (r *TradeRepository) ListBySubAdmin(ctx context.Context, subAdminID string) ([]model.Trade, error) {
	query := "SELECT " + tradeColumns + " FROM trade WHERE sub_admin_id = ? ORDER BY created_at DESC, rowid DESC"
	return r.listTrades(ctx, query, subAdminID)
}

// ListAll retrieves every trade in reverse chronological order.
func (r *TradeRepository) ListAll(ctx context.Context) ([]model.Trade, error) {
	query := "SELECT " + tradeColumns + " FROM trade ORDER BY created_at DESC, rowid DESC"
	return r.listTrades(ctx, query)
}

func (r *TradeRepository) listTrades(ctx context.Context, query string, args ...any) ([]model.Trade, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trade table: %w", err)
	}
	defer rows.Close()

	trades := []model.Trade{}
	for rows.Next() {
		var t model.Trade
		var priceStr, totalStr, createdAtStr string

		err := rows.Scan(
			&t.ID,
			&t.CustomerID,
			&t.CompanyID,
			&t.SubAdminID,
			&t.Type,
			&t.Quantity,
			&priceStr,
			&totalStr,
			&createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trade table results: %w", err)
		}

		if t.PriceAtExecution, err = ParseDecimal(priceStr); err != nil {
			return nil, err
		}
		if t.TotalValue, err = ParseDecimal(totalStr); err != nil {
			return nil, err
		}
		if t.CreatedAt, err = ParseTime(createdAtStr); err != nil {
			return nil, err
		}

		trades = append(trades, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trade table: %w", err)
	}

	return trades, nil
}

func scanTradeRow(row *sql.Row) (model.Trade, error) {
	var t model.Trade
	var priceStr, totalStr, createdAtStr string

	err := row.Scan(
		&t.ID,
		&t.CustomerID,
		&t.CompanyID,
		&t.SubAdminID,
		&t.Type,
		&t.Quantity,
		&priceStr,
		&totalStr,
		&createdAtStr,
	)
	if err != nil {
		return model.Trade{}, err
	}

	if t.PriceAtExecution, err = ParseDecimal(priceStr); err != nil {
		return model.Trade{}, err
	}
	if t.TotalValue, err = ParseDecimal(totalStr); err != nil {
		return model.Trade{}, err
	}
	if t.CreatedAt, err = ParseTime(createdAtStr); err != nil {
		return model.Trade{}, err
	}
	return t, nil
}
