package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nlandman/Brokerage-Simulation-Backend/internal/model"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/repository"
)

// PortfolioService computes the read-side valuation projection of a
// customer's holdings against current prices. The projection is recomputed
// on every request and never stored, so it is always consistent with the
// latest inventory state.
type PortfolioService struct {
	db           *sql.DB
	userRepo     *repository.UserRepository
	snapshotRepo *repository.SnapshotRepository
}

// NewPortfolioService creates a new PortfolioService with the provided dependencies.
func NewPortfolioService(
	db *sql.DB,
	userRepo *repository.UserRepository,
	snapshotRepo *repository.SnapshotRepository,
) *PortfolioService {
	return &PortfolioService{
		db:           db,
		userRepo:     userRepo,
		snapshotRepo: snapshotRepo,
	}
}

// GetValuation returns each holding valued at the live price plus the
// portfolio total. A customer with no holdings gets an empty valuation, not
// an error: "no portfolio yet" is a valid zero-holdings state.
func (s *PortfolioService) GetValuation(ctx context.Context, customerID string) (*model.PortfolioValuation, error) {
	if _, err := s.userRepo.GetUserByID(ctx, customerID); err != nil {
		return nil, err
	}

	query := `
		SELECT h.company_id, c.name, h.shares, c.price
		FROM holding h
		JOIN company c ON h.company_id = c.id
		WHERE h.customer_id = ?
		ORDER BY c.name ASC
	`
	rows, err := s.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query holdings for valuation: %w", err)
	}
	defer rows.Close()

	valuation := &model.PortfolioValuation{
		CustomerID:          customerID,
		Holdings:            []model.HoldingValuation{},
		TotalPortfolioValue: decimal.Zero,
	}

	for rows.Next() {
		var hv model.HoldingValuation
		var priceStr string

		if err := rows.Scan(&hv.CompanyID, &hv.CompanyName, &hv.Shares, &priceStr); err != nil {
			return nil, fmt.Errorf("failed to scan valuation results: %w", err)
		}
		if hv.SharePrice, err = repository.ParseDecimal(priceStr); err != nil {
			return nil, err
		}

		hv.TotalValue = hv.SharePrice.Mul(decimal.NewFromInt(hv.Shares))
		valuation.TotalPortfolioValue = valuation.TotalPortfolioValue.Add(hv.TotalValue)
		valuation.Holdings = append(valuation.Holdings, hv)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating valuation results: %w", err)
	}

	return valuation, nil
}

// GetValueHistory retrieves a customer's materialized daily portfolio values
// in chronological order.
func (s *PortfolioService) GetValueHistory(ctx context.Context, customerID string) ([]model.PortfolioValueSnapshot, error) {
	if _, err := s.userRepo.GetUserByID(ctx, customerID); err != nil {
		return nil, err
	}
	return s.snapshotRepo.ListByCustomer(ctx, customerID)
}
