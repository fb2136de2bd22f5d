package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nlandman/Brokerage-Simulation-Backend/internal/apperrors"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/model"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/repository"
)

// Price adjustment direction tags.
const (
	DirectionIncrease = "increase"
	DirectionDecrease = "decrease"
)

// priceHistoryLimit caps the bounded history query. Older entries stay
// stored; they are just not returned.
const priceHistoryLimit = 30

// PriceService is the price adjustment engine: it mutates a company's price
// and appends the matching history record in one database transaction.
type PriceService struct {
	db          *sql.DB
	companyRepo *repository.CompanyRepository
	historyRepo *repository.PriceHistoryRepository
}

// NewPriceService creates a new PriceService with the provided repository dependencies.
func NewPriceService(
	db *sql.DB,
	companyRepo *repository.CompanyRepository,
	historyRepo *repository.PriceHistoryRepository,
) *PriceService {
	return &PriceService{
		db:          db,
		companyRepo: companyRepo,
		historyRepo: historyRepo,
	}
}

// AdjustPrice applies an administrative price change of delta in the given
// direction. A decrease that would take the price to zero or below is
// rejected without mutating state; the price stays strictly positive.
func (s *PriceService) AdjustPrice(ctx context.Context, companyID, direction string, delta decimal.Decimal, actingUserID string) (*model.PriceChange, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin price transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	company, err := s.companyRepo.GetCompanyTx(ctx, tx, companyID)
	if err != nil {
		return nil, err
	}

	var newPrice decimal.Decimal
	switch direction {
	case DirectionIncrease:
		newPrice = company.Price.Add(delta)
	case DirectionDecrease:
		newPrice = company.Price.Sub(delta)
		if !newPrice.IsPositive() {
			return nil, apperrors.ErrNegativePrice
		}
	default:
		return nil, apperrors.ErrInvalidDirection
	}

	if err := s.companyRepo.UpdatePriceTx(ctx, tx, companyID, newPrice); err != nil {
		return nil, err
	}

	record := &model.PriceHistoryRecord{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		Price:      newPrice,
		ModifiedBy: actingUserID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.historyRepo.InsertTx(ctx, tx, record); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit price transaction: %w", err)
	}

	return &model.PriceChange{
		CompanyID: companyID,
		OldPrice:  company.Price,
		NewPrice:  newPrice,
		Change:    newPrice.Sub(company.Price),
	}, nil
}

// GetPriceHistory retrieves the latest 30 price changes for a company in
// chronological order.
func (s *PriceService) GetPriceHistory(ctx context.Context, companyID string) ([]model.PriceHistoryRecord, error) {
	if _, err := s.companyRepo.GetCompany(ctx, companyID); err != nil {
		return nil, err
	}
	return s.historyRepo.Latest(ctx, companyID, priceHistoryLimit)
}
