package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nlandman/Brokerage-Simulation-Backend/internal/apperrors"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/api/request"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/model"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/repository"
)

// TradingService is the transaction engine: it validates a buy or sell and
// applies the inventory mutation, the holding mutation and the ledger append
// in one database transaction. No observer can see one of the three writes
// without the others.
type TradingService struct {
	db          *sql.DB
	companyRepo *repository.CompanyRepository
	holdingRepo *repository.HoldingRepository
	tradeRepo   *repository.TradeRepository
}

// NewTradingService creates a new TradingService with the provided repository dependencies.
// The *sql.DB is needed to open the transaction spanning all three stores.
func NewTradingService(
	db *sql.DB,
	companyRepo *repository.CompanyRepository,
	holdingRepo *repository.HoldingRepository,
	tradeRepo *repository.TradeRepository,
) *TradingService {
	return &TradingService{
		db:          db,
		companyRepo: companyRepo,
		holdingRepo: holdingRepo,
		tradeRepo:   tradeRepo,
	}
}

// ExecuteTrade validates and applies a buy or sell on behalf of a customer.
//
// The checks run fail-fast in a fixed order: quantity, company existence,
// inventory or holding sufficiency, operation tag. Sufficiency is enforced by
// guarded conditional UPDATEs inside the transaction rather than a read
// followed by a write, so two concurrent trades over the same last unit
// cannot both commit. The company's current price is read inside the same
// transaction and snapshotted into the ledger entry; later price changes
// never alter it.
func (s *TradingService) ExecuteTrade(ctx context.Context, req request.ExecuteTradeRequest, subAdminID string) (*model.Trade, error) {
	if req.Quantity <= 0 {
		return nil, apperrors.ErrInvalidQuantity
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin trade transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	// A resubmitted idempotency key returns the originally recorded trade.
	if req.IdempotencyKey != "" {
		existing, found, err := s.tradeRepo.GetByIdempotencyKeyTx(ctx, tx, req.IdempotencyKey)
		if err != nil {
			return nil, err
		}
		if found {
			return &existing, nil
		}
	}

	company, err := s.companyRepo.GetCompanyTx(ctx, tx, req.CompanyID)
	if err != nil {
		return nil, err
	}

	switch req.Operation {
	case model.TradeTypeBuy:
		ok, err := s.companyRepo.ReserveSharesTx(ctx, tx, req.CompanyID, req.Quantity)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperrors.ErrInsufficientInventory
		}
		if err := s.holdingRepo.AddSharesTx(ctx, tx, req.CustomerID, req.CompanyID, req.Quantity); err != nil {
			return nil, err
		}

	case model.TradeTypeSell:
		ok, err := s.holdingRepo.RemoveSharesTx(ctx, tx, req.CustomerID, req.CompanyID, req.Quantity)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperrors.ErrInsufficientHoldings
		}
		if err := s.companyRepo.ReleaseSharesTx(ctx, tx, req.CompanyID, req.Quantity); err != nil {
			return nil, err
		}

	default:
		return nil, apperrors.ErrInvalidOperation
	}

	trade := &model.Trade{
		ID:               uuid.New().String(),
		CustomerID:       req.CustomerID,
		CompanyID:        req.CompanyID,
		SubAdminID:       subAdminID,
		Type:             req.Operation,
		Quantity:         req.Quantity,
		PriceAtExecution: company.Price,
		TotalValue:       company.Price.Mul(decimal.NewFromInt(req.Quantity)),
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.tradeRepo.InsertTradeTx(ctx, tx, trade, req.IdempotencyKey); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit trade transaction: %w", err)
	}

	return trade, nil
}

// GetTradesByCustomer retrieves a customer's ledger entries, most recent first.
func (s *TradingService) GetTradesByCustomer(ctx context.Context, customerID string) ([]model.Trade, error) {
	return s.tradeRepo.ListByCustomer(ctx, customerID)
}

// GetTradesBySubAdmin retrieves the ledger entries executed by a sub-admin, most recent first.
func (s *TradingService) GetTradesBySubAdmin(ctx context.Context, subAdminID string) ([]model.Trade, error) {
	return s.tradeRepo.ListBySubAdmin(ctx, subAdminID)
}

// GetAllTrades retrieves every ledger entry, most recent first.
func (s *TradingService) GetAllTrades(ctx context.Context) ([]model.Trade, error) {
	return s.tradeRepo.ListAll(ctx)
}
