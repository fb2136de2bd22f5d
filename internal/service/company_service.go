package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/nlandman/Brokerage-Simulation-Backend/internal/apperrors"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/api/request"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/model"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/repository"
)

// CompanyService handles catalog administration.
type CompanyService struct {
	db          *sql.DB
	companyRepo *repository.CompanyRepository
}

// NewCompanyService creates a new CompanyService with the provided dependencies.
// The *sql.DB is needed to run the in-use check and the delete atomically.
func NewCompanyService(db *sql.DB, companyRepo *repository.CompanyRepository) *CompanyService {
	return &CompanyService{db: db, companyRepo: companyRepo}
}

// CreateCompany creates a catalog entry. The requested quantity becomes both
// the issued total and the initial available inventory; issuance is the only
// point where shares come into existence.
func (s *CompanyService) CreateCompany(ctx context.Context, req request.CreateCompanyRequest) (*model.Company, error) {
	company := &model.Company{
		ID:                uuid.New().String(),
		Name:              req.Name,
		Price:             req.Price,
		AvailableQuantity: req.Quantity,
		IssuedQuantity:    req.Quantity,
	}

	if err := s.companyRepo.InsertCompany(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// GetCompanies retrieves the full catalog.
func (s *CompanyService) GetCompanies(ctx context.Context) ([]model.Company, error) {
	return s.companyRepo.ListCompanies(ctx)
}

// DeleteCompany removes a catalog entry. Deletion is blocked while holdings
// or ledger entries reference the company; dropping it anyway would break the
// inventory conservation invariant. The check and the delete run in one
// transaction so a trade cannot slip in between them.
func (s *CompanyService) DeleteCompany(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin delete transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	inUse, err := s.companyRepo.InUseTx(ctx, tx, id)
	if err != nil {
		return err
	}
	if inUse {
		return apperrors.ErrCompanyInUse
	}
	if err := s.companyRepo.DeleteCompanyTx(ctx, tx, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete transaction: %w", err)
	}
	return nil
}
