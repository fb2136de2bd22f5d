package testutil

import (
	"database/sql"
	"testing"

	"github.com/nlandman/Brokerage-Simulation-Backend/internal/auth"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/repository"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/service"
)

// TestJWTSecret is the signing secret used by test token managers.
const TestJWTSecret = "test-secret-key"

// NewTestTokenManager returns a token manager signing with TestJWTSecret.
func NewTestTokenManager(t *testing.T) *auth.TokenManager {
	t.Helper()
	return auth.NewTokenManager(TestJWTSecret)
}

// NewTestTradingService wires a TradingService against the given database.
func NewTestTradingService(t *testing.T, db *sql.DB) *service.TradingService {
	t.Helper()

	companyRepo := repository.NewCompanyRepository(db)
	holdingRepo := repository.NewHoldingRepository(db)
	tradeRepo := repository.NewTradeRepository(db)

	return service.NewTradingService(db, companyRepo, holdingRepo, tradeRepo)
}

// NewTestPriceService wires a PriceService against the given database.
func NewTestPriceService(t *testing.T, db *sql.DB) *service.PriceService {
	t.Helper()

	companyRepo := repository.NewCompanyRepository(db)
	historyRepo := repository.NewPriceHistoryRepository(db)

	return service.NewPriceService(db, companyRepo, historyRepo)
}

// NewTestPortfolioService wires a PortfolioService against the given database.
func NewTestPortfolioService(t *testing.T, db *sql.DB) *service.PortfolioService {
	t.Helper()

	userRepo := repository.NewUserRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)

	return service.NewPortfolioService(db, userRepo, snapshotRepo)
}

// NewTestSnapshotService wires a SnapshotService against the given database.
func NewTestSnapshotService(t *testing.T, db *sql.DB) *service.SnapshotService {
	t.Helper()

	userRepo := repository.NewUserRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)
	portfolioService := service.NewPortfolioService(db, userRepo, snapshotRepo)

	return service.NewSnapshotService(portfolioService, userRepo, snapshotRepo)
}

// NewTestUserService wires a UserService against the given database.
func NewTestUserService(t *testing.T, db *sql.DB) *service.UserService {
	t.Helper()

	userRepo := repository.NewUserRepository(db)
	return service.NewUserService(userRepo, NewTestTokenManager(t))
}

// NewTestCompanyService wires a CompanyService against the given database.
func NewTestCompanyService(t *testing.T, db *sql.DB) *service.CompanyService {
	t.Helper()

	companyRepo := repository.NewCompanyRepository(db)
	return service.NewCompanyService(db, companyRepo)
}
