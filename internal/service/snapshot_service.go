package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nlandman/Brokerage-Simulation-Backend/internal/repository"
)

// snapshotConcurrency bounds how many customer valuations run at once.
const snapshotConcurrency = 4

// SnapshotService materializes each customer's total portfolio value once a
// day. The live valuation endpoint never reads these rows; they only serve
// the history chart.
type SnapshotService struct {
	portfolioService *PortfolioService
	userRepo         *repository.UserRepository
	snapshotRepo     *repository.SnapshotRepository
}

// NewSnapshotService creates a new SnapshotService with the provided dependencies.
func NewSnapshotService(
	portfolioService *PortfolioService,
	userRepo *repository.UserRepository,
	snapshotRepo *repository.SnapshotRepository,
) *SnapshotService {
	return &SnapshotService{
		portfolioService: portfolioService,
		userRepo:         userRepo,
		snapshotRepo:     snapshotRepo,
	}
}

// SnapshotAll computes and stores today's portfolio value for every customer.
// Customers are processed concurrently; the first failure cancels the rest.
func (s *SnapshotService) SnapshotAll(ctx context.Context) error {
	customerIDs, err := s.userRepo.ListCustomerIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list customers for snapshot: %w", err)
	}

	date := time.Now().UTC().Format("2006-01-02")

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(snapshotConcurrency)

	for _, customerID := range customerIDs {
		customerID := customerID
		g.Go(func() error {
			valuation, err := s.portfolioService.GetValuation(ctx, customerID)
			if err != nil {
				return fmt.Errorf("failed to value portfolio of %s: %w", customerID, err)
			}
			return s.snapshotRepo.UpsertSnapshot(ctx, customerID, date, valuation.TotalPortfolioValue)
		})
	}

	return g.Wait()
}

// Run executes SnapshotAll and logs the outcome. It satisfies the signature
// cron expects for scheduled jobs.
func (s *SnapshotService) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := s.SnapshotAll(ctx); err != nil {
		log.Printf("portfolio snapshot job failed: %v", err)
		return
	}
	log.Println("portfolio snapshot job completed")
}
