package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/nlandman/Brokerage-Simulation-Backend/internal/api"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/auth"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/config"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/database"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/repository"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	holdingRepo := repository.NewHoldingRepository(db)
	tradeRepo := repository.NewTradeRepository(db)
	historyRepo := repository.NewPriceHistoryRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)

	// Create services
	tokens := auth.NewTokenManager(cfg.JWT.Secret)
	systemService := service.NewSystemService(db)
	userService := service.NewUserService(userRepo, tokens)
	companyService := service.NewCompanyService(db, companyRepo)
	priceService := service.NewPriceService(db, companyRepo, historyRepo)
	tradingService := service.NewTradingService(db, companyRepo, holdingRepo, tradeRepo)
	portfolioService := service.NewPortfolioService(db, userRepo, snapshotRepo)
	snapshotService := service.NewSnapshotService(portfolioService, userRepo, snapshotRepo)

	// Schedule the daily portfolio value snapshot
	scheduler := cron.New()
	if _, err := scheduler.AddJob(cfg.Snapshot.Schedule, snapshotService); err != nil {
		log.Fatalf("Failed to schedule snapshot job: %v", err)
	}
	scheduler.Start()

	// Create router
	router := api.NewRouter(api.Services{
		System:    systemService,
		User:      userService,
		Company:   companyService,
		Price:     priceService,
		Trading:   tradingService,
		Portfolio: portfolioService,
	}, tokens, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Stop scheduled jobs and wait for a running snapshot to finish
	<-scheduler.Stop().Done()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
