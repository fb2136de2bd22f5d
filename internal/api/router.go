package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nlandman/Brokerage-Simulation-Backend/internal/api/handlers"
	custommiddleware "github.com/nlandman/Brokerage-Simulation-Backend/internal/api/middleware"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/auth"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/config"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/model"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/service"
)

// Services bundles the service dependencies the router wires into handlers.
type Services struct {
	System    *service.SystemService
	User      *service.UserService
	Company   *service.CompanyService
	Price     *service.PriceService
	Trading   *service.TradingService
	Portfolio *service.PortfolioService
}

// NewRouter creates and configures the HTTP router
func NewRouter(svc Services, tokens *auth.TokenManager, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	authenticate := custommiddleware.Authenticator(tokens)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svc.System)
			r.Get("/health", systemHandler.Health)
		})

		authHandler := handlers.NewAuthHandler(svc.User)
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(authenticate)
				r.Use(custommiddleware.RequireRole(model.RoleSuperAdmin))
				r.Get("/users", authHandler.Users)
			})
		})

		r.Route("/trade", func(r chi.Router) {
			tradeHandler := handlers.NewTradeHandler(svc.Trading)
			r.Use(authenticate)

			r.Group(func(r chi.Router) {
				r.Use(custommiddleware.RequireRole(model.RoleSubAdmin))
				r.Post("/", tradeHandler.ExecuteTrade)
				r.Get("/subadmin", tradeHandler.SubAdminTrades)
			})

			r.Group(func(r chi.Router) {
				r.Use(custommiddleware.RequireRole(model.RoleSuperAdmin))
				r.Get("/", tradeHandler.AllTrades)
			})

			r.Route("/customer/{customerId}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDParam("customerId"))
				r.Get("/", tradeHandler.CustomerTrades)
			})
		})

		r.Route("/company", func(r chi.Router) {
			companyHandler := handlers.NewCompanyHandler(svc.Company, svc.Price)
			r.Use(authenticate)
			r.Use(custommiddleware.RequireRole(model.RoleSuperAdmin))

			r.Post("/", companyHandler.CreateCompany)
			r.Get("/", companyHandler.Companies)

			r.Route("/{companyId}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDParam("companyId"))
				r.Delete("/", companyHandler.DeleteCompany)
				r.Post("/price", companyHandler.AdjustPrice)
				r.Get("/price-history", companyHandler.PriceHistory)
			})
		})

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(svc.Portfolio)
			r.Use(authenticate)

			r.Route("/{customerId}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDParam("customerId"))
				r.Get("/", portfolioHandler.Valuation)
				r.Get("/history", portfolioHandler.ValueHistory)
			})
		})
	})

	return r
}
