package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/nlandman/Brokerage-Simulation-Backend/internal/api"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/api/request"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/auth"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/config"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/model"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/repository"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/service"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/testutil"
)

func setupRouter(t *testing.T) (http.Handler, *auth.TokenManager) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	tokens := testutil.NewTestTokenManager(t)

	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	holdingRepo := repository.NewHoldingRepository(db)
	tradeRepo := repository.NewTradeRepository(db)
	historyRepo := repository.NewPriceHistoryRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)

	svc := api.Services{
		System:    service.NewSystemService(db),
		User:      service.NewUserService(userRepo, tokens),
		Company:   service.NewCompanyService(db, companyRepo),
		Price:     service.NewPriceService(db, companyRepo, historyRepo),
		Trading:   service.NewTradingService(db, companyRepo, holdingRepo, tradeRepo),
		Portfolio: service.NewPortfolioService(db, userRepo, snapshotRepo),
	}

	cfg := &config.Config{
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}

	return api.NewRouter(svc, tokens, cfg), tokens
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(target); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
}

// register creates an account through the public endpoint and returns its ID
// and token.
func register(t *testing.T, router http.Handler, email, role string) (string, string) {
	t.Helper()

	body := request.RegisterRequest{
		Email:    email,
		Password: "long enough password",
		Role:     role,
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.NewJSONRequest(t, http.MethodPost, "/api/auth/register", body, nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("Register failed with status %d: %s", w.Code, w.Body.String())
	}

	var result struct {
		Token string     `json:"token"`
		User  model.User `json:"user"`
	}
	decodeJSON(t, w, &result)
	return result.User.ID, result.Token
}

func TestRouter_Health(t *testing.T) {
	router, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRouter_RoleGuards(t *testing.T) {
	router, tokens := setupRouter(t)

	tokenFor := func(role string) string {
		token, err := tokens.Generate(testutil.MakeID(), role)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		return token
	}

	cases := []struct {
		name   string
		method string
		path   string
		role   string
		want   int
	}{
		{"trade execution needs a token", http.MethodPost, "/api/trade", "", http.StatusUnauthorized},
		{"customers cannot execute trades", http.MethodPost, "/api/trade", model.RoleCustomer, http.StatusForbidden},
		{"superadmins cannot execute trades", http.MethodPost, "/api/trade", model.RoleSuperAdmin, http.StatusForbidden},
		{"full ledger is superadmin only", http.MethodGet, "/api/trade", model.RoleSubAdmin, http.StatusForbidden},
		{"catalog administration is superadmin only", http.MethodGet, "/api/company", model.RoleCustomer, http.StatusForbidden},
		{"user listing is superadmin only", http.MethodGet, "/api/auth/users", model.RoleSubAdmin, http.StatusForbidden},
		{"portfolio needs a token", http.MethodGet, "/api/portfolio/" + testutil.MakeID(), "", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.role != "" {
				req.Header.Set("Authorization", "Bearer "+tokenFor(tc.role))
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Errorf("Expected status %d, got %d: %s", tc.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestRouter_TradeFlow(t *testing.T) {
	router, _ := setupRouter(t)

	customerID, _ := register(t, router, "customer@example.com", model.RoleCustomer)
	_, subAdminToken := register(t, router, "subadmin@example.com", model.RoleSubAdmin)
	_, superAdminToken := register(t, router, "superadmin@example.com", model.RoleSuperAdmin)

	// Create the company as a super-admin.
	createBody := request.CreateCompanyRequest{
		Name:     "Acme",
		Price:    decimal.RequireFromString("10.00"),
		Quantity: 100,
	}
	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/company", createBody, nil)
	req.Header.Set("Authorization", "Bearer "+superAdminToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("CreateCompany failed with status %d: %s", w.Code, w.Body.String())
	}

	var company model.Company
	decodeJSON(t, w, &company)

	// Execute a buy as the sub-admin.
	tradeBody := request.ExecuteTradeRequest{
		CustomerID: customerID,
		CompanyID:  company.ID,
		Operation:  model.TradeTypeBuy,
		Quantity:   30,
	}
	req = testutil.NewJSONRequest(t, http.MethodPost, "/api/trade", tradeBody, nil)
	req.Header.Set("Authorization", "Bearer "+subAdminToken)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("ExecuteTrade failed with status %d: %s", w.Code, w.Body.String())
	}

	// The customer's portfolio now reflects the position.
	req = httptest.NewRequest(http.MethodGet, "/api/portfolio/"+customerID, nil)
	req.Header.Set("Authorization", "Bearer "+subAdminToken)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Valuation failed with status %d: %s", w.Code, w.Body.String())
	}

	var valuation model.PortfolioValuation
	decodeJSON(t, w, &valuation)
	if len(valuation.Holdings) != 1 || valuation.Holdings[0].Shares != 30 {
		t.Errorf("Unexpected valuation: %+v", valuation)
	}
}
