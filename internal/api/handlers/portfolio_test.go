package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/nlandman/Brokerage-Simulation-Backend/internal/api/handlers"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/model"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/testutil"
)

func TestPortfolioHandler_Valuation(t *testing.T) {
	t.Run("returns the live valuation", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewPortfolioHandler(testutil.NewTestPortfolioService(t, db))

		customer := testutil.CreateCustomer(t, db)
		company := testutil.NewCompany().WithName("Acme").WithPrice("10.00").WithQuantity(100).WithAvailableQuantity(70).Build(t, db)
		testutil.CreateHolding(t, db, customer.ID, company.ID, 30)

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/portfolio/"+customer.ID,
			map[string]string{"customerId": customer.ID},
		)
		w := httptest.NewRecorder()

		handler.Valuation(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var valuation model.PortfolioValuation
		if err := json.NewDecoder(w.Body).Decode(&valuation); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(valuation.Holdings) != 1 {
			t.Fatalf("Expected 1 holding, got %d", len(valuation.Holdings))
		}
		if !valuation.TotalPortfolioValue.Equal(decimal.RequireFromString("300.00")) {
			t.Errorf("Expected total 300.00, got %s", valuation.TotalPortfolioValue)
		}
	})

	t.Run("returns 404 for an unknown customer", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewPortfolioHandler(testutil.NewTestPortfolioService(t, db))

		id := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/portfolio/"+id,
			map[string]string{"customerId": id},
		)
		w := httptest.NewRecorder()

		handler.Valuation(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})

	t.Run("returns an empty valuation for a customer without holdings", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewPortfolioHandler(testutil.NewTestPortfolioService(t, db))

		customer := testutil.CreateCustomer(t, db)
		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/portfolio/"+customer.ID,
			map[string]string{"customerId": customer.ID},
		)
		w := httptest.NewRecorder()

		handler.Valuation(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var valuation model.PortfolioValuation
		if err := json.NewDecoder(w.Body).Decode(&valuation); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(valuation.Holdings) != 0 || !valuation.TotalPortfolioValue.IsZero() {
			t.Errorf("Expected empty valuation, got %+v", valuation)
		}
	})
}

func TestPortfolioHandler_ValueHistory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewPortfolioHandler(testutil.NewTestPortfolioService(t, db))
	snapshots := testutil.NewTestSnapshotService(t, db)

	customer := testutil.CreateCustomer(t, db)
	company := testutil.NewCompany().WithPrice("5.00").WithQuantity(100).WithAvailableQuantity(80).Build(t, db)
	testutil.CreateHolding(t, db, customer.ID, company.ID, 20)

	if err := snapshots.SnapshotAll(context.Background()); err != nil {
		t.Fatalf("SnapshotAll failed: %v", err)
	}

	req := testutil.NewRequestWithURLParams(
		http.MethodGet,
		"/api/portfolio/"+customer.ID+"/history",
		map[string]string{"customerId": customer.ID},
	)
	w := httptest.NewRecorder()

	handler.ValueHistory(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var history []model.PortfolioValueSnapshot
	if err := json.NewDecoder(w.Body).Decode(&history); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("Expected 1 snapshot, got %d", len(history))
	}
	if !history[0].TotalValue.Equal(decimal.RequireFromString("100.00")) {
		t.Errorf("Expected snapshot value 100.00, got %s", history[0].TotalValue)
	}
}
