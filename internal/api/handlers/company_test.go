package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/nlandman/Brokerage-Simulation-Backend/internal/api/handlers"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/api/request"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/auth"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/model"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/testutil"
)

func asSuperAdmin(req *http.Request, superAdminID string) *http.Request {
	principal := auth.Principal{UserID: superAdminID, Role: model.RoleSuperAdmin}
	return req.WithContext(auth.WithPrincipal(req.Context(), principal))
}

func TestCompanyHandler_CreateCompany(t *testing.T) {
	t.Run("creates a company", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewCompanyHandler(testutil.NewTestCompanyService(t, db), testutil.NewTestPriceService(t, db))

		body := request.CreateCompanyRequest{
			Name:     "Initech",
			Price:    decimal.RequireFromString("42.00"),
			Quantity: 500,
		}
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/company", body, nil)
		w := httptest.NewRecorder()

		handler.CreateCompany(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
		}

		var company model.Company
		if err := json.NewDecoder(w.Body).Decode(&company); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if company.Name != "Initech" || company.AvailableQuantity != 500 {
			t.Errorf("Unexpected company: %+v", company)
		}
	})

	t.Run("returns conflict for a duplicate name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewCompanyHandler(testutil.NewTestCompanyService(t, db), testutil.NewTestPriceService(t, db))

		testutil.NewCompany().WithName("Initech").Build(t, db)

		body := request.CreateCompanyRequest{
			Name:     "Initech",
			Price:    decimal.RequireFromString("42.00"),
			Quantity: 500,
		}
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/company", body, nil)
		w := httptest.NewRecorder()

		handler.CreateCompany(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("Expected status 409, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("rejects invalid payloads", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewCompanyHandler(testutil.NewTestCompanyService(t, db), testutil.NewTestPriceService(t, db))

		cases := map[string]request.CreateCompanyRequest{
			"missing name":      {Price: decimal.RequireFromString("1.00"), Quantity: 10},
			"zero price":        {Name: "Acme", Quantity: 10},
			"negative quantity": {Name: "Acme", Price: decimal.RequireFromString("1.00"), Quantity: -1},
		}
		for name, body := range cases {
			t.Run(name, func(t *testing.T) {
				req := testutil.NewJSONRequest(t, http.MethodPost, "/api/company", body, nil)
				w := httptest.NewRecorder()

				handler.CreateCompany(w, req)

				if w.Code != http.StatusBadRequest {
					t.Errorf("Expected status 400, got %d", w.Code)
				}
			})
		}
	})
}

func TestCompanyHandler_DeleteCompany(t *testing.T) {
	t.Run("deletes an unreferenced company", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewCompanyHandler(testutil.NewTestCompanyService(t, db), testutil.NewTestPriceService(t, db))

		company := testutil.NewCompany().Build(t, db)

		req := testutil.NewRequestWithURLParams(
			http.MethodDelete,
			"/api/company/"+company.ID,
			map[string]string{"companyId": company.ID},
		)
		w := httptest.NewRecorder()

		handler.DeleteCompany(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Expected status 204, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 409 when holdings reference the company", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewCompanyHandler(testutil.NewTestCompanyService(t, db), testutil.NewTestPriceService(t, db))

		customer := testutil.CreateCustomer(t, db)
		company := testutil.NewCompany().WithQuantity(100).WithAvailableQuantity(90).Build(t, db)
		testutil.CreateHolding(t, db, customer.ID, company.ID, 10)

		req := testutil.NewRequestWithURLParams(
			http.MethodDelete,
			"/api/company/"+company.ID,
			map[string]string{"companyId": company.ID},
		)
		w := httptest.NewRecorder()

		handler.DeleteCompany(w, req)

		if w.Code != http.StatusConflict {
			t.Errorf("Expected status 409, got %d", w.Code)
		}
	})

	t.Run("returns 404 for an unknown company", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewCompanyHandler(testutil.NewTestCompanyService(t, db), testutil.NewTestPriceService(t, db))

		id := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(
			http.MethodDelete,
			"/api/company/"+id,
			map[string]string{"companyId": id},
		)
		w := httptest.NewRecorder()

		handler.DeleteCompany(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}

func TestCompanyHandler_AdjustPrice(t *testing.T) {
	t.Run("applies an increase and reports the change", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewCompanyHandler(testutil.NewTestCompanyService(t, db), testutil.NewTestPriceService(t, db))

		superAdmin := testutil.CreateSuperAdmin(t, db)
		company := testutil.NewCompany().WithPrice("10.00").Build(t, db)

		body := request.AdjustPriceRequest{
			Direction: "increase",
			Delta:     decimal.RequireFromString("2.00"),
		}
		req := asSuperAdmin(testutil.NewJSONRequest(
			t, http.MethodPost,
			"/api/company/"+company.ID+"/price",
			body,
			map[string]string{"companyId": company.ID},
		), superAdmin.ID)
		w := httptest.NewRecorder()

		handler.AdjustPrice(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var change model.PriceChange
		if err := json.NewDecoder(w.Body).Decode(&change); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if !change.NewPrice.Equal(decimal.RequireFromString("12.00")) {
			t.Errorf("Expected new price 12.00, got %s", change.NewPrice)
		}
	})

	t.Run("returns 400 when a decrease would floor the price", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewCompanyHandler(testutil.NewTestCompanyService(t, db), testutil.NewTestPriceService(t, db))

		superAdmin := testutil.CreateSuperAdmin(t, db)
		company := testutil.NewCompany().WithPrice("5.00").Build(t, db)

		body := request.AdjustPriceRequest{
			Direction: "decrease",
			Delta:     decimal.RequireFromString("5.00"),
		}
		req := asSuperAdmin(testutil.NewJSONRequest(
			t, http.MethodPost,
			"/api/company/"+company.ID+"/price",
			body,
			map[string]string{"companyId": company.ID},
		), superAdmin.ID)
		w := httptest.NewRecorder()

		handler.AdjustPrice(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 404 for an unknown company", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewCompanyHandler(testutil.NewTestCompanyService(t, db), testutil.NewTestPriceService(t, db))

		superAdmin := testutil.CreateSuperAdmin(t, db)

		id := testutil.MakeID()
		body := request.AdjustPriceRequest{
			Direction: "increase",
			Delta:     decimal.RequireFromString("1.00"),
		}
		req := asSuperAdmin(testutil.NewJSONRequest(
			t, http.MethodPost,
			"/api/company/"+id+"/price",
			body,
			map[string]string{"companyId": id},
		), superAdmin.ID)
		w := httptest.NewRecorder()

		handler.AdjustPrice(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}

func TestCompanyHandler_PriceHistory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewCompanyHandler(testutil.NewTestCompanyService(t, db), testutil.NewTestPriceService(t, db))
	ps := testutil.NewTestPriceService(t, db)

	superAdmin := testutil.CreateSuperAdmin(t, db)
	company := testutil.NewCompany().WithPrice("10.00").Build(t, db)

	_, err := ps.AdjustPrice(context.Background(), company.ID, "increase", decimal.RequireFromString("1.00"), superAdmin.ID)
	if err != nil {
		t.Fatalf("AdjustPrice failed: %v", err)
	}

	req := testutil.NewRequestWithURLParams(
		http.MethodGet,
		"/api/company/"+company.ID+"/price-history",
		map[string]string{"companyId": company.ID},
	)
	w := httptest.NewRecorder()

	handler.PriceHistory(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var history []model.PriceHistoryRecord
	if err := json.NewDecoder(w.Body).Decode(&history); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(history))
	}
	if !history[0].Price.Equal(decimal.RequireFromString("11.00")) {
		t.Errorf("Expected price 11.00, got %s", history[0].Price)
	}
}
