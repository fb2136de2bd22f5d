package validation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/nlandman/Brokerage-Simulation-Backend/internal/api/request"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/model"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/testutil"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/validation"
)

func TestValidateUUID(t *testing.T) {
	if err := validation.ValidateUUID(testutil.MakeID()); err != nil {
		t.Errorf("Expected valid UUID to pass, got %v", err)
	}

	for _, bad := range []string{"", "abc", "123-456", "g47ac10b-58cc-4372-a567-0e02b2c3d479"} {
		if err := validation.ValidateUUID(bad); err == nil {
			t.Errorf("Expected %q to be rejected", bad)
		}
	}
}

func TestValidateExecuteTrade(t *testing.T) {
	valid := request.ExecuteTradeRequest{
		CustomerID: testutil.MakeID(),
		CompanyID:  testutil.MakeID(),
		Operation:  model.TradeTypeBuy,
		Quantity:   1,
	}
	if err := validation.ValidateExecuteTrade(valid); err != nil {
		t.Errorf("Expected valid request to pass, got %v", err)
	}

	t.Run("collects one error per malformed identifier", func(t *testing.T) {
		bad := request.ExecuteTradeRequest{
			CustomerID: "nope",
			CompanyID:  "also nope",
			Operation:  model.TradeTypeBuy,
			Quantity:   1,
		}
		err := validation.ValidateExecuteTrade(bad)
		if err == nil {
			t.Fatal("Expected validation to fail")
		}

		var verr *validation.Error
		if !errors.As(err, &verr) {
			t.Fatalf("Expected *validation.Error, got %T", err)
		}
		if len(verr.Fields) != 2 {
			t.Errorf("Expected 2 field errors, got %d: %v", len(verr.Fields), verr.Fields)
		}
	})
}

func TestValidateCreateCompany(t *testing.T) {
	valid := request.CreateCompanyRequest{
		Name:     "Acme",
		Price:    decimal.RequireFromString("10.00"),
		Quantity: 100,
	}
	if err := validation.ValidateCreateCompany(valid); err != nil {
		t.Errorf("Expected valid request to pass, got %v", err)
	}

	cases := map[string]request.CreateCompanyRequest{
		"blank name":        {Name: "   ", Price: decimal.RequireFromString("10.00"), Quantity: 100},
		"zero price":        {Name: "Acme", Quantity: 100},
		"negative price":    {Name: "Acme", Price: decimal.RequireFromString("-1.00"), Quantity: 100},
		"zero quantity":     {Name: "Acme", Price: decimal.RequireFromString("10.00")},
		"negative quantity": {Name: "Acme", Price: decimal.RequireFromString("10.00"), Quantity: -1},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			if err := validation.ValidateCreateCompany(req); err == nil {
				t.Error("Expected validation to fail")
			}
		})
	}
}

func TestValidateAdjustPrice(t *testing.T) {
	valid := request.AdjustPriceRequest{
		Direction: "increase",
		Delta:     decimal.RequireFromString("1.00"),
	}
	if err := validation.ValidateAdjustPrice(valid); err != nil {
		t.Errorf("Expected valid request to pass, got %v", err)
	}

	for _, delta := range []string{"0", "-2.00"} {
		req := request.AdjustPriceRequest{Direction: "increase", Delta: decimal.RequireFromString(delta)}
		if err := validation.ValidateAdjustPrice(req); err == nil {
			t.Errorf("Expected delta %s to be rejected", delta)
		}
	}
}

func TestValidateRegister(t *testing.T) {
	valid := request.RegisterRequest{
		Email:    "user@example.com",
		Password: "long enough",
		Role:     model.RoleCustomer,
	}
	if err := validation.ValidateRegister(valid); err != nil {
		t.Errorf("Expected valid request to pass, got %v", err)
	}

	cases := map[string]request.RegisterRequest{
		"missing email":         {Password: "long enough", Role: model.RoleCustomer},
		"email without at sign": {Email: "userexample.com", Password: "long enough", Role: model.RoleCustomer},
		"short password":        {Email: "user@example.com", Password: "short", Role: model.RoleCustomer},
		"unknown role":          {Email: "user@example.com", Password: "long enough", Role: "auditor"},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			if err := validation.ValidateRegister(req); err == nil {
				t.Error("Expected validation to fail")
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &validation.Error{Fields: map[string]string{
		"b": "second",
		"a": "first",
	}}

	msg := err.Error()
	if !strings.HasPrefix(msg, "a: first") {
		t.Errorf("Expected fields sorted by name, got %q", msg)
	}
	if !strings.Contains(msg, "b: second") {
		t.Errorf("Expected all fields in message, got %q", msg)
	}
}
