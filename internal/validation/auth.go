package validation

import (
	"strings"

	"github.com/nlandman/Brokerage-Simulation-Backend/internal/api/request"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/model"
)

const minPasswordLength = 8

// ValidateRegister validates an account registration request.
//
// Required fields:
//   - email: non-empty, containing an @
//   - password: at least 8 characters
//   - role: one of customer, subadmin, superadmin
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateRegister(req request.RegisterRequest) error {
	errors := make(map[string]string)

	email := strings.TrimSpace(req.Email)
	if email == "" {
		errors["email"] = "email is required"
	} else if !strings.Contains(email, "@") {
		errors["email"] = "email is not valid"
	}

	if len(req.Password) < minPasswordLength {
		errors["password"] = "password must be at least 8 characters"
	}

	if !model.ValidRole(req.Role) {
		errors["role"] = "role must be customer, subadmin or superadmin"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateLogin validates a login request.
func ValidateLogin(req request.LoginRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Email) == "" {
		errors["email"] = "email is required"
	}
	if req.Password == "" {
		errors["password"] = "password is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
