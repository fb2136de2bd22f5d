package handlers

import (
	"errors"
	"net/http"

	"github.com/nlandman/Brokerage-Simulation-Backend/internal/api/request"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/api/response"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/apperrors"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/service"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/validation"
)

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	userService *service.UserService
}

// NewAuthHandler creates a new AuthHandler with the provided service dependency.
func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

// Register handles POST requests to create an account.
//
// Endpoint: POST /api/auth/register
// Request Body: RegisterRequest (email, password, role)
// Response: 201 Created with token and user
// Error: 400 Bad Request if validation fails
// Error: 409 Conflict if the email is already registered
// Error: 500 Internal Server Error if registration fails
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.RegisterRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateRegister(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	result, err := h.userService.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicateEmail):
			response.RespondError(w, http.StatusConflict, err.Error(), nil)
		case errors.Is(err, apperrors.ErrInvalidRole):
			response.RespondError(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to register user", nil)
		}
		return
	}

	response.RespondJSON(w, http.StatusCreated, result)
}

// Login handles POST requests to authenticate an account.
//
// Endpoint: POST /api/auth/login
// Request Body: LoginRequest (email, password)
// Response: 200 OK with token and user
// Error: 400 Bad Request if validation fails or the credentials are wrong
// Error: 500 Internal Server Error if login fails
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.LoginRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateLogin(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	result, err := h.userService.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			response.RespondError(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to log in", nil)
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}

// Users handles GET requests to list customer and sub-admin accounts.
//
// Endpoint: GET /api/auth/users
// Response: 200 OK with array of User (password hashes excluded)
// Error: 500 Internal Server Error if retrieval fails
func (h *AuthHandler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListManagedUsers(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveUsers.Error(), nil)
		return
	}

	response.RespondJSON(w, http.StatusOK, users)
}
