package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/nlandman/Brokerage-Simulation-Backend/internal/apperrors"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/api/request"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/auth"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/model"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/repository"
)

// UserService handles account registration, login and listing. Passwords are
// bcrypt-hashed before storage and compared in constant time at login.
type UserService struct {
	userRepo *repository.UserRepository
	tokens   *auth.TokenManager
}

// NewUserService creates a new UserService with the provided dependencies.
func NewUserService(userRepo *repository.UserRepository, tokens *auth.TokenManager) *UserService {
	return &UserService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// AuthResult is the outcome of a successful registration or login.
type AuthResult struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Register creates an account and issues an access token for it.
func (s *UserService) Register(ctx context.Context, req request.RegisterRequest) (*AuthResult, error) {
	if !model.ValidRole(req.Role) {
		return nil, apperrors.ErrInvalidRole
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
	}
	if err := s.userRepo.InsertUser(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, User: *user}, nil
}

// Login verifies credentials and issues an access token. An unknown email
// and a wrong password produce the same failure.
func (s *UserService) Login(ctx context.Context, req request.LoginRequest) (*AuthResult, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, User: user}, nil
}

// ListManagedUsers retrieves all customer and sub-admin accounts for the
// admin view.
func (s *UserService) ListManagedUsers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.ListUsersByRoles(ctx, []string{model.RoleCustomer, model.RoleSubAdmin})
}
