package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/nlandman/Brokerage-Simulation-Backend/internal/apperrors"
	"github.com/nlandman/Brokerage-Simulation-Backend/internal/model"
)

// UserRepository provides data access methods for the user table.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository with the provided database connection.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// InsertUser creates a new account.
// Returns apperrors.ErrDuplicateEmail when the email is already registered.
func (r *UserRepository) InsertUser(ctx context.Context, u *model.User) error {
	query := `
		INSERT INTO user (id, email, password_hash, role)
		VALUES (?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query, u.ID, u.Email, u.PasswordHash, u.Role)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return apperrors.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetUserByEmail retrieves an account by email.
// Returns apperrors.ErrUserNotFound if no row exists.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	row := r.db.QueryRowContext(ctx, "SELECT id, email, password_hash, role FROM user WHERE email = ?", email)
	return scanUser(row)
}

// GetUserByID retrieves an account by ID.
// Returns apperrors.ErrUserNotFound if no row exists.
func (r *UserRepository) GetUserByID(ctx context.Context, id string) (model.User, error) {
	row := r.db.QueryRowContext(ctx, "SELECT id, email, password_hash, role FROM user WHERE id = ?", id)
	return scanUser(row)
}

// ListUsersByRoles retrieves all accounts carrying any of the given role tags,
// ordered by email. Password hashes are not loaded for listings.
func (r *UserRepository) ListUsersByRoles(ctx context.Context, roles []string) ([]model.User, error) {
	if len(roles) == 0 {
		return []model.User{}, nil
	}

	placeholders := make([]string, len(roles))
	args := make([]any, len(roles))
	for i, role := range roles {
		placeholders[i] = "?"
		args[i] = role
	}

	query := `
		SELECT id, email, role
		FROM user
		WHERE role IN (` + strings.Join(placeholders, ",") + `)
		ORDER BY email ASC
	`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query user table: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Role); err != nil {
			return nil, fmt.Errorf("failed to scan user table results: %w", err)
		}
		users = append(users, u)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user table: %w", err)
	}

	return users, nil
}

// ListCustomerIDs retrieves the IDs of all customer accounts.
// Used by the snapshot job to fan out valuation work.
func (r *UserRepository) ListCustomerIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id FROM user WHERE role = ?", model.RoleCustomer)
	if err != nil {
		return nil, fmt.Errorf("failed to query user table: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user table results: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user table: %w", err)
	}

	return ids, nil
}

func scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, apperrors.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to scan user: %w", err)
	}
	return u, nil
}
