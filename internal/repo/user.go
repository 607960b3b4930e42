package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/rkondo/realrent/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// ==========================
// UserRepo
// ==========================
type UserRepo struct {
	DB *sql.DB
}

// ==========================
// Constructor
// ==========================
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db}
}

// ==========================
// Create User
// ==========================

// Create hashes the password with bcrypt and inserts the user. A username
// collision comes back as ErrDuplicateUsername; the stored hash never leaves
// this package (models.User serializes it as "-").
func (r *UserRepo) Create(ctx context.Context, username, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	query := `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, username, created_at, updated_at
	`

	user := &models.User{}

	err = r.DB.QueryRowContext(ctx, query, username, string(hash)).
		Scan(&user.ID, &user.Username, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if e, ok := err.(*pq.Error); ok && string(e.Code) == pgUniqueViolation {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// ==========================
// Verify Credentials
// ==========================

// Verify looks the user up by username and checks the password against the
// stored bcrypt hash. An unknown username and a wrong password both yield
// ErrInvalidCredentials.
func (r *UserRepo) Verify(ctx context.Context, username, password string) (*models.User, error) {
	query := `
		SELECT id, username, password_hash, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	user := &models.User{}

	err := r.DB.QueryRowContext(ctx, query, username).
		Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("verify user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	user.PasswordHash = ""
	return user, nil
}

// ==========================
// Get By Username
// ==========================

// GetByUsername returns (nil, nil) when the user does not exist; an error
// only means the store itself failed.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, username, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	user := &models.User{}

	err := r.DB.QueryRowContext(ctx, query, username).
		Scan(&user.ID, &user.Username, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return user, nil
}

// ==========================
// List Users
// ==========================

// List returns every user, newest first.
func (r *UserRepo) List(ctx context.Context) ([]models.User, error) {
	query := `
		SELECT id, username, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}
