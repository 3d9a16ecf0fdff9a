// Package repository provides persistence implementations for the credential
// store, the macguffin catalog, and the find-event ledger.
package repository

import (
	"context"
	"database/sql"

	"github.com/atinyakov/MacguffinTracker/internal/models"
)

// PostgresUserRepository implements credential-store operations using a PostgreSQL database.
type PostgresUserRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository with the given database connection.
// db must be a valid *sql.DB connected to a PostgreSQL instance.
func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{DB: db}
}

// GetByEmail fetches the user with the given email.
// Returns sql.ErrNoRows if no such user exists.
func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, email, password_hash, is_admin FROM users WHERE email = $1
	`, email).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.IsAdmin)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// EmailExists checks whether a user with the specified email exists in the database.
// It returns true if the user exists, false otherwise.
// If an error occurs during the query, it is returned.
func (r *PostgresUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		email,
	).Scan(&exists)
	return exists, err
}

// Create inserts a new user record.
// Returns any error encountered while executing the insertion.
func (r *PostgresUserRepository) Create(ctx context.Context, user *models.User) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO users (id, email, password_hash, is_admin) VALUES ($1, $2, $3, $4)
	`, user.ID, user.Email, user.PasswordHash, user.IsAdmin)
	return err
}
