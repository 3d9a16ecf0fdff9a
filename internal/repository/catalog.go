// Package repository provides persistence implementations for the macguffin
// catalog using a PostgreSQL database.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atinyakov/MacguffinTracker/internal/models"
)

// PostgresCatalogRepository implements catalog operations against a PostgreSQL database.
type PostgresCatalogRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresCatalogRepository creates a new PostgresCatalogRepository using the provided *sql.DB.
// db must be a valid connection to a PostgreSQL instance.
func NewPostgresCatalogRepository(db *sql.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{DB: db}
}

// List fetches all catalog entries ordered by name.
//
//	ctx: context for cancellation and deadlines
//
// Returns a slice of models.Macguffin or an error if the query or scanning fails.
func (r *PostgresCatalogRepository) List(ctx context.Context) ([]models.Macguffin, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name FROM macguffins ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer rows.Close()

	var macguffins []models.Macguffin
	for rows.Next() {
		var m models.Macguffin
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		macguffins = append(macguffins, m)
	}
	return macguffins, rows.Err()
}

// GetByID retrieves a single catalog entry by id.
// Returns sql.ErrNoRows if the entry does not exist.
func (r *PostgresCatalogRepository) GetByID(ctx context.Context, id int64) (*models.Macguffin, error) {
	var m models.Macguffin
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name FROM macguffins WHERE id = $1
	`, id).Scan(&m.ID, &m.Name)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts a new catalog entry and returns it with its assigned id.
func (r *PostgresCatalogRepository) Create(ctx context.Context, name string) (*models.Macguffin, error) {
	var id int64
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO macguffins (name) VALUES ($1) RETURNING id
	`, name).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}
	return &models.Macguffin{ID: id, Name: name}, nil
}

// Rename updates the name of the catalog entry with the given id.
// Renaming a nonexistent id affects zero rows and is not an error.
func (r *PostgresCatalogRepository) Rename(ctx context.Context, id int64, name string) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE macguffins SET name = $1 WHERE id = $2
	`, name, id)
	return err
}

// Delete removes the catalog entry with the given id. Ledger rows referencing
// the id are untouched. Deleting a nonexistent id is not an error.
func (r *PostgresCatalogRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, `
		DELETE FROM macguffins WHERE id = $1
	`, id)
	return err
}
