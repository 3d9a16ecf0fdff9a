// Package repository provides persistence implementations for the find-event
// ledger using a PostgreSQL database.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atinyakov/MacguffinTracker/internal/models"
)

// PostgresLedgerRepository implements ledger operations against a PostgreSQL database.
// The ledger is append-only: no update or delete methods exist.
type PostgresLedgerRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresLedgerRepository creates a new PostgresLedgerRepository using the provided *sql.DB.
// db must be a valid connection to a PostgreSQL instance.
func NewPostgresLedgerRepository(db *sql.DB) *PostgresLedgerRepository {
	return &PostgresLedgerRepository{DB: db}
}

// Append inserts a find event and returns it with its assigned id.
// The event's snapshot fields must already be populated by the caller.
func (r *PostgresLedgerRepository) Append(ctx context.Context, event *models.FindEvent) (*models.FindEvent, error) {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO user_inventory (user_id, user_email, macguffin_id, macguffin_name, timestamp)
		VALUES ($1, $2, $3, $4, $5) RETURNING id
	`, event.UserID, event.UserEmail, event.MacguffinID, event.MacguffinName, event.Timestamp).Scan(&event.ID)
	if err != nil {
		return nil, fmt.Errorf("Append: %w", err)
	}
	return event, nil
}

// ListByUser fetches all find events owned by the given user,
// most recent first.
//
//	ctx:    context for cancellation and deadlines
//	userID: identifier of the user
//
// Returns a slice of models.FindEvent or an error if the query or scanning fails.
func (r *PostgresLedgerRepository) ListByUser(ctx context.Context, userID string) ([]models.FindEvent, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, macguffin_id, macguffin_name, timestamp FROM user_inventory
		WHERE user_id = $1 ORDER BY timestamp DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("ListByUser: %w", err)
	}
	defer rows.Close()

	var events []models.FindEvent
	for rows.Next() {
		ev := models.FindEvent{UserID: userID}
		if err := rows.Scan(&ev.ID, &ev.MacguffinID, &ev.MacguffinName, &ev.Timestamp); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// Leaderboard groups all find events by user and returns per-user counts,
// highest count first. Ordering among equal counts is unspecified.
func (r *PostgresLedgerRepository) Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT user_id, user_email, COUNT(*) AS count FROM user_inventory
		GROUP BY user_id, user_email ORDER BY count DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("Leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []models.LeaderboardEntry
	for rows.Next() {
		var e models.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.UserEmail, &e.Count); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
