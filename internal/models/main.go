// Package models defines the core data structures for users, the macguffin
// catalog, and the find-event ledger.
package models

import "time"

// User represents a registered account.
type User struct {
	// ID is the unique identifier for the user.
	ID string `json:"id"`
	// Email is the unique login email, stored case-sensitively.
	Email string `json:"email"`
	// PasswordHash is the bcrypt hash of the user's password. Never serialized.
	PasswordHash string `json:"-"`
	// IsAdmin marks users allowed to mutate the catalog.
	IsAdmin bool `json:"is_admin"`
}

// Macguffin is a catalog entry describing a collectible item type.
type Macguffin struct {
	// ID is assigned by the store, monotonically increasing.
	ID int64 `json:"id"`
	// Name is the display name. Not required to be unique.
	Name string `json:"name"`
}

// FindEvent is an immutable ledger row recording that a user found a
// macguffin at a point in time. UserEmail and MacguffinName are snapshots
// taken at record time: later email changes or catalog edits/deletes must
// not rewrite history.
type FindEvent struct {
	ID            int64     `json:"id"`
	UserID        string    `json:"-"`
	UserEmail     string    `json:"-"`
	MacguffinID   int64     `json:"macguffin_id"`
	MacguffinName string    `json:"macguffin_name"`
	Timestamp     time.Time `json:"timestamp"`
}

// LeaderboardEntry is one row of the derived leaderboard view.
type LeaderboardEntry struct {
	UserID    string `json:"user_id"`
	UserEmail string `json:"user_email"`
	Count     int64  `json:"count"`
}
