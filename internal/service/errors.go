// Package service provides business-logic services for authentication,
// catalog administration, the find-event ledger, and the leaderboard,
// delegating persistence to repository interfaces.
package service

import "errors"

var (
	// ErrInvalidCredentials is returned on login failure. It deliberately does
	// not distinguish an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrMacguffinNotFound is returned when a find references a catalog id
	// that does not exist.
	ErrMacguffinNotFound = errors.New("macguffin not found")
)
