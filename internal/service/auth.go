package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/atinyakov/MacguffinTracker/internal/models"
	"github.com/atinyakov/MacguffinTracker/internal/token"
)

// bcryptCost matches the work factor the rest of the deployment was hashed with.
const bcryptCost = 10

// dummyHash is compared against when login hits an unknown email, so the
// call performs a bcrypt verification either way.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcryptCost)

// UserRepository defines the persistence operations
// required by the authentication service.
type UserRepository interface {
	// GetByEmail fetches a user by email. Returns sql.ErrNoRows if absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// EmailExists returns true if a user with the given email exists.
	EmailExists(ctx context.Context, email string) (bool, error)
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
}

// AuthService implements login and registration, issuing signed session
// tokens on success.
type AuthService struct {
	// repo performs the data-layer operations.
	repo UserRepository
	// secret signs issued tokens.
	secret []byte
	// tokenTTL is the lifetime of issued tokens.
	tokenTTL time.Duration
}

// NewAuthService constructs a new AuthService using the provided repository,
// token signing secret, and token lifetime.
func NewAuthService(repo UserRepository, secret []byte, tokenTTL time.Duration) *AuthService {
	return &AuthService{repo: repo, secret: secret, tokenTTL: tokenTTL}
}

// Login verifies the email/password pair and returns a session token plus
// the user on success. Unknown email and wrong password both fail with
// ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Burn a comparison so the miss is not cheaper than a mismatch.
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	tok, err := token.Create(user, s.secret, s.tokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("create token: %w", err)
	}
	return tok, user, nil
}

// Register creates a non-admin user with a freshly hashed password and
// returns a session token plus the created user.
// Fails with ErrEmailTaken if the email is already registered.
func (s *AuthService) Register(ctx context.Context, email, password string) (string, *models.User, error) {
	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return "", nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      false,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	tok, err := token.Create(user, s.secret, s.tokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("create token: %w", err)
	}
	return tok, user, nil
}
