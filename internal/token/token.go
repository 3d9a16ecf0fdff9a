// Package token issues and verifies signed session tokens asserting a
// verified identity and admin flag.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/atinyakov/MacguffinTracker/internal/models"
)

// ErrInvalidToken is returned when a token is missing, malformed, expired,
// or signed with a different secret.
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the identity asserted by a session token.
type Claims struct {
	UserID  string `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// Create signs a token for the given user, valid for ttl.
func Create(user *models.User, secret []byte, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// Parse verifies the signature and expiry of tokenString and returns its
// claims. Any verification failure is reported as ErrInvalidToken.
func Parse(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !t.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
