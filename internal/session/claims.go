package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/at-ishikawa/aiboost/internal/user"
)

type Claims struct {
	UserID string    `json:"userId,omitempty"`
	Role   user.Role `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// ParseClaims decodes the token payload without verifying its signature.
// Only the backend holds the signing key.
func ParseClaims(token string) (*Claims, error) {
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("jwt.ParseUnverified() > %w", err)
	}
	return &claims, nil
}
