package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"animegallery/internal/common"
	"animegallery/internal/models"
)

// sessionClaims is what the session slot actually holds: a signed snapshot
// of who is logged in. Unlike the database record it carries no password
// hash. There is no expiry; the slot's own lifetime bounds the session.
type sessionClaims struct {
	jwt.RegisteredClaims
	UserID   string      `json:"uid"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}

func newSessionToken(secret []byte, acc *models.Account) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		UserID:   acc.ID,
		Username: acc.Username,
		Role:     acc.Role,
	})

	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}
	return signed, nil
}

func parseSessionToken(secret []byte, raw string) (*sessionClaims, error) {
	claims := &sessionClaims{}

	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
