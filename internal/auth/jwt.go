// Package auth issues and verifies the signed session tokens that carry
// the authenticated user's identity between requests.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/atinyakov/taskwarden/internal/apperrors"
)

// Claims is the claim set embedded in every session token.
type Claims struct {
	jwt.RegisteredClaims
	// UserID is the unique identifier of the authenticated user.
	UserID string `json:"id"`
	// Username is the login name of the authenticated user.
	Username string `json:"username"`
}

// GenerateToken signs a session token for the given user with HS256.
// The token expires after validity.
func GenerateToken(userID, username string, secret []byte, validity time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID:   userID,
		Username: username,
	})

	return token.SignedString(secret)
}

// ParseToken verifies the signature and expiry of tokenString and returns
// its claims. Any failure yields apperrors.ErrInvalidToken: callers never
// need to distinguish a bad signature from an expired or malformed token.
func ParseToken(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}
