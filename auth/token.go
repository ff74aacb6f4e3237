package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the payload carried by the session cookie issued after a
// successful OAuth callback.
type SessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// NewSessionToken signs a session token for the given user id and role.
func NewSessionToken(secret, userID string, role Role, ttl time.Duration) (string, error) {
	claims := SessionClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken validates a session token and returns the user id and role
// it was issued for.
func ParseSessionToken(secret, tokenString string) (userID string, role Role, err error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return "", "", errors.New("invalid session token")
	}

	return claims.Subject, Role(claims.Role), nil
}
