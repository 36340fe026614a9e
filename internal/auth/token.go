package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ResetTokenTTL is how long a password reset link stays usable.
const ResetTokenTTL = time.Hour

// ResetTokens issues and verifies stateless password-reset tokens.
// A token carries the account email as its only claim; nothing is stored
// server-side, so a token stays valid until it expires.
type ResetTokens struct {
	secret []byte
}

func NewResetTokens(secret string) *ResetTokens {
	return &ResetTokens{secret: []byte(secret)}
}

func (rt *ResetTokens) Issue(email string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(rt.secret)
}

func (rt *ResetTokens) Verify(tokenStr string) (string, error) {
	t, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return rt.secret, nil
	})
	if err != nil || !t.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}

	v, ok := claims["email"]
	if !ok {
		return "", errors.New("missing email claim")
	}
	email, ok := v.(string)
	if !ok || email == "" {
		return "", errors.New("invalid email claim")
	}
	return email, nil
}
