package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IssueServiceToken signs an HS256 token that lets subject (a scheduler or an
// operator) call the mutating routes.
func IssueServiceToken(subject string, secret string, ttl time.Duration, issuer string) (string, error) {
	if secret == "" {
		return "", errors.New("signing secret is empty")
	}
	if subject == "" {
		return "", errors.New("token subject is empty")
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
