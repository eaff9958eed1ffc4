package jwt

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// ErrExpired is returned by Verify for a token past its exp claim
var ErrExpired = errors.New("token has expired")

var parser = gojwt.NewParser(
	gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
	gojwt.WithExpirationRequired(),
)

// Sign issues an HS256 token for subject that expires after ttl
func Sign(secret, subject string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is not configured")
	}
	now := time.Now()
	claims := gojwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  gojwt.NewNumericDate(now),
		ExpiresAt: gojwt.NewNumericDate(now.Add(ttl)),
	}
	return gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Verify checks the signature and expiry of token and returns its subject
func Verify(secret, token string) (string, error) {
	var claims gojwt.RegisteredClaims
	_, err := parser.ParseWithClaims(token, &claims, func(*gojwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, gojwt.ErrTokenExpired) {
			return "", ErrExpired
		}
		return "", fmt.Errorf("invalid token: %w", err)
	}
	return claims.Subject, nil
}
