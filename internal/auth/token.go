// Package auth signs and verifies bearer tokens and hashes passwords.
package auth

import (
	"fmt"
	"time"

	"neoflix/internal/apperr"
	"neoflix/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// TokenCodec issues HS256 JWTs whose subject is the user id. The profile
// payload is stored under a claim named after the subject.
type TokenCodec struct {
	secret []byte
	issuer string
	expiry time.Duration
	now    func() time.Time
}

func NewTokenCodec(cfg config.AuthConfig) (*TokenCodec, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but was empty")
	}
	issuer := cfg.Issuer
	if issuer == "" {
		issuer = "auth0"
	}
	expiry := cfg.Expiry
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &TokenCodec{
		secret: []byte(cfg.JWTSecret),
		issuer: issuer,
		expiry: expiry,
		now:    time.Now,
	}, nil
}

func (c *TokenCodec) Sign(userID string, payload map[string]any) (string, error) {
	now := c.now()
	claims := jwt.MapClaims{}
	if payload != nil {
		claims[userID] = payload
	}
	// registered claims win over a subject that collides with their names
	claims["iss"] = c.issuer
	claims["sub"] = userID
	claims["iat"] = jwt.NewNumericDate(now)
	claims["exp"] = jwt.NewNumericDate(now.Add(c.expiry))

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm, issuer and expiry and returns the subject.
func (c *TokenCodec) Verify(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(c.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return "", apperr.AuthWrap("Invalid or expired token", err)
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", apperr.Auth("Invalid or expired token")
	}
	return subject, nil
}
