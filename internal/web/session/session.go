// Package session mints and verifies the signed tokens carried by the
// session cookie.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/abismo-rpg/comandos/internal/platform/id"
)

const (
	issuer   = "comandos"
	audience = "comandos-web"
)

// DefaultTTL is how long a minted session stays valid.
const DefaultTTL = 7 * 24 * time.Hour

// ErrInvalidToken reports a token that failed verification.
var ErrInvalidToken = errors.New("session token is invalid")

// ErrExpiredToken reports a token past its expiry.
var ErrExpiredToken = errors.New("session token is expired")

// Config defines how session tokens are signed and verified.
type Config struct {
	Key []byte
	TTL time.Duration
	Now func() time.Time
}

type sessionClaims struct {
	jwt.RegisteredClaims
}

// Mint creates a signed session token for the given user id.
func Mint(userID string, cfg Config) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", fmt.Errorf("user id is required")
	}
	if len(cfg.Key) == 0 {
		return "", fmt.Errorf("session key is not configured")
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	tokenID, err := id.NewID()
	if err != nil {
		return "", fmt.Errorf("assign token id: %w", err)
	}

	now := cfg.Now().UTC()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{audience},
			Subject:   userID,
			ID:        tokenID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(cfg.Key)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Verify validates a session token and returns the user id it carries.
func Verify(token string, cfg Config) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrInvalidToken
	}
	if len(cfg.Key) == 0 {
		return "", fmt.Errorf("session key is not configured")
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	var parsed sessionClaims
	_, err := jwt.ParseWithClaims(token, &parsed, func(token *jwt.Token) (any, error) {
		return cfg.Key, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return "", ErrInvalidToken
	}

	if parsed.Issuer != issuer {
		return "", ErrInvalidToken
	}
	if !audienceContains(parsed.Audience, audience) {
		return "", ErrInvalidToken
	}
	if parsed.ID == "" || parsed.ExpiresAt == nil {
		return "", ErrInvalidToken
	}
	userID := strings.TrimSpace(parsed.Subject)
	if userID == "" {
		return "", ErrInvalidToken
	}

	now := cfg.Now().UTC()
	if !parsed.ExpiresAt.Time.UTC().After(now) {
		return "", ErrExpiredToken
	}
	if parsed.NotBefore != nil && now.Before(parsed.NotBefore.Time.UTC()) {
		return "", ErrInvalidToken
	}
	return userID, nil
}

func audienceContains(aud jwt.ClaimStrings, value string) bool {
	for _, item := range aud {
		if item == value {
			return true
		}
	}
	return false
}
