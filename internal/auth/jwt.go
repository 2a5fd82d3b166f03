package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenManager issues and validates web-service tokens.
// A token is an HS256 JWT whose subject names the calling site.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenManager creates a new token manager.
// secret must be at least 32 characters for HS256 security.
// A zero ttl issues tokens without expiry.
func NewTokenManager(secret string, issuer string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// wsClaims extends standard JWT claims with the allowed functions.
type wsClaims struct {
	jwt.RegisteredClaims
	Functions []string `json:"fns,omitempty"`
}

// Client is the identity carried by a validated token.
type Client struct {
	Site      string
	Functions []string
}

// Allows reports whether the client may call function fn.
// A token without a function list may call everything.
func (c Client) Allows(fn string) bool {
	if len(c.Functions) == 0 {
		return true
	}
	for _, f := range c.Functions {
		if f == fn {
			return true
		}
	}
	return false
}

// Issue creates a signed token for site, optionally limited to functions.
func (m *TokenManager) Issue(site string, functions ...string) (string, error) {
	if site == "" {
		return "", fmt.Errorf("site is empty")
	}

	now := time.Now()
	claims := wsClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  site,
			Issuer:   m.issuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
		Functions: functions,
	}
	if m.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(m.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Validate parses and validates a web-service token.
func (m *TokenManager) Validate(tokenString string) (Client, error) {
	if tokenString == "" {
		return Client{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &wsClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return Client{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*wsClaims)
	if !ok || !token.Valid {
		return Client{}, fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != m.issuer {
		return Client{}, fmt.Errorf("invalid issuer: expected %s, got %s", m.issuer, claims.Issuer)
	}

	if claims.Subject == "" {
		return Client{}, fmt.Errorf("token has no subject")
	}

	return Client{Site: claims.Subject, Functions: claims.Functions}, nil
}
