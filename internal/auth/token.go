// Package auth implements the cookie-carried token gate: a signed,
// time-bound identity assertion issued at login and validated on every
// request before any business logic runs.
package auth

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pixgram/backend/internal/apperrors"
)

// CookieName is the cookie carrying the signed token.
const CookieName = "jwt_token"

// Claims are the custom claims embedded in the token. The subject is the
// authenticated username; no database lookup backs it at validation time.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates HS256 tokens with a single
// process-wide signing key and a fixed TTL. The key is read-only after
// startup and shared by all requests without locking.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a TokenManager for the given key and TTL.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// TTL returns the token lifetime.
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// Issue generates a signed token asserting the given username.
func (m *TokenManager) Issue(username string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Validate verifies the token's signature and expiry and returns the
// embedded username. Any failure collapses into ErrInvalidToken: the gate
// fails closed and does not distinguish corruption from expiry.
func (m *TokenManager) Validate(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", apperrors.ErrInvalidToken
	}
	return claims.Username, nil
}

// NewCookie wraps a token in the transport cookie. SameSite=None with
// Secure lets the companion front-end origin send it cross-site.
func (m *TokenManager) NewCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}
