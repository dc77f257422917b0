// Package auth owns token issuing, validation, revocation, and password
// hashing. Tokens are HS256 JWTs carrying the user ID and role; revocation
// is a denylist keyed by the token's jti, held in Redis when available and
// mirrored in memory so logout works without Redis too.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shashiranjanraj/shinyflakes/config"
	"github.com/shashiranjanraj/shinyflakes/pkg/cache"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is the lifetime of an access token.
const TokenTTL = 24 * time.Hour

// Claims holds the typed JWT payload.
type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func secret() []byte {
	return []byte(config.JWTSecret())
}

func newTokenID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// GenerateToken creates a signed JWT for the given user.
func GenerateToken(userID uint, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        newTokenID(),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// ValidateToken parses and validates a JWT string, including the revocation
// denylist check.
func ValidateToken(t string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(t, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		return secret(), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	if IsRevoked(claims.ID) {
		return nil, jwt.ErrTokenExpired
	}

	return claims, nil
}

// ─── Revocation denylist ─────────────────────────────────────────────────────

var (
	revokedMu sync.Mutex
	revoked   = map[string]time.Time{} // jti → token expiry
)

func revokeKey(jti string) string { return "auth:revoked:" + jti }

// RevokeToken denylists the token identified by claims until it would have
// expired anyway. Entries live in Redis (shared across instances) and in a
// local map (fallback when Redis is down).
func RevokeToken(claims *Claims) error {
	exp := time.Now().Add(TokenTTL)
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}

	revokedMu.Lock()
	revoked[claims.ID] = exp
	revokedMu.Unlock()

	ttl := time.Until(exp)
	if ttl <= 0 {
		return nil
	}
	return cache.Set(revokeKey(claims.ID), true, ttl)
}

// IsRevoked reports whether the token id has been denylisted.
func IsRevoked(jti string) bool {
	if jti == "" {
		return false
	}

	revokedMu.Lock()
	exp, ok := revoked[jti]
	if ok && time.Now().After(exp) {
		delete(revoked, jti) // expired entries are garbage
		ok = false
	}
	revokedMu.Unlock()

	if ok {
		return true
	}
	return cache.Has(revokeKey(jti))
}

// ─── Passwords ───────────────────────────────────────────────────────────────

// HashPassword returns a bcrypt hash of the plain-text password.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a bcrypt hash against the plain-text candidate.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// ─── Request context ─────────────────────────────────────────────────────────

type ctxKey struct{}

// WithClaims stores validated claims in ctx (done by the auth middleware).
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, ctxKey{}, claims)
}

// ClaimsFromCtx returns the authenticated user's claims, or nil when the
// request did not pass the auth middleware.
func ClaimsFromCtx(ctx context.Context) *Claims {
	if c, ok := ctx.Value(ctxKey{}).(*Claims); ok {
		return c
	}
	return nil
}
