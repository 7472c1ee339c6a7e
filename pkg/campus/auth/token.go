package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-chi/jwtauth"
)

// TokenIssuer signs HS256 session tokens for authenticated users.
type TokenIssuer struct {
	ja  *jwtauth.JWTAuth
	ttl time.Duration
}

// NewTokenIssuer creates an issuer. ttl defaults to 24 hours.
func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenIssuer{ja: jwtauth.New("HS256", []byte(secret), nil), ttl: ttl}, nil
}

// JWTAuth exposes the signer for jwtauth.Verifier.
func (i *TokenIssuer) JWTAuth() *jwtauth.JWTAuth {
	return i.ja
}

// Issue returns a signed token for u.
func (i *TokenIssuer) Issue(u *User) (string, error) {
	claims := map[string]interface{}{
		"sub":      strconv.FormatInt(u.ID, 10),
		"username": u.Username,
		"role":     u.Role,
	}
	jwtauth.SetIssuedNow(claims)
	jwtauth.SetExpiryIn(claims, i.ttl)

	_, token, err := i.ja.Encode(claims)
	if err != nil {
		return "", err
	}
	return token, nil
}
