// Package auth provides the admin login collaborator used by the HTTP layer:
// credential checking, a per-client failed-login limiter and JWT issuance.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned for any failed login
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrPasswordTooLong = errors.New("password exceeds maximum length of 72 bytes")
)

// User is the authenticated principal.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Authenticator verifies a username and password.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*User, error)
}

// StaticAuthenticator accepts a single configured admin account whose
// password is stored as a bcrypt hash.
type StaticAuthenticator struct {
	username     string
	passwordHash []byte
}

// NewStaticAuthenticator creates an authenticator for one admin account. An
// empty hash rejects every login.
func NewStaticAuthenticator(username, passwordHash string) *StaticAuthenticator {
	return &StaticAuthenticator{username: username, passwordHash: []byte(passwordHash)}
}

func (a *StaticAuthenticator) Authenticate(ctx context.Context, username, password string) (*User, error) {
	if len(a.passwordHash) == 0 || a.username == "" {
		return nil, ErrInvalidCredentials
	}
	nameOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil || !nameOK {
		return nil, ErrInvalidCredentials
	}
	return &User{ID: 1, Username: a.username, Role: "admin"}, nil
}

// HashPassword creates a bcrypt hash of the password.
func HashPassword(password string) (string, error) {
	// bcrypt has a 72-byte limit
	if len(password) > 72 {
		return "", ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
