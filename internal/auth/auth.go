package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// Package auth implements the single-operator admin session. The session
// token is a salted hash of the configured admin password, so there is no
// session store: rotating the password invalidates every outstanding cookie
// at once, and all admins share one session identity.

// CookieName is the session cookie set on successful login.
const CookieName = "fg-admin-session"

const salt = "fiber-guys-admin-2024"

// ErrNotConfigured is returned when no admin password is set.
var ErrNotConfigured = errors.New("admin password not configured")

// Sessions issues and verifies admin session tokens.
type Sessions struct {
	password string
}

// NewSessions creates a Sessions for the configured admin password.
// An empty password disables admin access entirely.
func NewSessions(password string) *Sessions {
	return &Sessions{password: password}
}

// Configured reports whether an admin password is set.
func (s *Sessions) Configured() bool {
	return s.password != ""
}

// CheckPassword compares a submitted password against the configured one.
func (s *Sessions) CheckPassword(candidate string) bool {
	return s.Configured() && candidate == s.password
}

// Token returns the session token for the current password.
func (s *Sessions) Token() (string, error) {
	if !s.Configured() {
		return "", ErrNotConfigured
	}
	return hashString(s.password + salt), nil
}

// Verify reports whether token matches the hash of the currently
// configured password. A token issued before a password rotation fails.
func (s *Sessions) Verify(token string) bool {
	if !s.Configured() || token == "" {
		return false
	}
	expected, err := s.Token()
	return err == nil && token == expected
}

func hashString(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}
