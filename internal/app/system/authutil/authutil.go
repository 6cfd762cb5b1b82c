// Package authutil holds credential validation and hashing shared by the
// registration and login flows.
package authutil

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	// MinPasswordLength is the minimum accepted password length.
	MinPasswordLength = 8
	// MaxPasswordLength matches bcrypt's 72-byte input limit.
	MaxPasswordLength = 72
)

// commonPasswords are rejected outright regardless of length.
var commonPasswords = map[string]struct{}{
	"password":    {},
	"password1":   {},
	"password123": {},
	"12345678":    {},
	"123456789":   {},
	"qwerty123":   {},
	"letmein1":    {},
	"iloveyou1":   {},
	"admin123":    {},
	"welcome1":    {},
	"sunshine1":   {},
}

// PasswordRules returns the human-readable password requirements.
func PasswordRules() string {
	return "Password must be 8-72 characters and not a commonly used password."
}

// ValidatePassword checks a candidate password against the rules.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return errors.New("password must be at least 8 characters")
	}
	if len(password) > MaxPasswordLength {
		return errors.New("password must be at most 72 characters")
	}
	if _, bad := commonPasswords[strings.ToLower(password)]; bad {
		return errors.New("this password is too common; choose another")
	}
	return nil
}

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IsValidEmail performs a light structural check: one "@", a non-empty
// local part, and a dotted domain. Full RFC validation is deliberately
// out of scope; delivery is the real test.
func IsValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Count(email, "@")
	if at != 1 {
		return false
	}
	parts := strings.SplitN(email, "@", 2)
	local, domain := parts[0], parts[1]
	if local == "" || domain == "" {
		return false
	}
	if !strings.Contains(domain, ".") {
		return false
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	return true
}
