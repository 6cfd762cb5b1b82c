package authutil

import (
	"strings"
	"testing"
)

func TestIsValidEmail_Valid(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@example.co.uk",
		"u+tag@sub.example.org",
	}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}
}

func TestIsValidEmail_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"no-at-sign",
		"two@@example.com",
		"@example.com",
		"user@",
		"user@nodot",
		"user@.example.com",
		"user@example.com.",
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}

func TestValidatePassword_Valid(t *testing.T) {
	if err := ValidatePassword("correct-horse-battery"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidatePassword_TooShort(t *testing.T) {
	if err := ValidatePassword("short"); err == nil {
		t.Error("expected error for short password")
	}
}

func TestValidatePassword_TooLong(t *testing.T) {
	if err := ValidatePassword(strings.Repeat("x", 73)); err == nil {
		t.Error("expected error for over-long password")
	}
}

func TestValidatePassword_AtMaxLength(t *testing.T) {
	if err := ValidatePassword(strings.Repeat("x", 72)); err != nil {
		t.Errorf("unexpected error at max length: %v", err)
	}
}

func TestValidatePassword_Common(t *testing.T) {
	for _, pw := range []string{"password1", "Password1", "12345678"} {
		if err := ValidatePassword(pw); err == nil {
			t.Errorf("expected %q to be rejected as common", pw)
		}
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "correct-horse" {
		t.Fatal("hash equals plain text")
	}
	if !CheckPassword("correct-horse", hash) {
		t.Error("expected matching password to check out")
	}
	if CheckPassword("wrong", hash) {
		t.Error("expected mismatched password to fail")
	}
}

func TestHashPassword_DifferentHashesForSamePassword(t *testing.T) {
	h1, err := HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if h1 == h2 {
		t.Error("expected salted hashes to differ")
	}
}
