// internal/app/system/normalize/normalize.go
//
// Package normalize provides canonical forms for user-supplied identity
// fields. Normalization happens once, at the store boundary, so lookups and
// uniqueness checks never depend on how a form was filled in.
package normalize

import "strings"

// Email lowercases and trims an email address. Emails are matched
// case-insensitively everywhere (lookup by applicant_email, uniqueness).
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Phone strips spaces, dashes, dots, and parentheses, keeping digits and a
// leading plus sign.
func Phone(s string) string {
	s = strings.TrimSpace(s)
	var b strings.Builder
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Role lowercases and trims a role name.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
