// internal/app/system/status/status.go
package status

import "strings"

// Review/approval statuses shared by applications, organizations, and users.
const (
	Pending  = "pending"
	Approved = "approved"
	Rejected = "rejected"

	// Suspended applies to users only.
	Suspended = "suspended"
)

// IsValid reports whether s is a recognized status value.
func IsValid(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case Pending, Approved, Rejected, Suspended:
		return true
	}
	return false
}

// IsTerminal reports whether s is a terminal application status.
// Approved is terminal; rejected can be reactivated to pending through the
// explicit manual override, so it is not terminal here.
func IsTerminal(s string) bool {
	return strings.ToLower(strings.TrimSpace(s)) == Approved
}
