// internal/app/system/authz/authz.go
package authz

import (
	"net/http"
	"strings"

	"github.com/aristide12005/ERNAM--sub002/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserCtx returns the user's role (lowercased), name, Mongo ObjectID, and a found flag.
// If no user is present in context or the user ID is malformed, it returns
// "visitor", "", NilObjectID, false. This ensures callers can trust that
// ok=true means a valid, authenticated user with a valid ObjectID.
func UserCtx(r *http.Request) (role string, name string, userID primitive.ObjectID, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return "visitor", "", primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		// Malformed user ID in session - fail closed.
		return "visitor", "", primitive.NilObjectID, false
	}
	return strings.ToLower(user.Role), user.Name, userID, true
}

// HasAnyRole reports whether the current request's user has any of the given
// roles. Returns false when no user is signed in.
func HasAnyRole(r *http.Request, roles ...string) bool {
	role, _, _, ok := UserCtx(r)
	if !ok {
		return false
	}
	for _, want := range roles {
		if role == strings.ToLower(strings.TrimSpace(want)) {
			return true
		}
	}
	return false
}

// IsErnamAdmin reports whether the current request's user is an ERNAM admin.
func IsErnamAdmin(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == "ernam_admin"
}

// IsOrgAdmin reports whether the current request's user is an organization admin.
func IsOrgAdmin(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == "org_admin"
}

// UserOrgID returns the current user's organization ID as an ObjectID.
// Returns NilObjectID if user is not logged in or has no organization.
func UserOrgID(r *http.Request) primitive.ObjectID {
	user, ok := auth.CurrentUser(r)
	if !ok || user.OrganizationID == "" {
		return primitive.NilObjectID
	}
	oid, err := primitive.ObjectIDFromHex(user.OrganizationID)
	if err != nil {
		return primitive.NilObjectID
	}
	return oid
}

// CanAccessOrg reports whether the current user can access the given organization.
// ERNAM admins can access all organizations; everyone else is limited to their own.
func CanAccessOrg(r *http.Request, orgID primitive.ObjectID) bool {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return false
	}

	if strings.ToLower(user.Role) == "ernam_admin" {
		return true
	}

	if user.OrganizationID == "" {
		return false
	}
	userOrgID, err := primitive.ObjectIDFromHex(user.OrganizationID)
	if err != nil {
		return false
	}
	return userOrgID == orgID
}
