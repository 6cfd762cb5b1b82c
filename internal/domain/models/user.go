// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents participants, instructors, organization admins, and
// platform admins.
//
// NOTE:
//   - Organization admin links are not embedded on User. Use the
//     organization_admins collection to discover which organizations a
//     user administers; OrganizationID on the user is the authoritative
//     home-organization field.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName   string             `bson:"full_name" json:"full_name"`
	FullNameCI string             `bson:"full_name_ci" json:"-"` // lowercase, diacritics-stripped
	Email      string             `bson:"email" json:"email"`
	Phone      string             `bson:"phone,omitempty" json:"phone,omitempty"`

	// PasswordHash is a bcrypt hash set by the registration flow.
	PasswordHash string `bson:"password_hash,omitempty" json:"-"`

	Role           string              `bson:"role" json:"role"`     // participant | instructor | org_admin | ernam_admin
	Status         string              `bson:"status" json:"status"` // pending | approved | rejected | suspended
	OrganizationID *primitive.ObjectID `bson:"organization_id,omitempty" json:"organization_id,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
