// internal/domain/models/organization.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Organization is a legal partner entity. The case/diacritic-insensitive
// NameCI field is the fallback join key against applications when no
// explicit organization_id is stored on the application; name_ci carries a
// unique index so the fallback stays unambiguous.
type Organization struct {
	ID      primitive.ObjectID `bson:"_id" json:"id"`
	Name    string             `bson:"name" json:"name"`
	NameCI  string             `bson:"name_ci" json:"-"`
	OrgType string             `bson:"org_type,omitempty" json:"org_type,omitempty"`
	Status  string             `bson:"status" json:"status"` // pending | approved | rejected

	ContactEmail string `bson:"contact_email,omitempty" json:"contact_email,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
