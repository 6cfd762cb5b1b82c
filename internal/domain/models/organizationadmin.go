// internal/domain/models/organizationadmin.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrganizationAdmin links a user to an organization they administer.
// (organization_id, user_id) carries a unique compound index, so repeated
// link attempts collapse into a single row. The link table is a
// denormalized index; the user's role/organization_id fields stay
// authoritative.
type OrganizationAdmin struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrganizationID primitive.ObjectID `bson:"organization_id" json:"organization_id"`
	UserID         primitive.ObjectID `bson:"user_id" json:"user_id"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}
