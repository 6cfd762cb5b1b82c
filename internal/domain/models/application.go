// internal/domain/models/application.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ApplicationTypeOrganization is the only application type this service
// processes; other types may appear later (e.g. instructor applications).
const ApplicationTypeOrganization = "organization"

// Application is a submitted request to become a partner organization.
//
// Status transitions are monotonic: pending → approved|rejected. An approved
// application is terminal; rejected → pending is allowed only through the
// explicit reactivation path. Applications are never deleted.
type Application struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type string             `bson:"type" json:"type"` // "organization"

	OrganizationName   string `bson:"organization_name" json:"organization_name"`
	OrganizationNameCI string `bson:"organization_name_ci" json:"-"` // lowercase, diacritics-stripped

	ApplicantName  string `bson:"applicant_name" json:"applicant_name"`
	ApplicantEmail string `bson:"applicant_email" json:"applicant_email"`
	ApplicantPhone string `bson:"applicant_phone,omitempty" json:"applicant_phone,omitempty"`

	Status string `bson:"status" json:"status"` // pending | approved | rejected

	// Details carries free-form context from the submission form (message,
	// org_type) plus the optional organization_id foreign key. When
	// organization_id is present it takes precedence over name matching
	// during approval.
	Details map[string]string `bson:"details,omitempty" json:"details,omitempty"`

	// Reference is the opaque identifier shown to the applicant
	// ("ERNAM-<uuid>"); it is not used as a join key.
	Reference string `bson:"reference" json:"reference"`

	// ReviewedBy is the admin who approved or rejected the application.
	ReviewedBy *primitive.ObjectID `bson:"reviewed_by,omitempty" json:"reviewed_by,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// DetailOrganizationID is the Details key holding the explicit
// application → organization foreign key, when one was recorded at
// application-creation time.
const DetailOrganizationID = "organization_id"
