// internal/app/features/applications/types.go
package applications

import "github.com/aristide12005/ERNAM--sub002/internal/domain/models"

// submitRequest is the public application-submission payload.
type submitRequest struct {
	OrganizationName string `json:"organization_name"`
	ApplicantName    string `json:"applicant_name"`
	ApplicantEmail   string `json:"applicant_email"`
	ApplicantPhone   string `json:"applicant_phone,omitempty"`
	OrgType          string `json:"org_type,omitempty"`
	Message          string `json:"message,omitempty"`

	// OrganizationID is the optional explicit link to an organization shell
	// created ahead of the application.
	OrganizationID string `json:"organization_id,omitempty"`
}

// submitResponse acknowledges a submission with the applicant-facing reference.
type submitResponse struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

// approveRequest identifies the application to approve, by application id or
// by organization id. The reviewer is always taken from the session.
type approveRequest struct {
	ApplicationID  string `json:"application_id,omitempty"`
	OrganizationID string `json:"organization_id,omitempty"`
}

// rejectRequest carries the optional rejection reason.
type rejectRequest struct {
	Reason string `json:"reason,omitempty"`
}

// listResponse is the admin review-queue page.
type listResponse struct {
	Applications []models.Application `json:"applications"`
	Total        int64                `json:"total"`
}
