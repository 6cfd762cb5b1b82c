// internal/app/approval/stores.go
package approval

import (
	"context"

	"github.com/aristide12005/ERNAM--sub002/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The approval workflow consumes the entity store through these narrow
// interfaces rather than a process-wide client, so the orchestration can be
// exercised against in-memory doubles. The concrete implementations live in
// internal/app/store; not-found is signaled with mongo.ErrNoDocuments.

// ApplicationSource reads and transitions application records.
type ApplicationSource interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Application, error)
	LatestByOrganizationName(ctx context.Context, nameCI string) (models.Application, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, newStatus string, reviewedBy *primitive.ObjectID) error
}

// OrganizationDirectory reads and transitions organization records.
type OrganizationDirectory interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Organization, error)
	GetByNameCI(ctx context.Context, nameCI string) (models.Organization, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, newStatus string) error
}

// PrincipalDirectory reads and promotes user records. The approval workflow
// never creates principals; registration does that.
type PrincipalDirectory interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	PromoteToOrgAdmin(ctx context.Context, userID, orgID primitive.ObjectID) error
}

// AdminLinks maintains the denormalized organization-admin join rows.
type AdminLinks interface {
	Upsert(ctx context.Context, orgID, userID primitive.ObjectID) error
}

// AuditSink records privileged actions. Implementations are best-effort:
// the methods do not return errors because an audit write failure must
// never fail the parent operation.
type AuditSink interface {
	OrganizationApproved(ctx context.Context, orgID primitive.ObjectID, actorID *primitive.ObjectID, applicationID primitive.ObjectID, applicantEmail string)
	ApplicationRejected(ctx context.Context, applicationID primitive.ObjectID, actorID *primitive.ObjectID, reason string)
	ApplicationReactivated(ctx context.Context, applicationID primitive.ObjectID, actorID *primitive.ObjectID)
}
