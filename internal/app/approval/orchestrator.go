// internal/app/approval/orchestrator.go
//
// Package approval implements the organization-application approval
// workflow: resolving the application, approving the organization,
// promoting and linking the applicant's principal, marking the application
// approved, and recording the audit trail.
//
// The store exposes only per-document atomicity, so the sequence is a saga,
// not a transaction: every step is idempotent and the most authoritative
// state (organization approved) is committed before the recoverable
// follow-ups (principal link, application status, audit). A failed run
// returns control to the administrator; re-invoking approve converges
// without duplicating side effects. There is no automatic retry.
package approval

import (
	"context"
	"fmt"

	"github.com/aristide12005/ERNAM--sub002/internal/app/system/status"
	"github.com/aristide12005/ERNAM--sub002/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Orchestrator coordinates the approval saga.
type Orchestrator struct {
	resolver    *Resolver
	provisioner *Provisioner
	linker      *Linker
	apps        ApplicationSource
	audit       AuditSink
	log         *zap.Logger
}

// NewOrchestrator wires the workflow over the given stores. All
// dependencies are injected; the orchestrator holds no process-wide state.
func NewOrchestrator(apps ApplicationSource, orgs OrganizationDirectory, users PrincipalDirectory, links AdminLinks, audit AuditSink, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		resolver:    NewResolver(apps, orgs),
		provisioner: NewProvisioner(orgs),
		linker:      NewLinker(users, links, logger),
		apps:        apps,
		audit:       audit,
		log:         logger,
	}
}

// Resolver exposes the resolver, so callers can swap the reverse-lookup
// strategy once applications carry explicit organization ids.
func (o *Orchestrator) Resolver() *Resolver { return o.resolver }

// ApproveRequest identifies the application to approve. At least one of
// ApplicationID or OrganizationID must be set. ReviewerID is the
// authenticated admin performing the approval, taken from the session —
// never from a client-asserted field.
type ApproveRequest struct {
	ApplicationID  string
	OrganizationID string
	ReviewerID     *primitive.ObjectID
}

// Summary is the success payload of an approval.
type Summary struct {
	Message         string `json:"message"`
	OrganizationID  string `json:"organizationId"`
	PrincipalLinked bool   `json:"principalLinked"`
	AlreadyApproved bool   `json:"alreadyApproved,omitempty"`
}

// Approve runs the approval saga:
//
//  1. resolve the application (direct or reverse lookup)
//  2. short-circuit if it is already approved
//  3. approve the organization (fatal on failure, nothing else written)
//  4. promote + link the principal (skip is fine; update failure aborts
//     with the organization already approved — a documented partial state
//     that a manual retry completes)
//  5. mark the application approved, recording the reviewer
//  6. append the audit entry (best-effort)
func (o *Orchestrator) Approve(ctx context.Context, req ApproveRequest) (Summary, error) {
	app, err := o.resolver.Resolve(ctx, req.ApplicationID, req.OrganizationID)
	if err != nil {
		return Summary{}, err
	}

	if app.Status == status.Approved {
		o.log.Info("approval: application already approved, skipping",
			zap.String("application_id", app.ID.Hex()))
		return Summary{
			Message:         "application already approved",
			OrganizationID:  app.Details[models.DetailOrganizationID],
			AlreadyApproved: true,
		}, nil
	}

	org, err := o.provisioner.Provision(ctx, app)
	if err != nil {
		return Summary{}, err
	}

	linkRes, err := o.linker.Link(ctx, org.ID, app.ApplicantEmail)
	if err != nil {
		// Point of no return was crossed at step 3: the organization stays
		// approved and a retried approve completes the link.
		return Summary{}, err
	}

	if err := o.apps.SetStatus(ctx, app.ID, status.Approved, req.ReviewerID); err != nil {
		return Summary{}, fmt.Errorf("mark application %s approved: %w", app.ID.Hex(), err)
	}

	o.audit.OrganizationApproved(ctx, org.ID, req.ReviewerID, app.ID, app.ApplicantEmail)

	o.log.Info("approval: application approved",
		zap.String("application_id", app.ID.Hex()),
		zap.String("organization_id", org.ID.Hex()),
		zap.Bool("principal_linked", linkRes.Linked))

	return Summary{
		Message:         "application approved",
		OrganizationID:  org.ID.Hex(),
		PrincipalLinked: linkRes.Linked,
	}, nil
}

// Reject transitions a pending application to rejected. Approved
// applications are terminal and cannot be rejected; rejecting an
// already-rejected application is a no-op success.
func (o *Orchestrator) Reject(ctx context.Context, applicationID string, reviewerID *primitive.ObjectID, reason string) error {
	app, err := o.resolver.Resolve(ctx, applicationID, "")
	if err != nil {
		return err
	}
	switch app.Status {
	case status.Approved:
		return newError(KindValidation, nil, "application %s is approved and cannot be rejected", app.ID.Hex())
	case status.Rejected:
		return nil
	}
	if err := o.apps.SetStatus(ctx, app.ID, status.Rejected, reviewerID); err != nil {
		return fmt.Errorf("mark application %s rejected: %w", app.ID.Hex(), err)
	}
	o.audit.ApplicationRejected(ctx, app.ID, reviewerID, reason)
	return nil
}

// Reactivate is the manual override moving a rejected application back to
// pending so it can be re-reviewed. Only rejected applications qualify.
func (o *Orchestrator) Reactivate(ctx context.Context, applicationID string, reviewerID *primitive.ObjectID) error {
	app, err := o.resolver.Resolve(ctx, applicationID, "")
	if err != nil {
		return err
	}
	if app.Status != status.Rejected {
		return newError(KindValidation, nil, "application %s is %s; only rejected applications can be reactivated", app.ID.Hex(), app.Status)
	}
	if err := o.apps.SetStatus(ctx, app.ID, status.Pending, reviewerID); err != nil {
		return fmt.Errorf("reactivate application %s: %w", app.ID.Hex(), err)
	}
	o.audit.ApplicationReactivated(ctx, app.ID, reviewerID)
	return nil
}
