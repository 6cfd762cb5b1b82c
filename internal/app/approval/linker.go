// internal/app/approval/linker.go
package approval

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// LinkResult reports what the linking step did.
type LinkResult struct {
	// Linked is false when no principal matched the applicant email; the
	// organization is approved regardless.
	Linked bool
	UserID primitive.ObjectID
}

// Linker ensures the applicant's user record is promoted to org_admin and
// linked to the approved organization.
type Linker struct {
	users PrincipalDirectory
	links AdminLinks
	log   *zap.Logger
}

// NewLinker builds a Linker.
func NewLinker(users PrincipalDirectory, links AdminLinks, logger *zap.Logger) *Linker {
	return &Linker{users: users, links: links, log: logger}
}

// Link looks up the principal by applicant email and promotes it. A missing
// principal is a skip, not an error: approving an organization whose
// representative has not registered yet is valid. A failed promotion is
// fatal (the user's role/organization fields are the authoritative state);
// a failed link-table upsert is logged and absorbed (the link table is a
// denormalized index rebuilt by the next retry).
func (l *Linker) Link(ctx context.Context, orgID primitive.ObjectID, applicantEmail string) (LinkResult, error) {
	u, err := l.users.GetByEmail(ctx, applicantEmail)
	if errors.Is(err, mongo.ErrNoDocuments) {
		l.log.Info("approval: no principal for applicant email, skipping link",
			zap.String("applicant_email", applicantEmail),
			zap.String("organization_id", orgID.Hex()))
		return LinkResult{}, nil
	}
	if err != nil {
		return LinkResult{}, newError(KindLinking, err, "look up principal %q", applicantEmail)
	}

	if err := l.users.PromoteToOrgAdmin(ctx, u.ID, orgID); err != nil {
		return LinkResult{}, newError(KindLinking, err, "promote principal %q to org_admin", applicantEmail)
	}

	if err := l.links.Upsert(ctx, orgID, u.ID); err != nil {
		l.log.Warn("approval: admin link upsert failed, principal promotion already committed",
			zap.Error(err),
			zap.String("user_id", u.ID.Hex()),
			zap.String("organization_id", orgID.Hex()))
	}

	return LinkResult{Linked: true, UserID: u.ID}, nil
}
