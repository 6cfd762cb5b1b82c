// internal/app/approval/resolver.go
package approval

import (
	"context"
	"errors"

	"github.com/aristide12005/ERNAM--sub002/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MatchFunc finds the authoritative application for an organization when
// the caller only has the organization id. The default implementation
// matches on the folded organization name; it is isolated here because the
// name join key is migration debt — once applications always carry an
// explicit organization_id, the strategy can be swapped without touching
// the orchestration.
type MatchFunc func(ctx context.Context, org models.Organization) (models.Application, error)

// Resolver locates the application record an approval or rejection should
// act on, starting from either an application id or an organization id.
type Resolver struct {
	apps ApplicationSource
	orgs OrganizationDirectory
	// match is the reverse-lookup strategy; defaults to name matching.
	match MatchFunc
}

// NewResolver builds a Resolver with the default name-matching strategy.
func NewResolver(apps ApplicationSource, orgs OrganizationDirectory) *Resolver {
	r := &Resolver{apps: apps, orgs: orgs}
	r.match = r.matchByName
	return r
}

// SetMatchFunc replaces the reverse-lookup strategy.
func (r *Resolver) SetMatchFunc(fn MatchFunc) {
	if fn != nil {
		r.match = fn
	}
}

// matchByName finds the most recent application whose folded organization
// name equals the organization's, regardless of status, so rejected
// applications remain reachable for manual re-approval.
func (r *Resolver) matchByName(ctx context.Context, org models.Organization) (models.Application, error) {
	return r.apps.LatestByOrganizationName(ctx, org.NameCI)
}

// Resolve returns the application to act on. At least one of applicationID
// or organizationID (hex strings) must be provided; applicationID wins when
// both are set. Read-only.
func (r *Resolver) Resolve(ctx context.Context, applicationID, organizationID string) (models.Application, error) {
	switch {
	case applicationID != "":
		id, err := primitive.ObjectIDFromHex(applicationID)
		if err != nil {
			return models.Application{}, newError(KindValidation, err, "invalid application id %q", applicationID)
		}
		app, err := r.apps.GetByID(ctx, id)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Application{}, newError(KindNotFound, nil, "application %s not found", applicationID)
		}
		if err != nil {
			return models.Application{}, err
		}
		return app, nil

	case organizationID != "":
		id, err := primitive.ObjectIDFromHex(organizationID)
		if err != nil {
			return models.Application{}, newError(KindValidation, err, "invalid organization id %q", organizationID)
		}
		org, err := r.orgs.GetByID(ctx, id)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Application{}, newError(KindNotFound, nil, "organization %s not found", organizationID)
		}
		if err != nil {
			return models.Application{}, err
		}
		app, err := r.match(ctx, org)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Application{}, newError(KindNoApplicationRecord, nil,
				"organization %q has no application record; create one manually before approving", org.Name)
		}
		if err != nil {
			return models.Application{}, err
		}
		return app, nil

	default:
		return models.Application{}, newError(KindValidation, nil, "application_id or org_id is required")
	}
}

// foldName is a convenience for callers holding only a display name.
func foldName(name string) string { return text.Fold(name) }
