// internal/app/approval/provisioner.go
package approval

import (
	"context"
	"errors"

	"github.com/aristide12005/ERNAM--sub002/internal/app/system/status"
	"github.com/aristide12005/ERNAM--sub002/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Provisioner transitions an organization to approved status. It never
// creates organizations: an application cannot be approved without a
// pre-existing organization shell.
type Provisioner struct {
	orgs OrganizationDirectory
}

// NewProvisioner builds a Provisioner over the organization directory.
func NewProvisioner(orgs OrganizationDirectory) *Provisioner {
	return &Provisioner{orgs: orgs}
}

// Provision resolves the target organization for app and marks it
// approved. The explicit details.organization_id foreign key wins when
// present and resolvable; otherwise the folded organization name is the
// join key. Re-invoking on an already-approved organization is a no-op
// success, so retried approvals converge.
func (p *Provisioner) Provision(ctx context.Context, app models.Application) (models.Organization, error) {
	org, err := p.lookup(ctx, app)
	if err != nil {
		return models.Organization{}, err
	}

	if org.Status == status.Approved {
		return org, nil
	}

	if err := p.orgs.SetStatus(ctx, org.ID, status.Approved); err != nil {
		return models.Organization{}, newError(KindProvisioning, err, "approve organization %q", org.Name)
	}
	org.Status = status.Approved
	return org, nil
}

func (p *Provisioner) lookup(ctx context.Context, app models.Application) (models.Organization, error) {
	// Explicit foreign key first. A dangling id falls through to name
	// matching rather than failing, since the name key is the designed
	// fallback.
	if hex := app.Details[models.DetailOrganizationID]; hex != "" {
		if id, err := primitive.ObjectIDFromHex(hex); err == nil {
			org, err := p.orgs.GetByID(ctx, id)
			if err == nil {
				return org, nil
			}
			if !errors.Is(err, mongo.ErrNoDocuments) {
				return models.Organization{}, err
			}
		}
	}

	nameCI := app.OrganizationNameCI
	if nameCI == "" {
		nameCI = foldName(app.OrganizationName)
	}
	org, err := p.orgs.GetByNameCI(ctx, nameCI)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Organization{}, newError(KindNotFound, nil, "organization %q not found", app.OrganizationName)
	}
	if err != nil {
		return models.Organization{}, err
	}
	return org, nil
}
