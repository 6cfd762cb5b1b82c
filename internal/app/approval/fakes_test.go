package approval_test

import (
	"context"
	"sort"

	"github.com/aristide12005/ERNAM--sub002/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory doubles for the approval store interfaces. Not-found is
// signaled with mongo.ErrNoDocuments, matching the real stores.

type fakeApps struct {
	apps         []models.Application // insertion order preserved
	setStatus    int
	setStatusErr error
}

func (f *fakeApps) add(app models.Application) {
	f.apps = append(f.apps, app)
}

func (f *fakeApps) GetByID(ctx context.Context, id primitive.ObjectID) (models.Application, error) {
	for _, a := range f.apps {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Application{}, mongo.ErrNoDocuments
}

func (f *fakeApps) LatestByOrganizationName(ctx context.Context, nameCI string) (models.Application, error) {
	type cand struct {
		app models.Application
		seq int
	}
	var matches []cand
	for i, a := range f.apps {
		if a.OrganizationNameCI == nameCI {
			matches = append(matches, cand{a, i})
		}
	}
	if len(matches) == 0 {
		return models.Application{}, mongo.ErrNoDocuments
	}
	sort.Slice(matches, func(i, j int) bool {
		if !matches[i].app.CreatedAt.Equal(matches[j].app.CreatedAt) {
			return matches[i].app.CreatedAt.After(matches[j].app.CreatedAt)
		}
		return matches[i].seq > matches[j].seq
	})
	return matches[0].app, nil
}

func (f *fakeApps) SetStatus(ctx context.Context, id primitive.ObjectID, newStatus string, reviewedBy *primitive.ObjectID) error {
	if f.setStatusErr != nil {
		return f.setStatusErr
	}
	for i := range f.apps {
		if f.apps[i].ID == id {
			f.apps[i].Status = newStatus
			f.apps[i].ReviewedBy = reviewedBy
			f.setStatus++
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeApps) get(id primitive.ObjectID) models.Application {
	a, _ := f.GetByID(context.Background(), id)
	return a
}

type fakeOrgs struct {
	orgs         map[primitive.ObjectID]*models.Organization
	setStatus    int
	setStatusErr error
}

func newFakeOrgs() *fakeOrgs {
	return &fakeOrgs{orgs: make(map[primitive.ObjectID]*models.Organization)}
}

func (f *fakeOrgs) add(org models.Organization) {
	o := org
	f.orgs[org.ID] = &o
}

func (f *fakeOrgs) GetByID(ctx context.Context, id primitive.ObjectID) (models.Organization, error) {
	if o, ok := f.orgs[id]; ok {
		return *o, nil
	}
	return models.Organization{}, mongo.ErrNoDocuments
}

func (f *fakeOrgs) GetByNameCI(ctx context.Context, nameCI string) (models.Organization, error) {
	for _, o := range f.orgs {
		if o.NameCI == nameCI {
			return *o, nil
		}
	}
	return models.Organization{}, mongo.ErrNoDocuments
}

func (f *fakeOrgs) SetStatus(ctx context.Context, id primitive.ObjectID, newStatus string) error {
	if f.setStatusErr != nil {
		return f.setStatusErr
	}
	o, ok := f.orgs[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	o.Status = newStatus
	f.setStatus++
	return nil
}

type fakeUsers struct {
	users      map[primitive.ObjectID]*models.User
	promoteErr error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: make(map[primitive.ObjectID]*models.User)}
}

func (f *fakeUsers) add(u models.User) {
	cp := u
	f.users[u.ID] = &cp
}

func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUsers) PromoteToOrgAdmin(ctx context.Context, userID, orgID primitive.ObjectID) error {
	if f.promoteErr != nil {
		return f.promoteErr
	}
	u, ok := f.users[userID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	u.Role = "org_admin"
	u.Status = "approved"
	u.OrganizationID = &orgID
	return nil
}

type linkKey struct {
	org, user primitive.ObjectID
}

type fakeLinks struct {
	rows      map[linkKey]struct{}
	upserts   int
	upsertErr error
}

func newFakeLinks() *fakeLinks {
	return &fakeLinks{rows: make(map[linkKey]struct{})}
}

func (f *fakeLinks) Upsert(ctx context.Context, orgID, userID primitive.ObjectID) error {
	f.upserts++
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.rows[linkKey{orgID, userID}] = struct{}{}
	return nil
}

type auditRecord struct {
	action string
	target string
	actor  *primitive.ObjectID
}

type fakeAudit struct {
	records []auditRecord
}

func (f *fakeAudit) OrganizationApproved(ctx context.Context, orgID primitive.ObjectID, actorID *primitive.ObjectID, applicationID primitive.ObjectID, applicantEmail string) {
	f.records = append(f.records, auditRecord{"organization_approved", orgID.Hex(), actorID})
}

func (f *fakeAudit) ApplicationRejected(ctx context.Context, applicationID primitive.ObjectID, actorID *primitive.ObjectID, reason string) {
	f.records = append(f.records, auditRecord{"application_rejected", applicationID.Hex(), actorID})
}

func (f *fakeAudit) ApplicationReactivated(ctx context.Context, applicationID primitive.ObjectID, actorID *primitive.ObjectID) {
	f.records = append(f.records, auditRecord{"application_reactivated", applicationID.Hex(), actorID})
}

func (f *fakeAudit) countAction(action string) int {
	n := 0
	for _, r := range f.records {
		if r.action == action {
			n++
		}
	}
	return n
}
