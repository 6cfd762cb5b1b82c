package approval_test

import (
	"context"
	"testing"
	"time"

	"github.com/aristide12005/ERNAM--sub002/internal/app/approval"
	"github.com/aristide12005/ERNAM--sub002/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestResolve_DirectLookup(t *testing.T) {
	apps := &fakeApps{}
	orgs := newFakeOrgs()
	app := models.Application{
		ID:                 primitive.NewObjectID(),
		OrganizationName:   "Acme Air",
		OrganizationNameCI: "acme air",
		Status:             "pending",
	}
	apps.add(app)

	r := approval.NewResolver(apps, orgs)
	got, err := r.Resolve(context.Background(), app.ID.Hex(), "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got.ID != app.ID {
		t.Errorf("resolved wrong application: %s", got.ID.Hex())
	}
}

func TestResolve_DirectLookup_NotFound(t *testing.T) {
	r := approval.NewResolver(&fakeApps{}, newFakeOrgs())
	_, err := r.Resolve(context.Background(), primitive.NewObjectID().Hex(), "")
	if kind, _ := approval.KindOf(err); kind != approval.KindNotFound {
		t.Fatalf("error kind = %v (%v), want not_found", kind, err)
	}
}

func TestResolve_BadHexIsValidation(t *testing.T) {
	r := approval.NewResolver(&fakeApps{}, newFakeOrgs())
	_, err := r.Resolve(context.Background(), "not-a-hex-id", "")
	if kind, _ := approval.KindOf(err); kind != approval.KindValidation {
		t.Fatalf("error kind = %v, want validation", kind)
	}
}

func TestResolve_NoIdentifiers(t *testing.T) {
	r := approval.NewResolver(&fakeApps{}, newFakeOrgs())
	_, err := r.Resolve(context.Background(), "", "")
	if kind, _ := approval.KindOf(err); kind != approval.KindValidation {
		t.Fatalf("error kind = %v, want validation", kind)
	}
}

func TestResolve_ReverseLookup_TieBreakByCreatedAt(t *testing.T) {
	apps := &fakeApps{}
	orgs := newFakeOrgs()

	org := models.Organization{
		ID:     primitive.NewObjectID(),
		Name:   "Acme Air",
		NameCI: "acme air",
		Status: "pending",
	}
	orgs.add(org)

	older := models.Application{
		ID:                 primitive.NewObjectID(),
		OrganizationName:   "Acme Air",
		OrganizationNameCI: "acme air",
		Status:             "rejected",
		CreatedAt:          time.Now().Add(-time.Hour),
	}
	newer := models.Application{
		ID:                 primitive.NewObjectID(),
		OrganizationName:   "Acme Air",
		OrganizationNameCI: "acme air",
		Status:             "pending",
		CreatedAt:          time.Now(),
	}
	apps.add(older)
	apps.add(newer)

	r := approval.NewResolver(apps, orgs)
	got, err := r.Resolve(context.Background(), "", org.ID.Hex())
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got.ID != newer.ID {
		t.Errorf("resolved older application; want the later created_at")
	}
}

func TestResolve_ReverseLookup_EqualTimestampsPickLaterInsertion(t *testing.T) {
	apps := &fakeApps{}
	orgs := newFakeOrgs()

	org := models.Organization{
		ID:     primitive.NewObjectID(),
		Name:   "Acme Air",
		NameCI: "acme air",
	}
	orgs.add(org)

	ts := time.Now().UTC()
	first := models.Application{
		ID:                 primitive.NewObjectID(),
		OrganizationNameCI: "acme air",
		CreatedAt:          ts,
	}
	second := models.Application{
		ID:                 primitive.NewObjectID(),
		OrganizationNameCI: "acme air",
		CreatedAt:          ts,
	}
	apps.add(first)
	apps.add(second)

	r := approval.NewResolver(apps, orgs)
	got, err := r.Resolve(context.Background(), "", org.ID.Hex())
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got.ID != second.ID {
		t.Error("tie on created_at must break toward the most recent insertion")
	}
}

func TestResolve_ReverseLookup_FindsRejected(t *testing.T) {
	apps := &fakeApps{}
	orgs := newFakeOrgs()

	org := models.Organization{
		ID:     primitive.NewObjectID(),
		Name:   "Acme Air",
		NameCI: "acme air",
	}
	orgs.add(org)
	rejected := models.Application{
		ID:                 primitive.NewObjectID(),
		OrganizationNameCI: "acme air",
		Status:             "rejected",
		CreatedAt:          time.Now(),
	}
	apps.add(rejected)

	r := approval.NewResolver(apps, orgs)
	got, err := r.Resolve(context.Background(), "", org.ID.Hex())
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got.ID != rejected.ID {
		t.Error("reverse lookup must include rejected applications")
	}
}

func TestResolve_ReverseLookup_OrgMissing(t *testing.T) {
	r := approval.NewResolver(&fakeApps{}, newFakeOrgs())
	_, err := r.Resolve(context.Background(), "", primitive.NewObjectID().Hex())
	if kind, _ := approval.KindOf(err); kind != approval.KindNotFound {
		t.Fatalf("error kind = %v, want not_found", kind)
	}
}

func TestResolve_ReverseLookup_NoApplicationRecord(t *testing.T) {
	apps := &fakeApps{}
	orgs := newFakeOrgs()
	org := models.Organization{
		ID:     primitive.NewObjectID(),
		Name:   "Orphan Org",
		NameCI: "orphan org",
	}
	orgs.add(org)

	r := approval.NewResolver(apps, orgs)
	_, err := r.Resolve(context.Background(), "", org.ID.Hex())
	if kind, _ := approval.KindOf(err); kind != approval.KindNoApplicationRecord {
		t.Fatalf("error kind = %v (%v), want no_application_record", kind, err)
	}
}

func TestResolve_CustomMatchFunc(t *testing.T) {
	apps := &fakeApps{}
	orgs := newFakeOrgs()

	org := models.Organization{ID: primitive.NewObjectID(), Name: "Acme Air", NameCI: "acme air"}
	orgs.add(org)
	pinned := models.Application{
		ID:                 primitive.NewObjectID(),
		OrganizationNameCI: "something else entirely",
		CreatedAt:          time.Now(),
	}
	apps.add(pinned)

	r := approval.NewResolver(apps, orgs)
	r.SetMatchFunc(func(ctx context.Context, o models.Organization) (models.Application, error) {
		return apps.GetByID(ctx, pinned.ID)
	})

	got, err := r.Resolve(context.Background(), "", org.ID.Hex())
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got.ID != pinned.ID {
		t.Error("custom match strategy was not used")
	}
}
