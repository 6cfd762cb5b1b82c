package organizationstore_test

import (
	"testing"

	organizationstore "github.com/aristide12005/ERNAM--sub002/internal/app/store/organizations"
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/indexes"
	"github.com/aristide12005/ERNAM--sub002/internal/domain/models"
	"github.com/aristide12005/ERNAM--sub002/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := organizationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Organization{
		Name:         "  Acme Air  ",
		OrgType:      "training_center",
		ContactEmail: "Contact@Acme.TEST",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.Name != "Acme Air" {
		t.Errorf("expected trimmed name, got %q", created.Name)
	}
	if created.NameCI != "acme air" {
		t.Errorf("expected folded name, got %q", created.NameCI)
	}
	if created.ContactEmail != "contact@acme.test" {
		t.Errorf("expected normalized email, got %q", created.ContactEmail)
	}
	if created.Status != "pending" {
		t.Errorf("expected default status 'pending', got %q", created.Status)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestStore_Create_DuplicateName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := organizationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Duplicate detection relies on the unique name_ci index.
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	if _, err := store.Create(ctx, models.Organization{Name: "Acme Air"}); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	_, err := store.Create(ctx, models.Organization{Name: "ACME AIR"})
	if err != organizationstore.ErrDuplicateOrganization {
		t.Errorf("expected ErrDuplicateOrganization, got %v", err)
	}
}

func TestStore_GetByNameCI(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := organizationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Organization{Name: "Acme Air"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	found, err := store.GetByNameCI(ctx, "acme air")
	if err != nil {
		t.Fatalf("GetByNameCI failed: %v", err)
	}
	if found.ID != created.ID {
		t.Error("GetByNameCI returned wrong organization")
	}

	if _, err := store.GetByNameCI(ctx, "ghost lines"); err != mongo.ErrNoDocuments {
		t.Errorf("expected mongo.ErrNoDocuments, got %v", err)
	}
}

func TestStore_SetStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := organizationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Organization{Name: "Acme Air"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.SetStatus(ctx, created.ID, "approved"); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	// Idempotent repeat
	if err := store.SetStatus(ctx, created.ID, "approved"); err != nil {
		t.Fatalf("repeated SetStatus failed: %v", err)
	}

	found, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if found.Status != "approved" {
		t.Errorf("status: got %q, want approved", found.Status)
	}
}

func TestStore_SetStatus_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := organizationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.SetStatus(ctx, primitive.NewObjectID(), "approved"); err != mongo.ErrNoDocuments {
		t.Errorf("expected mongo.ErrNoDocuments, got %v", err)
	}
}

func TestStore_List_FilterByStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := organizationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.Organization{Name: "Alpha", Status: "approved"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, models.Organization{Name: "Beta"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	approved, err := store.List(ctx, organizationstore.Filter{Status: "approved"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(approved) != 1 || approved[0].Name != "Alpha" {
		t.Errorf("expected only Alpha, got %v", approved)
	}
}
