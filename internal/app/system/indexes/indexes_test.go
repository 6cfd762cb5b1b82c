package indexes_test

import (
	"testing"

	"github.com/aristide12005/ERNAM--sub002/internal/app/system/indexes"
	"github.com/aristide12005/ERNAM--sub002/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestEnsureAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// EnsureAll should succeed on a clean database
	err := indexes.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := indexes.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("First EnsureAll failed: %v", err)
	}

	// Second call should also succeed (idempotent)
	err = indexes.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("Second EnsureAll failed: %v", err)
	}
}

func indexNames(t *testing.T, db *mongo.Database, collection string) map[string]bool {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cur, err := db.Collection(collection).Indexes().List(ctx)
	if err != nil {
		t.Fatalf("List indexes failed: %v", err)
	}
	defer cur.Close(ctx)

	names := make(map[string]bool)
	for cur.Next(ctx) {
		var idx bson.M
		if err := cur.Decode(&idx); err != nil {
			continue
		}
		if name, ok := idx["name"].(string); ok {
			names[name] = true
		}
	}
	return names
}

func TestEnsureAll_CreatesExpectedIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	expected := map[string][]string{
		"users":               {"uniq_users_email", "idx_users_org_role_status_fullnameci_id"},
		"organizations":       {"uniq_orgs_nameci", "idx_orgs_status_nameci__id"},
		"applications":        {"idx_apps_type_nameci_created__id", "idx_apps_status_created", "uniq_apps_reference"},
		"organization_admins": {"uniq_orgadmins_org_user", "idx_orgadmins_user"},
		"audit_logs":          {"idx_audit_timestamp", "idx_audit_target_timestamp", "idx_audit_action_timestamp"},
	}

	for collection, want := range expected {
		names := indexNames(t, db, collection)
		for _, name := range want {
			if !names[name] {
				t.Errorf("%s: missing index %q (have %v)", collection, name, names)
			}
		}
	}
}

func TestEnsureAll_UniqueOrganizationName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	fx := testutil.NewFixtures(t, db)
	fx.CreateOrganization(ctx, "Acme Air", "pending")

	// A second organization folding to the same name_ci must be rejected.
	_, err := db.Collection("organizations").InsertOne(ctx, bson.M{
		"name":    "ACME AIR",
		"name_ci": "acme air",
		"status":  "pending",
	})
	if err == nil {
		t.Fatal("expected duplicate key error for same name_ci")
	}
}
