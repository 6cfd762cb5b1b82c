package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/aristide12005/ERNAM--sub002/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateOrganization creates a test organization with the given name and status.
// Returns the created organization with its generated ID.
func (f *Fixtures) CreateOrganization(ctx context.Context, name, status string) models.Organization {
	f.t.Helper()

	now := time.Now().UTC()
	org := models.Organization{
		ID:           primitive.NewObjectID(),
		Name:         name,
		NameCI:       text.Fold(name),
		OrgType:      "training_center",
		Status:       status,
		ContactEmail: "contact@" + text.Fold(name) + ".test",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := f.db.Collection("organizations").InsertOne(ctx, org)
	if err != nil {
		f.t.Fatalf("failed to create test organization: %v", err)
	}

	return org
}

// CreateUser creates a test user with the given parameters.
// For org_admins, orgID should be provided.
func (f *Fixtures) CreateUser(ctx context.Context, fullName, email, role, status string, orgID *primitive.ObjectID) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:             primitive.NewObjectID(),
		FullName:       fullName,
		FullNameCI:     text.Fold(fullName),
		Email:          email,
		Role:           role,
		Status:         status,
		OrganizationID: orgID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := f.db.Collection("users").InsertOne(ctx, user)
	if err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

// CreateErnamAdmin creates a test platform admin user.
func (f *Fixtures) CreateErnamAdmin(ctx context.Context, fullName, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, fullName, email, "ernam_admin", "approved", nil)
}

// CreateParticipant creates a test participant user.
func (f *Fixtures) CreateParticipant(ctx context.Context, fullName, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, fullName, email, "participant", "pending", nil)
}

// CreateApplication creates a test organization application.
func (f *Fixtures) CreateApplication(ctx context.Context, orgName, applicantEmail, status string) models.Application {
	f.t.Helper()

	now := time.Now().UTC()
	app := models.Application{
		ID:                 primitive.NewObjectID(),
		Type:               models.ApplicationTypeOrganization,
		OrganizationName:   orgName,
		OrganizationNameCI: text.Fold(orgName),
		ApplicantName:      "Test Applicant",
		ApplicantEmail:     applicantEmail,
		Status:             status,
		Reference:          "ERNAM-" + uuid.NewString(),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	_, err := f.db.Collection("applications").InsertOne(ctx, app)
	if err != nil {
		f.t.Fatalf("failed to create test application: %v", err)
	}

	return app
}

// CreateAdminLink creates an organization admin link row.
func (f *Fixtures) CreateAdminLink(ctx context.Context, orgID, userID primitive.ObjectID) models.OrganizationAdmin {
	f.t.Helper()

	link := models.OrganizationAdmin{
		ID:             primitive.NewObjectID(),
		OrganizationID: orgID,
		UserID:         userID,
		CreatedAt:      time.Now().UTC(),
	}

	_, err := f.db.Collection("organization_admins").InsertOne(ctx, link)
	if err != nil {
		f.t.Fatalf("failed to create test admin link: %v", err)
	}

	return link
}
