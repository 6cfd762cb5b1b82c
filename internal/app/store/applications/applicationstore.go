// internal/app/store/applications/applicationstore.go
package applicationstore

import (
	"context"
	"fmt"
	"time"

	"github.com/aristide12005/ERNAM--sub002/internal/app/system/normalize"
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/status"
	"github.com/aristide12005/ERNAM--sub002/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("applications")}
}

// Create inserts a new organization application in pending status and
// assigns its applicant-facing reference number.
func (s *Store) Create(ctx context.Context, app models.Application) (models.Application, error) {
	now := time.Now().UTC()
	app.ID = primitive.NewObjectID()
	if app.Type == "" {
		app.Type = models.ApplicationTypeOrganization
	}
	app.OrganizationName = normalize.Name(app.OrganizationName)
	app.OrganizationNameCI = text.Fold(app.OrganizationName)
	app.ApplicantName = normalize.Name(app.ApplicantName)
	app.ApplicantEmail = normalize.Email(app.ApplicantEmail)
	app.ApplicantPhone = normalize.Phone(app.ApplicantPhone)
	if app.Status == "" {
		app.Status = status.Pending
	}
	if app.Reference == "" {
		app.Reference = fmt.Sprintf("ERNAM-%s", uuid.NewString())
	}
	app.CreatedAt = now
	app.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, app); err != nil {
		return models.Application{}, err
	}
	return app, nil
}

// GetByID loads an application by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Application, error) {
	var app models.Application
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&app); err != nil {
		return models.Application{}, err
	}
	return app, nil
}

// LatestByOrganizationName returns the most recently created application
// whose folded organization name matches nameCI, regardless of status.
// Rejected applications are included so they can be re-approved manually.
// Ties on created_at break toward the later insertion (_id descending).
// Returns mongo.ErrNoDocuments if no application matches.
func (s *Store) LatestByOrganizationName(ctx context.Context, nameCI string) (models.Application, error) {
	opts := options.FindOne().SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	var app models.Application
	err := s.c.FindOne(ctx, bson.M{
		"type":                 models.ApplicationTypeOrganization,
		"organization_name_ci": nameCI,
	}, opts).Decode(&app)
	if err != nil {
		return models.Application{}, err
	}
	return app, nil
}

// SetStatus updates an application's status and, when reviewedBy is
// non-nil, records the reviewing admin. The write is a single-document
// $set, so it is safe to repeat.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, newStatus string, reviewedBy *primitive.ObjectID) error {
	set := bson.M{
		"status":     newStatus,
		"updated_at": time.Now().UTC(),
	}
	if reviewedBy != nil {
		set["reviewed_by"] = *reviewedBy
	}
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Filter narrows List and Count queries.
type Filter struct {
	Status string
	Limit  int64
	Offset int64
}

// List returns applications matching the filter, newest first.
func (s *Store) List(ctx context.Context, filter Filter) ([]models.Application, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit).
		SetSkip(filter.Offset)

	cur, err := s.c.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var apps []models.Application
	if err := cur.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// Count returns the number of applications matching the filter.
func (s *Store) Count(ctx context.Context, filter Filter) (int64, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	return s.c.CountDocuments(ctx, query)
}
