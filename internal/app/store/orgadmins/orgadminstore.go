// internal/app/store/orgadmins/orgadminstore.go
package orgadminstore

import (
	"context"
	"time"

	"github.com/aristide12005/ERNAM--sub002/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("organization_admins")}
}

// Upsert records that userID administers orgID. The row is keyed on
// (organization_id, user_id); repeating the call, or racing another
// approval of the same application, leaves exactly one row. A duplicate-key
// error from a concurrent insert is absorbed as already-linked.
func (s *Store) Upsert(ctx context.Context, orgID, userID primitive.ObjectID) error {
	filter := bson.M{
		"organization_id": orgID,
		"user_id":         userID,
	}
	update := bson.M{
		"$setOnInsert": bson.M{
			"_id":             primitive.NewObjectID(),
			"organization_id": orgID,
			"user_id":         userID,
			"created_at":      time.Now().UTC(),
		},
	}
	_, err := s.c.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil && wafflemongo.IsDup(err) {
		return nil
	}
	return err
}

// ListByOrg returns the admin links for an organization.
func (s *Store) ListByOrg(ctx context.Context, orgID primitive.ObjectID) ([]models.OrganizationAdmin, error) {
	cur, err := s.c.Find(ctx, bson.M{"organization_id": orgID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var links []models.OrganizationAdmin
	if err := cur.All(ctx, &links); err != nil {
		return nil, err
	}
	return links, nil
}

// ExistsLink reports whether a link row exists for (orgID, userID).
func (s *Store) ExistsLink(ctx context.Context, orgID, userID primitive.ObjectID) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{
		"organization_id": orgID,
		"user_id":         userID,
	}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
