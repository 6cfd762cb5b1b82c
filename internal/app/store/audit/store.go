// internal/app/store/audit/store.go
package audit

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Action tags for privileged operations.
const (
	ActionApplicationSubmitted   = "application_submitted"
	ActionApplicationReactivated = "application_reactivated"
	ActionApplicationRejected    = "application_rejected"
	ActionOrganizationApproved   = "organization_approved"
	ActionOrganizationCreated    = "organization_created"
	ActionUserRegistered         = "user_registered"
)

// Entry is an immutable record of a privileged action. Entries are
// append-only: they are never updated or deleted.
type Entry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`

	// Action is the enum-like tag naming what happened.
	Action string `bson:"action" json:"action"`

	// TargetResource is the id (hex) of the entity the action affected.
	TargetResource string `bson:"target_resource" json:"target_resource"`

	// ActorID is the admin who performed the action, when one was
	// authenticated. Applicant-initiated actions have no actor.
	ActorID *primitive.ObjectID `bson:"actor_id,omitempty" json:"actor_id,omitempty"`

	// Details carries free-form context (application id, applicant email).
	Details map[string]string `bson:"details,omitempty" json:"details,omitempty"`
}

// QueryFilter defines filters for querying audit entries.
type QueryFilter struct {
	Action         string
	TargetResource string
	ActorID        *primitive.ObjectID
	StartTime      *time.Time
	EndTime        *time.Time
	Limit          int64
	Offset         int64
}

// Store manages audit log records.
type Store struct {
	c *mongo.Collection
}

// New creates a new audit Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("audit_logs")}
}

// EnsureIndexes creates the indexes used by the list/filter queries.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "timestamp", Value: -1}},
		},
		{
			Keys: bson.D{
				{Key: "action", Value: 1},
				{Key: "timestamp", Value: -1},
			},
		},
		{
			Keys: bson.D{
				{Key: "target_resource", Value: 1},
				{Key: "timestamp", Value: -1},
			},
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}

// Log appends an audit entry.
func (s *Store) Log(ctx context.Context, entry Entry) error {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	_, err := s.c.InsertOne(ctx, entry)
	return err
}

func (f QueryFilter) query() bson.M {
	query := bson.M{}
	if f.Action != "" {
		query["action"] = f.Action
	}
	if f.TargetResource != "" {
		query["target_resource"] = f.TargetResource
	}
	if f.ActorID != nil {
		query["actor_id"] = f.ActorID
	}
	if f.StartTime != nil || f.EndTime != nil {
		timeQuery := bson.M{}
		if f.StartTime != nil {
			timeQuery["$gte"] = *f.StartTime
		}
		if f.EndTime != nil {
			timeQuery["$lte"] = *f.EndTime
		}
		query["timestamp"] = timeQuery
	}
	return query
}

// Query retrieves audit entries matching the given filter, newest first.
func (s *Store) Query(ctx context.Context, filter QueryFilter) ([]Entry, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit).
		SetSkip(filter.Offset)

	cur, err := s.c.Find(ctx, filter.query(), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var entries []Entry
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// CountByFilter returns the count of entries matching the filter.
func (s *Store) CountByFilter(ctx context.Context, filter QueryFilter) (int64, error) {
	return s.c.CountDocuments(ctx, filter.query())
}

// GetByTarget retrieves recent audit entries for a specific resource.
func (s *Store) GetByTarget(ctx context.Context, targetResource string, limit int64) ([]Entry, error) {
	return s.Query(ctx, QueryFilter{
		TargetResource: targetResource,
		Limit:          limit,
	})
}
