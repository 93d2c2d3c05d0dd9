package repository

import (
	"context"

	"github.com/neuronova/backend/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ContactRepository defines the persistence interface for contact messages.
// It is defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	Insert(ctx context.Context, msg *model.ContactMessage) error
	List(ctx context.Context, limit int64) ([]*model.ContactMessage, error)
}

// MongoContactRepository is the MongoDB implementation of ContactRepository.
type MongoContactRepository struct {
	coll *mongo.Collection
}

// NewMongoContactRepository creates a MongoContactRepository over the
// contacts collection of the given database.
func NewMongoContactRepository(db *mongo.Database) *MongoContactRepository {
	return &MongoContactRepository{coll: db.Collection("contacts")}
}

// Ensure MongoContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*MongoContactRepository)(nil)

// Insert appends a new contact message document. The caller supplies the id
// and timestamp; the repository assigns nothing.
func (r *MongoContactRepository) Insert(ctx context.Context, msg *model.ContactMessage) error {
	_, err := r.coll.InsertOne(ctx, msg)
	return err
}

// List returns up to limit contact messages, newest first.
func (r *MongoContactRepository) List(ctx context.Context, limit int64) ([]*model.ContactMessage, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var messages []*model.ContactMessage
	if err := cur.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
