package repository

import (
	"context"
	"errors"

	"github.com/neuronova/backend/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// QuoteRepository defines the persistence interface for quote requests.
type QuoteRepository interface {
	Insert(ctx context.Context, quote *model.QuoteRequest) error
	FindByID(ctx context.Context, id string) (*model.QuoteRequest, error)
	FindByClientEmail(ctx context.Context, email string, limit int64) ([]*model.QuoteRequest, error)
	List(ctx context.Context, limit int64) ([]*model.QuoteRequest, error)
}

// MongoQuoteRepository is the MongoDB implementation of QuoteRepository.
type MongoQuoteRepository struct {
	coll *mongo.Collection
}

// NewMongoQuoteRepository creates a MongoQuoteRepository over the quotes
// collection of the given database.
func NewMongoQuoteRepository(db *mongo.Database) *MongoQuoteRepository {
	return &MongoQuoteRepository{coll: db.Collection("quotes")}
}

var _ QuoteRepository = (*MongoQuoteRepository)(nil)

// Insert appends a new quote request document.
func (r *MongoQuoteRepository) Insert(ctx context.Context, quote *model.QuoteRequest) error {
	_, err := r.coll.InsertOne(ctx, quote)
	return err
}

// FindByID returns the quote with the given id, or ErrNotFound.
func (r *MongoQuoteRepository) FindByID(ctx context.Context, id string) (*model.QuoteRequest, error) {
	var quote model.QuoteRequest
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&quote)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// FindByClientEmail returns up to limit quotes submitted with the given
// client email, newest first. No matches is an empty slice, not an error.
func (r *MongoQuoteRepository) FindByClientEmail(ctx context.Context, email string, limit int64) ([]*model.QuoteRequest, error) {
	return r.find(ctx, bson.M{"client_email": email}, limit)
}

// List returns up to limit quote requests, newest first.
func (r *MongoQuoteRepository) List(ctx context.Context, limit int64) ([]*model.QuoteRequest, error) {
	return r.find(ctx, bson.M{}, limit)
}

func (r *MongoQuoteRepository) find(ctx context.Context, filter bson.M, limit int64) ([]*model.QuoteRequest, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var quotes []*model.QuoteRequest
	if err := cur.All(ctx, &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}
