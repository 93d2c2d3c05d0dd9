package repository

import (
	"context"

	"github.com/neuronova/backend/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TestimonialRepository defines read access to stored testimonials.
type TestimonialRepository interface {
	List(ctx context.Context, limit int64) ([]*model.Testimonial, error)
}

// MongoTestimonialRepository is the MongoDB implementation of
// TestimonialRepository.
type MongoTestimonialRepository struct {
	coll *mongo.Collection
}

// NewMongoTestimonialRepository creates a MongoTestimonialRepository over
// the testimonials collection of the given database.
func NewMongoTestimonialRepository(db *mongo.Database) *MongoTestimonialRepository {
	return &MongoTestimonialRepository{coll: db.Collection("testimonials")}
}

var _ TestimonialRepository = (*MongoTestimonialRepository)(nil)

// List returns up to limit stored testimonials.
func (r *MongoTestimonialRepository) List(ctx context.Context, limit int64) ([]*model.Testimonial, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var testimonials []*model.Testimonial
	if err := cur.All(ctx, &testimonials); err != nil {
		return nil, err
	}
	return testimonials, nil
}
