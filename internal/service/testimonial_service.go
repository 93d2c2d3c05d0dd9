package service

import (
	"context"

	"github.com/neuronova/backend/internal/model"
)

// TestimonialService defines read access to testimonials.
type TestimonialService interface {
	// List returns stored testimonials, or the compiled-in fallback set
	// when the store holds none.
	List(ctx context.Context) ([]*model.Testimonial, error)
}
