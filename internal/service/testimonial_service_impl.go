package service

import (
	"context"

	"github.com/neuronova/backend/internal/catalog"
	"github.com/neuronova/backend/internal/model"
	"github.com/neuronova/backend/internal/repository"
)

// testimonialLimit caps the testimonials listing.
const testimonialLimit = 20

// testimonialServiceImpl is the production implementation of
// TestimonialService.
type testimonialServiceImpl struct {
	repo repository.TestimonialRepository
}

// NewTestimonialService creates a TestimonialService backed by the given
// repository.
func NewTestimonialService(repo repository.TestimonialRepository) TestimonialService {
	return &testimonialServiceImpl{repo: repo}
}

// List returns stored testimonials. When the collection is empty the
// compiled-in fallback set is served instead; the fallback is derived data
// and is never written to the store.
func (s *testimonialServiceImpl) List(ctx context.Context) ([]*model.Testimonial, error) {
	testimonials, err := s.repo.List(ctx, testimonialLimit)
	if err != nil {
		return nil, err
	}
	if len(testimonials) == 0 {
		return catalog.FallbackTestimonials(), nil
	}
	return testimonials, nil
}
