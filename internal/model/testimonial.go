package model

// Testimonial is a client review displayed on the site. Read-only through
// the API; rows are seeded out of band. Rating is validated to [1,5] at the
// boundary, not by the store.
type Testimonial struct {
	ID       string `json:"id" bson:"id"`
	Name     string `json:"name" bson:"name"`
	Company  string `json:"company" bson:"company"`
	Content  string `json:"content" bson:"content"`
	Rating   int    `json:"rating" bson:"rating"`
	ImageURL string `json:"image_url,omitempty" bson:"image_url,omitempty"`
}
