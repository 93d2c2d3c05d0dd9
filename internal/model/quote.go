package model

import "time"

// QuoteRequest represents a client request for a service quote.
// Services holds catalog service ids in the order the client selected them;
// referential integrity against the catalog is not enforced.
// Totals are denominated in US dollars and Congolese francs.
type QuoteRequest struct {
	ID          string    `json:"id" bson:"id"`
	ClientName  string    `json:"client_name" bson:"client_name"`
	ClientEmail string    `json:"client_email,omitempty" bson:"client_email,omitempty"`
	ClientPhone string    `json:"client_phone,omitempty" bson:"client_phone,omitempty"`
	Company     string    `json:"company,omitempty" bson:"company,omitempty"`
	Services    []string  `json:"services" bson:"services"`
	TotalUSD    float64   `json:"total_usd" bson:"total_usd"`
	TotalFC     float64   `json:"total_fc" bson:"total_fc"`
	Notes       string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
