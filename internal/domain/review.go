package domain

import (
	"time"

	"github.com/google/uuid"
)

// Review is a traveller's rating of a destination.
// TripID is a weak reference — it may point at a deleted or never-synced
// trip and is not enforced as a foreign key.
type Review struct {
	ID           uuid.UUID `json:"id"`
	TripID       uuid.UUID `json:"trip_id,omitempty"`
	Destination  string    `json:"destination"`
	Rating       int       `json:"rating"` // 1–5 inclusive
	Title        string    `json:"title,omitempty"`
	ReviewText   string    `json:"review_text,omitempty"`
	TravelDate   string    `json:"travel_date,omitempty"` // free-form, e.g. "March 2025"
	HelpfulCount int       `json:"helpful_count"`
	CreatedAt    time.Time `json:"created_at"`
}
