package domain

import (
	"time"

	"github.com/google/uuid"
)

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RecipientProfile is a registered user's notifiable contact surface.
// Email and Phone are optional; a recipient without a location is never
// selected by the proximity query.
type RecipientProfile struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email,omitempty"`
	Phone    string    `json:"phone,omitempty"` // E.164
	Location *GeoPoint `json:"location,omitempty"`

	// DistanceMeters is populated by FindWithinRadius, zero otherwise.
	DistanceMeters float64 `json:"distance_meters,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
