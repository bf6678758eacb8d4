package domain

import (
	"time"

	"github.com/google/uuid"
)

// HazardEvent is the immutable value handed to the notification dispatcher
// once per successfully created report. Coordinates are validated upstream.
type HazardEvent struct {
	ReportID    uuid.UUID
	Kind        HazardKind
	Severity    int
	Description string
	Lat         float64
	Lng         float64
	ImageURL    string
	ReportedBy  string
	CreatedAt   time.Time
}

// BroadcastPayload is the real-time event pushed to every connected listener
// under the "hazard-reported" event name.
type BroadcastPayload struct {
	ID          uuid.UUID  `json:"id"`
	Type        HazardKind `json:"type"`
	Location    GeoPoint   `json:"location"`
	Severity    int        `json:"severity"`
	Description string     `json:"description,omitempty"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	ReportedAt  time.Time  `json:"reportedAt"`
}

func (e HazardEvent) BroadcastPayload() BroadcastPayload {
	return BroadcastPayload{
		ID:          e.ReportID,
		Type:        e.Kind,
		Location:    GeoPoint{Lat: e.Lat, Lng: e.Lng},
		Severity:    e.Severity,
		Description: e.Description,
		ImageURL:    e.ImageURL,
		ReportedAt:  e.CreatedAt,
	}
}

// DispatchOutcome aggregates one fan-out pass. Transient, never persisted;
// returned to the caller for logging and metrics.
type DispatchOutcome struct {
	ReportID        uuid.UUID
	RecipientsFound int

	BroadcastOK bool

	AuthorityAttempted bool
	AuthorityOK        bool

	EmailSent   int
	EmailFailed int
	SMSSent     int
	SMSFailed   int
}

// OK reports whether every attempted channel succeeded.
func (o DispatchOutcome) OK() bool {
	if !o.BroadcastOK {
		return false
	}
	if o.AuthorityAttempted && !o.AuthorityOK {
		return false
	}
	return o.EmailFailed == 0 && o.SMSFailed == 0
}
