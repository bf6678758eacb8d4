package notify

import (
	"context"

	"github.com/google/uuid"

	"github.com/pankajyadav-dev/ocean/internal/domain"
)

// ChannelSender delivers one formatted message to one destination. Transport
// errors never escape a sender: every failure is logged internally and
// reported as false.
type ChannelSender interface {
	Send(ctx context.Context, to string, msg Message) bool

	// Configured reports whether the underlying transport has credentials.
	// Unconfigured senders short-circuit every Send to false without I/O.
	Configured() bool
}

// BroadcastPublisher pushes an event to all connected listeners. Broadcast
// is not recipient-scoped and has no configured/unconfigured mode.
type BroadcastPublisher interface {
	Publish(ctx context.Context, payload domain.BroadcastPayload) error
}

// RecipientFinder is the geospatial index query the dispatcher fans out over.
type RecipientFinder interface {
	FindWithinRadius(ctx context.Context, lat, lng, radiusMeters float64) ([]domain.RecipientProfile, error)
}

// Ledger gates the authority-email channel only; it never affects the
// nearby-user fan-out.
type Ledger interface {
	ShouldNotifyAuthority(ctx context.Context, kind domain.HazardKind, lat, lng float64) (bool, error)
	RecordAttempt(ctx context.Context, kind domain.HazardKind, lat, lng float64, reportID uuid.UUID, succeeded bool) error
}

// AddressResolver turns coordinates into a human-readable address. Failures
// fall back to a coordinate string in the message body.
type AddressResolver interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (string, error)
}

// Message is one formatted alert. SMS senders use Body only.
type Message struct {
	Subject string
	Body    string
}
