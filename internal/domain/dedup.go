package domain

import (
	"time"

	"github.com/google/uuid"
)

// DedupBoxDegrees is the half-width of the suppression rectangle: reports of
// the same kind within ±0.1° lat AND ±0.1° lng count as one ongoing incident
// for authority-email purposes. A rectangle, not a radius, on purpose.
const DedupBoxDegrees = 0.1

// DeduplicationRecord is one append-only ledger row per authority-email
// attempt. Rows are never updated or deleted.
type DeduplicationRecord struct {
	ID             uuid.UUID  `json:"id"`
	Kind           HazardKind `json:"kind"`
	Lat            float64    `json:"lat"`
	Lng            float64    `json:"lng"`
	ReportID       uuid.UUID  `json:"report_id"`
	EmailSucceeded bool       `json:"email_succeeded"`
	CreatedAt      time.Time  `json:"created_at"`
}
