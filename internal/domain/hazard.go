package domain

import (
	"time"

	"github.com/google/uuid"
)

type HazardKind string

const (
	KindOilSpill  HazardKind = "oil_spill"
	KindDebris    HazardKind = "debris"
	KindPollution HazardKind = "pollution"
	KindOther     HazardKind = "other"
)

// Label returns the human-readable form used in alert subjects.
func (k HazardKind) Label() string {
	switch k {
	case KindOilSpill:
		return "Oil Spill"
	case KindDebris:
		return "Debris"
	case KindPollution:
		return "Pollution"
	default:
		return "Other"
	}
}

type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportVerified ReportStatus = "verified"
	ReportDeclined ReportStatus = "declined"
)

type HazardReport struct {
	ID          uuid.UUID    `json:"id"`
	Kind        HazardKind   `json:"kind"`
	Severity    int          `json:"severity"` // 1..10
	Description string       `json:"description,omitempty"`
	Lat         float64      `json:"lat"` // -90..90
	Lng         float64      `json:"lng"` // -180..180
	ImageURL    string       `json:"image_url,omitempty"`
	Status      ReportStatus `json:"status"`
	ReportedBy  string       `json:"reported_by"`
	CreatedAt   time.Time    `json:"created_at"`
}

// SeverityLabel maps the 1..10 scale onto the four alert bands.
func SeverityLabel(severity int) string {
	switch {
	case severity <= 3:
		return "Low"
	case severity <= 6:
		return "Medium"
	case severity <= 8:
		return "High"
	default:
		return "Critical"
	}
}
