package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/pankajyadav-dev/ocean/internal/domain"
)

type ReportRepository interface {
	Create(ctx context.Context, report *domain.HazardReport) error
	List(ctx context.Context, page, limit int) ([]*domain.HazardReport, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.HazardReport, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RecipientRepository interface {
	Register(ctx context.Context, rec *domain.RecipientProfile) error
	UpdateLocation(ctx context.Context, id uuid.UUID, lat, lng float64) error
	FindWithinRadius(ctx context.Context, lat, lng, radiusMeters float64) ([]domain.RecipientProfile, error)
}

type DedupLedger interface {
	ShouldNotifyAuthority(ctx context.Context, kind domain.HazardKind, lat, lng float64) (bool, error)
	RecordAttempt(ctx context.Context, kind domain.HazardKind, lat, lng float64, reportID uuid.UUID, succeeded bool) error
}

type StatsRepository interface {
	ReportStats(ctx context.Context, minutes int) (*domain.HazardStats, error)
}
