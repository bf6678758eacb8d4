package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/pankajyadav-dev/ocean/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// PublicReportService covers the unauthenticated surface: citizens submit
// hazard reports, register as alert recipients and read the recent feed.
type PublicReportService interface {
	SubmitReport(ctx context.Context, req domain.CreateReportRequest) (uuid.UUID, error)
	RegisterRecipient(ctx context.Context, req domain.RegisterRecipientRequest) (uuid.UUID, error)
	UpdateRecipientLocation(ctx context.Context, id uuid.UUID, req domain.UpdateLocationRequest) error
	RecentHazards(ctx context.Context) ([]domain.BroadcastPayload, error)
}

// AdminReportService covers moderation: listing, inspecting, verifying or
// declining and removing reports.
type AdminReportService interface {
	List(ctx context.Context, page, limit int) ([]*domain.HazardReport, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.HazardReport, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req domain.UpdateReportStatusRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type StatsService interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.HazardStats, error)
}

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
}

// RecentCache serves the catch-up feed for late-connecting listeners.
type RecentCache interface {
	Recent(ctx context.Context) ([]domain.BroadcastPayload, error)
}

// DispatchQueue is the fire-and-forget handoff into the notification
// pipeline. Enqueue never blocks; false means the event was dropped.
type DispatchQueue interface {
	Enqueue(ev domain.HazardEvent) bool
}

type StatsRepository interface {
	ReportStats(ctx context.Context, minutes int) (*domain.HazardStats, error)
}

type Service struct {
	PublicReportService PublicReportService
	AdminReportService  AdminReportService
	StatsService        StatsService
}

func NewService(
	publicReportService PublicReportService,
	adminReportService AdminReportService,
	statsService StatsService,
) *Service {
	return &Service{
		PublicReportService: publicReportService,
		AdminReportService:  adminReportService,
		StatsService:        statsService,
	}
}
