package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pankajyadav-dev/ocean/internal/domain"
	"github.com/pankajyadav-dev/ocean/pkg/e"
	"github.com/pankajyadav-dev/ocean/pkg/validator"
)

type publicReportService struct {
	reports    ReportRepository
	recipients RecipientRepository
	recent     RecentCache
	queue      DispatchQueue
	logger     *slog.Logger
}

func NewPublicReportService(
	reports ReportRepository,
	recipients RecipientRepository,
	recent RecentCache,
	queue DispatchQueue,
	logger *slog.Logger,
) PublicReportService {
	return &publicReportService{
		reports:    reports,
		recipients: recipients,
		recent:     recent,
		queue:      queue,
		logger:     logger,
	}
}

// SubmitReport persists the report, then hands a hazard event to the
// dispatch queue. The report is the source of truth: once it is stored the
// submission succeeds regardless of what happens to notifications.
func (s *publicReportService) SubmitReport(ctx context.Context, req domain.CreateReportRequest) (uuid.UUID, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", e.ErrInvalidInput, err)
	}

	report := &domain.HazardReport{
		ID:          uuid.New(),
		Kind:        req.Kind,
		Severity:    req.Severity,
		Description: req.Description,
		Lat:         req.Lat,
		Lng:         req.Lng,
		ImageURL:    req.ImageURL,
		Status:      domain.ReportPending,
		ReportedBy:  req.ReportedBy,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.reports.Create(ctx, report); err != nil {
		return uuid.Nil, err
	}

	s.logger.Info("hazard report created",
		slog.String("report_id", report.ID.String()),
		slog.String("kind", string(report.Kind)),
		slog.Int("severity", report.Severity),
	)

	ev := domain.HazardEvent{
		ReportID:    report.ID,
		Kind:        report.Kind,
		Severity:    report.Severity,
		Description: report.Description,
		Lat:         report.Lat,
		Lng:         report.Lng,
		ImageURL:    report.ImageURL,
		ReportedBy:  report.ReportedBy,
		CreatedAt:   report.CreatedAt,
	}
	if !s.queue.Enqueue(ev) {
		// The report is already stored; the dropped fan-out is logged by the
		// queue itself, nothing to surface to the reporter.
		s.logger.Warn("dispatch enqueue rejected",
			slog.String("report_id", report.ID.String()),
		)
	}

	return report.ID, nil
}

func (s *publicReportService) RegisterRecipient(ctx context.Context, req domain.RegisterRecipientRequest) (uuid.UUID, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", e.ErrInvalidInput, err)
	}
	if req.Email == "" && req.Phone == "" {
		return uuid.Nil, fmt.Errorf("%w: at least one of email or phone is required", e.ErrInvalidInput)
	}

	rec := &domain.RecipientProfile{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.recipients.Register(ctx, rec); err != nil {
		return uuid.Nil, err
	}

	s.logger.Info("recipient registered", slog.String("recipient_id", rec.ID.String()))
	return rec.ID, nil
}

func (s *publicReportService) UpdateRecipientLocation(ctx context.Context, id uuid.UUID, req domain.UpdateLocationRequest) error {
	if err := validator.ValidateStruct(req); err != nil {
		return fmt.Errorf("%w: %v", e.ErrInvalidInput, err)
	}
	return s.recipients.UpdateLocation(ctx, id, req.Lat, req.Lng)
}

func (s *publicReportService) RecentHazards(ctx context.Context) ([]domain.BroadcastPayload, error) {
	payloads, err := s.recent.Recent(ctx)
	if err != nil {
		s.logger.Error("recent hazards read failed", slog.Any("error", err))
		return nil, err
	}
	return payloads, nil
}
