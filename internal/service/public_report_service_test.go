package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/pankajyadav-dev/ocean/internal/domain"
	"github.com/pankajyadav-dev/ocean/internal/service"
	mock_service "github.com/pankajyadav-dev/ocean/internal/service/mocks"
	"github.com/pankajyadav-dev/ocean/pkg/e"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validCreateRequest() domain.CreateReportRequest {
	return domain.CreateReportRequest{
		Kind:        domain.KindOilSpill,
		Severity:    8,
		Description: "dark slick near the pier",
		Lat:         13.05,
		Lng:         80.28,
		ReportedBy:  "coastal observer",
	}
}

// --- SubmitReport ---

func TestPublicReportService_SubmitReport_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mock_service.NewMockReportRepository(ctrl)
	queue := mock_service.NewMockDispatchQueue(ctrl)

	var stored *domain.HazardReport
	reports.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *domain.HazardReport) error {
			stored = r
			return nil
		}).
		Times(1)

	var queued domain.HazardEvent
	queue.EXPECT().
		Enqueue(gomock.Any()).
		DoAndReturn(func(ev domain.HazardEvent) bool {
			queued = ev
			return true
		}).
		Times(1)

	svc := service.NewPublicReportService(reports, nil, nil, queue, testLogger())

	req := validCreateRequest()
	id, err := svc.SubmitReport(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id == uuid.Nil {
		t.Fatalf("expected non-nil id")
	}

	if stored == nil {
		t.Fatalf("expected report passed to repo.Create")
	}
	if stored.Status != domain.ReportPending {
		t.Fatalf("expected default status=%q, got=%q", domain.ReportPending, stored.Status)
	}
	if stored.CreatedAt.IsZero() {
		t.Fatalf("CreatedAt must be set by the service")
	}

	// The queued event mirrors the stored report.
	if queued.ReportID != stored.ID || queued.Kind != stored.Kind || queued.Lat != stored.Lat || queued.Lng != stored.Lng {
		t.Fatalf("event mismatch: event=%+v report=%+v", queued, stored)
	}
}

func TestPublicReportService_SubmitReport_InvalidInput(t *testing.T) {
	t.Parallel()

	type tc struct {
		name string
		mut  func(*domain.CreateReportRequest)
	}

	cases := []tc{
		{"missing kind", func(r *domain.CreateReportRequest) { r.Kind = "" }},
		{"unknown kind", func(r *domain.CreateReportRequest) { r.Kind = "tsunami" }},
		{"severity too low", func(r *domain.CreateReportRequest) { r.Severity = 0 }},
		{"severity too high", func(r *domain.CreateReportRequest) { r.Severity = 11 }},
		{"lat out of range", func(r *domain.CreateReportRequest) { r.Lat = 91 }},
		{"lng out of range", func(r *domain.CreateReportRequest) { r.Lng = -181 }},
		{"missing reporter", func(r *domain.CreateReportRequest) { r.ReportedBy = "" }},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// Neither storage nor the queue may be touched.
			reports := mock_service.NewMockReportRepository(ctrl)
			queue := mock_service.NewMockDispatchQueue(ctrl)

			svc := service.NewPublicReportService(reports, nil, nil, queue, testLogger())

			req := validCreateRequest()
			c.mut(&req)

			_, err := svc.SubmitReport(context.Background(), req)
			if !errors.Is(err, e.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestPublicReportService_SubmitReport_RepoError_NoEnqueue(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mock_service.NewMockReportRepository(ctrl)
	queue := mock_service.NewMockDispatchQueue(ctrl)

	reports.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(errors.New("db down")).
		Times(1)
	// No Enqueue expectation: a failed insert must not produce an event.

	svc := service.NewPublicReportService(reports, nil, nil, queue, testLogger())

	_, err := svc.SubmitReport(context.Background(), validCreateRequest())
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestPublicReportService_SubmitReport_QueueFullStillSucceeds(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mock_service.NewMockReportRepository(ctrl)
	queue := mock_service.NewMockDispatchQueue(ctrl)

	reports.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	queue.EXPECT().Enqueue(gomock.Any()).Return(false).Times(1)

	svc := service.NewPublicReportService(reports, nil, nil, queue, testLogger())

	id, err := svc.SubmitReport(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("report is stored, dropped dispatch must not fail the submission: %v", err)
	}
	if id == uuid.Nil {
		t.Fatalf("expected non-nil id")
	}
}

// --- RegisterRecipient ---

func TestPublicReportService_RegisterRecipient_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recipients := mock_service.NewMockRecipientRepository(ctrl)

	var stored *domain.RecipientProfile
	recipients.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *domain.RecipientProfile) error {
			stored = rec
			return nil
		}).
		Times(1)

	svc := service.NewPublicReportService(nil, recipients, nil, nil, testLogger())

	id, err := svc.RegisterRecipient(context.Background(), domain.RegisterRecipientRequest{
		Name:  "Asha",
		Email: "asha@example.com",
		Phone: "+12025550123",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id == uuid.Nil || stored == nil || stored.ID != id {
		t.Fatalf("unexpected recipient: id=%v stored=%+v", id, stored)
	}
	if stored.Location != nil {
		t.Fatalf("registration must not set a location")
	}
}

func TestPublicReportService_RegisterRecipient_NoContactChannel(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recipients := mock_service.NewMockRecipientRepository(ctrl)

	svc := service.NewPublicReportService(nil, recipients, nil, nil, testLogger())

	_, err := svc.RegisterRecipient(context.Background(), domain.RegisterRecipientRequest{Name: "Asha"})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPublicReportService_RegisterRecipient_BadPhone(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recipients := mock_service.NewMockRecipientRepository(ctrl)

	svc := service.NewPublicReportService(nil, recipients, nil, nil, testLogger())

	_, err := svc.RegisterRecipient(context.Background(), domain.RegisterRecipientRequest{
		Name:  "Asha",
		Phone: "12025550123", // missing +
	})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

// --- UpdateRecipientLocation ---

func TestPublicReportService_UpdateRecipientLocation_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recipients := mock_service.NewMockRecipientRepository(ctrl)

	id := uuid.New()
	recipients.EXPECT().
		UpdateLocation(gomock.Any(), id, 13.05, 80.28).
		Return(nil).
		Times(1)

	svc := service.NewPublicReportService(nil, recipients, nil, nil, testLogger())

	err := svc.UpdateRecipientLocation(context.Background(), id, domain.UpdateLocationRequest{Lat: 13.05, Lng: 80.28})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestPublicReportService_UpdateRecipientLocation_BadCoordinates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recipients := mock_service.NewMockRecipientRepository(ctrl)

	svc := service.NewPublicReportService(nil, recipients, nil, nil, testLogger())

	err := svc.UpdateRecipientLocation(context.Background(), uuid.New(), domain.UpdateLocationRequest{Lat: 91, Lng: 0})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

// --- RecentHazards ---

func TestPublicReportService_RecentHazards_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recent := mock_service.NewMockRecentCache(ctrl)

	want := []domain.BroadcastPayload{
		{ID: uuid.New(), Type: domain.KindDebris, Severity: 5, ReportedAt: time.Now().UTC()},
	}
	recent.EXPECT().Recent(gomock.Any()).Return(want, nil).Times(1)

	svc := service.NewPublicReportService(nil, nil, recent, nil, testLogger())

	got, err := svc.RecentHazards(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].ID != want[0].ID {
		t.Fatalf("unexpected payloads: %+v", got)
	}
}

func TestPublicReportService_RecentHazards_CacheError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recent := mock_service.NewMockRecentCache(ctrl)
	recent.EXPECT().Recent(gomock.Any()).Return(nil, errors.New("redis down")).Times(1)

	svc := service.NewPublicReportService(nil, nil, recent, nil, testLogger())

	if _, err := svc.RecentHazards(context.Background()); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
