package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/pankajyadav-dev/ocean/internal/domain"
	"github.com/pankajyadav-dev/ocean/internal/service"
	mock_service "github.com/pankajyadav-dev/ocean/internal/service/mocks"
	"github.com/pankajyadav-dev/ocean/pkg/e"
)

func mustTime(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
}

// --- List ---

func TestAdminReportService_List_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)

	wantList := []*domain.HazardReport{
		{ID: uuid.New(), Kind: domain.KindOilSpill, Status: domain.ReportPending, CreatedAt: mustTime(t)},
		{ID: uuid.New(), Kind: domain.KindDebris, Status: domain.ReportVerified, CreatedAt: mustTime(t)},
	}
	repo.EXPECT().
		List(gomock.Any(), 2, 10).
		Return(wantList, int64(42), nil).
		Times(1)

	svc := service.NewAdminReportService(repo)

	list, total, err := svc.List(context.Background(), 2, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if total != 42 {
		t.Fatalf("expected total=42 got=%d", total)
	}
	if len(list) != len(wantList) {
		t.Fatalf("expected len=%d got=%d", len(wantList), len(list))
	}
}

func TestAdminReportService_List_RepoError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	repo.EXPECT().
		List(gomock.Any(), 1, 20).
		Return(nil, int64(0), errors.New("db error")).
		Times(1)

	svc := service.NewAdminReportService(repo)

	if _, _, err := svc.List(context.Background(), 1, 20); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

// --- Get ---

func TestAdminReportService_Get_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)

	id := uuid.New()
	want := &domain.HazardReport{ID: id, Kind: domain.KindPollution, Status: domain.ReportPending, CreatedAt: mustTime(t)}
	repo.EXPECT().Get(gomock.Any(), id).Return(want, nil).Times(1)

	svc := service.NewAdminReportService(repo)

	got, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got == nil || got.ID != id {
		t.Fatalf("unexpected report: %+v", got)
	}
}

func TestAdminReportService_Get_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)

	id := uuid.New()
	repo.EXPECT().Get(gomock.Any(), id).Return(nil, e.ErrNotFound).Times(1)

	svc := service.NewAdminReportService(repo)

	if _, err := svc.Get(context.Background(), id); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// --- UpdateStatus ---

func TestAdminReportService_UpdateStatus_OK(t *testing.T) {
	t.Parallel()

	cases := []domain.ReportStatus{domain.ReportVerified, domain.ReportDeclined}

	for _, status := range cases {
		status := status
		t.Run(string(status), func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mock_service.NewMockReportRepository(ctrl)

			id := uuid.New()
			repo.EXPECT().UpdateStatus(gomock.Any(), id, status).Return(nil).Times(1)

			svc := service.NewAdminReportService(repo)

			err := svc.UpdateStatus(context.Background(), id, domain.UpdateReportStatusRequest{Status: status})
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
		})
	}
}

func TestAdminReportService_UpdateStatus_InvalidStatus(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Repo must not be called: "pending" cannot be set back by moderation.
	repo := mock_service.NewMockReportRepository(ctrl)

	svc := service.NewAdminReportService(repo)

	err := svc.UpdateStatus(context.Background(), uuid.New(), domain.UpdateReportStatusRequest{Status: domain.ReportPending})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAdminReportService_UpdateStatus_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)

	id := uuid.New()
	repo.EXPECT().UpdateStatus(gomock.Any(), id, domain.ReportVerified).Return(e.ErrNotFound).Times(1)

	svc := service.NewAdminReportService(repo)

	err := svc.UpdateStatus(context.Background(), id, domain.UpdateReportStatusRequest{Status: domain.ReportVerified})
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// --- Delete ---

func TestAdminReportService_Delete_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)

	id := uuid.New()
	repo.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

	svc := service.NewAdminReportService(repo)

	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestAdminReportService_Delete_RepoError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)

	id := uuid.New()
	repo.EXPECT().Delete(gomock.Any(), id).Return(errors.New("db error")).Times(1)

	svc := service.NewAdminReportService(repo)

	if err := svc.Delete(context.Background(), id); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
