package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/pankajyadav-dev/ocean/internal/domain"
	"github.com/pankajyadav-dev/ocean/internal/service"
	mock_service "github.com/pankajyadav-dev/ocean/internal/service/mocks"
)

func TestStatsService_GetStats_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockStatsRepository(ctrl)

	want := &domain.HazardStats{
		ReportCount:    7,
		ReportsByKind:  map[string]int64{"oil_spill": 4, "debris": 3},
		RecipientCount: 120,
		WindowMinutes:  30,
	}
	repo.EXPECT().ReportStats(gomock.Any(), 30).Return(want, nil).Times(1)

	svc := service.NewStatsService(repo)

	got, err := svc.GetStats(context.Background(), domain.StatsRequest{Minutes: 30})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ReportCount != 7 || got.RecipientCount != 120 {
		t.Fatalf("unexpected stats: %+v", got)
	}
}

func TestStatsService_GetStats_DefaultWindow(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockStatsRepository(ctrl)
	repo.EXPECT().ReportStats(gomock.Any(), 60).Return(&domain.HazardStats{WindowMinutes: 60}, nil).Times(1)

	svc := service.NewStatsService(repo)

	if _, err := svc.GetStats(context.Background(), domain.StatsRequest{}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestStatsService_GetStats_RepoError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockStatsRepository(ctrl)
	repo.EXPECT().ReportStats(gomock.Any(), 60).Return(nil, errors.New("db error")).Times(1)

	svc := service.NewStatsService(repo)

	if _, err := svc.GetStats(context.Background(), domain.StatsRequest{Minutes: 60}); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
