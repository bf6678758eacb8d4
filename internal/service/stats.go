package service

import (
	"context"

	"github.com/pankajyadav-dev/ocean/internal/domain"
)

type statsService struct {
	repo StatsRepository
}

func NewStatsService(repo StatsRepository) StatsService {
	return &statsService{repo: repo}
}

func (s *statsService) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.HazardStats, error) {
	minutes := req.Minutes
	if minutes == 0 {
		minutes = 60
	}
	return s.repo.ReportStats(ctx, minutes)
}
