package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pankajyadav-dev/ocean/internal/domain"
	"github.com/pankajyadav-dev/ocean/pkg/e"
	"github.com/pankajyadav-dev/ocean/pkg/validator"
)

type adminReportService struct {
	repo ReportRepository
}

func NewAdminReportService(repo ReportRepository) AdminReportService {
	return &adminReportService{repo: repo}
}

func (s *adminReportService) List(ctx context.Context, page, limit int) ([]*domain.HazardReport, int64, error) {
	return s.repo.List(ctx, page, limit)
}

func (s *adminReportService) Get(ctx context.Context, id uuid.UUID) (*domain.HazardReport, error) {
	return s.repo.Get(ctx, id)
}

func (s *adminReportService) UpdateStatus(ctx context.Context, id uuid.UUID, req domain.UpdateReportStatusRequest) error {
	if err := validator.ValidateStruct(req); err != nil {
		return fmt.Errorf("%w: %v", e.ErrInvalidInput, err)
	}
	return s.repo.UpdateStatus(ctx, id, req.Status)
}

func (s *adminReportService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
