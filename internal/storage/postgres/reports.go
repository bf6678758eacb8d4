package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pankajyadav-dev/ocean/internal/domain"
	"github.com/pankajyadav-dev/ocean/pkg/e"
)

type ReportRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewReportRepo(pool *pgxpool.Pool, logger *slog.Logger) *ReportRepo {
	return &ReportRepo{pool: pool, logger: logger}
}

func (p *ReportRepo) Create(ctx context.Context, report *domain.HazardReport) error {
	const op = "postgres.Report.Create"

	if report == nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if report.Lat < -90 || report.Lat > 90 || report.Lng < -180 || report.Lng > 180 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	const query = `
		INSERT INTO hazard_reports (id, kind, severity, description, geo_point, image_url, status, reported_by, created_at)
		VALUES ($1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326), $7, $8, $9, $10)
	`

	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}
	if report.Status == "" {
		report.Status = domain.ReportPending
	}

	_, err := p.pool.Exec(ctx, query,
		report.ID,
		report.Kind,
		report.Severity,
		report.Description,
		report.Lng,
		report.Lat,
		report.ImageURL,
		report.Status,
		report.ReportedBy,
		report.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

const reportColumns = `
	id, kind, severity, description,
	ST_Y(geo_point::geometry), ST_X(geo_point::geometry),
	image_url, status, reported_by, created_at
`

func (p *ReportRepo) List(ctx context.Context, page, limit int) ([]*domain.HazardReport, int64, error) {
	const op = "postgres.Report.List"

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	const countQuery = `SELECT COUNT(*) FROM hazard_reports`

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	query := `SELECT ` + reportColumns + `
		FROM hazard_reports
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := p.pool.Query(ctx, query, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	reports := make([]*domain.HazardReport, 0, limit)
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return reports, total, nil
}

func (p *ReportRepo) Get(ctx context.Context, id uuid.UUID) (*domain.HazardReport, error) {
	const op = "postgres.Report.Get"

	query := `SELECT ` + reportColumns + ` FROM hazard_reports WHERE id = $1`

	row := p.pool.QueryRow(ctx, query, id)
	r, err := scanReport(row)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return r, nil
}

func (p *ReportRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus) error {
	const op = "postgres.Report.UpdateStatus"

	const query = `UPDATE hazard_reports SET status = $2 WHERE id = $1`

	tag, err := p.pool.Exec(ctx, query, id, status)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

func (p *ReportRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Report.Delete"

	tag, err := p.pool.Exec(ctx, `DELETE FROM hazard_reports WHERE id = $1`, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (*domain.HazardReport, error) {
	var r domain.HazardReport
	var description, imageURL *string
	if err := row.Scan(
		&r.ID, &r.Kind, &r.Severity, &description,
		&r.Lat, &r.Lng,
		&imageURL, &r.Status, &r.ReportedBy, &r.CreatedAt,
	); err != nil {
		return nil, err
	}
	if description != nil {
		r.Description = *description
	}
	if imageURL != nil {
		r.ImageURL = *imageURL
	}
	return &r, nil
}
