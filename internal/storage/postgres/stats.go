package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pankajyadav-dev/ocean/internal/domain"
	"github.com/pankajyadav-dev/ocean/pkg/e"
)

type StatsRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStats(pool *pgxpool.Pool, logger *slog.Logger) *StatsRepo {
	return &StatsRepo{pool: pool, logger: logger}
}

func (p *StatsRepo) ReportStats(ctx context.Context, minutes int) (*domain.HazardStats, error) {
	const op = "postgres.Stats.ReportStats"

	if minutes <= 0 || minutes > 1440 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		SELECT kind, COUNT(*)
		FROM hazard_reports
		WHERE created_at >= NOW() - ($1 * INTERVAL '1 minute')
		GROUP BY kind
	`

	rows, err := p.pool.Query(ctx, query, minutes)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	stats := &domain.HazardStats{
		ReportsByKind: make(map[string]int64),
		WindowMinutes: minutes,
	}
	for rows.Next() {
		var kind string
		var cnt int64
		if err := rows.Scan(&kind, &cnt); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		stats.ReportsByKind[kind] = cnt
		stats.ReportCount += cnt
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	const recipientQuery = `SELECT COUNT(*) FROM recipients`
	if err := p.pool.QueryRow(ctx, recipientQuery).Scan(&stats.RecipientCount); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return stats, nil
}
