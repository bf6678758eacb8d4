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

// DedupRepo is the append-only authority-notification ledger. Rows are
// created once and never updated; ShouldNotifyAuthority scans history.
type DedupRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewDedupRepo(pool *pgxpool.Pool, logger *slog.Logger) *DedupRepo {
	return &DedupRepo{pool: pool, logger: logger}
}

// ShouldNotifyAuthority reports whether no prior authority email for the
// same kind has succeeded inside the ±0.1° bounding box around (lat, lng).
// Failed prior attempts do not suppress: retries are allowed until one
// succeeds. The box is a rectangle in degrees, not a geodesic radius.
func (p *DedupRepo) ShouldNotifyAuthority(ctx context.Context, kind domain.HazardKind, lat, lng float64) (bool, error) {
	const op = "postgres.Dedup.ShouldNotifyAuthority"

	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM dedup_records
			WHERE kind = $1
			  AND email_succeeded
			  AND lat BETWEEN $2 AND $3
			  AND lng BETWEEN $4 AND $5
		)
	`

	box := domain.DedupBoxDegrees
	var suppressed bool
	err := p.pool.QueryRow(ctx, query, kind, lat-box, lat+box, lng-box, lng+box).Scan(&suppressed)
	if err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return false, fmt.Errorf("%s: %w", op, e.ErrLookupFailed)
	}

	return !suppressed, nil
}

func (p *DedupRepo) RecordAttempt(ctx context.Context, kind domain.HazardKind, lat, lng float64, reportID uuid.UUID, succeeded bool) error {
	const op = "postgres.Dedup.RecordAttempt"

	const query = `
		INSERT INTO dedup_records (id, kind, lat, lng, report_id, email_succeeded, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	rec := domain.DeduplicationRecord{
		ID:             uuid.New(),
		Kind:           kind,
		Lat:            lat,
		Lng:            lng,
		ReportID:       reportID,
		EmailSucceeded: succeeded,
		CreatedAt:      time.Now().UTC(),
	}

	_, err := p.pool.Exec(ctx, query,
		rec.ID, rec.Kind, rec.Lat, rec.Lng, rec.ReportID, rec.EmailSucceeded, rec.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("report_id", reportID.String()),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}
