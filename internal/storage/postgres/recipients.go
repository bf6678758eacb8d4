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

// RecipientRepo is the geospatial index over registered users. Recipients
// without a stored location are invisible to FindWithinRadius.
type RecipientRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewRecipientRepo(pool *pgxpool.Pool, logger *slog.Logger) *RecipientRepo {
	return &RecipientRepo{pool: pool, logger: logger}
}

func (p *RecipientRepo) Register(ctx context.Context, rec *domain.RecipientProfile) error {
	const op = "postgres.Recipient.Register"

	if rec == nil || rec.Name == "" {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		INSERT INTO recipients (id, name, email, phone, geo_point, created_at)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULL, $5)
	`

	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		rec.ID,
		rec.Name,
		rec.Email,
		rec.Phone,
		rec.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *RecipientRepo) UpdateLocation(ctx context.Context, id uuid.UUID, lat, lng float64) error {
	const op = "postgres.Recipient.UpdateLocation"

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	const query = `
		UPDATE recipients
		SET geo_point = ST_SetSRID(ST_MakePoint($2, $3), 4326)
		WHERE id = $1
	`

	tag, err := p.pool.Exec(ctx, query, id, lng, lat)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

// FindWithinRadius returns recipients whose last-known location is within
// radiusMeters of (lat, lng), nearest first, ties broken by id.
func (p *RecipientRepo) FindWithinRadius(ctx context.Context, lat, lng, radiusMeters float64) ([]domain.RecipientProfile, error) {
	const op = "postgres.Recipient.FindWithinRadius"

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 || radiusMeters <= 0 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	// geo_point is geography, so ST_DWithin/ST_Distance work in meters.
	const query = `
		SELECT id, name, COALESCE(email, ''), COALESCE(phone, ''),
		       ST_Y(geo_point::geometry), ST_X(geo_point::geometry),
		       ST_Distance(geo_point, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography) AS distance_m,
		       created_at
		FROM recipients
		WHERE geo_point IS NOT NULL
		  AND ST_DWithin(geo_point, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $3)
		ORDER BY distance_m ASC, id ASC
	`

	rows, err := p.pool.Query(ctx, query, lng, lat, radiusMeters)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, e.ErrLookupFailed)
	}
	defer rows.Close()

	recipients := make([]domain.RecipientProfile, 0, 8)
	for rows.Next() {
		var rec domain.RecipientProfile
		var ptLat, ptLng float64
		if err := rows.Scan(
			&rec.ID, &rec.Name, &rec.Email, &rec.Phone,
			&ptLat, &ptLng,
			&rec.DistanceMeters,
			&rec.CreatedAt,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, fmt.Errorf("%s: %w", op, e.ErrLookupFailed)
		}
		rec.Location = &domain.GeoPoint{Lat: ptLat, Lng: ptLng}
		recipients = append(recipients, rec)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, e.ErrLookupFailed)
	}

	return recipients, nil
}
