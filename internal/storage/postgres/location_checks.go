package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/domain"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/pkg/e"
)

type LocationCheckRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewLocationCheckRepo(pool *pgxpool.Pool, logger *slog.Logger) *LocationCheckRepo {
	return &LocationCheckRepo{pool: pool, logger: logger}
}

func (p *LocationCheckRepo) SaveCheck(ctx context.Context, check *domain.LocationCheck) error {
	const op = "postgres.LocationCheck.Save"

	if check == nil || check.Source == "" {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		INSERT INTO location_checks (id, source, lat, lng, in_bounds, nearest_center_id, checked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if check.ID == uuid.Nil {
		check.ID = uuid.New()
	}
	if check.CheckedAt.IsZero() {
		check.CheckedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		check.ID,
		check.Source,
		check.Lat,
		check.Lng,
		check.InBounds,
		check.NearestCenterID,
		check.CheckedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

// CountChecks tallies checks over the trailing window, grouped by source.
func (p *LocationCheckRepo) CountChecks(ctx context.Context, minutes int) (*domain.LocationStats, error) {
	const op = "postgres.LocationCheck.CountChecks"

	if minutes <= 0 || minutes > 1440 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		SELECT source,
			   COUNT(*),
			   COUNT(*) FILTER (WHERE NOT in_bounds)
		FROM location_checks
		WHERE checked_at >= NOW() - ($1 * INTERVAL '1 minute')
		GROUP BY source
	`

	rows, err := p.pool.Query(ctx, query, minutes)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err), slog.Int("minutes", minutes))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	stats := &domain.LocationStats{Minutes: minutes, BySource: make(map[string]int64, 3)}
	for rows.Next() {
		var (
			source     string
			total, out int64
		)
		if err := rows.Scan(&source, &total, &out); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		stats.BySource[source] = total
		stats.TotalChecks += total
		stats.OutOfBounds += out
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return stats, nil
}
