package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/domain"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/pkg/e"
)

type BarangayRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewBarangayRepo(pool *pgxpool.Pool, logger *slog.Logger) *BarangayRepo {
	return &BarangayRepo{pool: pool, logger: logger}
}

func (p *BarangayRepo) Create(ctx context.Context, b *domain.Barangay) error {
	const op = "postgres.Barangay.Create"

	const query = `
		INSERT INTO barangays (id, name, municipality, latitude, longitude, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query, b.ID, b.Name, string(b.Municipality), b.Latitude, b.Longitude, b.CreatedAt)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *BarangayRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Barangay, error) {
	const op = "postgres.Barangay.Get"

	const query = `
		SELECT id, name, municipality, latitude, longitude, created_at
		FROM barangays
		WHERE id = $1
	`

	var b domain.Barangay
	err := p.pool.QueryRow(ctx, query, id).Scan(&b.ID, &b.Name, &b.Municipality, &b.Latitude, &b.Longitude, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &b, nil
}

func (p *BarangayRepo) List(ctx context.Context) ([]domain.Barangay, error) {
	const op = "postgres.Barangay.List"

	const query = `
		SELECT id, name, municipality, latitude, longitude, created_at
		FROM barangays
		ORDER BY municipality, name
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var out []domain.Barangay
	for rows.Next() {
		var b domain.Barangay
		if err := rows.Scan(&b.ID, &b.Name, &b.Municipality, &b.Latitude, &b.Longitude, &b.CreatedAt); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return out, nil
}
