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

const centerColumns = `id, name, latitude, longitude, address, capacity, occupancy, household_count,
	contact_name, contact_phone, contact_email, active, barangay_id, version, created_at, updated_at`

const centerColumnsC = `c.id, c.name, c.latitude, c.longitude, c.address, c.capacity, c.occupancy, c.household_count,
	c.contact_name, c.contact_phone, c.contact_email, c.active, c.barangay_id, c.version, c.created_at, c.updated_at`

type CenterRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewCenterRepo(pool *pgxpool.Pool, logger *slog.Logger) *CenterRepo {
	return &CenterRepo{pool: pool, logger: logger}
}

func scanCenter(row pgx.Row, extra ...any) (domain.EvacuationCenter, error) {
	var c domain.EvacuationCenter
	dest := append([]any{
		&c.ID,
		&c.Name,
		&c.Location.Latitude,
		&c.Location.Longitude,
		&c.Location.Address,
		&c.Capacity,
		&c.Occupancy,
		&c.HouseholdCount,
		&c.Contact.Name,
		&c.Contact.Phone,
		&c.Contact.Email,
		&c.Active,
		&c.BarangayID,
		&c.Version,
		&c.CreatedAt,
		&c.UpdatedAt,
	}, extra...)
	err := row.Scan(dest...)
	return c, err
}

func (p *CenterRepo) Create(ctx context.Context, center *domain.EvacuationCenter) error {
	const op = "postgres.Center.Create"

	const query = `
		INSERT INTO evacuation_centers (` + centerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	if center.ID == uuid.Nil {
		center.ID = uuid.New()
	}
	now := time.Now().UTC()
	if center.CreatedAt.IsZero() {
		center.CreatedAt = now
	}
	center.UpdatedAt = now
	if center.Version == 0 {
		center.Version = 1
	}

	_, err := p.pool.Exec(ctx, query,
		center.ID,
		center.Name,
		center.Location.Latitude,
		center.Location.Longitude,
		center.Location.Address,
		center.Capacity,
		center.Occupancy,
		center.HouseholdCount,
		center.Contact.Name,
		center.Contact.Phone,
		center.Contact.Email,
		center.Active,
		center.BarangayID,
		center.Version,
		center.CreatedAt,
		center.UpdatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}

// List returns every center, active or not. A nil barangayID means all barangays.
func (p *CenterRepo) List(ctx context.Context, barangayID *uuid.UUID) ([]domain.EvacuationCenter, error) {
	const op = "postgres.Center.List"

	const query = `
		SELECT ` + centerColumns + `
		FROM evacuation_centers
		WHERE ($1::uuid IS NULL OR barangay_id = $1)
		ORDER BY name, id
	`

	rows, err := p.pool.Query(ctx, query, barangayID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	centers := make([]domain.EvacuationCenter, 0, 32)
	for rows.Next() {
		c, err := scanCenter(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		centers = append(centers, c)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return centers, nil
}

func (p *CenterRepo) Get(ctx context.Context, id uuid.UUID) (*domain.EvacuationCenter, error) {
	const op = "postgres.Center.Get"

	const query = `SELECT ` + centerColumns + ` FROM evacuation_centers WHERE id = $1`

	c, err := scanCenter(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &c, nil
}

// Update writes every editable column when center.Version still matches the
// stored row. On success center.Version and center.UpdatedAt are advanced.
func (p *CenterRepo) Update(ctx context.Context, center *domain.EvacuationCenter) error {
	const op = "postgres.Center.Update"

	const query = `
		UPDATE evacuation_centers
		SET name            = $3,
			latitude        = $4,
			longitude       = $5,
			address         = $6,
			capacity        = $7,
			occupancy       = $8,
			household_count = $9,
			contact_name    = $10,
			contact_phone   = $11,
			contact_email   = $12,
			active          = $13,
			barangay_id     = $14,
			version         = version + 1,
			updated_at      = $15
		WHERE id = $1 AND version = $2
		RETURNING version, updated_at
	`

	err := p.pool.QueryRow(ctx, query,
		center.ID,
		center.Version,
		center.Name,
		center.Location.Latitude,
		center.Location.Longitude,
		center.Location.Address,
		center.Capacity,
		center.Occupancy,
		center.HouseholdCount,
		center.Contact.Name,
		center.Contact.Phone,
		center.Contact.Email,
		center.Active,
		center.BarangayID,
		time.Now().UTC(),
	).Scan(&center.Version, &center.UpdatedAt)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", center.ID.String()))
		return e.WrapError(ctx, op, err)
	}

	exists, err := p.exists(ctx, center.ID)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	if exists {
		return fmt.Errorf("%s: stale version %d: %w", op, center.Version, e.ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, e.ErrNotFound)
}

// Delete deactivates the center. Rows are never removed so history and
// roll-ups keep their capacity.
func (p *CenterRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Center.Delete"

	const query = `
		UPDATE evacuation_centers
		SET active = false, version = version + 1, updated_at = now()
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *CenterRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.EvacuationCenter, error) {
	const op = "postgres.Center.SetActive"

	const query = `
		UPDATE evacuation_centers
		SET active = $2, version = version + 1, updated_at = now()
		WHERE id = $1
		RETURNING ` + centerColumns

	c, err := scanCenter(p.pool.QueryRow(ctx, query, id, active))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &c, nil
}

// UpdateOccupancy sets the headcount and returns the updated center together
// with the occupancy it replaced. A nil households keeps the stored count.
func (p *CenterRepo) UpdateOccupancy(ctx context.Context, id uuid.UUID, occupancy int, households *int) (*domain.EvacuationCenter, int, error) {
	const op = "postgres.Center.UpdateOccupancy"

	if occupancy < 0 || (households != nil && *households < 0) {
		return nil, 0, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		WITH prev AS (
			SELECT id, occupancy FROM evacuation_centers WHERE id = $1 FOR UPDATE
		)
		UPDATE evacuation_centers c
		SET occupancy       = $2,
			household_count = COALESCE($3, c.household_count),
			version         = c.version + 1,
			updated_at      = now()
		FROM prev
		WHERE c.id = prev.id
		RETURNING ` + centerColumnsC + `, prev.occupancy`

	var previous int
	c, err := scanCenter(p.pool.QueryRow(ctx, query, id, occupancy, households), &previous)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return &c, previous, nil
}

func (p *CenterRepo) exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var ok bool
	err := p.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM evacuation_centers WHERE id = $1)`, id).Scan(&ok)
	return ok, err
}
