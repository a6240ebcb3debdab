package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JENIELPUSA/DisasterAppServer-sub000/pkg/e"
)

const schema = `
CREATE TABLE IF NOT EXISTS barangays (
	id           uuid PRIMARY KEY,
	name         text NOT NULL,
	municipality text NOT NULL,
	latitude     double precision NOT NULL,
	longitude    double precision NOT NULL,
	created_at   timestamptz NOT NULL DEFAULT now(),
	UNIQUE (municipality, name)
);

CREATE TABLE IF NOT EXISTS evacuation_centers (
	id              uuid PRIMARY KEY,
	name            text NOT NULL,
	latitude        double precision NOT NULL,
	longitude       double precision NOT NULL,
	address         text NOT NULL DEFAULT '',
	capacity        integer NOT NULL CHECK (capacity >= 0),
	occupancy       integer NOT NULL CHECK (occupancy >= 0),
	household_count integer NOT NULL CHECK (household_count >= 0),
	contact_name    text NOT NULL,
	contact_phone   text NOT NULL,
	contact_email   text NOT NULL DEFAULT '',
	active          boolean NOT NULL DEFAULT true,
	barangay_id     uuid NOT NULL REFERENCES barangays (id),
	version         bigint NOT NULL DEFAULT 1,
	created_at      timestamptz NOT NULL,
	updated_at      timestamptz NOT NULL
);

CREATE INDEX IF NOT EXISTS evacuation_centers_barangay_idx ON evacuation_centers (barangay_id);

CREATE TABLE IF NOT EXISTS location_checks (
	id                uuid PRIMARY KEY,
	source            text NOT NULL,
	lat               double precision NOT NULL,
	lng               double precision NOT NULL,
	in_bounds         boolean NOT NULL,
	nearest_center_id uuid NULL,
	checked_at        timestamptz NOT NULL
);

CREATE INDEX IF NOT EXISTS location_checks_checked_at_idx ON location_checks (checked_at);
`

// Migrate creates the tables if they are missing. Every statement is idempotent.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	const op = "postgres.Migrate"
	if _, err := pool.Exec(ctx, schema); err != nil {
		return e.WrapError(ctx, op, err)
	}
	return nil
}
