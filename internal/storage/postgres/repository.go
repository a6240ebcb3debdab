package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/domain"
)

type CenterRepository interface {
	Create(ctx context.Context, center *domain.EvacuationCenter) error
	List(ctx context.Context, barangayID *uuid.UUID) ([]domain.EvacuationCenter, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.EvacuationCenter, error)
	Update(ctx context.Context, center *domain.EvacuationCenter) error
	Delete(ctx context.Context, id uuid.UUID) error // soft delete
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.EvacuationCenter, error)
	UpdateOccupancy(ctx context.Context, id uuid.UUID, occupancy int, households *int) (*domain.EvacuationCenter, int, error)
}

type BarangayRepository interface {
	Create(ctx context.Context, b *domain.Barangay) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Barangay, error)
	List(ctx context.Context) ([]domain.Barangay, error)
}

type LocationCheckRepository interface {
	SaveCheck(ctx context.Context, check *domain.LocationCheck) error
	CountChecks(ctx context.Context, minutes int) (*domain.LocationStats, error)
}

func (p *Postgres) Centers() CenterRepository               { return p.Center }
func (p *Postgres) Barangays() BarangayRepository           { return p.Barangay }
func (p *Postgres) LocationChecks() LocationCheckRepository { return p.CheckRepo }
