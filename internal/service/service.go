package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/capacity"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go
type CenterService interface {
	Create(ctx context.Context, draft domain.CenterDraft) (*capacity.CenterView, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateCenterRequest) (*capacity.CenterView, error)
	Get(ctx context.Context, id uuid.UUID) (*capacity.CenterView, error)
	List(ctx context.Context, req domain.ListCentersRequest) ([]capacity.CenterView, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*capacity.CenterView, error)
	UpdateOccupancy(ctx context.Context, id uuid.UUID, req domain.UpdateOccupancyRequest) (*capacity.CenterView, error)
}

type BarangayService interface {
	Create(ctx context.Context, req domain.CreateBarangayRequest) (*domain.Barangay, error)
	List(ctx context.Context) ([]domain.Barangay, error)
}

type SummaryService interface {
	Overall(ctx context.Context) (capacity.Summary, error)
	ByBarangay(ctx context.Context) (map[uuid.UUID]capacity.Summary, error)
	ByMunicipality(ctx context.Context) (map[domain.Municipality]capacity.Summary, error)
	Refresh(ctx context.Context) error
}

// Public use cases.
type LocationService interface {
	CheckLocation(ctx context.Context, req domain.LocationCheckRequest) (domain.LocationCheckResponse, error)
}

type StatsService interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.LocationStats, error)
}

type CenterRepository interface {
	Create(ctx context.Context, center *domain.EvacuationCenter) error
	List(ctx context.Context, barangayID *uuid.UUID) ([]domain.EvacuationCenter, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.EvacuationCenter, error)
	Update(ctx context.Context, center *domain.EvacuationCenter) error
	Delete(ctx context.Context, id uuid.UUID) error
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

// SummaryCache writes carry the generation read before the storage snapshot
// was taken. A write whose generation was bumped by Invalidate is dropped.
type SummaryCache interface {
	Generation(ctx context.Context) (int64, error)
	GetOverall(ctx context.Context) (capacity.Summary, bool, error)
	SetOverall(ctx context.Context, gen int64, s capacity.Summary, ttl time.Duration) error
	GetByBarangay(ctx context.Context) (map[uuid.UUID]capacity.Summary, bool, error)
	SetByBarangay(ctx context.Context, gen int64, rollup map[uuid.UUID]capacity.Summary, ttl time.Duration) error
	GetByMunicipality(ctx context.Context) (map[domain.Municipality]capacity.Summary, bool, error)
	SetByMunicipality(ctx context.Context, gen int64, rollup map[domain.Municipality]capacity.Summary, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

type AlertQueue interface {
	Enqueue(ctx context.Context, alert domain.CapacityAlert) error
	BRPop(ctx context.Context, timeout time.Duration) (domain.CapacityAlert, error)
}

type Service struct {
	CenterService   CenterService
	BarangayService BarangayService
	SummaryService  SummaryService
	LocationService LocationService
	StatsService    StatsService
}

func NewService(
	centerService CenterService,
	barangayService BarangayService,
	summaryService SummaryService,
	locationService LocationService,
	statsService StatsService,
) *Service {
	return &Service{
		CenterService:   centerService,
		BarangayService: barangayService,
		SummaryService:  summaryService,
		LocationService: locationService,
		StatsService:    statsService,
	}
}
