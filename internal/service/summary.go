package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/capacity"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/domain"
)

// summaryService serves roll-ups cache-aside. Cache failures degrade to a
// storage read and are only logged.
type summaryService struct {
	centers   CenterRepository
	barangays BarangayRepository
	cache     SummaryCache
	ttl       time.Duration
	logger    *slog.Logger
}

func NewSummaryService(centers CenterRepository, barangays BarangayRepository, cache SummaryCache, ttl time.Duration, logger *slog.Logger) SummaryService {
	return &summaryService{
		centers:   centers,
		barangays: barangays,
		cache:     cache,
		ttl:       ttl,
		logger:    logger,
	}
}

func (s *summaryService) Overall(ctx context.Context) (capacity.Summary, error) {
	if cached, ok, err := s.cache.GetOverall(ctx); err != nil {
		s.logger.Warn("summary cache read failed", slog.String("key", "overall"), slog.Any("error", err))
	} else if ok {
		return cached, nil
	}

	gen, ok := s.generation(ctx)
	centers, err := s.centers.List(ctx, nil)
	if err != nil {
		return capacity.Summary{}, err
	}
	summary := capacity.Aggregate(centers)

	if ok {
		if err := s.cache.SetOverall(ctx, gen, summary, s.ttl); err != nil {
			s.logger.Warn("summary cache write failed", slog.String("key", "overall"), slog.Any("error", err))
		}
	}
	return summary, nil
}

func (s *summaryService) ByBarangay(ctx context.Context) (map[uuid.UUID]capacity.Summary, error) {
	if cached, ok, err := s.cache.GetByBarangay(ctx); err != nil {
		s.logger.Warn("summary cache read failed", slog.String("key", "barangay"), slog.Any("error", err))
	} else if ok {
		return cached, nil
	}

	gen, ok := s.generation(ctx)
	centers, err := s.centers.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	byBarangay := capacity.ByBarangay(centers)

	if ok {
		if err := s.cache.SetByBarangay(ctx, gen, byBarangay, s.ttl); err != nil {
			s.logger.Warn("summary cache write failed", slog.String("key", "barangay"), slog.Any("error", err))
		}
	}
	return byBarangay, nil
}

func (s *summaryService) ByMunicipality(ctx context.Context) (map[domain.Municipality]capacity.Summary, error) {
	if cached, ok, err := s.cache.GetByMunicipality(ctx); err != nil {
		s.logger.Warn("summary cache read failed", slog.String("key", "municipality"), slog.Any("error", err))
	} else if ok {
		return cached, nil
	}

	gen, ok := s.generation(ctx)
	centers, err := s.centers.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	barangays, err := s.barangays.List(ctx)
	if err != nil {
		return nil, err
	}
	byMunicipality := capacity.ByMunicipality(centers, barangays)

	if ok {
		if err := s.cache.SetByMunicipality(ctx, gen, byMunicipality, s.ttl); err != nil {
			s.logger.Warn("summary cache write failed", slog.String("key", "municipality"), slog.Any("error", err))
		}
	}
	return byMunicipality, nil
}

// Refresh recomputes every roll-up from one storage snapshot and overwrites the cache.
func (s *summaryService) Refresh(ctx context.Context) error {
	gen, err := s.cache.Generation(ctx)
	if err != nil {
		return err
	}
	centers, err := s.centers.List(ctx, nil)
	if err != nil {
		return err
	}
	barangays, err := s.barangays.List(ctx)
	if err != nil {
		return err
	}

	overall := capacity.Aggregate(centers)
	if err := s.cache.SetOverall(ctx, gen, overall, s.ttl); err != nil {
		return err
	}
	if err := s.cache.SetByBarangay(ctx, gen, capacity.ByBarangay(centers), s.ttl); err != nil {
		return err
	}
	if err := s.cache.SetByMunicipality(ctx, gen, capacity.ByMunicipality(centers, barangays), s.ttl); err != nil {
		return err
	}

	s.logger.Debug("summaries refreshed",
		slog.Int("centers", overall.CenterCount),
		slog.Int("total_available", overall.TotalAvailable),
		slog.Bool("no_data", overall.NoData),
	)
	return nil
}

// generation is read before the storage snapshot. ok=false means the cache is
// unreachable and the computed roll-up is served without being stored.
func (s *summaryService) generation(ctx context.Context) (int64, bool) {
	gen, err := s.cache.Generation(ctx)
	if err != nil {
		s.logger.Warn("summary cache generation read failed", slog.Any("error", err))
		return 0, false
	}
	return gen, true
}
