package service

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/capacity"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/domain"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/geo"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/pkg/e"
)

const (
	defaultNearbyLimit = 5
	maxNearbyLimit     = 50
)

type locationService struct {
	validator *geo.Validator
	centers   CenterRepository
	checks    LocationCheckRepository
	logger    *slog.Logger
}

func NewLocationService(v *geo.Validator, centers CenterRepository, checks LocationCheckRepository, logger *slog.Logger) LocationService {
	return &locationService{
		validator: v,
		centers:   centers,
		checks:    checks,
		logger:    logger,
	}
}

// CheckLocation runs a map tap, marker drag or GPS fix through the shared
// geofence. Out-of-bounds samples are recorded and returned as
// *e.OutOfBoundsError; in-bounds samples get the nearest active centers.
func (s *locationService) CheckLocation(ctx context.Context, req domain.LocationCheckRequest) (domain.LocationCheckResponse, error) {
	sample := geo.Sample{
		Source:         geo.Source(req.Source),
		Lat:            req.Lat,
		Lng:            req.Lng,
		AccuracyMeters: req.AccuracyMeters,
	}

	checkErr := s.validator.CheckSample(sample)
	if checkErr != nil && !errors.Is(checkErr, e.ErrOutOfBounds) {
		return domain.LocationCheckResponse{}, checkErr
	}

	resp := domain.LocationCheckResponse{InBounds: checkErr == nil, Nearby: []domain.NearbyCenter{}}
	if resp.InBounds {
		centers, err := s.centers.List(ctx, nil)
		if err != nil {
			s.logger.Error("list centers failed", slog.Any("error", err))
			return domain.LocationCheckResponse{}, err
		}
		resp.Nearby = nearest(centers, req.Lat, req.Lng, req.Limit)
	}

	check := &domain.LocationCheck{
		Source:   req.Source,
		Lat:      req.Lat,
		Lng:      req.Lng,
		InBounds: resp.InBounds,
	}
	if len(resp.Nearby) > 0 {
		id := resp.Nearby[0].ID
		check.NearestCenterID = &id
	}
	if err := s.checks.SaveCheck(ctx, check); err != nil {
		s.logger.Warn("save location check failed", slog.Any("error", err))
	}

	s.logger.Info("location check",
		slog.String("source", req.Source),
		slog.Bool("in_bounds", resp.InBounds),
		slog.Int("nearby", len(resp.Nearby)),
	)

	if checkErr != nil {
		return resp, checkErr
	}
	return resp, nil
}

// nearest orders active centers by haversine distance, ties broken by id.
func nearest(centers []domain.EvacuationCenter, lat, lng float64, limit int) []domain.NearbyCenter {
	if limit <= 0 {
		limit = defaultNearbyLimit
	}
	if limit > maxNearbyLimit {
		limit = maxNearbyLimit
	}

	active := capacity.Apply(centers, capacity.Filter{ActiveOnly: true})
	out := make([]domain.NearbyCenter, 0, len(active))
	for _, c := range active {
		out = append(out, domain.NearbyCenter{
			ID:         c.ID,
			Name:       c.Name,
			DistanceKM: geo.HaversineKM(lat, lng, c.Location.Latitude, c.Location.Longitude),
			Status:     string(capacity.Classify(c.Occupancy, c.Capacity)),
			Available:  capacity.Available(c.Occupancy, c.Capacity),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].DistanceKM != out[j].DistanceKM {
			return out[i].DistanceKM < out[j].DistanceKM
		}
		return out[i].ID.String() < out[j].ID.String()
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
