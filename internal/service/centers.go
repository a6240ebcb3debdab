package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/capacity"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/domain"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/geo"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/lifecycle"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/pkg/e"
)

type centerService struct {
	repo      CenterRepository
	barangays BarangayRepository
	cache     SummaryCache
	alerts    AlertQueue
	geofence  *geo.Validator
	logger    *slog.Logger
	now       func() time.Time
}

func NewCenterService(
	repo CenterRepository,
	barangays BarangayRepository,
	cache SummaryCache,
	alerts AlertQueue,
	geofence *geo.Validator,
	logger *slog.Logger,
) CenterService {
	return &centerService{
		repo:      repo,
		barangays: barangays,
		cache:     cache,
		alerts:    alerts,
		geofence:  geofence,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *centerService) Create(ctx context.Context, draft domain.CenterDraft) (*capacity.CenterView, error) {
	const op = "service.Center.Create"

	v, err := lifecycle.Validate(draft, s.geofence)
	if err != nil {
		return nil, err
	}
	if err := s.resolveBarangay(ctx, v.Center().BarangayID); err != nil {
		return nil, err
	}

	c := lifecycle.Persist(v, uuid.New()).Center()
	if err := s.repo.Create(ctx, &c); err != nil {
		return nil, e.Wrap(op, err)
	}
	s.logger.Info("center created",
		slog.String("id", c.ID.String()),
		slog.String("barangay_id", c.BarangayID.String()),
		slog.Int("capacity", c.Capacity),
	)

	s.invalidate(ctx)
	s.alertOnTransition(ctx, capacity.StatusNoCapacity, c)

	view := capacity.View(c)
	return &view, nil
}

func (s *centerService) Update(ctx context.Context, id uuid.UUID, req domain.UpdateCenterRequest) (*capacity.CenterView, error) {
	const op = "service.Center.Update"

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if req.Version != 0 && req.Version != current.Version {
		return nil, fmt.Errorf("%s: version %d is stale, current %d: %w", op, req.Version, current.Version, e.ErrConflict)
	}

	rec, err := lifecycle.FromStorage(*current).Edit(req.Draft, s.geofence)
	if err != nil {
		return nil, err
	}
	next := rec.Center()
	if next.BarangayID != current.BarangayID {
		if err := s.resolveBarangay(ctx, next.BarangayID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, &next); err != nil {
		return nil, e.Wrap(op, err)
	}

	s.invalidate(ctx)
	s.alertOnTransition(ctx, capacity.Classify(current.Occupancy, current.Capacity), next)

	view := capacity.View(next)
	return &view, nil
}

func (s *centerService) Get(ctx context.Context, id uuid.UUID) (*capacity.CenterView, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	view := capacity.View(*c)
	return &view, nil
}

func (s *centerService) List(ctx context.Context, req domain.ListCentersRequest) ([]capacity.CenterView, error) {
	filter, err := filterFromRequest(req)
	if err != nil {
		return nil, err
	}

	centers, err := s.repo.List(ctx, filter.BarangayID)
	if err != nil {
		return nil, err
	}

	return capacity.Views(capacity.Apply(centers, filter)), nil
}

func (s *centerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("center deactivated", slog.String("id", id.String()))
	s.invalidate(ctx)
	return nil
}

func (s *centerService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*capacity.CenterView, error) {
	c, err := s.repo.SetActive(ctx, id, active)
	if err != nil {
		return nil, err
	}
	s.logger.Info("center availability changed",
		slog.String("id", id.String()),
		slog.String("state", string(lifecycle.FromStorage(*c).State())),
	)
	s.invalidate(ctx)

	view := capacity.View(*c)
	return &view, nil
}

func (s *centerService) UpdateOccupancy(ctx context.Context, id uuid.UUID, req domain.UpdateOccupancyRequest) (*capacity.CenterView, error) {
	const op = "service.Center.UpdateOccupancy"

	verr := &e.ValidationError{}
	if req.Occupancy < 0 {
		verr.Add("occupancy", "must be 0 or greater")
	}
	if req.HouseholdCount != nil && *req.HouseholdCount < 0 {
		verr.Add("household_count", "must be 0 or greater")
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	c, previous, err := s.repo.UpdateOccupancy(ctx, id, req.Occupancy, req.HouseholdCount)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	s.invalidate(ctx)
	s.alertOnTransition(ctx, capacity.Classify(previous, c.Capacity), *c)

	view := capacity.View(*c)
	return &view, nil
}

func (s *centerService) resolveBarangay(ctx context.Context, id uuid.UUID) error {
	if _, err := s.barangays.Get(ctx, id); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return &e.ReferenceError{Field: "barangay_ref", ID: id.String()}
		}
		return err
	}
	return nil
}

// alertOnTransition queues an alert when a center becomes full or stops being
// full. Queue failures are logged and never fail the write.
func (s *centerService) alertOnTransition(ctx context.Context, previous capacity.Status, c domain.EvacuationCenter) {
	current := capacity.Classify(c.Occupancy, c.Capacity)
	if (previous == capacity.StatusFull) == (current == capacity.StatusFull) {
		return
	}
	if s.alerts == nil {
		return
	}

	alert := domain.CapacityAlert{
		CenterID:   c.ID,
		CenterName: c.Name,
		BarangayID: c.BarangayID,
		Previous:   string(previous),
		Current:    string(current),
		Occupancy:  c.Occupancy,
		Capacity:   c.Capacity,
		RaisedAt:   s.now(),
	}
	if err := s.alerts.Enqueue(ctx, alert); err != nil {
		s.logger.Error("enqueue capacity alert failed", slog.String("center_id", c.ID.String()), slog.Any("error", err))
		return
	}
	s.logger.Info("capacity alert enqueued",
		slog.String("center_id", c.ID.String()),
		slog.String("previous", alert.Previous),
		slog.String("current", alert.Current),
	)
}

func (s *centerService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("summary cache invalidate failed", slog.Any("error", err))
	}
}

func filterFromRequest(req domain.ListCentersRequest) (capacity.Filter, error) {
	f := capacity.Filter{
		Query:      req.Query,
		ActiveOnly: req.ActiveOnly,
	}
	if st := strings.TrimSpace(req.Status); st != "" {
		status, err := capacity.ParseStatus(st)
		if err != nil {
			return capacity.Filter{}, err
		}
		f.Status = &status
	}
	if b := strings.TrimSpace(req.BarangayID); b != "" {
		id, err := uuid.Parse(b)
		if err != nil {
			return capacity.Filter{}, fmt.Errorf("barangay_id %q: %w", b, e.ErrInvalidInput)
		}
		f.BarangayID = &id
	}
	return f, nil
}
