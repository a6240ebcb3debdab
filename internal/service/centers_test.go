package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/capacity"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/domain"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/geo"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/service"
	mock_service "github.com/JENIELPUSA/DisasterAppServer-sub000/internal/service/mocks"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/pkg/e"
)

type centerDeps struct {
	repo      *mock_service.MockCenterRepository
	barangays *mock_service.MockBarangayRepository
	cache     *mock_service.MockSummaryCache
	alerts    *mock_service.MockAlertQueue
	svc       service.CenterService
}

func newCenterDeps(t *testing.T) centerDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := centerDeps{
		repo:      mock_service.NewMockCenterRepository(ctrl),
		barangays: mock_service.NewMockBarangayRepository(ctrl),
		cache:     mock_service.NewMockSummaryCache(ctrl),
		alerts:    mock_service.NewMockAlertQueue(ctrl),
	}
	d.svc = service.NewCenterService(d.repo, d.barangays, d.cache, d.alerts, geo.NewValidator(geo.Biliran), discardLogger)
	return d
}

// --- Create ---

func TestCenterService_Create_OK(t *testing.T) {
	t.Parallel()
	d := newCenterDeps(t)

	barangay := uuid.New()
	d.barangays.EXPECT().Get(gomock.Any(), barangay).Return(&domain.Barangay{ID: barangay}, nil).Times(1)

	var got *domain.EvacuationCenter
	d.repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *domain.EvacuationCenter) error {
			got = c
			return nil
		}).
		Times(1)
	d.cache.EXPECT().Invalidate(gomock.Any()).Return(nil).Times(1)

	view, err := d.svc.Create(context.Background(), validDraft(barangay))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got == nil || got.ID == uuid.Nil {
		t.Fatalf("expected center with id passed to repo, got %+v", got)
	}
	if !got.Active || got.BarangayID != barangay {
		t.Fatalf("unexpected stored center: %+v", got)
	}
	if view.Status != capacity.StatusAvailable || view.Available != 180 {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestCenterService_Create_ValidationCollectsAllFields(t *testing.T) {
	t.Parallel()
	d := newCenterDeps(t)

	draft := validDraft(uuid.New())
	draft.Contact.Phone = ""
	draft.Capacity = -5

	_, err := d.svc.Create(context.Background(), draft)
	if !errors.Is(err, e.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	var verr *e.ValidationError
	if !errors.As(err, &verr) || !verr.Has("phone") || !verr.Has("capacity") {
		t.Fatalf("expected phone and capacity errors, got %v", err)
	}
}

func TestCenterService_Create_OutOfBounds(t *testing.T) {
	t.Parallel()
	d := newCenterDeps(t)

	draft := validDraft(uuid.New())
	draft.Location.Latitude = 11.86

	_, err := d.svc.Create(context.Background(), draft)
	var verr *e.ValidationError
	if !errors.As(err, &verr) || !verr.Has("location") {
		t.Fatalf("expected location error, got %v", err)
	}
}

func TestCenterService_Create_UnknownBarangay(t *testing.T) {
	t.Parallel()
	d := newCenterDeps(t)

	barangay := uuid.New()
	d.barangays.EXPECT().Get(gomock.Any(), barangay).Return(nil, e.ErrNotFound).Times(1)

	_, err := d.svc.Create(context.Background(), validDraft(barangay))
	var ref *e.ReferenceError
	if !errors.As(err, &ref) || ref.Field != "barangay_ref" || ref.ID != barangay.String() {
		t.Fatalf("expected ReferenceError on barangay_ref, got %v", err)
	}
}

func TestCenterService_Create_FullOnArrivalRaisesAlert(t *testing.T) {
	t.Parallel()
	d := newCenterDeps(t)

	barangay := uuid.New()
	draft := validDraft(barangay)
	draft.Occupancy = 190

	d.barangays.EXPECT().Get(gomock.Any(), barangay).Return(&domain.Barangay{ID: barangay}, nil)
	d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	d.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)
	d.alerts.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a domain.CapacityAlert) error {
			if a.Current != "full" || a.Previous != "no_capacity" {
				t.Errorf("unexpected alert: %+v", a)
			}
			return nil
		}).
		Times(1)

	if _, err := d.svc.Create(context.Background(), draft); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

// --- Update ---

func TestCenterService_Update_StaleVersion(t *testing.T) {
	t.Parallel()
	d := newCenterDeps(t)

	current := storedCenter(uuid.New(), 100, 10)
	d.repo.EXPECT().Get(gomock.Any(), current.ID).Return(current, nil)

	_, err := d.svc.Update(context.Background(), current.ID, domain.UpdateCenterRequest{
		Draft:   domain.DraftFromCenter(*current),
		Version: current.Version - 1,
	})
	if !errors.Is(err, e.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestCenterService_Update_InvalidLeavesStorageUntouched(t *testing.T) {
	t.Parallel()
	d := newCenterDeps(t)

	current := storedCenter(uuid.New(), 100, 10)
	d.repo.EXPECT().Get(gomock.Any(), current.ID).Return(current, nil)
	d.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	draft := domain.DraftFromCenter(*current)
	draft.Name = "ab"

	_, err := d.svc.Update(context.Background(), current.ID, domain.UpdateCenterRequest{Draft: draft})
	if !errors.Is(err, e.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestCenterService_Update_OK_KeepsIdentity(t *testing.T) {
	t.Parallel()
	d := newCenterDeps(t)

	current := storedCenter(uuid.New(), 100, 10)
	d.repo.EXPECT().Get(gomock.Any(), current.ID).Return(current, nil)
	d.repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *domain.EvacuationCenter) error {
			if c.ID != current.ID || c.Version != current.Version || c.Capacity != 150 {
				t.Errorf("unexpected update payload: %+v", c)
			}
			c.Version++
			return nil
		})
	d.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

	draft := domain.DraftFromCenter(*current)
	draft.Capacity = 150

	view, err := d.svc.Update(context.Background(), current.ID, domain.UpdateCenterRequest{Draft: draft, Version: current.Version})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if view.Version != current.Version+1 || view.Available != 140 {
		t.Fatalf("unexpected view: %+v", view)
	}
}

// --- List ---

func TestCenterService_List_FiltersByDerivedStatus(t *testing.T) {
	t.Parallel()
	d := newCenterDeps(t)

	barangay := uuid.New()
	full := storedCenter(barangay, 100, 95)
	open := storedCenter(barangay, 100, 10)
	inactiveFull := storedCenter(barangay, 10, 10)
	inactiveFull.Active = false

	d.repo.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id *uuid.UUID) ([]domain.EvacuationCenter, error) {
			if id == nil || *id != barangay {
				t.Errorf("expected barangay filter pushed to storage, got %v", id)
			}
			return []domain.EvacuationCenter{*full, *open, *inactiveFull}, nil
		})

	views, err := d.svc.List(context.Background(), domain.ListCentersRequest{
		Status:     "full",
		ActiveOnly: true,
		BarangayID: barangay.String(),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(views) != 1 || views[0].ID != full.ID {
		t.Fatalf("expected only the active full center, got %+v", views)
	}
}

func TestCenterService_List_RejectsBadFilters(t *testing.T) {
	t.Parallel()
	d := newCenterDeps(t)

	for _, req := range []domain.ListCentersRequest{
		{Status: "overflowing"},
		{BarangayID: "not-a-uuid"},
	} {
		if _, err := d.svc.List(context.Background(), req); !errors.Is(err, e.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", req, err)
		}
	}
}

// --- Occupancy ---

func TestCenterService_UpdateOccupancy_AlertsOnEnteringFull(t *testing.T) {
	t.Parallel()
	d := newCenterDeps(t)

	updated := storedCenter(uuid.New(), 100, 90)
	d.repo.EXPECT().UpdateOccupancy(gomock.Any(), updated.ID, 90, nil).Return(updated, 69, nil)
	d.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)
	d.alerts.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a domain.CapacityAlert) error {
			if a.CenterID != updated.ID || a.Previous != "available" || a.Current != "full" {
				t.Errorf("unexpected alert: %+v", a)
			}
			return nil
		})

	view, err := d.svc.UpdateOccupancy(context.Background(), updated.ID, domain.UpdateOccupancyRequest{Occupancy: 90})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if view.Status != capacity.StatusFull {
		t.Fatalf("expected full, got %s", view.Status)
	}
}

func TestCenterService_UpdateOccupancy_NoAlertWithinSameBand(t *testing.T) {
	t.Parallel()
	d := newCenterDeps(t)

	updated := storedCenter(uuid.New(), 100, 95)
	d.repo.EXPECT().UpdateOccupancy(gomock.Any(), updated.ID, 95, nil).Return(updated, 92, nil)
	d.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)
	d.alerts.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Times(0)

	if _, err := d.svc.UpdateOccupancy(context.Background(), updated.ID, domain.UpdateOccupancyRequest{Occupancy: 95}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestCenterService_UpdateOccupancy_AlertFailureDoesNotFailWrite(t *testing.T) {
	t.Parallel()
	d := newCenterDeps(t)

	updated := storedCenter(uuid.New(), 100, 50)
	d.repo.EXPECT().UpdateOccupancy(gomock.Any(), updated.ID, 50, gomock.Any()).Return(updated, 100, nil)
	d.cache.EXPECT().Invalidate(gomock.Any()).Return(errors.New("redis down"))
	d.alerts.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	if _, err := d.svc.UpdateOccupancy(context.Background(), updated.ID, domain.UpdateOccupancyRequest{Occupancy: 50, HouseholdCount: intPtr(4)}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestCenterService_UpdateOccupancy_RejectsNegatives(t *testing.T) {
	t.Parallel()
	d := newCenterDeps(t)

	_, err := d.svc.UpdateOccupancy(context.Background(), uuid.New(), domain.UpdateOccupancyRequest{Occupancy: -1, HouseholdCount: intPtr(-2)})
	var verr *e.ValidationError
	if !errors.As(err, &verr) || !verr.Has("occupancy") || !verr.Has("household_count") {
		t.Fatalf("expected both fields rejected, got %v", err)
	}
}

// --- Delete / SetActive ---

func TestCenterService_Delete_PropagatesNotFound(t *testing.T) {
	t.Parallel()
	d := newCenterDeps(t)

	id := uuid.New()
	d.repo.EXPECT().Delete(gomock.Any(), id).Return(e.ErrNotFound)

	if err := d.svc.Delete(context.Background(), id); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCenterService_SetActive_InvalidatesCache(t *testing.T) {
	t.Parallel()
	d := newCenterDeps(t)

	c := storedCenter(uuid.New(), 100, 0)
	c.Active = false
	d.repo.EXPECT().SetActive(gomock.Any(), c.ID, false).Return(c, nil)
	d.cache.EXPECT().Invalidate(gomock.Any()).Return(nil).Times(1)

	view, err := d.svc.SetActive(context.Background(), c.ID, false)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if view.Active {
		t.Fatalf("expected inactive view")
	}
}
