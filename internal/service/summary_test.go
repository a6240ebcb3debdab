package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/capacity"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/domain"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/service"
	mock_service "github.com/JENIELPUSA/DisasterAppServer-sub000/internal/service/mocks"
)

const summaryTTL = 2 * time.Minute

func TestSummaryService_Overall_CacheHit(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	repo := mock_service.NewMockCenterRepository(ctrl)
	barangays := mock_service.NewMockBarangayRepository(ctrl)
	cache := mock_service.NewMockSummaryCache(ctrl)

	want := capacity.Summary{CenterCount: 7, TotalCapacity: 700}
	cache.EXPECT().GetOverall(gomock.Any()).Return(want, true, nil)
	repo.EXPECT().List(gomock.Any(), gomock.Any()).Times(0)

	svc := service.NewSummaryService(repo, barangays, cache, summaryTTL, discardLogger)
	got, err := svc.Overall(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSummaryService_Overall_MissComputesAndStores(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	repo := mock_service.NewMockCenterRepository(ctrl)
	barangays := mock_service.NewMockBarangayRepository(ctrl)
	cache := mock_service.NewMockSummaryCache(ctrl)

	b := uuid.New()
	centers := []domain.EvacuationCenter{
		*storedCenter(b, 100, 120),
		*storedCenter(b, 50, 40),
	}
	cache.EXPECT().GetOverall(gomock.Any()).Return(capacity.Summary{}, false, nil)
	cache.EXPECT().Generation(gomock.Any()).Return(int64(4), nil)
	repo.EXPECT().List(gomock.Any(), nil).Return(centers, nil)
	cache.EXPECT().
		SetOverall(gomock.Any(), int64(4), gomock.Any(), summaryTTL).
		DoAndReturn(func(_ context.Context, _ int64, s capacity.Summary, _ time.Duration) error {
			assert.Equal(t, 10, s.TotalAvailable)
			return nil
		})

	svc := service.NewSummaryService(repo, barangays, cache, summaryTTL, discardLogger)
	got, err := svc.Overall(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 150, got.TotalCapacity)
	assert.Equal(t, 160, got.TotalOccupancy)
	assert.Equal(t, 10, got.TotalAvailable)
	assert.Equal(t, 1, got.FullCount)
	assert.False(t, got.NoData)
}

func TestSummaryService_Overall_CacheErrorsDegradeToStorage(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	repo := mock_service.NewMockCenterRepository(ctrl)
	barangays := mock_service.NewMockBarangayRepository(ctrl)
	cache := mock_service.NewMockSummaryCache(ctrl)

	cache.EXPECT().GetOverall(gomock.Any()).Return(capacity.Summary{}, false, errors.New("redis down"))
	cache.EXPECT().Generation(gomock.Any()).Return(int64(0), errors.New("redis down"))
	repo.EXPECT().List(gomock.Any(), nil).Return(nil, nil)
	cache.EXPECT().SetOverall(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	svc := service.NewSummaryService(repo, barangays, cache, summaryTTL, discardLogger)
	got, err := svc.Overall(context.Background())
	require.NoError(t, err)
	assert.True(t, got.NoData)
	assert.Zero(t, got.OverallPercentage)
}

func TestSummaryService_ByMunicipality_StorageError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	repo := mock_service.NewMockCenterRepository(ctrl)
	barangays := mock_service.NewMockBarangayRepository(ctrl)
	cache := mock_service.NewMockSummaryCache(ctrl)

	wantErr := errors.New("db down")
	cache.EXPECT().GetByMunicipality(gomock.Any()).Return(nil, false, nil)
	cache.EXPECT().Generation(gomock.Any()).Return(int64(1), nil)
	repo.EXPECT().List(gomock.Any(), nil).Return([]domain.EvacuationCenter{}, nil)
	barangays.EXPECT().List(gomock.Any()).Return(nil, wantErr)

	svc := service.NewSummaryService(repo, barangays, cache, summaryTTL, discardLogger)
	_, err := svc.ByMunicipality(context.Background())
	assert.ErrorIs(t, err, wantErr)
}

func TestSummaryService_Refresh_WritesAllRollUps(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	repo := mock_service.NewMockCenterRepository(ctrl)
	barangays := mock_service.NewMockBarangayRepository(ctrl)
	cache := mock_service.NewMockSummaryCache(ctrl)

	naval := domain.Barangay{ID: uuid.New(), Municipality: domain.MunicipalityNaval}
	centers := []domain.EvacuationCenter{*storedCenter(naval.ID, 100, 50)}

	gomock.InOrder(
		cache.EXPECT().Generation(gomock.Any()).Return(int64(9), nil),
		repo.EXPECT().List(gomock.Any(), nil).Return(centers, nil).Times(1),
	)
	barangays.EXPECT().List(gomock.Any()).Return([]domain.Barangay{naval}, nil).Times(1)
	cache.EXPECT().SetOverall(gomock.Any(), int64(9), gomock.Any(), summaryTTL).Return(nil)
	cache.EXPECT().
		SetByBarangay(gomock.Any(), int64(9), gomock.Any(), summaryTTL).
		DoAndReturn(func(_ context.Context, _ int64, m map[uuid.UUID]capacity.Summary, _ time.Duration) error {
			assert.Equal(t, 50, m[naval.ID].TotalAvailable)
			return nil
		})
	cache.EXPECT().
		SetByMunicipality(gomock.Any(), int64(9), gomock.Any(), summaryTTL).
		DoAndReturn(func(_ context.Context, _ int64, m map[domain.Municipality]capacity.Summary, _ time.Duration) error {
			assert.Equal(t, 1, m[domain.MunicipalityNaval].CenterCount)
			assert.True(t, m[domain.MunicipalityMaripipi].NoData)
			return nil
		})

	svc := service.NewSummaryService(repo, barangays, cache, summaryTTL, discardLogger)
	require.NoError(t, svc.Refresh(context.Background()))
}

func TestSummaryService_Refresh_GenerationErrorSkipsSnapshot(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	repo := mock_service.NewMockCenterRepository(ctrl)
	barangays := mock_service.NewMockBarangayRepository(ctrl)
	cache := mock_service.NewMockSummaryCache(ctrl)

	wantErr := errors.New("redis down")
	cache.EXPECT().Generation(gomock.Any()).Return(int64(0), wantErr)
	repo.EXPECT().List(gomock.Any(), gomock.Any()).Times(0)

	svc := service.NewSummaryService(repo, barangays, cache, summaryTTL, discardLogger)
	assert.ErrorIs(t, svc.Refresh(context.Background()), wantErr)
}
