package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/covid-stats/internal/domain"
	"github.com/covid-stats/internal/usecase"
)

func testGlobal() *domain.GlobalHistorical {
	return &domain.GlobalHistorical{Timeline: domain.Timeline{
		Cases:     domain.DateSeries{"3/1/22": 5, "3/2/22": 6},
		Deaths:    domain.DateSeries{"3/1/22": 1},
		Recovered: domain.DateSeries{"3/1/22": 2},
	}}
}

func TestRefreshUseCase_RefreshAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success with archive", func(t *testing.T) {
		api := &MockStatsAPIRepository{}
		archive := &MockSnapshotRepository{}
		client := usecase.NewStatsClient(api, zap.NewNop())
		uc := usecase.NewRefreshUseCase(client, archive, zap.NewNop())

		api.On("GetSummary", ctx).Return(testSummary(), nil)
		api.On("GetGlobalHistorical", ctx).Return(testGlobal(), nil)
		archive.On("SaveSummary", ctx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("time.Time"), testSummary()).Return(nil)

		result, err := uc.RefreshAll(ctx)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, result.RunID)
		assert.Equal(t, 1, result.Countries)
		assert.Equal(t, 2, result.GlobalDays)
		assert.True(t, result.Archived)

		locations, err := client.CountriesWithLocation(domain.DefaultViewState())
		require.NoError(t, err)
		assert.Len(t, locations, 1)

		timeline, err := client.GlobalTimeline()
		require.NoError(t, err)
		assert.Len(t, timeline, 2)

		api.AssertExpectations(t)
		archive.AssertExpectations(t)
	})

	t.Run("archive failure is not fatal", func(t *testing.T) {
		api := &MockStatsAPIRepository{}
		archive := &MockSnapshotRepository{}
		client := usecase.NewStatsClient(api, zap.NewNop())
		uc := usecase.NewRefreshUseCase(client, archive, zap.NewNop())

		api.On("GetSummary", ctx).Return(testSummary(), nil)
		archive.On("SaveSummary", ctx, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("db down"))

		result, err := uc.RefreshSummary(ctx)
		require.NoError(t, err)
		assert.False(t, result.Archived)

		_, err = client.DeathsByCountry()
		assert.NoError(t, err)
	})

	t.Run("without archive", func(t *testing.T) {
		api := &MockStatsAPIRepository{}
		client := usecase.NewStatsClient(api, zap.NewNop())
		uc := usecase.NewRefreshUseCase(client, nil, zap.NewNop())

		api.On("GetSummary", ctx).Return(testSummary(), nil)

		result, err := uc.RefreshSummary(ctx)
		require.NoError(t, err)
		assert.False(t, result.Archived)

		_, err = uc.LatestArchived(ctx, nil)
		assert.ErrorIs(t, err, usecase.ErrArchiveDisabled)
	})

	t.Run("summary failure keeps previous data", func(t *testing.T) {
		api := &MockStatsAPIRepository{}
		client := usecase.NewStatsClient(api, zap.NewNop())
		client.SetSummary(testSummary())
		uc := usecase.NewRefreshUseCase(client, nil, zap.NewNop())

		api.On("GetSummary", ctx).Return(nil, errors.New("timeout"))

		result, err := uc.RefreshAll(ctx)
		assert.Nil(t, result)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "refresh summary")

		deaths, err := client.DeathsByCountry()
		require.NoError(t, err)
		assert.Equal(t, int64(10), deaths[0].Deaths)
		api.AssertNotCalled(t, "GetGlobalHistorical", mock.Anything)
	})

	t.Run("global failure", func(t *testing.T) {
		api := &MockStatsAPIRepository{}
		client := usecase.NewStatsClient(api, zap.NewNop())
		uc := usecase.NewRefreshUseCase(client, nil, zap.NewNop())

		api.On("GetSummary", ctx).Return(testSummary(), nil)
		api.On("GetGlobalHistorical", ctx).Return(nil, errors.New("bad gateway"))

		_, err := uc.RefreshAll(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "refresh global historical")

		_, err = client.GlobalTimeline()
		assert.ErrorIs(t, err, usecase.ErrGlobalNotLoaded)
	})
}

type fakeInvalidator struct {
	calls int
	err   error
}

func (f *fakeInvalidator) Invalidate(ctx context.Context) (int, error) {
	f.calls++
	return 2, f.err
}

func TestRefreshUseCase_ForceRefreshAll(t *testing.T) {
	ctx := context.Background()

	t.Run("without cache behaves like RefreshAll", func(t *testing.T) {
		api := &MockStatsAPIRepository{}
		uc := usecase.NewRefreshUseCase(usecase.NewStatsClient(api, zap.NewNop()), nil, zap.NewNop())
		api.On("GetSummary", ctx).Return(testSummary(), nil)
		api.On("GetGlobalHistorical", ctx).Return(testGlobal(), nil)

		result, err := uc.ForceRefreshAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Countries)
	})

	t.Run("invalidates cache first", func(t *testing.T) {
		api := &MockStatsAPIRepository{}
		inv := &fakeInvalidator{}
		uc := usecase.NewRefreshUseCase(usecase.NewStatsClient(api, zap.NewNop()), nil, zap.NewNop())
		uc.SetCacheInvalidator(inv)
		api.On("GetSummary", ctx).Return(testSummary(), nil)
		api.On("GetGlobalHistorical", ctx).Return(testGlobal(), nil)

		_, err := uc.ForceRefreshAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, inv.calls)
	})

	t.Run("invalidation failure aborts refresh", func(t *testing.T) {
		api := &MockStatsAPIRepository{}
		uc := usecase.NewRefreshUseCase(usecase.NewStatsClient(api, zap.NewNop()), nil, zap.NewNop())
		uc.SetCacheInvalidator(&fakeInvalidator{err: errors.New("connection refused")})

		_, err := uc.ForceRefreshAll(ctx)
		assert.ErrorIs(t, err, usecase.ErrCacheInvalidation)
		api.AssertNotCalled(t, "GetSummary", mock.Anything)
	})
}

func TestRefreshUseCase_RefreshCountry(t *testing.T) {
	ctx := context.Background()
	api := &MockStatsAPIRepository{}
	client := usecase.NewStatsClient(api, zap.NewNop())
	uc := usecase.NewRefreshUseCase(client, nil, zap.NewNop())

	hist := &domain.CountryHistorical{
		Country:  "Testland",
		Province: []string{"mainland"},
		Timeline: domain.Timeline{
			Cases:     domain.DateSeries{"3/1/22": 5},
			Deaths:    domain.DateSeries{"3/1/22": 1},
			Recovered: domain.DateSeries{"3/1/22": 2},
		},
	}
	api.On("GetHistorical", ctx, "Testland").Return(hist, nil)

	result, err := uc.RefreshCountry(ctx, "Testland")
	require.NoError(t, err)
	assert.Equal(t, "Testland", result.Country)
	assert.Equal(t, []string{"mainland"}, result.Province)
	require.Len(t, result.Timeline, 1)

	cached, err := client.CountryTimeline()
	require.NoError(t, err)
	assert.Equal(t, result.Timeline, cached)
}

func TestRefreshUseCase_LatestArchived(t *testing.T) {
	ctx := context.Background()
	archive := &MockSnapshotRepository{}
	uc := usecase.NewRefreshUseCase(usecase.NewStatsClient(&MockStatsAPIRepository{}, zap.NewNop()), archive, zap.NewNop())

	rows := []domain.ArchivedSnapshot{{Country: "Testland", ISO3: "TST", Cases: 100}}
	archive.On("LatestByISO3", ctx, []string{"TST"}).Return(rows, nil)
	archive.On("LatestByISO3", ctx, []string{"ERR"}).Return(nil, errors.New("db down"))

	got, err := uc.LatestArchived(ctx, []string{"TST"})
	require.NoError(t, err)
	assert.Equal(t, rows, got)

	_, err = uc.LatestArchived(ctx, []string{"ERR"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}
