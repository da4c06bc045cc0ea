package usecase_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/covid-stats/internal/domain"
)

// MockStatsAPIRepository is a mock of StatsAPIRepository
type MockStatsAPIRepository struct {
	mock.Mock
}

func (m *MockStatsAPIRepository) GetSummary(ctx context.Context) ([]domain.CountrySnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CountrySnapshot), args.Error(1)
}

func (m *MockStatsAPIRepository) GetHistorical(ctx context.Context, country string) (*domain.CountryHistorical, error) {
	args := m.Called(ctx, country)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CountryHistorical), args.Error(1)
}

func (m *MockStatsAPIRepository) GetGlobalHistorical(ctx context.Context) (*domain.GlobalHistorical, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GlobalHistorical), args.Error(1)
}

// MockSnapshotRepository is a mock of SnapshotRepository
type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) SaveSummary(ctx context.Context, runID uuid.UUID, fetchedAt time.Time, snapshots []domain.CountrySnapshot) error {
	args := m.Called(ctx, runID, fetchedAt, snapshots)
	return args.Error(0)
}

func (m *MockSnapshotRepository) LatestByISO3(ctx context.Context, iso3 []string) ([]domain.ArchivedSnapshot, error) {
	args := m.Called(ctx, iso3)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ArchivedSnapshot), args.Error(1)
}
