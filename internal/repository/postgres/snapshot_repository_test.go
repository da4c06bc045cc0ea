package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/covid-stats/internal/domain"
	"github.com/covid-stats/internal/domain/repository"
	"github.com/covid-stats/internal/repository/postgres"
	"github.com/covid-stats/internal/repository/postgres/testhelpers"
)

// SnapshotRepositoryTestSuite тестирует архив снимков на реальной БД
type SnapshotRepositoryTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.SnapshotRepository
	ctx    context.Context
}

func (s *SnapshotRepositoryTestSuite) SetupSuite() {
	s.ctx = context.Background()
	s.testDB = testhelpers.SetupTestDB(s.T())

	_, err := testhelpers.ApplyMigrations(s.ctx, s.testDB.DB.DB, "../../../migrations")
	s.Require().NoError(err, "Failed to apply migrations")

	s.repo = postgres.NewSnapshotRepository(
		postgres.NewDBForTest(s.testDB.DB, s.testDB.Logger),
		s.testDB.Logger,
	)
}

func (s *SnapshotRepositoryTestSuite) SetupTest() {
	s.Require().NoError(s.testDB.Cleanup(s.ctx))
}

func (s *SnapshotRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func snapshot(country, iso3 string, cases int64) domain.CountrySnapshot {
	return domain.CountrySnapshot{
		Country:     country,
		CountryInfo: domain.CountryInfo{ISO3: iso3},
		Cases:       cases,
		Deaths:      cases / 10,
		Population:  1000,
	}
}

func (s *SnapshotRepositoryTestSuite) TestSaveAndLatest() {
	first := uuid.New()
	second := uuid.New()
	t0 := time.Date(2022, time.March, 1, 12, 0, 0, 0, time.UTC)

	s.Require().NoError(s.repo.SaveSummary(s.ctx, first, t0, []domain.CountrySnapshot{
		snapshot("Testland", "TST", 100),
		snapshot("Otherland", "OTH", 50),
	}))
	s.Require().NoError(s.repo.SaveSummary(s.ctx, second, t0.Add(time.Hour), []domain.CountrySnapshot{
		snapshot("Testland", "TST", 120),
	}))

	latest, err := s.repo.LatestByISO3(s.ctx, nil)
	s.Require().NoError(err)
	s.Require().Len(latest, 2)

	byISO := map[string]domain.ArchivedSnapshot{}
	for _, a := range latest {
		byISO[a.ISO3] = a
	}
	s.Equal(int64(120), byISO["TST"].Cases)
	s.Equal(second, byISO["TST"].RunID)
	s.Equal(int64(50), byISO["OTH"].Cases)
	s.Equal(first, byISO["OTH"].RunID)

	filtered, err := s.repo.LatestByISO3(s.ctx, []string{"OTH"})
	s.Require().NoError(err)
	s.Require().Len(filtered, 1)
	s.Equal("Otherland", filtered[0].Country)
	s.Equal(int64(5), filtered[0].Deaths)
}

func (s *SnapshotRepositoryTestSuite) TestSaveEmptySummary() {
	s.NoError(s.repo.SaveSummary(s.ctx, uuid.New(), time.Now(), nil))

	latest, err := s.repo.LatestByISO3(s.ctx, nil)
	s.NoError(err)
	s.Empty(latest)
}

func TestSnapshotRepositorySuite(t *testing.T) {
	suite.Run(t, new(SnapshotRepositoryTestSuite))
}
