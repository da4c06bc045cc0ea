package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/covid-stats/internal/domain"
	"github.com/covid-stats/internal/domain/repository"
	"go.uber.org/zap"
)

var (
	ErrSummaryNotLoaded = errors.New("summary not loaded")
	ErrGlobalNotLoaded  = errors.New("global historical series not loaded")
	ErrCountryNotLoaded = errors.New("country historical series not loaded")
)

// StatsClient хранит последние ответы API и строит из них данные для графиков и карты.
// Проекции пересчитываются при каждом вызове и зависят только от
// сохранённых ответов и переданного ViewState.
type StatsClient struct {
	api    repository.StatsAPIRepository
	logger *zap.Logger

	mu      sync.RWMutex
	summary []domain.CountrySnapshot
	global  *domain.GlobalHistorical
	country *domain.CountryHistorical
}

// NewStatsClient создает новый экземпляр StatsClient
func NewStatsClient(api repository.StatsAPIRepository, logger *zap.Logger) *StatsClient {
	return &StatsClient{
		api:    api,
		logger: logger,
	}
}

// FetchSummary запрашивает текущие счётчики по всем странам
func (c *StatsClient) FetchSummary(ctx context.Context) ([]domain.CountrySnapshot, error) {
	return c.api.GetSummary(ctx)
}

// FetchHistorical запрашивает исторические ряды страны
func (c *StatsClient) FetchHistorical(ctx context.Context, country string) (*domain.CountryHistorical, error) {
	return c.api.GetHistorical(ctx, country)
}

// FetchGlobalHistorical запрашивает мировые исторические ряды
func (c *StatsClient) FetchGlobalHistorical(ctx context.Context) (*domain.GlobalHistorical, error) {
	return c.api.GetGlobalHistorical(ctx)
}

// SetSummary полностью заменяет сохранённую сводку
func (c *StatsClient) SetSummary(summary []domain.CountrySnapshot) {
	c.mu.Lock()
	c.summary = summary
	c.mu.Unlock()

	c.logger.Debug("Summary replaced", zap.Int("countries", len(summary)))
}

// SetGlobalHistorical полностью заменяет мировые ряды
func (c *StatsClient) SetGlobalHistorical(global *domain.GlobalHistorical) {
	c.mu.Lock()
	c.global = global
	c.mu.Unlock()

	c.logger.Debug("Global historical replaced")
}

// SetCountryHistorical полностью заменяет ряды страны
func (c *StatsClient) SetCountryHistorical(country *domain.CountryHistorical) {
	c.mu.Lock()
	c.country = country
	c.mu.Unlock()

	if country != nil {
		c.logger.Debug("Country historical replaced", zap.String("country", country.Country))
	}
}

func (c *StatsClient) loadedSummary() ([]domain.CountrySnapshot, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.summary == nil {
		return nil, ErrSummaryNotLoaded
	}
	return c.summary, nil
}

// CountriesWithLocation - страны с координатами и значением выбранного индикатора
func (c *StatsClient) CountriesWithLocation(view domain.ViewState) ([]domain.CountryLocation, error) {
	summary, err := c.loadedSummary()
	if err != nil {
		return nil, err
	}

	out := make([]domain.CountryLocation, 0, len(summary))
	for _, s := range summary {
		value, _ := view.Resolve(s)
		out = append(out, domain.CountryLocation{
			Country: s.Country,
			ISO3:    s.CountryInfo.ISO3,
			LatLon:  [2]float64{s.CountryInfo.Lat, s.CountryInfo.Long},
			Value:   value,
		})
	}
	return out, nil
}

// CountriesAndCases - значение выбранного индикатора и флаг по каждой стране
func (c *StatsClient) CountriesAndCases(view domain.ViewState) ([]domain.CountryValue, error) {
	summary, err := c.loadedSummary()
	if err != nil {
		return nil, err
	}

	out := make([]domain.CountryValue, 0, len(summary))
	for _, s := range summary {
		value, _ := view.Resolve(s)
		out = append(out, domain.CountryValue{
			Value:       value,
			Country:     s.Country,
			CountryInfo: []string{s.CountryInfo.Flag},
		})
	}
	return out, nil
}

// DeathsByCountry - накопленные смерти, переключатели не учитываются
func (c *StatsClient) DeathsByCountry() ([]domain.CountryDeaths, error) {
	summary, err := c.loadedSummary()
	if err != nil {
		return nil, err
	}

	out := make([]domain.CountryDeaths, 0, len(summary))
	for _, s := range summary {
		out = append(out, domain.CountryDeaths{Deaths: s.Deaths, Country: s.Country})
	}
	return out, nil
}

// RecoveredByCountry - накопленные выздоровления, переключатели не учитываются
func (c *StatsClient) RecoveredByCountry() ([]domain.CountryRecovered, error) {
	summary, err := c.loadedSummary()
	if err != nil {
		return nil, err
	}

	out := make([]domain.CountryRecovered, 0, len(summary))
	for _, s := range summary {
		out = append(out, domain.CountryRecovered{Recovered: s.Recovered, Country: s.Country})
	}
	return out, nil
}

// GlobalTimeline - объединённый мировой ряд по датам
func (c *StatsClient) GlobalTimeline() ([]domain.TimelinePoint, error) {
	c.mu.RLock()
	global := c.global
	c.mu.RUnlock()

	if global == nil {
		return nil, ErrGlobalNotLoaded
	}
	return global.Timeline.Merge(), nil
}

// CountryTimeline - объединённый ряд сохранённой страны по датам
func (c *StatsClient) CountryTimeline() ([]domain.TimelinePoint, error) {
	c.mu.RLock()
	country := c.country
	c.mu.RUnlock()

	if country == nil {
		return nil, ErrCountryNotLoaded
	}
	return country.Timeline.Merge(), nil
}
