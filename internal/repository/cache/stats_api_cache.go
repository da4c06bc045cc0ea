package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/covid-stats/internal/domain"
	"github.com/covid-stats/internal/domain/repository"
	"go.uber.org/zap"
)

const (
	keyPrefix           = "covid:"
	keySummary          = "covid:summary"
	keyGlobalHistorical = "covid:historical:all"
	keyCountryPrefix    = "covid:historical:country:"
)

var _ repository.StatsAPIRepository = (*StatsAPICache)(nil)

// StatsAPICache - read-through кеш поверх StatsAPIRepository.
// Ошибка кеша не считается ошибкой запроса, ошибка API не маскируется кешем.
type StatsAPICache struct {
	next          repository.StatsAPIRepository
	cache         repository.CacheRepository
	summaryTTL    time.Duration
	historicalTTL time.Duration
	logger        *zap.Logger
}

// NewStatsAPICache оборачивает API репозиторий кешем с заданными TTL
func NewStatsAPICache(
	next repository.StatsAPIRepository,
	cache repository.CacheRepository,
	summaryTTL time.Duration,
	historicalTTL time.Duration,
	logger *zap.Logger,
) *StatsAPICache {
	return &StatsAPICache{
		next:          next,
		cache:         cache,
		summaryTTL:    summaryTTL,
		historicalTTL: historicalTTL,
		logger:        logger,
	}
}

func (c *StatsAPICache) GetSummary(ctx context.Context) ([]domain.CountrySnapshot, error) {
	var summary []domain.CountrySnapshot
	if c.load(ctx, keySummary, &summary) {
		return summary, nil
	}

	summary, err := c.next.GetSummary(ctx)
	if err != nil {
		return nil, err
	}

	c.store(ctx, keySummary, summary, c.summaryTTL)
	return summary, nil
}

func (c *StatsAPICache) GetHistorical(ctx context.Context, country string) (*domain.CountryHistorical, error) {
	key := countryKey(country)

	var hist domain.CountryHistorical
	if c.load(ctx, key, &hist) {
		return &hist, nil
	}

	fetched, err := c.next.GetHistorical(ctx, country)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, fetched, c.historicalTTL)
	return fetched, nil
}

func (c *StatsAPICache) GetGlobalHistorical(ctx context.Context) (*domain.GlobalHistorical, error) {
	var hist domain.GlobalHistorical
	if c.load(ctx, keyGlobalHistorical, &hist) {
		return &hist, nil
	}

	fetched, err := c.next.GetGlobalHistorical(ctx)
	if err != nil {
		return nil, err
	}

	c.store(ctx, keyGlobalHistorical, fetched, c.historicalTTL)
	return fetched, nil
}

// Invalidate удаляет все закешированные ответы API и возвращает число ключей
func (c *StatsAPICache) Invalidate(ctx context.Context) (int, error) {
	n, err := c.cache.DeleteByPrefix(ctx, keyPrefix)
	if err != nil {
		return n, err
	}
	c.logger.Info("Upstream response cache invalidated", zap.Int("keys", n))
	return n, nil
}

func (c *StatsAPICache) load(ctx context.Context, key string, out interface{}) bool {
	data, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.Warn("Failed to read upstream response from cache", zap.String("key", key), zap.Error(err))
		return false
	}
	if data == nil {
		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		c.logger.Warn("Dropping undecodable cache entry", zap.String("key", key), zap.Error(err))
		if err := c.cache.Delete(ctx, key); err != nil {
			c.logger.Warn("Failed to delete cache entry", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	c.logger.Debug("Upstream response served from cache", zap.String("key", key))
	return true
}

func (c *StatsAPICache) store(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("Failed to marshal upstream response", zap.String("key", key), zap.Error(err))
		return
	}

	if err := c.cache.Set(ctx, key, data, ttl); err != nil {
		c.logger.Warn("Failed to cache upstream response", zap.String("key", key), zap.Error(err))
	}
}

// countryKey нормализует имя страны: "S. Korea" и "s. korea" - один ключ
func countryKey(country string) string {
	return keyCountryPrefix + strings.ToLower(strings.TrimSpace(country))
}
