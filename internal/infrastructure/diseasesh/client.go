package diseasesh

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/covid-stats/internal/config"
	"github.com/covid-stats/internal/domain"
	"github.com/covid-stats/internal/domain/repository"
	"go.uber.org/zap"
)

var (
	// ErrUpstream - API ответило не 2xx
	ErrUpstream = errors.New("disease.sh API error")
	// ErrUnavailable - запрос не дошел до API или ответ не получен
	ErrUnavailable = errors.New("disease.sh API unavailable")
	// ErrBadResponse - тело ответа не разбирается как JSON ожидаемой формы
	ErrBadResponse = errors.New("disease.sh API bad response")
)

// HTTPDoer - транспорт запросов, по умолчанию *http.Client
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Option настраивает клиент
type Option func(*client)

// WithHTTPClient подменяет транспорт
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *client) {
		c.httpClient = doer
	}
}

type client struct {
	httpClient HTTPDoer
	baseURL    string
	logger     *zap.Logger
}

type errorBody struct {
	Message string `json:"message"`
}

// NewClient создает клиент для disease.sh v3
func NewClient(cfg *config.DiseaseAPIConfig, logger *zap.Logger, opts ...Option) repository.StatsAPIRepository {
	c := &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetSummary - GET {base}/countries
func (c *client) GetSummary(ctx context.Context) ([]domain.CountrySnapshot, error) {
	var summary []domain.CountrySnapshot
	if err := c.getJSON(ctx, c.baseURL+"/countries", &summary); err != nil {
		return nil, fmt.Errorf("get summary: %w", err)
	}

	c.logger.Debug("Summary fetched", zap.Int("countries", len(summary)))
	return summary, nil
}

// GetHistorical - GET {base}/historical/{country}?lastdays=all
func (c *client) GetHistorical(ctx context.Context, country string) (*domain.CountryHistorical, error) {
	if country == "" {
		return nil, fmt.Errorf("country cannot be empty")
	}

	target := fmt.Sprintf("%s/historical/%s?lastdays=all", c.baseURL, url.PathEscape(country))

	var hist domain.CountryHistorical
	if err := c.getJSON(ctx, target, &hist); err != nil {
		return nil, fmt.Errorf("get historical for %q: %w", country, err)
	}

	c.logger.Debug("Country historical fetched",
		zap.String("country", country),
		zap.Int("days", len(hist.Timeline.Cases)))
	return &hist, nil
}

// GetGlobalHistorical - GET {base}/historical/all?lastdays=all
func (c *client) GetGlobalHistorical(ctx context.Context) (*domain.GlobalHistorical, error) {
	var hist domain.GlobalHistorical
	if err := c.getJSON(ctx, c.baseURL+"/historical/all?lastdays=all", &hist); err != nil {
		return nil, fmt.Errorf("get global historical: %w", err)
	}

	c.logger.Debug("Global historical fetched", zap.Int("days", len(hist.Cases)))
	return &hist, nil
}

func (c *client) getJSON(ctx context.Context, target string, out interface{}) error {
	c.logger.Debug("Calling disease.sh API", zap.String("url", target))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.String("url", target), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("disease.sh API returned error",
			zap.String("url", target),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))

		var eb errorBody
		if json.Unmarshal(body, &eb) == nil && eb.Message != "" {
			return fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, eb.Message)
		}
		return fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode response", zap.String("url", target), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrBadResponse, err)
	}

	return nil
}
