package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/covid-stats/internal/config"
	httpDelivery "github.com/covid-stats/internal/delivery/http"
	"github.com/covid-stats/internal/delivery/http/handler"
	"github.com/covid-stats/internal/domain"
	"github.com/covid-stats/internal/infrastructure/diseasesh"
	"github.com/covid-stats/internal/usecase"
)

type fakeStatsAPI struct {
	summary    []domain.CountrySnapshot
	global     *domain.GlobalHistorical
	historical map[string]*domain.CountryHistorical
	err        error
}

func (f *fakeStatsAPI) GetSummary(ctx context.Context) ([]domain.CountrySnapshot, error) {
	return f.summary, f.err
}

func (f *fakeStatsAPI) GetHistorical(ctx context.Context, country string) (*domain.CountryHistorical, error) {
	if f.err != nil {
		return nil, f.err
	}
	hist, ok := f.historical[country]
	if !ok {
		return nil, fmt.Errorf("%w: status 404: Country not found", diseasesh.ErrUpstream)
	}
	return hist, nil
}

func (f *fakeStatsAPI) GetGlobalHistorical(ctx context.Context) (*domain.GlobalHistorical, error) {
	return f.global, f.err
}

type fakeArchive struct {
	rows []domain.ArchivedSnapshot
	err  error
	iso3 []string
}

func (f *fakeArchive) SaveSummary(ctx context.Context, runID uuid.UUID, fetchedAt time.Time, snapshots []domain.CountrySnapshot) error {
	return f.err
}

func (f *fakeArchive) LatestByISO3(ctx context.Context, iso3 []string) ([]domain.ArchivedSnapshot, error) {
	f.iso3 = iso3
	return f.rows, f.err
}

type failingCheck struct{}

func (failingCheck) Health(ctx context.Context) error { return errors.New("connection refused") }

func newFakeAPI() *fakeStatsAPI {
	return &fakeStatsAPI{
		summary: []domain.CountrySnapshot{
			{
				Country:     "Testland",
				CountryInfo: domain.CountryInfo{ISO3: "TST", Lat: 10, Long: 20, Flag: "https://example.com/tst.png"},
				Cases:       100,
				Deaths:      10,
				Recovered:   50,
				Population:  1000,
				TodayCases:  5,
				TodayDeaths: 1,
			},
			{
				Country:    "Emptyland",
				Cases:      0,
				Population: 500,
			},
		},
		global: &domain.GlobalHistorical{Timeline: domain.Timeline{
			Cases:     domain.DateSeries{"1/22/20": 555, "1/23/20": 654},
			Deaths:    domain.DateSeries{"1/22/20": 17, "1/23/20": 18},
			Recovered: domain.DateSeries{"1/22/20": 28},
		}},
		historical: map[string]*domain.CountryHistorical{
			"Testland": {
				Country:  "Testland",
				Province: []string{"mainland"},
				Timeline: domain.Timeline{
					Cases:     domain.DateSeries{"1/22/20": 1},
					Deaths:    domain.DateSeries{"1/22/20": 0},
					Recovered: domain.DateSeries{"1/22/20": 0},
				},
			},
		},
	}
}

type testServer struct {
	server  *httpDelivery.Server
	client  *usecase.StatsClient
	archive *fakeArchive
}

func newTestServer(t *testing.T, api *fakeStatsAPI, withArchive bool, checks map[string]handler.HealthChecker) *testServer {
	t.Helper()
	logger := zap.NewNop()

	client := usecase.NewStatsClient(api, logger)
	archive := &fakeArchive{}
	var refreshUC *usecase.RefreshUseCase
	if withArchive {
		refreshUC = usecase.NewRefreshUseCase(client, archive, logger)
	} else {
		refreshUC = usecase.NewRefreshUseCase(client, nil, logger)
	}

	cfg := &config.Config{Server: config.ServerConfig{Host: "127.0.0.1", Port: 0}}
	server := httpDelivery.NewServer(cfg, logger, httpDelivery.Handlers{
		Stats:     handler.NewStatsHandler(client, logger),
		Timeline:  handler.NewTimelineHandler(client, refreshUC, logger),
		Indicator: handler.NewIndicatorHandler(logger),
		Refresh:   handler.NewRefreshHandler(refreshUC, logger),
		Health:    handler.NewHealthHandler(checks, logger),
	})

	return &testServer{server: server, client: client, archive: archive}
}

func (ts *testServer) do(t *testing.T, method, target, body string) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.server.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func errorCode(t *testing.T, body map[string]interface{}) string {
	t.Helper()
	e, ok := body["error"].(map[string]interface{})
	require.True(t, ok, "expected error object, got %v", body)
	return e["code"].(string)
}

func TestServer_ProjectionsBeforeRefresh(t *testing.T) {
	ts := newTestServer(t, newFakeAPI(), false, nil)

	for _, target := range []string{
		"/api/v1/countries/locations",
		"/api/v1/countries/values",
		"/api/v1/countries/deaths",
		"/api/v1/countries/recovered",
		"/api/v1/timeline/global",
	} {
		t.Run(target, func(t *testing.T) {
			status, body := ts.do(t, "GET", target, "")
			assert.Equal(t, 503, status)
			assert.Equal(t, "DATA_NOT_LOADED", errorCode(t, body))
		})
	}
}

func TestServer_Refresh(t *testing.T) {
	ts := newTestServer(t, newFakeAPI(), true, nil)

	status, body := ts.do(t, "POST", "/api/v1/refresh", "")
	require.Equal(t, 200, status)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["countries"])
	assert.Equal(t, float64(2), data["global_days"])
	assert.Equal(t, true, data["archived"])
	_, err := uuid.Parse(data["run_id"].(string))
	assert.NoError(t, err)
}

func TestServer_ForceRefresh(t *testing.T) {
	ts := newTestServer(t, newFakeAPI(), false, nil)

	status, body := ts.do(t, "POST", "/api/v1/refresh?force=true", "")
	require.Equal(t, 200, status)
	assert.Equal(t, float64(2), body["data"].(map[string]interface{})["countries"])

	status, body = ts.do(t, "POST", "/api/v1/refresh?force=maybe", "")
	assert.Equal(t, 400, status)
	assert.Equal(t, "INVALID_REQUEST", errorCode(t, body))
}

func TestServer_RefreshUpstreamFailure(t *testing.T) {
	api := newFakeAPI()
	api.err = fmt.Errorf("%w: status 500: boom", diseasesh.ErrUpstream)
	ts := newTestServer(t, api, false, nil)

	status, body := ts.do(t, "POST", "/api/v1/refresh", "")
	assert.Equal(t, 502, status)
	assert.Equal(t, "UPSTREAM_ERROR", errorCode(t, body))
}

func TestServer_CountriesWithLocation(t *testing.T) {
	ts := newTestServer(t, newFakeAPI(), false, nil)
	_, err := usecase.NewRefreshUseCase(ts.client, nil, zap.NewNop()).RefreshSummary(context.Background())
	require.NoError(t, err)

	t.Run("defaults", func(t *testing.T) {
		status, body := ts.do(t, "GET", "/api/v1/countries/locations", "")
		require.Equal(t, 200, status)

		data := body["data"].([]interface{})
		require.Len(t, data, 2)
		first := data[0].(map[string]interface{})
		assert.Equal(t, "Testland", first["country"])
		assert.Equal(t, "TST", first["iso3"])
		assert.Equal(t, []interface{}{float64(10), float64(20)}, first["latLon"])
		assert.Equal(t, float64(100), first["value"])
		meta := body["meta"].(map[string]interface{})
		assert.Equal(t, float64(2), meta["total"])
		assert.Equal(t, map[string]interface{}{
			"showGlobal":   true,
			"showAbsolute": true,
			"indicator":    "cases",
		}, meta["view"])
	})

	t.Run("today deaths", func(t *testing.T) {
		status, body := ts.do(t, "GET", "/api/v1/countries/locations?global=false&indicator=death", "")
		require.Equal(t, 200, status)
		first := body["data"].([]interface{})[0].(map[string]interface{})
		assert.Equal(t, float64(1), first["value"])
	})

	t.Run("relative division by zero is null", func(t *testing.T) {
		status, body := ts.do(t, "GET", "/api/v1/countries/locations?absolute=false", "")
		require.Equal(t, 200, status)
		data := body["data"].([]interface{})
		assert.Equal(t, float64(10), data[0].(map[string]interface{})["value"])
		assert.Nil(t, data[1].(map[string]interface{})["value"])
	})

	t.Run("invalid indicator", func(t *testing.T) {
		status, body := ts.do(t, "GET", "/api/v1/countries/locations?indicator=tested", "")
		assert.Equal(t, 400, status)
		assert.Equal(t, "INVALID_REQUEST", errorCode(t, body))
	})
}

func TestServer_CountriesAndCases(t *testing.T) {
	ts := newTestServer(t, newFakeAPI(), false, nil)
	ts.client.SetSummary(newFakeAPI().summary)

	status, body := ts.do(t, "GET", "/api/v1/countries/values?indicator=recovered", "")
	require.Equal(t, 200, status)

	first := body["data"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, float64(50), first["value"])
	assert.Equal(t, "Testland", first["country"])
	assert.Equal(t, []interface{}{"https://example.com/tst.png"}, first["countryInfo"])
}

func TestServer_DeathsAndRecovered(t *testing.T) {
	ts := newTestServer(t, newFakeAPI(), false, nil)
	ts.client.SetSummary(newFakeAPI().summary)

	status, body := ts.do(t, "GET", "/api/v1/countries/deaths", "")
	require.Equal(t, 200, status)
	first := body["data"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, float64(10), first["deaths"])
	assert.Equal(t, "Testland", first["country"])

	status, body = ts.do(t, "GET", "/api/v1/countries/recovered", "")
	require.Equal(t, 200, status)
	first = body["data"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, float64(50), first["recovered"])
}

func TestServer_Timelines(t *testing.T) {
	ts := newTestServer(t, newFakeAPI(), false, nil)
	ts.client.SetGlobalHistorical(newFakeAPI().global)

	t.Run("global", func(t *testing.T) {
		status, body := ts.do(t, "GET", "/api/v1/timeline/global", "")
		require.Equal(t, 200, status)

		data := body["data"].([]interface{})
		require.Len(t, data, 2)
		second := data[1].(map[string]interface{})
		assert.Equal(t, "1/23/20", second["date"])
		assert.Equal(t, float64(654), second["cases"])
		assert.Nil(t, second["recovered"])
	})

	t.Run("country", func(t *testing.T) {
		status, body := ts.do(t, "GET", "/api/v1/timeline/countries/Testland", "")
		require.Equal(t, 200, status)

		data := body["data"].(map[string]interface{})
		assert.Equal(t, "Testland", data["country"])
		assert.Len(t, data["timeline"], 1)
	})

	t.Run("unknown country", func(t *testing.T) {
		status, body := ts.do(t, "GET", "/api/v1/timeline/countries/Nowhere", "")
		assert.Equal(t, 502, status)
		assert.Equal(t, "UPSTREAM_ERROR", errorCode(t, body))
	})
}

func TestServer_AdvanceIndicator(t *testing.T) {
	ts := newTestServer(t, newFakeAPI(), false, nil)

	tests := []struct {
		name      string
		body      string
		status    int
		indicator string
		label     string
	}{
		{"right from cases", `{"indicator":"cases","direction":1}`, 200, "death", "Death"},
		{"left from recovered", `{"indicator":"recovered","direction":-1}`, 200, "death", "Death"},
		{"left edge", `{"indicator":"cases","direction":-1}`, 200, "cases", "Cases"},
		{"right edge", `{"indicator":"recovered","direction":1}`, 200, "recovered", "Recovered"},
		{"zero direction", `{"indicator":"cases","direction":0}`, 400, "", ""},
		{"unknown indicator", `{"indicator":"tested","direction":1}`, 400, "", ""},
		{"malformed", `{"indicator":`, 400, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := ts.do(t, "POST", "/api/v1/indicator/advance", tt.body)
			require.Equal(t, tt.status, status)
			if tt.status != 200 {
				assert.Equal(t, "INVALID_REQUEST", errorCode(t, body))
				return
			}
			data := body["data"].(map[string]interface{})
			assert.Equal(t, tt.indicator, data["indicator"])
			assert.Equal(t, tt.label, data["label"])
		})
	}
}

func TestServer_Archive(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		ts := newTestServer(t, newFakeAPI(), false, nil)
		status, body := ts.do(t, "GET", "/api/v1/archive/countries", "")
		assert.Equal(t, 404, status)
		assert.Equal(t, "ARCHIVE_DISABLED", errorCode(t, body))
	})

	t.Run("filtered", func(t *testing.T) {
		ts := newTestServer(t, newFakeAPI(), true, nil)
		ts.archive.rows = []domain.ArchivedSnapshot{{Country: "Testland", ISO3: "TST", Cases: 100}}

		status, body := ts.do(t, "GET", "/api/v1/archive/countries?iso3=tst,%20fra", "")
		require.Equal(t, 200, status)
		assert.Equal(t, []string{"TST", "FRA"}, ts.archive.iso3)
		assert.Len(t, body["data"], 1)
	})

	t.Run("invalid code", func(t *testing.T) {
		ts := newTestServer(t, newFakeAPI(), true, nil)
		status, body := ts.do(t, "GET", "/api/v1/archive/countries?iso3=TOOLONG", "")
		assert.Equal(t, 400, status)
		assert.Equal(t, "INVALID_REQUEST", errorCode(t, body))
	})

	t.Run("database failure", func(t *testing.T) {
		ts := newTestServer(t, newFakeAPI(), true, nil)
		ts.archive.err = errors.New("db down")
		status, body := ts.do(t, "GET", "/api/v1/archive/countries", "")
		assert.Equal(t, 500, status)
		assert.Equal(t, "DATABASE_ERROR", errorCode(t, body))
	})
}

func TestServer_Health(t *testing.T) {
	t.Run("no dependencies", func(t *testing.T) {
		ts := newTestServer(t, newFakeAPI(), false, nil)
		status, body := ts.do(t, "GET", "/api/v1/health", "")
		assert.Equal(t, 200, status)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("failing dependency", func(t *testing.T) {
		ts := newTestServer(t, newFakeAPI(), false, map[string]handler.HealthChecker{"redis": failingCheck{}})
		status, body := ts.do(t, "GET", "/api/v1/health", "")
		assert.Equal(t, 503, status)
		assert.Equal(t, "unhealthy", body["status"])
		assert.Equal(t, "connection refused", body["dependencies"].(map[string]interface{})["redis"])
	})
}

func TestServer_NotFound(t *testing.T) {
	ts := newTestServer(t, newFakeAPI(), false, nil)
	status, body := ts.do(t, "GET", "/api/v1/nope", "")
	assert.Equal(t, 404, status)
	assert.Equal(t, "NOT_FOUND", errorCode(t, body))
}
