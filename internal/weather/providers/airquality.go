package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/i474232898/skysense/internal/weather"
)

var airQualityHourlyFields = []string{
	weather.FieldUSAQI,
	weather.FieldPM25,
	weather.FieldPM10,
}

// AirQualityProvider implements weather.AirQualityFetcher for the
// Open-Meteo air-quality API. Failures degrade to a nil series.
type AirQualityProvider struct {
	name    string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

func NewAirQualityProvider(cfg HTTPClientConfig, baseURL string) *AirQualityProvider {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AirQualityProvider{
		name:    "openmeteo-airquality",
		baseURL: baseURL,
		httpCfg: cfg,
		circuit: newBreaker("openmeteo-airquality", cfg),
		logger:  logger,
	}
}

func (p *AirQualityProvider) Name() string {
	return p.name
}

func (p *AirQualityProvider) FetchAirQuality(ctx context.Context, loc weather.Location) *weather.HourlySeries {
	series, err := p.fetch(ctx, loc)
	if err != nil {
		p.logger.Warn("air quality fetch failed",
			zap.String("provider", p.name),
			zap.String("location", loc.DisplayName),
			zap.Error(err))
		return nil
	}
	return series
}

func (p *AirQualityProvider) fetch(ctx context.Context, loc weather.Location) (*weather.HourlySeries, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", coord(loc.Latitude))
		values.Set("longitude", coord(loc.Longitude))
		values.Set("hourly", strings.Join(airQualityHourlyFields, ","))
		values.Set("timezone", "auto")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	var payload struct {
		Hourly map[string]json.RawMessage `json:"hourly"`
	}
	if err := getJSON(ctx, p.httpCfg, p.circuit, buildRequest, &payload); err != nil {
		return nil, err
	}
	if payload.Hourly == nil {
		return nil, fmt.Errorf("air quality response has no hourly block")
	}

	series, err := decodeHourly(payload.Hourly)
	if err != nil {
		return nil, err
	}
	return &series, nil
}
