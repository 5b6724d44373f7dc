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

var forecastHourlyFields = []string{
	weather.FieldPrecipProbability,
	weather.FieldRelativeHumidity,
	weather.FieldTemperature,
}

// OpenMeteoProvider implements weather.WeatherFetcher for the Open-Meteo
// forecast API.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

func NewOpenMeteoProvider(cfg HTTPClientConfig, baseURL string) *OpenMeteoProvider {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OpenMeteoProvider{
		name:    "openmeteo",
		baseURL: baseURL,
		httpCfg: cfg,
		circuit: newBreaker("openmeteo", cfg),
		logger:  logger,
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

func (p *OpenMeteoProvider) Fetch(ctx context.Context, loc weather.Location) (weather.Forecast, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", coord(loc.Latitude))
		values.Set("longitude", coord(loc.Longitude))
		values.Set("current_weather", "true")
		values.Set("hourly", strings.Join(forecastHourlyFields, ","))
		values.Set("timezone", "auto")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	var payload struct {
		CurrentWeather *struct {
			Time        string  `json:"time"`
			Temperature float64 `json:"temperature"`
			WindSpeed   float64 `json:"windspeed"`
			WeatherCode int     `json:"weathercode"`
		} `json:"current_weather"`
		Hourly json.RawMessage `json:"hourly"`
	}

	if err := getJSON(ctx, p.httpCfg, p.circuit, buildRequest, &payload); err != nil {
		return weather.Forecast{}, err
	}

	// A broken hourly block only costs humidity and precipitation.
	hourly, err := p.hourly(payload.Hourly)
	if err != nil {
		p.logger.Warn("forecast hourly block unusable; hourly fields unavailable",
			zap.String("provider", p.name),
			zap.String("location", loc.DisplayName),
			zap.Error(err))
		hourly = weather.HourlySeries{}
	}

	forecast := weather.Forecast{Hourly: hourly}
	if cw := payload.CurrentWeather; cw != nil {
		forecast.Current = &weather.CurrentObservation{
			Time:         cw.Time,
			TemperatureC: cw.Temperature,
			WindSpeedKmh: cw.WindSpeed,
			WeatherCode:  cw.WeatherCode,
		}
	}
	return forecast, nil
}

func (p *OpenMeteoProvider) hourly(data json.RawMessage) (weather.HourlySeries, error) {
	var raw map[string]json.RawMessage
	if len(data) > 0 {
		if err := json.Unmarshal(data, &raw); err != nil {
			return weather.HourlySeries{}, fmt.Errorf("decode hourly: %w", err)
		}
	}
	return decodeHourly(raw)
}
