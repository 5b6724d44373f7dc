package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker"

	"github.com/i474232898/skysense/internal/weather"
)

// GeocodingProvider implements weather.Resolver against the Open-Meteo
// geocoding API.
type GeocodingProvider struct {
	name     string
	baseURL  string
	language string
	httpCfg  HTTPClientConfig
	circuit  *gobreaker.CircuitBreaker
}

func NewGeocodingProvider(cfg HTTPClientConfig, baseURL, language string) *GeocodingProvider {
	if language == "" {
		language = "en"
	}
	return &GeocodingProvider{
		name:     "openmeteo-geocoding",
		baseURL:  baseURL,
		language: language,
		httpCfg:  cfg,
		circuit:  newBreaker("openmeteo-geocoding", cfg),
	}
}

func (p *GeocodingProvider) Name() string {
	return p.name
}

func (p *GeocodingProvider) Resolve(ctx context.Context, query string) (weather.Location, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("name", query)
		values.Set("count", "1")
		values.Set("language", p.language)
		values.Set("format", "json")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	var payload struct {
		Results []struct {
			Name        string  `json:"name"`
			Latitude    float64 `json:"latitude"`
			Longitude   float64 `json:"longitude"`
			Country     string  `json:"country"`
			CountryCode string  `json:"country_code"`
		} `json:"results"`
	}

	if err := getJSON(ctx, p.httpCfg, p.circuit, buildRequest, &payload); err != nil {
		return weather.Location{}, &weather.ResolverError{Query: query, Err: err}
	}

	if len(payload.Results) == 0 {
		return weather.Location{}, weather.ErrNotFound
	}

	r := payload.Results[0]
	return weather.Location{
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		DisplayName: displayName(r.Name, r.Country),
		CountryCode: r.CountryCode,
	}, nil
}

func displayName(name, country string) string {
	if country == "" {
		return name
	}
	return name + ", " + country
}
