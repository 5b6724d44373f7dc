package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	BackendOpenMeteo = "openmeteo"
	BackendGoogle    = "google"
)

type AppConfig struct {
	Port     string `validate:"required,numeric"`
	LogLevel string `validate:"required,oneof=debug info warn error"`
	LogFile  string

	// HTTPTimeout bounds every outbound provider call.
	HTTPTimeout time.Duration `validate:"gt=0"`
	// BreakerTimeout is how long a tripped circuit stays open.
	BreakerTimeout time.Duration `validate:"gt=0"`

	GeocodingURL  string `validate:"required,url"`
	ForecastURL   string `validate:"required,url"`
	AirQualityURL string `validate:"required,url"`

	GeocoderLanguage string `validate:"required"`
	GeocoderBackend  string `validate:"oneof=openmeteo google"`
	GoogleAPIKey     string `validate:"required_if=GeocoderBackend google"`

	// DefaultCity is searched once on start-up.
	DefaultCity string
	// RefreshInterval re-runs the default search; 0 disables.
	RefreshInterval time.Duration `validate:"gte=0"`
}

var validate = validator.New()

// Load reads configuration from environment (and .env, when present) with
// sensible defaults.
func Load() (*AppConfig, error) {
	// A missing .env file is normal outside development.
	_ = godotenv.Load()

	cfg := &AppConfig{
		Port:             getenvDefault("PORT", "8080"),
		LogLevel:         getenvDefault("LOG_LEVEL", "info"),
		LogFile:          os.Getenv("LOG_FILE"),
		GeocodingURL:     getenvDefault("GEOCODING_URL", "https://geocoding-api.open-meteo.com/v1/search"),
		ForecastURL:      getenvDefault("FORECAST_URL", "https://api.open-meteo.com/v1/forecast"),
		AirQualityURL:    getenvDefault("AIR_QUALITY_URL", "https://air-quality-api.open-meteo.com/v1/air-quality"),
		GeocoderLanguage: getenvDefault("GEOCODER_LANGUAGE", "en"),
		GeocoderBackend:  getenvDefault("GEOCODER_BACKEND", BackendOpenMeteo),
		GoogleAPIKey:     os.Getenv("GOOGLE_GEOCODER_API_KEY"),
		DefaultCity:      "New Delhi",
	}
	// An explicitly empty DEFAULT_CITY disables the start-up search.
	if v, ok := os.LookupEnv("DEFAULT_CITY"); ok {
		cfg.DefaultCity = v
	}

	var err error
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	if cfg.BreakerTimeout, err = getenvDuration("BREAKER_TIMEOUT", "2m"); err != nil {
		return nil, err
	}
	if cfg.RefreshInterval, err = getenvDuration("REFRESH_INTERVAL", "0"); err != nil {
		return nil, err
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
