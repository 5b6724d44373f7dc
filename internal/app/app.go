package app

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/i474232898/skysense/internal/config"
	"github.com/i474232898/skysense/internal/store"
	"github.com/i474232898/skysense/internal/weather"
	"github.com/i474232898/skysense/internal/weather/providers"
)

// Build wires providers, the latest-result slot and the search service.
func Build(cfg *config.AppConfig, logger *zap.Logger) (*weather.Service, *store.LatestSlot) {
	// Shared HTTP client for outbound provider calls; the per-call bound
	// is applied by the service.
	httpCfg := providers.HTTPClientConfig{
		Client:         &http.Client{Timeout: cfg.HTTPTimeout},
		BreakerTimeout: cfg.BreakerTimeout,
		Logger:         logger,
	}

	var resolver weather.Resolver
	switch cfg.GeocoderBackend {
	case config.BackendGoogle:
		resolver = providers.NewGoogleResolver(httpCfg, cfg.GoogleAPIKey)
	default:
		resolver = providers.NewGeocodingProvider(httpCfg, cfg.GeocodingURL, cfg.GeocoderLanguage)
	}
	logger.Info("location resolver configured", zap.String("resolver", resolver.Name()))

	slot := store.NewLatestSlot()
	service := weather.NewService(
		resolver,
		providers.NewOpenMeteoProvider(httpCfg, cfg.ForecastURL),
		providers.NewAirQualityProvider(httpCfg, cfg.AirQualityURL),
		slot,
		weather.WithCallTimeout(cfg.HTTPTimeout),
		weather.WithLogger(logger),
	)
	return service, slot
}
