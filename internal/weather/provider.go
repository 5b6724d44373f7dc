package weather

import (
	"context"
)

// Resolver turns a free-text query into a Location.
// Implementations return ErrNotFound when nothing matches and a
// *ResolverError for transport or provider failures.
type Resolver interface {
	Name() string
	Resolve(ctx context.Context, query string) (Location, error)
}

// WeatherFetcher retrieves current conditions and the hourly series.
type WeatherFetcher interface {
	Name() string
	Fetch(ctx context.Context, loc Location) (Forecast, error)
}

// AirQualityFetcher retrieves the hourly air-quality series. It never
// fails: any error is logged by the implementation and reported as nil.
type AirQualityFetcher interface {
	Name() string
	FetchAirQuality(ctx context.Context, loc Location) *HourlySeries
}

// Slot is the latest-result boundary between searches and the renderer.
// Issue hands out monotonically increasing tokens; Publish accepts an
// outcome only while its token is still the latest issued one.
type Slot interface {
	Issue() uint64
	Publish(o Outcome) bool
	Latest() (Outcome, error)
}
