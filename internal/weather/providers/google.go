package providers

import (
	"context"

	"github.com/kelvins/geocoder"
	"github.com/sony/gobreaker"

	"github.com/i474232898/skysense/internal/common"
	"github.com/i474232898/skysense/internal/weather"
)

// GoogleResolver implements weather.Resolver with the Google Geocoding API.
// It is an alternative to GeocodingProvider for deployments that have a key.
//
// The geocoder package keeps its key in a package-level variable, so one key
// is in effect per process: the most recently constructed resolver's.
type GoogleResolver struct {
	name    string
	circuit *gobreaker.CircuitBreaker

	geocode func(geocoder.Address) (geocoder.Location, error)
	reverse func(geocoder.Location) ([]geocoder.Address, error)
}

func NewGoogleResolver(cfg HTTPClientConfig, apiKey string) *GoogleResolver {
	geocoder.ApiKey = apiKey
	return &GoogleResolver{
		name:    "google-geocoding",
		circuit: newBreaker("google-geocoding", cfg),
		geocode: geocoder.Geocoding,
		reverse: geocoder.GeocodingReverse,
	}
}

func (r *GoogleResolver) Name() string {
	return r.name
}

func (r *GoogleResolver) Resolve(ctx context.Context, query string) (weather.Location, error) {
	type result struct {
		loc weather.Location
		err error
	}
	// The geocoder client has no context support or timeout of its own. On
	// expiry the lookup is abandoned and its goroutine runs until the Google
	// request returns; the breaker still records that result.
	done := make(chan result, 1)
	go func() {
		loc, err := r.lookup(query)
		done <- result{loc, err}
	}()

	select {
	case <-ctx.Done():
		return weather.Location{}, &weather.ResolverError{Query: query, Err: ctx.Err()}
	case res := <-done:
		return res.loc, res.err
	}
}

func (r *GoogleResolver) lookup(query string) (weather.Location, error) {
	out, err := r.circuit.Execute(func() (interface{}, error) {
		loc, err := r.geocode(geocoder.Address{City: query})
		if err != nil && isZeroResults(err) {
			// An unknown city says nothing about provider health.
			return nil, nil
		}
		if err != nil {
			return nil, err
		}

		// The reverse lookup only improves the display name; its failure
		// is not a resolve failure.
		name, country := query, ""
		if addrs, err := r.reverse(loc); err == nil && len(addrs) > 0 {
			if addrs[0].City != "" {
				name = addrs[0].City
			}
			country = addrs[0].Country
		}

		return weather.Location{
			Latitude:    loc.Latitude,
			Longitude:   loc.Longitude,
			DisplayName: displayName(name, country),
		}, nil
	})
	if err != nil {
		return weather.Location{}, &weather.ResolverError{Query: query, Err: err}
	}
	loc, ok := out.(weather.Location)
	if !ok {
		return weather.Location{}, weather.ErrNotFound
	}
	return loc, nil
}

func isZeroResults(err error) bool {
	return common.ContainsAnyFold(err.Error(), "zero_results", "no results")
}
