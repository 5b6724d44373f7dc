package weather

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyQuery is returned when a search is attempted with a blank query.
	ErrEmptyQuery = errors.New("query must not be empty")

	// ErrNotFound means the geocoder had no match for the query. It is an
	// expected, user-correctable outcome.
	ErrNotFound = errors.New("no location matches query")

	// ErrNoCurrentConditions means the forecast response carried no current
	// weather block.
	ErrNoCurrentConditions = errors.New("weather response has no current conditions")
)

// ResolverError wraps a transport or provider failure during geocoding.
type ResolverError struct {
	Query string
	Err   error
}

func (e *ResolverError) Error() string {
	return fmt.Sprintf("resolve %q: %v", e.Query, e.Err)
}

func (e *ResolverError) Unwrap() error { return e.Err }

// WeatherError wraps a failed forecast fetch.
type WeatherError struct {
	Location Location
	Err      error
}

func (e *WeatherError) Error() string {
	return fmt.Sprintf("fetch weather for %s: %v", e.Location.DisplayName, e.Err)
}

func (e *WeatherError) Unwrap() error { return e.Err }
