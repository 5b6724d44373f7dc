package weather

import (
	"errors"
	"time"
)

// State is a step of a single search.
type State string

const (
	StateIdle          State = "idle"
	StateResolving     State = "resolving"
	StateFetching      State = "fetching"
	StateNormalizing   State = "normalizing"
	StateDone          State = "done"
	StateNotFound      State = "notFound"
	StateResolverError State = "resolverError"
	StateFetchError    State = "fetchError"
)

// Terminal reports whether no further transition follows s.
func (s State) Terminal() bool {
	switch s {
	case StateDone, StateNotFound, StateResolverError, StateFetchError:
		return true
	}
	return false
}

const (
	placeholderUnknown = "Unknown location"
	placeholderError   = "Error"
)

// Outcome is what a finished search hands to the rendering boundary.
// On failure Record is nil and LocationName is a placeholder.
type Outcome struct {
	Token        uint64         `json:"token"`
	Query        string         `json:"query"`
	State        State          `json:"state"`
	LocationName string         `json:"locationName"`
	Message      string         `json:"message"`
	Record       *DisplayRecord `json:"record,omitempty"`
	CompletedAt  time.Time      `json:"completedAt"`
}

// OK reports whether the search produced a DisplayRecord.
func (o Outcome) OK() bool {
	return o.State == StateDone && o.Record != nil
}

// NewOutcome builds the terminal outcome for a search result.
func NewOutcome(token uint64, query string, rec *DisplayRecord, err error, at time.Time) Outcome {
	o := Outcome{
		Token:       token,
		Query:       query,
		CompletedAt: at,
	}

	var resolverErr *ResolverError
	switch {
	case err == nil && rec != nil:
		o.State = StateDone
		o.LocationName = rec.Location.DisplayName
		o.Message = rec.Description()
		o.Record = rec
	case errors.Is(err, ErrEmptyQuery):
		o.State = StateNotFound
		o.LocationName = placeholderUnknown
		o.Message = "Enter a city name"
	case errors.Is(err, ErrNotFound):
		o.State = StateNotFound
		o.LocationName = placeholderUnknown
		o.Message = "No results for that city"
	case errors.As(err, &resolverErr):
		o.State = StateResolverError
		o.LocationName = placeholderError
		o.Message = "Unable to fetch data"
	case errors.Is(err, ErrNoCurrentConditions):
		o.State = StateFetchError
		o.LocationName = placeholderError
		o.Message = "No current weather"
	default:
		o.State = StateFetchError
		o.LocationName = placeholderError
		o.Message = "Weather data unavailable"
	}
	return o
}
