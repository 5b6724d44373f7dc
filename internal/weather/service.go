package weather

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Service orchestrates a search: resolve, fetch weather and air quality
// concurrently, normalize, and publish to the latest-result slot.
type Service struct {
	resolver Resolver
	weather  WeatherFetcher
	air      AirQualityFetcher
	slot     Slot
	timeout  time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithCallTimeout bounds every outbound call. Zero disables the bound.
func WithCallTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

// WithLogger sets the logger; the default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a new Service.
func NewService(resolver Resolver, wf WeatherFetcher, aq AirQualityFetcher, slot Slot, opts ...Option) *Service {
	s := &Service{
		resolver: resolver,
		weather:  wf,
		air:      aq,
		slot:     slot,
		logger:   zap.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search runs the pipeline for one query and returns the display record.
// It does not touch the latest-result slot.
func (s *Service) Search(ctx context.Context, query string) (DisplayRecord, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return DisplayRecord{}, ErrEmptyQuery
	}
	log := s.logger.With(zap.String("query", query))

	log.Debug("search state", zap.String("state", string(StateResolving)))
	loc, err := s.resolve(ctx, query)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Info("no location found")
		} else {
			log.Warn("location resolve failed", zap.Error(err))
		}
		return DisplayRecord{}, err
	}

	log.Debug("search state",
		zap.String("state", string(StateFetching)),
		zap.String("location", loc.DisplayName))

	var (
		wg         sync.WaitGroup
		forecast   Forecast
		weatherErr error
		airSeries  *HourlySeries
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		callCtx, cancel := s.callContext(ctx)
		defer cancel()
		forecast, weatherErr = s.weather.Fetch(callCtx, loc)
	}()
	go func() {
		defer wg.Done()
		callCtx, cancel := s.callContext(ctx)
		defer cancel()
		airSeries = s.air.FetchAirQuality(callCtx, loc)
	}()
	wg.Wait()

	if weatherErr != nil {
		log.Warn("weather fetch failed", zap.String("provider", s.weather.Name()), zap.Error(weatherErr))
		return DisplayRecord{}, &WeatherError{Location: loc, Err: weatherErr}
	}
	if forecast.Current == nil {
		log.Warn("weather response without current conditions", zap.String("provider", s.weather.Name()))
		return DisplayRecord{}, ErrNoCurrentConditions
	}
	if airSeries == nil {
		log.Info("air quality degraded; aqi unavailable", zap.String("provider", s.air.Name()))
	}

	log.Debug("search state", zap.String("state", string(StateNormalizing)))
	rec := Normalize(loc, *forecast.Current, forecast.Hourly, airSeries)
	rec.FetchedAt = s.now().UTC()
	return rec, nil
}

// Begin issues the token for a new search. Any search begun earlier is
// superseded at the rendering boundary from this point on.
func (s *Service) Begin() uint64 {
	return s.slot.Issue()
}

// Complete runs the search for a token obtained from Begin and publishes
// its outcome. The boolean reports whether the outcome reached the slot;
// it is false when a newer search was begun in the meantime.
func (s *Service) Complete(ctx context.Context, token uint64, query string) (Outcome, bool) {
	rec, err := s.Search(ctx, query)

	var recPtr *DisplayRecord
	if err == nil {
		recPtr = &rec
	}
	o := NewOutcome(token, strings.TrimSpace(query), recPtr, err, s.now().UTC())

	published := s.slot.Publish(o)
	if !published {
		s.logger.Debug("discarded stale search outcome",
			zap.Uint64("token", token),
			zap.String("query", o.Query))
	}
	s.logger.Debug("search state",
		zap.Uint64("token", token),
		zap.String("state", string(o.State)),
		zap.Bool("published", published))
	return o, published
}

// Run is Begin followed by Complete.
func (s *Service) Run(ctx context.Context, query string) (Outcome, bool) {
	return s.Complete(ctx, s.Begin(), query)
}

// Latest returns the outcome currently visible to the renderer.
func (s *Service) Latest() (Outcome, error) {
	return s.slot.Latest()
}

func (s *Service) resolve(ctx context.Context, query string) (Location, error) {
	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	loc, err := s.resolver.Resolve(callCtx, query)
	if err == nil || errors.Is(err, ErrNotFound) {
		return loc, err
	}
	var re *ResolverError
	if errors.As(err, &re) {
		return Location{}, err
	}
	return Location{}, &ResolverError{Query: query, Err: err}
}

func (s *Service) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}
