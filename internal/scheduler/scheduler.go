package scheduler

import (
	"context"
	"strings"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"

	"github.com/i474232898/skysense/internal/weather"
)

// Runner is the part of weather.Service the scheduler needs.
type Runner interface {
	Run(ctx context.Context, query string) (weather.Outcome, bool)
}

// Scheduler searches the default city on start-up and, when an interval is
// configured, keeps refreshing it. Each refresh is an ordinary search and
// yields to any search begun after it.
type Scheduler struct {
	scheduler *gocron.Scheduler
	runner    Runner
	city      string
	interval  time.Duration
	timeout   time.Duration
	logger    *zap.Logger
}

// New creates a new Scheduler.
func New(city string, interval time.Duration, runner Runner, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		runner:    runner,
		city:      strings.TrimSpace(city),
		interval:  interval,
		timeout:   30 * time.Second,
		logger:    logger,
	}
}

// Start schedules the job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if s.city == "" {
		s.logger.Info("scheduler: no default city configured; nothing to schedule")
		return nil
	}

	var err error
	if s.interval > 0 {
		_, err = s.scheduler.Every(s.interval).Do(s.refresh)
	} else {
		_, err = s.scheduler.Every(1).Day().LimitRunsTo(1).Do(s.refresh)
	}
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

func (s *Scheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	outcome, published := s.runner.Run(ctx, s.city)
	s.logger.Info("scheduler: default city refreshed",
		zap.String("city", s.city),
		zap.String("state", string(outcome.State)),
		zap.Bool("published", published))
}
