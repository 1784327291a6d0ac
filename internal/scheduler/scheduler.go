package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/KasumiMercury/primind-car-care/internal/app"
	"github.com/KasumiMercury/primind-car-care/internal/domain"
	"github.com/KasumiMercury/primind-car-care/internal/observability/logging"
	"github.com/KasumiMercury/primind-car-care/internal/observability/metrics"
)

const (
	DefaultSchedule = "0 8 * * *"

	defaultRunTimeout = 5 * time.Minute
)

type Config struct {
	// Schedule is a standard five field cron expression.
	Schedule string
	Location *time.Location
	// RunTimeout bounds a single dispatch run.
	RunTimeout time.Duration
}

type Option func(*Scheduler)

func WithMetrics(m *metrics.DispatchMetrics) Option {
	return func(s *Scheduler) {
		s.metrics = m
	}
}

// WithClock replaces the wall clock used to derive "today".
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		s.now = now
	}
}

// Scheduler runs the due-notification dispatch on a cron schedule in the
// configured time zone.
type Scheduler struct {
	cron       *cron.Cron
	useCase    app.NotificationUseCase
	schedule   string
	location   *time.Location
	runTimeout time.Duration
	now        func() time.Time
	metrics    *metrics.DispatchMetrics
}

func New(useCase app.NotificationUseCase, cfg Config, opts ...Option) (*Scheduler, error) {
	schedule := cfg.Schedule
	if schedule == "" {
		schedule = DefaultSchedule
	}

	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("invalid dispatch schedule %q: %w", schedule, err)
	}

	location := cfg.Location
	if location == nil {
		location = time.UTC
	}

	runTimeout := cfg.RunTimeout
	if runTimeout <= 0 {
		runTimeout = defaultRunTimeout
	}

	logger := cronLogger{}

	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(location),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		useCase:    useCase,
		schedule:   schedule,
		location:   location,
		runTimeout: runTimeout,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.run); err != nil {
		return fmt.Errorf("add dispatch job: %w", err)
	}

	s.cron.Start()

	slog.Info("scheduler started",
		"schedule", s.schedule,
		"timezone", s.location.String(),
	)

	return nil
}

// Stop waits for a running dispatch to finish or for ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()

	select {
	case <-done.Done():
		slog.Info("scheduler stopped")

		return nil
	case <-ctx.Done():
		return fmt.Errorf("scheduler stop: %w", ctx.Err())
	}
}

// Today is the calendar date of the scheduler's clock in its time zone.
func (s *Scheduler) Today() domain.CalendarDate {
	return domain.CalendarDateOf(s.now().In(s.location))
}

// RunOnce dispatches notifications for today immediately.
func (s *Scheduler) RunOnce(ctx context.Context) (app.DispatchOutput, error) {
	ctx = logging.WithModule(ctx, logging.ModuleScheduler)
	today := s.Today()

	output, err := s.useCase.DispatchDueNotifications(ctx, app.DispatchDueNotificationsInput{
		Today: today.String(),
	})
	if s.metrics != nil {
		s.metrics.Record(ctx, output.Due, output.Pushed, len(output.Failures), err)
	}

	if err != nil {
		slog.ErrorContext(ctx, "due notification dispatch failed",
			"today", today.String(),
			"error", err,
		)

		return app.DispatchOutput{}, err
	}

	return output, nil
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.runTimeout)
	defer cancel()

	// failures are logged by RunOnce
	_, _ = s.RunOnce(ctx)
}

// cronLogger routes cron's internal logging to slog.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	slog.Error("cron: "+msg, append([]interface{}{"error", err}, keysAndValues...)...)
}
