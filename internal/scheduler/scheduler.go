package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"

	"MarketAnalytic/internal/dashboard"
)

// Refresher regenerates every product series.
type Refresher interface {
	Refresh(ctx context.Context) (dashboard.WarmReport, error)
}

// Scheduler manages all cron tasks.
type Scheduler struct {
	Cron      *cron.Cron
	Refresher Refresher
	Ctx       context.Context

	log *slog.Logger
	mu  sync.Mutex // serialises refreshes
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, r Refresher, log *slog.Logger) *Scheduler {
	if log == nil {
		log = slog.Default()
	}
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Refresher: r,
		Ctx:       ctx,
		log:       log.With("component", "scheduler"),
	}
}

// RegisterAll registers the daily refresh task.
func (s *Scheduler) RegisterAll(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.log.Info("scheduler started", "entries", len(s.Cron.Entries()))
}

// Stop stops the cron scheduler and waits for a running task to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.log.Info("scheduler stopped")
}

// RunRefreshNow executes the refresh task immediately.
func (s *Scheduler) RunRefreshNow() (dashboard.WarmReport, error) {
	return s.refresh()
}

func (s *Scheduler) refreshTask() {
	if _, err := s.refresh(); err != nil {
		s.log.Error("refresh failed", "error", err)
	}
}

func (s *Scheduler) refresh() (dashboard.WarmReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Info("running refresh task")
	report, err := s.Refresher.Refresh(s.Ctx)
	if err != nil {
		return report, fmt.Errorf("refresh: %w", err)
	}
	if len(report.Failed) > 0 {
		s.log.Warn("products skipped during refresh", "products", report.Failed)
	}
	return report, nil
}
