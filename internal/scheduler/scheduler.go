// README: Background maintenance; prunes expired geocoding cache rows daily.
package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"

	"fareengine/internal/modules/geocache"
)

const cleanupTimeout = 2 * time.Minute

// Scheduler runs the daily cache retention sweep.
type Scheduler struct {
	scheduler     *gocron.Scheduler
	store         *geocache.Store
	retentionDays int
	log           *zap.Logger
}

func New(store *geocache.Store, retentionDays int, log *zap.Logger) *Scheduler {
	return &Scheduler{
		scheduler:     gocron.NewScheduler(time.UTC),
		store:         store,
		retentionDays: retentionDays,
		log:           log,
	}
}

// Start schedules the daily cleanup job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	_, err := s.scheduler.Every(1).Day().At("03:30").Do(s.runCleanup)
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

func (s *Scheduler) runCleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
	defer cancel()

	deleted, err := s.store.Cleanup(ctx, s.retentionDays)
	if err != nil {
		s.log.Warn("geocache cleanup failed", zap.Error(err))
		return
	}
	s.log.Info("geocache cleanup completed", zap.Int64("deleted", deleted))
}
