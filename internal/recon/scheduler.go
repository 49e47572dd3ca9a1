package recon

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Scheduler runs reconciliation passes on a cron schedule.
type Scheduler struct {
	c *cron.Cron
}

// StartScheduler begins periodic replay using a cron spec such as
// "@every 1m". Each tick runs one full Replay; failures are logged and the
// requeued entries are retried on the next tick.
func StartScheduler(r *Reconciler, spec string, logger *slog.Logger) (*Scheduler, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		ctx := context.Background()
		if n, err := r.Replay(ctx); err != nil {
			logger.WarnContext(ctx, "reconciliation pass failed", "replayed", n, "error", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("recon.StartScheduler: %w", err)
	}
	c.Start()
	logger.Info("reconciliation scheduler started", "schedule", spec)
	return &Scheduler{c: c}, nil
}

// Stop halts the schedule, waiting for a running pass to finish.
func (s *Scheduler) Stop() {
	if s == nil || s.c == nil {
		return
	}
	<-s.c.Stop().Done()
}
