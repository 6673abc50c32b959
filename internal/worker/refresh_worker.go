package worker

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Behnamfe76/aftersales-ops/internal/config"
	"github.com/Behnamfe76/aftersales-ops/internal/service"
)

// RefreshWorker re-reads the ticket snapshot on a cron schedule so dashboard
// views keep tracking the upstream store between manual refreshes.
type RefreshWorker struct {
	cron   *cron.Cron
	logger *zap.Logger
}

// StartRefreshWorker schedules the refresh and starts the cron runner.
// Returns nil when the worker is disabled.
func StartRefreshWorker(cfg config.RefreshConfig, dashboard *service.DashboardService, logger *zap.Logger) (*RefreshWorker, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	c := cron.New()
	_, err := c.AddFunc(cfg.CronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		count, err := dashboard.Refresh(ctx)
		if err != nil {
			logger.Warn("scheduled ticket refresh failed", zap.Error(err))
			return
		}
		logger.Info("ticket snapshot refreshed", zap.Int("tickets", count))
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	return &RefreshWorker{cron: c, logger: logger}, nil
}

// Stop halts the scheduler and waits for an in-flight refresh to finish.
func (w *RefreshWorker) Stop() {
	if w == nil || w.cron == nil {
		return
	}
	ctx := w.cron.Stop()
	<-ctx.Done()
}
