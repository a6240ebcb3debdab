package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

type Refresher interface {
	Refresh(ctx context.Context) error
}

// SummaryRefresher keeps the cached roll-ups warm. Cron ticks only enqueue a
// job; a single worker runs them so refreshes never overlap.
type SummaryRefresher struct {
	refresher Refresher
	schedule  string
	timeout   time.Duration
	logger    *slog.Logger
	jobs      chan struct{}
}

func NewSummaryRefresher(r Refresher, schedule string, timeout time.Duration, logger *slog.Logger) *SummaryRefresher {
	return &SummaryRefresher{
		refresher: r,
		schedule:  schedule,
		timeout:   timeout,
		logger:    logger,
		jobs:      make(chan struct{}, 1),
	}
}

// Trigger requests a refresh. It never blocks; a pending request absorbs new ones.
func (w *SummaryRefresher) Trigger() {
	select {
	case w.jobs <- struct{}{}:
	default:
	}
}

func (w *SummaryRefresher) Run(ctx context.Context) error {
	c := cron.New()
	if _, err := c.AddFunc(w.schedule, w.Trigger); err != nil {
		w.logger.Error("invalid refresh schedule", slog.String("schedule", w.schedule), slog.Any("error", err))
		return err
	}
	c.Start()
	w.logger.Info("summary refresher STARTED", slog.String("schedule", w.schedule))

	w.Trigger()
	for {
		select {
		case <-ctx.Done():
			<-c.Stop().Done()
			w.logger.Info("summary refresher STOPPED", slog.String("reason", ctx.Err().Error()))
			return nil
		case <-w.jobs:
			w.refresh(ctx)
		}
	}
}

func (w *SummaryRefresher) refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	start := time.Now()
	if err := w.refresher.Refresh(ctx); err != nil {
		w.logger.Error("summary refresh failed", slog.Any("error", err))
		return
	}
	w.logger.Debug("summary refresh done", slog.Duration("latency", time.Since(start)))
}
