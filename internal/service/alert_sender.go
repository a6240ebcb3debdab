package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/config"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/domain"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/pkg/e"
)

const alertMaxRetries = 3

// AlertSender drains the capacity alert queue into the configured webhook.
type AlertSender struct {
	logger  *slog.Logger
	cfg     config.AlertsConfig
	queue   AlertQueue
	http    *http.Client
	backoff time.Duration
}

type AlertSenderOption func(*AlertSender)

func WithHTTPClient(c *http.Client) AlertSenderOption {
	return func(s *AlertSender) { s.http = c }
}

// WithBackoff sets the base delay between delivery attempts; attempt n waits n*d.
func WithBackoff(d time.Duration) AlertSenderOption {
	return func(s *AlertSender) { s.backoff = d }
}

func NewAlertSender(logger *slog.Logger, cfg config.AlertsConfig, q AlertQueue, opts ...AlertSenderOption) *AlertSender {
	s := &AlertSender{
		logger:  logger,
		cfg:     cfg,
		queue:   q,
		http:    &http.Client{Timeout: 5 * time.Second},
		backoff: time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *AlertSender) Run(ctx context.Context) {
	s.logger.Info("alertSender STARTED", slog.String("url", s.cfg.WebhookURL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("alertSender STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		alert, err := s.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrAlertQueueEmpty) || ctx.Err() != nil {
				continue
			}
			s.logger.Error("BRPop failed", slog.Any("error", err))
			s.sleep(ctx, 500*time.Millisecond)
			continue
		}

		s.logger.Info("sending capacity alert",
			slog.String("center_id", alert.CenterID.String()),
			slog.String("current", alert.Current),
		)
		if err := s.Deliver(ctx, alert); err != nil {
			s.logger.Error("capacity alert dropped", slog.String("center_id", alert.CenterID.String()), slog.Any("error", err))
		}
	}
}

// Deliver posts one alert, retrying non-2xx responses and transport errors.
func (s *AlertSender) Deliver(ctx context.Context, alert domain.CapacityAlert) error {
	body, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("marshal alert: %w", err)
	}

	var reason string
	for attempt := 1; attempt <= alertMaxRetries; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.WebhookURL, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("create alert request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return nil
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		if err != nil {
			reason = err.Error()
		} else {
			reason = resp.Status
		}

		s.logger.Warn("alert webhook failed",
			slog.Int("attempt", attempt),
			slog.String("url", s.cfg.WebhookURL),
			slog.String("reason", reason),
		)

		if attempt < alertMaxRetries {
			s.sleep(ctx, time.Duration(attempt)*s.backoff)
		}
	}
	return fmt.Errorf("alert webhook gave up after %d attempts: %s", alertMaxRetries, reason)
}

func (s *AlertSender) sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
