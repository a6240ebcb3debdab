package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/api"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/api/handlers/http/system"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/config"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/geo"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/service"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/storage/postgres"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/storage/redis"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/workers"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/pkg/logger"
)

const (
	summaryCachePrefix = "evac"
	refreshTimeout     = 30 * time.Second
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Alerts     *redis.AlertQueue
	// AlertSender is nil when alert delivery is disabled.
	AlertSender *service.AlertSender
	Refresher   *workers.SummaryRefresher
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("initializing postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("initializing redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		storage.Close()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	cache := redis.NewSummaryCache(redisClient, summaryCachePrefix)
	alertQueue := redis.NewAlertQueue(redisClient.Client, cfg.Alerts.QueueKey)
	validator := geo.NewValidator(cfg.Bounds)

	centerSvc := service.NewCenterService(storage.Centers(), storage.Barangays(), cache, alertQueue, validator, logger)
	barangaySvc := service.NewBarangayService(storage.Barangays(), validator)
	summarySvc := service.NewSummaryService(storage.Centers(), storage.Barangays(), cache, cfg.Summary.CacheTTL, logger)
	locationSvc := service.NewLocationService(validator, storage.Centers(), storage.LocationChecks(), logger)
	statsSvc := service.NewStatsService(storage.LocationChecks())

	srv := service.NewService(centerSvc, barangaySvc, summarySvc, locationSvc, statsSvc)

	health := map[string]system.Pinger{
		"postgres": storage,
		"redis":    redisClient,
	}
	httpServer := api.NewServer(ctx, cfg, logger, srv, health)
	logger.Info("initialized server")

	var sender *service.AlertSender
	if cfg.Alerts.Disabled {
		logger.Warn("capacity alert delivery disabled")
	} else {
		sender = service.NewAlertSender(logger, cfg.Alerts, alertQueue)
	}

	refresher := workers.NewSummaryRefresher(summarySvc, cfg.Summary.RefreshSchedule, refreshTimeout, logger)

	return &Components{
		logger:      logger,
		HttpServer:  httpServer,
		Postgres:    storage,
		Redis:       redisClient,
		Alerts:      alertQueue,
		AlertSender: sender,
		Refresher:   refresher,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("component shutdown started")

	if c.Alerts != nil {
		if n, err := c.Alerts.Len(context.Background()); err == nil && n > 0 {
			c.logger.Warn("undelivered capacity alerts left in queue", slog.Int64("count", n))
		}
	}

	c.Postgres.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("all components stopped",
		slog.Duration("latency", time.Since(start)))
}
