package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pankajyadav-dev/ocean/internal/api"
	"github.com/pankajyadav-dev/ocean/internal/config"
	"github.com/pankajyadav-dev/ocean/internal/geocode"
	"github.com/pankajyadav-dev/ocean/internal/notify"
	"github.com/pankajyadav-dev/ocean/internal/observability"
	"github.com/pankajyadav-dev/ocean/internal/redis"
	"github.com/pankajyadav-dev/ocean/internal/service"
	"github.com/pankajyadav-dev/ocean/internal/storage/postgres"
	"github.com/pankajyadav-dev/ocean/internal/workers"
	"github.com/pankajyadav-dev/ocean/pkg/logger"
)

// recentHazards keeps the broadcast feed small enough to replay to a
// freshly connected listener in one response.
const recentHazards = 50

type Components struct {
	logger         *slog.Logger
	HttpServer     *api.Server
	DispatchWorker *workers.DispatchWorker
	Postgres       *postgres.Postgres
	Redis          *redis.Redis
}

func InitComponents(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Components, error) {
	log.Info("Initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, log)
	if err != nil {
		log.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	log.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, log)
	if err != nil {
		storage.Pool.Close()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	metrics := observability.NewMetrics()

	recentCache := redis.NewRecentHazardCache(redisClient, recentHazards)
	broadcast := redis.NewHazardBroadcast(redisClient.Client, redis.BroadcastChannel, recentCache)

	geocoder := geocode.NewCachedResolver(
		geocode.NewClient(cfg.Geocode.BaseURL, cfg.Geocode.UserAgent, cfg.Geocode.Timeout, log),
		cfg.Geocode.CacheSize,
	)

	emailSender := notify.NewEmailSender(cfg.SMTP, log)
	smsSender := notify.NewSMSSender(cfg.SMS, cfg.Notify.ChannelTimeout, log)

	dispatcher := notify.NewDispatcher(
		broadcast,
		emailSender,
		smsSender,
		storage.Recipients,
		storage.Dedup,
		geocoder,
		cfg.Notify,
		log,
		metrics,
	)

	dispatchWorker := workers.NewDispatchWorker(
		dispatcher,
		cfg.Notify.Workers,
		cfg.Notify.QueueSize,
		// A dispatch pass touches the DB, SMTP and an SMS provider; give it
		// headroom beyond a single channel timeout.
		6*cfg.Notify.ChannelTimeout,
		log,
		metrics,
	)

	publicSvc := service.NewPublicReportService(storage.Reports, storage.Recipients, recentCache, dispatchWorker, log)
	adminSvc := service.NewAdminReportService(storage.Reports)
	statsSvc := service.NewStatsService(storage.Stat)

	svc := service.NewService(publicSvc, adminSvc, statsSvc)

	httpServer := api.NewServer(cfg, log, svc)
	log.Info("Initialized server")

	return &Components{
		logger:         log,
		HttpServer:     httpServer,
		DispatchWorker: dispatchWorker,
		Postgres:       storage,
		Redis:          redisClient,
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

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("redis close failed", slog.Any("error", err))
		}
	}

	c.logger.Info("all components stopped",
		slog.Duration("latency", time.Since(start)))
}
