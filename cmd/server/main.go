package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/MosaabBleik/pharmacy-service/internal/cache"
	"github.com/MosaabBleik/pharmacy-service/internal/config"
	"github.com/MosaabBleik/pharmacy-service/internal/dashboard"
	"github.com/MosaabBleik/pharmacy-service/internal/database"
	"github.com/MosaabBleik/pharmacy-service/internal/handlers"
	"github.com/MosaabBleik/pharmacy-service/internal/middleware"
	"github.com/MosaabBleik/pharmacy-service/internal/notify"
	"github.com/MosaabBleik/pharmacy-service/internal/storage"
)

const shutdownTimeout = 20 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.App)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
	logger.Info("server has been gracefully shutdown")
}

func newLogger(app config.AppConfig) (*zap.Logger, error) {
	if app.Development() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// redisCheck reports a redis client that is not also the store driver.
type redisCheck struct {
	client *redis.Client
}

func (redisCheck) Name() string { return "redis" }

func (c redisCheck) Ping(ctx context.Context) error { return c.client.Ping(ctx).Err() }

type backend struct {
	driver storage.Driver
	redis  *redis.Client
	close  func()
}

func openBackend(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*backend, error) {
	switch cfg.Store.Driver {
	case config.DriverRedis:
		client, err := cache.InitRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return &backend{
			driver: storage.NewRedisStore(client, cfg.Store.KeyPrefix),
			redis:  client,
			close:  func() { _ = client.Close() },
		}, nil

	case config.DriverPostgres:
		if err := database.Migrate(cfg.Database.GetURL()); err != nil {
			return nil, err
		}
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, err
		}
		return &backend{
			driver: storage.NewPostgresStore(db),
			close: func() {
				if sqlDB, err := db.DB(); err == nil {
					_ = sqlDB.Close()
				}
			},
		}, nil

	default:
		logger.Warn("using in-memory store, state is lost on restart")
		return &backend{driver: storage.NewMemoryStore(), close: func() {}}, nil
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	be, err := openBackend(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.Store.Driver, err)
	}
	defer be.close()

	checks := []handlers.Pinger{be.driver}
	feed := notify.NewFeed(cfg.Notices.FeedSize)
	sinks := notify.Fanout{notify.NewLogNotifier(logger), feed}

	if cfg.Notices.Channel != "" {
		client := be.redis
		if client == nil {
			client, err = cache.InitRedis(ctx, cfg.Redis)
			if err != nil {
				return fmt.Errorf("failed to connect notice channel: %w", err)
			}
			defer client.Close()
			checks = append(checks, redisCheck{client: client})
		}
		sinks = append(sinks, notify.NewRedisPublisher(client, cfg.Notices.Channel, logger))
	}

	loc := cfg.App.Location
	store, err := dashboard.Open(ctx, dashboard.StoreConfig{
		KV:           be.driver,
		Notifier:     sinks,
		Logger:       logger,
		Clock:        func() time.Time { return time.Now().In(loc) },
		PharmacyName: cfg.App.PharmacyName,
	})
	if err != nil {
		return err
	}

	router := handlers.NewRouter(&handlers.DashboardHandler{
		Store:  store,
		Feed:   feed,
		Checks: checks,
		Logger: logger,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           middleware.Logger(logger, router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errGrp, ctx := errgroup.WithContext(ctx)

	errGrp.Go(func() error {
		logger.Info("server started",
			zap.String("port", cfg.App.Port),
			zap.String("store", be.driver.Name()),
			zap.String("pharmacy", cfg.App.PharmacyName),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	errGrp.Go(func() error {
		<-ctx.Done()
		logger.Info("server is gracefully shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server failed shutdown gracefully: %w", err)
		}
		return nil
	})

	return errGrp.Wait()
}
