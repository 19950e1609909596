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

	"backoffice/config"
	"backoffice/controllers"
	"backoffice/metrics"
	"backoffice/repository"
	"backoffice/routes"
	"backoffice/services"
	"backoffice/services/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.NewZapLogger(logger.ParseLevel(cfg.LogLevel), !cfg.IsProd())
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	err = run(cfg, zl)
	zl.Sync()
	if err != nil {
		log.Fatalf("%v", err)
	}
}

func run(cfg *config.Config, zl *logger.ZapLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg, "backoffice")

	store, err := openStore(cfg, zl)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	var rdb *redis.Client
	if cfg.ScopeLocks == config.LocksRedis {
		rdb, err = config.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer rdb.Close()
	}

	svc := services.NewService(services.ServiceOptions{
		Store:           store,
		Logger:          zl,
		Locker:          newLocker(cfg, rdb, zl),
		Metrics:         m,
		DefaultPageSize: cfg.PageSizeDefault,
		MaxPageSize:     cfg.PageSizeMax,
	})

	router := config.InitApp(cfg, zl, m)
	routes.SetupRoutes(router, controllers.NewController(svc), reg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() {
		zl.Info("Server starting on port %s (env=%s, store=%s, locks=%s)", cfg.Port, cfg.Env, cfg.Store, cfg.ScopeLocks)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	zl.Info("Server stopped")
	return nil
}

func openStore(cfg *config.Config, log logger.Logger) (*repository.Store, error) {
	if cfg.Store == config.StoreMemory {
		log.Info("Using in-memory store; data is lost on restart")
		return repository.NewMemoryStore(time.Now), nil
	}

	db, err := config.ConnectDB(cfg.DB, logger.ParseLevel(cfg.LogLevel) == logger.DebugLevel)
	if err != nil {
		return nil, err
	}
	log.Info("Successfully connected to db %s on %s", cfg.DB.Name, cfg.DB.Host)

	if cfg.AutoMigrate {
		if err := repository.Migrate(db); err != nil {
			return nil, err
		}
		log.Info("Migrated tables")
	}
	return repository.NewPostgresStore(db, time.Now), nil
}

func newLocker(cfg *config.Config, rdb *redis.Client, log logger.Logger) services.Locker {
	switch cfg.ScopeLocks {
	case config.LocksRedis:
		return services.NewRedisLocker(rdb, log, cfg.LockTTL)
	case config.LocksMemory:
		return services.NewMemoryLocker()
	default:
		return services.NoopLocker{}
	}
}
