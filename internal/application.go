package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/rocketscienceinc/gomoku-backend/internal/config"
	"github.com/rocketscienceinc/gomoku-backend/internal/metrics"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository/storage"
	"github.com/rocketscienceinc/gomoku-backend/internal/service"
	"github.com/rocketscienceinc/gomoku-backend/internal/usecase"
	"github.com/rocketscienceinc/gomoku-backend/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	recordRepo, closeStorage := newRecordRepository(ctx, log, conf)
	defer closeStorage()

	recordService := service.NewRecordService(logger, recordRepo, conf.RecordsSeedPath)
	if err := recordService.Load(ctx); err != nil {
		// the game works without history; records start from zero
		log.Warn("continuing with an empty record store", "error", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	gameMetrics := metrics.New(registry)

	gameManager := usecase.NewGameManager(logger, recordService, gameMetrics)
	router := rest.NewRouter(logger, gameManager, registry)

	log.Info("Starting HTTP server", "port", conf.HTTPPort)
	if err := rest.Start(ctx, conf.HTTPPort, router, conf.ShutdownTimeout); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

// newRecordRepository prefers Redis and falls back to process memory when
// Redis is not configured or not reachable.
func newRecordRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.RecordRepository, func()) {
	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		log.Warn("using in-memory record store", "error", ErrAddrNotFound)
		return repository.NewMemoryRecordRepository(), func() {}
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		log.Error("could not connect to redis storage, using in-memory record store", "error", err)
		return repository.NewMemoryRecordRepository(), func() {}
	}

	closeStorage := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewRecordRepository(redisStorage.Connection), closeStorage
}
