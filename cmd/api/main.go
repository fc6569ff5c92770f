package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"github.com/nextier/cms-api/internal/api"
	"github.com/nextier/cms-api/internal/core/ports"
	"github.com/nextier/cms-api/internal/infrastructure/config"
	"github.com/nextier/cms-api/internal/infrastructure/db/memory"
	mongostore "github.com/nextier/cms-api/internal/infrastructure/db/mongo"
	"github.com/nextier/cms-api/pkg/logger"
)

// @title        NexTier Solutions API
// @version      1.1.0
// @description  Content API for the NexTier Solutions marketing site.
// @BasePath     /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		l := logger.New(logger.Options{Service: "cms-api"})
		l.Error().Err(err).Msg("cms-api exited")
		stop()
		os.Exit(1)
	}
}

// run serves the API until ctx is cancelled. The store is released before it
// returns, whatever the outcome.
func run(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "cms-api",
	})

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("open document store: %w", err)
	}
	defer closeStore()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	e, err := api.NewRouter(api.Deps{
		AppName:  cfg.AppName,
		Store:    store,
		Logger:   log,
		Registry: reg,
	})
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.StoreDriver).Msg("listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
	}
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	return nil
}

// openStore builds the configured document store and returns a func that
// releases it.
func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.DocumentStore, func(), error) {
	if cfg.StoreDriver == config.StoreMemory {
		log.Warn().Msg("using in-memory document store; content is lost on restart")
		return memory.NewDocumentStore(), func() {}, nil
	}

	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		return nil, nil, err
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongo")

	closeFn := func() {
		if err := mongostore.Disconnect(client, cfg.ShutdownTimeout); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}
	return mongostore.NewDocumentStore(db), closeFn, nil
}
