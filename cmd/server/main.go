package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/21edclique/preciosMayorista/internal/config"
	"github.com/21edclique/preciosMayorista/internal/infra"
	"github.com/21edclique/preciosMayorista/internal/repository"
	"github.com/21edclique/preciosMayorista/internal/router"
	"github.com/21edclique/preciosMayorista/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Async workers are wired here (composition root) so that the pool has
	// full access to all infrastructure dependencies.
	mailer := infra.NewMailer(cfg)
	smtpCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	dispatcher := worker.NewDispatcher(rdb)
	precioRepo := repository.NewPrecioRepository(db)

	pool := worker.NewPool(rdb)
	pool.Register("exporte", worker.NewExportWorker(precioRepo, rdb, dispatcher, cfg.ExportStoragePath))
	pool.Register("email", worker.NewEmailWorker(mailer, smtpCB, rdb))
	pool.Start(ctx, cfg.WorkerPoolSize)

	worker.StartCleanupCron(ctx, worker.CleanupCronConfig{
		StoragePath: cfg.ExportStoragePath,
		MaxAge:      time.Duration(cfg.ExportTTLHours) * time.Hour,
	})

	r := router.New(cfg, db, rdb, smtpCB, dispatcher)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("preciosMayorista backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
