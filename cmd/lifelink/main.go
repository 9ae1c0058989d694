package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/dmehra2102/prod-golang-projects/lifelink/internal/config"
	v1 "github.com/dmehra2102/prod-golang-projects/lifelink/internal/handler/v1"
	"github.com/dmehra2102/prod-golang-projects/lifelink/internal/service"
	"github.com/dmehra2102/prod-golang-projects/lifelink/internal/store"
	"github.com/dmehra2102/prod-golang-projects/lifelink/pkg/logger"
	"github.com/dmehra2102/prod-golang-projects/lifelink/pkg/metrics"
	"github.com/dmehra2102/prod-golang-projects/lifelink/pkg/tracer"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "lifelink: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log, cfg.App)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp, err := tracer.Init(ctx, cfg.Tracing, cfg.App.Version)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewCollector("lifelink", reg)

	seed := store.DefaultSeed()
	if cfg.Seed.File != "" {
		seed, err = store.LoadSeedFile(cfg.Seed.File)
		if err != nil {
			return fmt.Errorf("load seed: %w", err)
		}
		log.Info("seed fixture loaded", zap.String("path", cfg.Seed.File))
	}
	st := store.New(store.WithSeed(seed))

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := v1.NewRouter(v1.RouterDeps{
		Config: cfg,
		Services: v1.Services{
			Users:   service.NewUserService(st, m, log),
			Vitals:  service.NewVitalsService(st, m, log),
			Records: service.NewRecordsService(st, m, log),
			System:  service.NewSystemService(st, m, log),
		},
		Metrics:  m,
		Gatherer: reg,
		Logger:   log,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("LifeLink API listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http server shutdown", zap.Error(err))
	}
	if err := tp.Shutdown(shutdownCtx); err != nil {
		log.Error("tracer shutdown", zap.Error(err))
	}

	log.Info("LifeLink API stopped")
	return nil
}
