// Package main provides the entry point for the tutor catalog site.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"tutor-catalog/internal/catalog"
	"tutor-catalog/internal/config"
	"tutor-catalog/internal/form"
	"tutor-catalog/internal/handler"
	"tutor-catalog/internal/logger"
	"tutor-catalog/internal/submission"
	"tutor-catalog/internal/view"
)

// Run is the testable entrypoint for the application.
func Run(ctx context.Context) error {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	defer func() { _ = log.Sync() }()
	log.Info("Starting tutor catalog", zap.String("env", cfg.Env), zap.String("addr", cfg.Addr))

	c, err := catalog.Load(cfg.TeachersPath, cfg.GoalsPath)
	if err != nil {
		log.Error("failed to load catalog", zap.Error(err))
		return err
	}
	log.Info("catalog loaded", zap.Int("tutors", len(c.All())), zap.Int("goals", len(c.Goals())))

	validate, err := form.New(c.Goals())
	if err != nil {
		return err
	}
	store, err := submission.New(cfg, log)
	if err != nil {
		log.Error("failed to open submission files", zap.Error(err))
		return err
	}
	views, err := view.New()
	if err != nil {
		return err
	}

	h := handler.New(log, c, validate, store, views, cfg.SampleSize)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      h.Routes(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down server")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := Run(ctx); err != nil {
		os.Exit(1)
	}
}
