package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wichananm65/portfolio-backend/internal/content"
	"github.com/wichananm65/portfolio-backend/internal/infrastructure/seed"
	"github.com/wichananm65/portfolio-backend/internal/interface/http/router"
	"github.com/wichananm65/portfolio-backend/internal/media"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	services, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := ensureAdmin(services); err != nil {
		return err
	}
	if err := seedIfEmpty(services); err != nil {
		return err
	}

	uploads := media.NewStore(cfg.UploadDir, cfg.UploadURL, int64(cfg.MaxUploadMB)<<20, logger)
	app := router.New(cfg, logger, services, uploads)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr), zap.String("env", cfg.Env))
		errCh <- app.Listen(cfg.Addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

func seedIfEmpty(s *content.Services) error {
	if cfg.SeedFile == "" {
		return nil
	}
	empty, err := s.Empty()
	if err != nil || !empty {
		return err
	}
	c, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return err
	}
	if err := seed.Apply(c, s); err != nil {
		return err
	}
	logger.Info("seeded empty store", zap.String("file", cfg.SeedFile))
	return nil
}
