package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"spendsense/internal/cli"
	"spendsense/internal/core"
	apphttp "spendsense/internal/http"
	"spendsense/internal/store"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	ctx, cancel, shutdownTimeout := cli.ShutdownContext(context.Background())
	defer cancel()

	slotResult := cli.InitSlot(ctx, logger, cfg)
	if slotResult.Cleanup != nil {
		defer func() {
			if err := slotResult.Cleanup(); err != nil {
				logger.Error("Backend cleanup error", "error", err)
			}
		}()
	}

	// Catalog membership is checked by config validation; an unset value
	// leaves the store's own fallback in place.
	defaultCur, _ := core.FindCurrency(cfg.DefaultCurrency)
	st := store.NewWithDefaultCurrency(ctx, slotResult.Slot, defaultCur)
	pending := store.NewPendingList()

	srv := apphttp.NewServer(":"+cfg.Port, st, pending, nil)

	// Configure server timeouts and limits
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting spendsense server", "port", cfg.Port, "backend", cfg.DataBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
