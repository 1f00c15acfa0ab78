package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/MikeRez0/payopt/internal/adapter/config"
	handler "github.com/MikeRez0/payopt/internal/adapter/handler/http"
	"github.com/MikeRez0/payopt/internal/adapter/logger"
	"github.com/MikeRez0/payopt/internal/adapter/metrics"
	"github.com/MikeRez0/payopt/internal/core/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(conf *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the allocation HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), conf)
		},
	}
}

func runServe(ctx context.Context, conf *config.Config) error {
	log, err := logger.NewLogger(conf.App)
	if err != nil {
		return fmt.Errorf("error creating log: %w", err)
	}
	defer func() {
		_ = log.Sync()
	}()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := openArchive(ctx, conf.Database, log)
	if err != nil {
		log.Error("archive error", zap.Error(err))
		return err
	}
	defer closeRepo()
	if repo == nil {
		log.Warn("No database configured, allocation archive disabled")
	}

	observer := metrics.NewObserver(log.Named("Metrics"))

	svc, err := service.NewService(repo, observer, conf.Allocation.PointsMethodID, log.Named("Service"))
	if err != nil {
		log.Error("service creating error", zap.Error(err))
		return err
	}

	allocationHandler, err := handler.NewAllocationHandler(svc, log.Named("Allocation handler"))
	if err != nil {
		log.Error("allocation handler creating error", zap.Error(err))
		return err
	}

	r, err := handler.NewRouter(conf.App, allocationHandler, observer.Handler(), log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return err
	}

	srv := &http.Server{
		Addr:              conf.HTTP.HostString,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Listening", zap.String("address", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err = <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error("router serve error", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", zap.Error(err))
		return err
	}
	log.Info("Server stopped")
	return nil
}
