package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MikeRez0/payopt/internal/adapter/config"
	"github.com/MikeRez0/payopt/internal/adapter/logger"
	"github.com/MikeRez0/payopt/internal/adapter/reader"
	"github.com/MikeRez0/payopt/internal/adapter/storage"
	"github.com/MikeRez0/payopt/internal/adapter/storage/repository"
	"github.com/MikeRez0/payopt/internal/adapter/writer"
	"github.com/MikeRez0/payopt/internal/core/port"
	"github.com/MikeRez0/payopt/internal/core/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var conf *config.Config

	cmd := &cobra.Command{
		Use:   "payopt ORDERS_FILE PAYMENT_METHODS_FILE",
		Short: "Pick a payment method for every order, maximizing discounts",
		Long: `payopt assigns each order to one payment method, or to loyalty points
topped up by a card, under the spending limit of every method. It prints
the total spent per method, one "<method id> <amount>" line each.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return conf.Parse()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAllocate(cmd.Context(), conf, args[0], args[1], cmd.OutOrStdout())
		},
	}
	conf = config.Bind(cmd.PersistentFlags())
	cmd.AddCommand(newServeCmd(conf))

	return cmd
}

func runAllocate(ctx context.Context, conf *config.Config, ordersPath, methodsPath string, out io.Writer) error {
	log, err := logger.NewLogger(conf.App)
	if err != nil {
		return fmt.Errorf("error creating log: %w", err)
	}
	defer func() {
		_ = log.Sync()
	}()

	repo, closeRepo, err := openArchive(ctx, conf.Database, log)
	if err != nil {
		log.Error("archive error", zap.Error(err))
		return err
	}
	defer closeRepo()

	svc, err := service.NewService(repo, nil, conf.Allocation.PointsMethodID, log.Named("Service"))
	if err != nil {
		log.Error("service creating error", zap.Error(err))
		return err
	}

	input := reader.NewFileReader(log.Named("Reader"))
	methods, err := input.ReadPaymentMethods(ctx, methodsPath)
	if err != nil {
		log.Error("payment methods input error", zap.Error(err))
		return err
	}
	orders, err := input.ReadOrders(ctx, ordersPath)
	if err != nil {
		log.Error("orders input error", zap.Error(err))
		return err
	}

	allocation, err := svc.Allocate(ctx, orders, methods)
	if err != nil {
		log.Error("allocation error", zap.Error(err))
		return err
	}

	var sink port.OutputSink = writer.NewConsole(out)
	return sink.WriteSummary(allocation.Summary)
}

// openArchive connects the allocation archive when a DSN is configured.
// Without one it returns a nil repository.
func openArchive(ctx context.Context, conf *config.Database, log *zap.Logger) (port.Repository, func(), error) {
	if conf.DSN == "" {
		return nil, func() {}, nil
	}

	db, err := storage.NewDBStorage(ctx, conf, log)
	if err != nil {
		return nil, nil, fmt.Errorf("database error: %w", err)
	}
	if err = db.RunMigrations(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("database migration error: %w", err)
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("repository creating error: %w", err)
	}
	return repo, db.Close, nil
}
