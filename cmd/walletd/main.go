package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/ledgerkeep/walletd/internal/api/router"
	"github.com/ledgerkeep/walletd/internal/config"
	"github.com/ledgerkeep/walletd/internal/service/auth"
	collector "github.com/ledgerkeep/walletd/internal/service/deposit-collector"
	"github.com/ledgerkeep/walletd/internal/service/deposits"
	"github.com/ledgerkeep/walletd/internal/service/funds"
	"github.com/ledgerkeep/walletd/internal/service/healthcheck"
	"github.com/ledgerkeep/walletd/internal/service/withdrawals"
	"github.com/ledgerkeep/walletd/internal/storage/postgresql"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		slog.Error("failed to initialize config", slog.Any("error", err))
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	if err := run(cfg); err != nil {
		slog.Error("walletd failed", slog.Any("error", err))
		os.Exit(1)
	}

	slog.Info("walletd shut down")
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer stop()

	slog.Info("starting walletd")
	slog.Debug("effective config", slog.String("config", cfg.String()))

	storage, err := postgresql.NewStorage(ctx, cfg.DatabaseURI)
	if err != nil {
		return err
	}

	api := router.NewRouter(router.StorageDeps{
		JWTSecret:     cfg.JWTSecret,
		HealthService: healthcheck.NewHealthcheckService(storage.Health),
		AuthService: auth.NewAuthService(
			storage.Users,
			cfg.JWTSecret,
			cfg.JWTTTL,
		),
		DepositsService:    deposits.NewDepositsService(storage.Deposits),
		FundsService:       funds.NewFundsService(storage.Funds),
		WithdrawalsService: withdrawals.NewWithdrawalsService(storage.Withdrawals),
	})

	paymentPoller := collector.NewCollector(
		cfg.ProcessorAddress,
		cfg.ProcessorPollInterval,
		storage.Collector,
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting api", slog.String("address", cfg.RunAddress))
		return api.Run(ctx, cfg.RunAddress)
	})

	g.Go(func() error {
		slog.Info(
			"starting payment poller",
			slog.Duration("interval", cfg.ProcessorPollInterval),
		)
		return paymentPoller.Run(ctx)
	})

	return g.Wait()
}

func setupLogger(level string) {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
}
