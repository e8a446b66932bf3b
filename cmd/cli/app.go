package main

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iho/gobank/internal/adapter/idgen"
	"github.com/iho/gobank/internal/adapter/repository/memory"
	"github.com/iho/gobank/internal/infrastructure/config"
	"github.com/iho/gobank/internal/infrastructure/logger"
	"github.com/iho/gobank/internal/infrastructure/metrics"
	"github.com/iho/gobank/internal/usecase"
)

var (
	logLevel  string
	logFormat string
)

// app wires the in-memory bank for a single command run.
type app struct {
	cfg      *config.Config
	log      zerolog.Logger
	registry *prometheus.Registry

	accounts       *usecase.AccountUseCase
	transfers      *usecase.TransferUseCase
	history        *usecase.HistoryUseCase
	ledger         *usecase.LedgerUseCase
	reconciliation *usecase.ReconciliationUseCase
}

func newApp(cfg *config.Config, logOut io.Writer) *app {
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: logOut,
	})

	registry := prometheus.NewRegistry()
	m := metrics.New(registry, cfg.MetricsNamespace)

	accountRepo := memory.NewAccountRepository()
	idGen := idgen.NewULIDGenerator()

	return &app{
		cfg:            cfg,
		log:            log,
		registry:       registry,
		accounts:       usecase.NewAccountUseCase(accountRepo, idGen, m, log),
		transfers:      usecase.NewTransferUseCase(accountRepo, idGen, m, log),
		history:        usecase.NewHistoryUseCase(accountRepo),
		ledger:         usecase.NewLedgerUseCase(accountRepo),
		reconciliation: usecase.NewReconciliationUseCase(accountRepo),
	}
}

// loadApp reads the environment, applies flag overrides and builds the app.
func loadApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	if logFormat != "" {
		cfg.LogFormat = logFormat
	}

	return newApp(cfg, cmd.ErrOrStderr()), nil
}

func newRootCmd() *cobra.Command {
	logLevel, logFormat = "", ""

	rootCmd := &cobra.Command{
		Use:           "gobank",
		Short:         "GoBank CLI tool",
		Long:          `A command line interface for the in-memory savings, checking, credit and joint accounts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error, disabled); overrides LOG_LEVEL")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (json, console); overrides LOG_FORMAT")

	rootCmd.AddCommand(demoCmd())
	rootCmd.AddCommand(interestCmd())

	return rootCmd
}
