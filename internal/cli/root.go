// Package cli wires the cobra subcommands to the expense service. It is the
// outermost layer: flag parsing, table output and process exit codes live
// here, nothing below it ever prompts or prints.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"expensetracker/internal/backend"
	"expensetracker/internal/config"
	"expensetracker/internal/log"
	"expensetracker/internal/service"
	"expensetracker/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "expensetracker",
	Short: "Record and report personal expenses",
	Long: `Expense Tracker records monetary transactions with category, description
and timestamp, and reports on them via filtered listing, week/month summaries,
category totals and CSV import/export.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var logger = log.New(log.Config{Level: slog.LevelInfo})

// Execute runs the CLI: exit code 0 on success, 1 on any failure.
func Execute() {
	log.SetDefault(logger)

	if err := rootCmd.Execute(); err != nil {
		logger.WithComponent(log.ComponentCLI).Error("Command failed", log.FieldError, err)
		os.Exit(1)
	}
}

// withStore loads and validates configuration, opens the configured backend
// and hands the open store to fn, closing it on every exit path.
func withStore(cmd *cobra.Command, fn func(ctx context.Context, cfg *config.Config, store storage.Store) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	res, err := backend.Open(ctx, cfg, logger.Logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := res.Cleanup(); cerr != nil {
			logger.Warn("Closing store failed", log.FieldError, cerr)
		}
	}()

	return fn(ctx, cfg, res.Store)
}

func withService(cmd *cobra.Command, fn func(ctx context.Context, cfg *config.Config, svc *service.ExpenseService) error) error {
	return withStore(cmd, func(ctx context.Context, cfg *config.Config, store storage.Store) error {
		return fn(ctx, cfg, service.New(store, cfg.Limits()))
	})
}
