package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"expensetracker/internal/config"
	"expensetracker/internal/csvio"
	"expensetracker/internal/log"
	"expensetracker/internal/service"
)

var exportFlags struct {
	filterFlags
	file string
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export query results to CSV (same filters as list)",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := exportFlags.build()
		if err != nil {
			return err
		}
		return withService(cmd, func(ctx context.Context, cfg *config.Config, svc *service.ExpenseService) error {
			rows, err := svc.List(ctx, filter)
			if err != nil {
				return err
			}

			f, err := os.Create(exportFlags.file)
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			if err := csvio.Export(f, rows); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close export file: %w", err)
			}

			logger.Info("Exported rows", log.FieldCount, len(rows), log.FieldFile, exportFlags.file)
			return nil
		})
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFlags.file, "file", "", "destination CSV file")
	exportCmd.Flags().IntVar(&exportFlags.limit, "limit", 100, "maximum rows to export")
	exportCmd.Flags().StringVar(&exportFlags.since, "since", "", "start date filter (inclusive)")
	exportCmd.Flags().StringVar(&exportFlags.until, "until", "", "end date filter (inclusive)")
	exportCmd.Flags().StringVar(&exportFlags.category, "category", "", "filter by category")
	_ = exportCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(exportCmd)
}
