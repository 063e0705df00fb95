package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"expensetracker/internal/config"
	"expensetracker/internal/csvio"
	"expensetracker/internal/service"
)

var importFlags struct {
	file   string
	header bool
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import expenses from a CSV file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(ctx context.Context, cfg *config.Config, svc *service.ExpenseService) error {
			f, err := os.Open(importFlags.file)
			if err != nil {
				return fmt.Errorf("open import file: %w", err)
			}
			defer f.Close()

			n, err := csvio.NewImporter(svc, logger).Import(ctx, f, importFlags.header)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d rows\n", n)
			return nil
		})
	},
}

func init() {
	importCmd.Flags().StringVar(&importFlags.file, "file", "", "source CSV file")
	importCmd.Flags().BoolVar(&importFlags.header, "header", false, "CSV has a header row")
	_ = importCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(importCmd)
}
