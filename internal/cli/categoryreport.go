package cli

import (
	"context"

	"github.com/spf13/cobra"

	"expensetracker/internal/config"
	"expensetracker/internal/service"
)

var categoryReportFlags filterFlags

var categoryReportCmd = &cobra.Command{
	Use:   "category-report",
	Short: "Show totals grouped by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := categoryReportFlags.build()
		if err != nil {
			return err
		}
		return withService(cmd, func(ctx context.Context, cfg *config.Config, svc *service.ExpenseService) error {
			rows, err := svc.CategoryReport(ctx, filter.Since, filter.Until, filter.Limit)
			if err != nil {
				return err
			}
			printCategorySummaries(cmd.OutOrStdout(), rows)
			return nil
		})
	},
}

func init() {
	categoryReportCmd.Flags().StringVar(&categoryReportFlags.since, "since", "", "start date filter (inclusive)")
	categoryReportCmd.Flags().StringVar(&categoryReportFlags.until, "until", "", "end date filter (inclusive)")
	categoryReportCmd.Flags().IntVar(&categoryReportFlags.limit, "limit", 100, "maximum categories to return")
	rootCmd.AddCommand(categoryReportCmd)
}
