package cli

import (
	"context"

	"github.com/spf13/cobra"

	"expensetracker/internal/config"
	"expensetracker/internal/core"
	"expensetracker/internal/service"
)

var summaryFlags struct {
	period string
	limit  int
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show totals by week or month",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(ctx context.Context, cfg *config.Config, svc *service.ExpenseService) error {
			rows, err := svc.SummaryByPeriod(ctx, core.Period(summaryFlags.period), summaryFlags.limit)
			if err != nil {
				return err
			}
			printPeriodSummaries(cmd.OutOrStdout(), rows)
			return nil
		})
	},
}

func init() {
	summaryCmd.Flags().StringVar(&summaryFlags.period, "period", "month", "bucket kind: week or month")
	summaryCmd.Flags().IntVar(&summaryFlags.limit, "limit", 12, "maximum buckets to return")
	rootCmd.AddCommand(summaryCmd)
}
