package cli

import (
	"context"

	"github.com/spf13/cobra"

	"expensetracker/internal/config"
	"expensetracker/internal/service"
)

var listFlags filterFlags

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent expenses",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := listFlags.build()
		if err != nil {
			return err
		}
		return withService(cmd, func(ctx context.Context, cfg *config.Config, svc *service.ExpenseService) error {
			rows, err := svc.List(ctx, filter)
			if err != nil {
				return err
			}
			printExpenses(cmd.OutOrStdout(), rows)
			return nil
		})
	},
}

func init() {
	listCmd.Flags().IntVar(&listFlags.limit, "limit", 50, "maximum rows to return")
	listCmd.Flags().StringVar(&listFlags.since, "since", "", "start date filter (inclusive)")
	listCmd.Flags().StringVar(&listFlags.until, "until", "", "end date filter (inclusive)")
	listCmd.Flags().StringVar(&listFlags.category, "category", "", "filter by category")
	rootCmd.AddCommand(listCmd)
}
