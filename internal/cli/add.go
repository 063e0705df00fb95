package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"expensetracker/internal/config"
	"expensetracker/internal/core"
	"expensetracker/internal/service"
)

var addFlags struct {
	amount      string
	category    string
	description string
	date        string
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an expense",
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := core.ParseAmount(addFlags.amount)
		if err != nil {
			return err
		}
		e := core.Expense{
			Amount:      amount,
			Category:    addFlags.category,
			Description: addFlags.description,
		}
		if addFlags.date != "" {
			if e.CreatedAt, err = core.ParseDate(addFlags.date); err != nil {
				return err
			}
		}

		return withService(cmd, func(ctx context.Context, cfg *config.Config, svc *service.ExpenseService) error {
			id, err := svc.Add(ctx, e)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Expense added. id=%d\n", id)
			return nil
		})
	},
}

func init() {
	addCmd.Flags().StringVar(&addFlags.amount, "amount", "", "amount (e.g. 12.50)")
	addCmd.Flags().StringVar(&addFlags.category, "category", "", "category (e.g. Food)")
	addCmd.Flags().StringVar(&addFlags.description, "description", "", "optional description")
	addCmd.Flags().StringVar(&addFlags.date, "date", "", "date (e.g. 2023-06-01 or 2023-06-01T12:00:00)")
	_ = addCmd.MarkFlagRequired("amount")
	_ = addCmd.MarkFlagRequired("category")
	rootCmd.AddCommand(addCmd)
}
