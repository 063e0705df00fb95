package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"expensetracker/internal/config"
	"expensetracker/internal/storage"
)

var initDBForce bool

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Create the expenses table",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, cfg *config.Config, store storage.Store) error {
			schema, ok := store.(storage.SchemaInitializer)
			if !ok {
				return fmt.Errorf("backend %q does not manage a schema", cfg.Backend)
			}
			if err := schema.InitSchema(ctx, initDBForce); err != nil {
				return err
			}
			logger.Info("Initialized database and ensured table exists")
			return nil
		})
	},
}

func init() {
	initDBCmd.Flags().BoolVar(&initDBForce, "force", false, "drop and recreate the table")
	rootCmd.AddCommand(initDBCmd)
}
