package cmd

import (
	"bookstore/feature/bookstore/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd creates or updates every table.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate the database schema",
	Long:  `Runs gorm AutoMigrate for every bookstore model. Existing data is kept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		if err := migrate(rt.db); err != nil {
			return err
		}
		rt.logger.Info("Schema migrated", zap.Int("models", len(models.All())))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
