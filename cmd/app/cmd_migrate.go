package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wichananm65/portfolio-backend/internal/infrastructure/database/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	db, err := openDB(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := postgres.Migrate(cmd.Context(), db); err != nil {
		return err
	}
	logger.Info("schema up to date", zap.Int("statements", len(postgres.Schema)))
	return nil
}
