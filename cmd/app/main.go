package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wichananm65/portfolio-backend/internal/infrastructure/config"
	"github.com/wichananm65/portfolio-backend/internal/infrastructure/logging"
)

var (
	// Global flags
	addr     string
	seedFile string
	verbose  bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio site and admin backend",
	Long: `portfolio serves a personal portfolio site with an admin area for
articles, projects, experience, education, awards, certifications, services,
testimonials and site settings.

Without DATABASE_URL everything is kept in memory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		if addr != "" {
			cfg.Addr = addr
		}
		if seedFile != "" {
			cfg.SeedFile = seedFile
		}
		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}

		var err error
		logger, err = logging.New(level, cfg.IsDevelopment())
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&addr, "addr", "", "Listen address (overrides PORTFOLIO_ADDR)")
	rootCmd.PersistentFlags().StringVar(&seedFile, "seed", "", "YAML seed file (overrides SEED_FILE)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	adminCreateCmd.Flags().StringVar(&adminEmail, "email", "", "Admin email (default: ADMIN_EMAIL)")
	adminCreateCmd.Flags().StringVar(&adminPassword, "password", "", "Admin password (default: ADMIN_PASSWORD)")
	adminCreateCmd.Flags().StringVar(&adminName, "name", "Admin", "Display name")
	adminCmd.AddCommand(adminCreateCmd)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(adminCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
