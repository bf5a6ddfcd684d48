package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wichananm65/portfolio-backend/internal/infrastructure/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed [file]",
	Short: "Replace stored content with a YAML seed file",
	Long: `seed loads a YAML file and replaces every section it contains.
Sections missing from the file are left untouched.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	file := cfg.SeedFile
	if len(args) == 1 {
		file = args[0]
	}
	if file == "" {
		return errors.New("no seed file given; pass one or set SEED_FILE")
	}
	if cfg.UsesMemoryStore() {
		return errNeedsDatabase
	}

	c, err := seed.Load(file)
	if err != nil {
		return err
	}
	services, closeStore, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer closeStore()

	if err := seed.Apply(c, services); err != nil {
		return err
	}
	logger.Info("seed applied", zap.String("file", file))
	return nil
}
