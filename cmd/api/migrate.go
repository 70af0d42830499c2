package main

import (
	"context"
	"fmt"

	"adoptme/internal/adapters/storage"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica schema (postgres) o índices (mongo) y sale",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}

		backend, err := storage.Open(cmd.Context(), cfg.Storage)
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}
		defer func() { _ = backend.Close(context.Background()) }()

		if err := backend.Migrate(cmd.Context()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		log.Info("migration applied", map[string]any{"storage": backend.Driver})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
