package main

import (
	"fmt"
	"os"

	"adoptme/internal/config"
	"adoptme/internal/platform/logger"

	"github.com/spf13/cobra"
)

var configPath string

// rootCmd sin subcomando levanta el servidor.
var rootCmd = &cobra.Command{
	Use:           "adoptme",
	Short:         "API de mascotas y adopciones",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Ruta al config.yaml (default: $CONFIG_PATH o ./config.yaml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig carga la config y arma el logger base.
func loadConfig() (config.Config, logger.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, nil, err
	}
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})
	return cfg, log, nil
}
