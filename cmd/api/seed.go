package main

import (
	"fmt"
	"time"

	"adoptme/internal/platform/httpclient"

	"github.com/spf13/cobra"
)

var (
	seedAPIURL string
	seedUsers  int
	seedPets   int
)

// seedCmd usa POST /api/mocks/generateData de un servidor corriendo (mocks.enabled).
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Genera e inserta usuarios y mascotas de prueba vía la API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if seedUsers < 0 || seedPets < 0 {
			return fmt.Errorf("--users y --pets deben ser >= 0")
		}

		client, err := httpclient.New(seedAPIURL, 2*time.Minute)
		if err != nil {
			return err
		}

		res, msg, err := client.GenerateMockData(cmd.Context(), seedUsers, seedPets)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), msg)
		fmt.Fprintf(cmd.OutOrStdout(), "users=%d pets=%d\n", res.Users, res.Pets)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedAPIURL, "api", "http://localhost:8080", "URL base de la API")
	seedCmd.Flags().IntVar(&seedUsers, "users", 10, "Cantidad de usuarios")
	seedCmd.Flags().IntVar(&seedPets, "pets", 10, "Cantidad de mascotas")
	rootCmd.AddCommand(seedCmd)
}
