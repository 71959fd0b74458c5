// Package main is the entry point for the talent-api server and CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/talent-api/cmd/server/client"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "talent-api",
	Short: "Talent tree allocation server",
	Long: `talent-api serves talent trees: players spend and reclaim points under
row unlock rules, and administrators add, remove and edit talents.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "talent-api.yaml", "path to the YAML config file")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
