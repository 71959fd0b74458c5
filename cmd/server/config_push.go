package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/talent-api/internal/config"
	"github.com/KirkDiggler/talent-api/internal/loader"
	"github.com/KirkDiggler/talent-api/internal/redis"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage stored tree configuration",
}

var configPushCmd = &cobra.Command{
	Use:   "push [trees-file]",
	Short: "Validate a tree document and store it in redis",
	Long: `Push decodes a JSON or YAML tree document, rejects it if it is malformed,
and writes it to the configured redis key. Servers pick it up on their next reload.`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigPush,
}

func init() {
	configCmd.AddCommand(configPushCmd)
}

func runConfigPush(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	client, err := redis.NewClient(cfg.Redis.Addr, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		_ = client.Close()
	}()

	source, err := loader.NewRedisSource(&loader.RedisConfig{Client: client, Key: cfg.Redis.Key})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	trees, err := source.Store(ctx, data)
	if err != nil {
		return fmt.Errorf("failed to store trees: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "stored %d trees at %s/%s\n", trees, cfg.Redis.Addr, cfg.Redis.Key)
	return nil
}
