package main

import (
	"context"
	"fmt"
	"net"
	"os"

	"github.com/de-tools/wakestate/pkg/runtime/app"
	"github.com/de-tools/wakestate/pkg/server"
	"github.com/de-tools/wakestate/pkg/services/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for WakeState",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a YAML config file (defaults and WAKESTATE_* variables apply without one)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := cfg.NewLogger(os.Stdout)
	ctx := logger.WithContext(cmd.Context())

	a, err := app.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close storage")
		}
	}()

	if a.Backups != nil && cfg.Archive.Interval > 0 {
		backupCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		if err := a.Backups.Start(backupCtx); err != nil {
			return fmt.Errorf("failed to start backups: %w", err)
		}
		logger.Info().
			Str("bucket", cfg.Archive.Bucket).
			Dur("interval", cfg.Archive.Interval).
			Msg("scheduled backups started")
	}

	host := cfg.Server.Host
	if v := os.Getenv("SERVER_HOST"); v != "" {
		host = v
	}
	port := cfg.Server.Port
	if v := os.Getenv("SERVER_PORT"); v != "" {
		port = v
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			App: a,
		},
	})
	return api.Start()
}
