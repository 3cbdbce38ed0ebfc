package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mathieu/talent-match/internal/config"
	"github.com/mathieu/talent-match/internal/db"
	"github.com/mathieu/talent-match/internal/logger"
	"github.com/mathieu/talent-match/internal/notify"
	"github.com/mathieu/talent-match/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the single and bulk matching endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the effective configuration: the JSON file when one is
// supplied, the environment otherwise.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = config.FromEnv().DatabaseURL
		}
	} else {
		cfg = config.FromEnv()
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	store, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		Store:       store,
		Notifier:    &notify.LogNotifier{Log: log},
		Log:         log,
		Params:      cfg.Params(),
		MinScore:    cfg.MinScore,
		Concurrency: cfg.Concurrency,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
