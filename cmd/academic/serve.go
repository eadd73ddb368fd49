package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/hansriess/academic-site/internal/config"
	"github.com/hansriess/academic-site/internal/db"
	"github.com/hansriess/academic-site/internal/server"
	"github.com/hansriess/academic-site/internal/storage"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the record management API, the public portfolio view and the CV generation endpoint.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if servePort != "" {
		cfg.Port = servePort
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	database, err := db.Connect(cmd.Context(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	store, err := openStore(cfg)
	if err != nil {
		database.Close()
		return err
	}

	srv, err := server.New(cfg, database, store)
	if err != nil {
		database.Close()
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// openStore connects to the configured object store, or returns nil when
// publishing is disabled.
func openStore(cfg *config.Config) (storage.Storage, error) {
	if cfg.ObjectStore.Endpoint == "" {
		log.Println("No object store configured, CV artifacts stay local")
		return nil, nil
	}
	store, err := storage.NewMinIO(cfg.ObjectStore)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to object store: %w", err)
	}
	return store, nil
}
