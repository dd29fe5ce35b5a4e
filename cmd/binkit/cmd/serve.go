/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ssargent/binkit/pkg/api"
	"github.com/ssargent/binkit/pkg/config"
	"github.com/ssargent/binkit/pkg/storage"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the binkit REST API server.

Every codec is available under /api/v1, together with the test vector
store kept in the data directory. Prometheus metrics are served on /metrics
and the API documentation on /swagger/.

Settings come from the config file (see 'binkit init') and may be
overridden with flags.

Examples:
  binkit serve
  binkit serve --port 9000 --bind 0.0.0.0 --api-key mysecretkey
  binkit serve --config ./binkit.yaml --data-dir ./vectors`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configFrom(cmd)
		applyServeFlags(cmd, cfg)

		if err := cfg.Validate(); err != nil {
			return err
		}
		if container == nil {
			return fmt.Errorf("dependency container not initialized")
		}

		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		if cfg.Security.APIKey == "" {
			log.Printf("Warning: no API key configured, /api/v1 is open to every client")
		}
		log.Printf("Data directory: %s", cfg.DataDir)

		starter := container.GetServerFactory().CreateServerStarter()
		return starter.StartServer(store, serverConfig(cfg))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind server to")
	serveCmd.Flags().String("api-key", "", "API key required in X-API-Key (overrides config)")
}

// applyServeFlags overrides cfg with the flags given on the command line.
func applyServeFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("port") {
		cfg.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("bind") {
		cfg.Bind, _ = cmd.Flags().GetString("bind")
	}
	if cmd.Flags().Changed("api-key") {
		cfg.Security.APIKey, _ = cmd.Flags().GetString("api-key")
	}
}

func serverConfig(cfg *config.Config) api.ServerConfig {
	return api.ServerConfig{
		Port:         cfg.Port,
		Bind:         cfg.Bind,
		APIKey:       cfg.Security.APIKey,
		UTF:          cfg.UTFOptions(),
		LittleEndian: cfg.Bytes.LittleEndian,
		LogRequests:  cfg.Logging.Level == "debug" || cfg.Logging.Level == "info",
	}
}

// openStore opens the vector store under cfg.DataDir, creating the directory
// if needed.
func openStore(cfg *config.Config) (*storage.VectorStore, error) {
	if err := os.MkdirAll(cfg.DataDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	open := storage.Open
	if container != nil {
		open = container.GetStoreOpener()
	}
	store, err := open(filepath.Join(cfg.DataDir, "vectors"))
	if err != nil {
		return nil, fmt.Errorf("failed to open vector store: %w", err)
	}
	return store, nil
}
