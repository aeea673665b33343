/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/ssargent/genie/pkg/api"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the genie REST API server.

The server decodes and encodes codes and reads cartridge headers over HTTP.
Bind address, port and API key come from the config file and may be
overridden with flags. Without an API key the API is open.

Examples:
  genie serve
  genie serve --port=8080 --api-key=mysecretkey
  genie serve --bind=0.0.0.0 --config ./genie.yaml`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	serverConfig := api.ServerConfig{
		Bind:   cfg.Server.Bind,
		Port:   cfg.Server.Port,
		APIKey: cfg.Server.APIKey,
	}
	if cmd.Flags().Changed("bind") {
		serverConfig.Bind, _ = cmd.Flags().GetString("bind")
	}
	if cmd.Flags().Changed("port") {
		serverConfig.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("api-key") {
		serverConfig.APIKey, _ = cmd.Flags().GetString("api-key")
	}

	if serverConfig.APIKey == "" {
		logger.Warn("no API key configured, the API accepts unauthenticated requests")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := getContainer()
	starter := c.GetServerFactory().CreateServerStarter(c.GetCodec(), logger)

	logger.Info("starting server", zap.String("addr", serverConfig.Addr()))
	return starter.StartServer(ctx, serverConfig)
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("bind", "", "Address to bind (overrides config)")
	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().String("api-key", "", "API key for authentication (overrides config)")
}
