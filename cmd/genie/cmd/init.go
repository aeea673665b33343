/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ssargent/genie/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write a default configuration file for genie.

This command will:
- Create the config directory
- Write default output, server and logging settings
- Optionally generate an API key for the HTTP server

Examples:
  genie init
  genie init --api-key
  genie init --path ./genie.yaml --force`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("path")
	withAPIKey, _ := cmd.Flags().GetBool("api-key")
	force, _ := cmd.Flags().GetBool("force")

	if path == "" {
		path = config.GetDefaultConfigPath()
	}

	if config.ConfigExists(path) && !force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}

	written, err := config.BootstrapConfig(path, withAPIKey)
	if err != nil {
		return err
	}

	cmd.Printf("Config written to %s\n", path)
	if written.Server.APIKey != "" {
		cmd.Printf("API key: %s\n", written.Server.APIKey)
	}
	cmd.Printf("\nYou can now start the server with:\n")
	cmd.Printf("  genie serve --config %s\n", path)
	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("path", "", "Where to write the config (default ~/.config/genie/config.yaml)")
	initCmd.Flags().Bool("api-key", false, "Generate an API key for the HTTP server")
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}
