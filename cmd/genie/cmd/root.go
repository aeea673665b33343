/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ssargent/genie/pkg/config"
	"github.com/ssargent/genie/pkg/di"
	"github.com/ssargent/genie/pkg/logging"
	"go.uber.org/zap"
)

var (
	container *di.Container
	cfg       = config.DefaultConfig()
	logger    = zap.NewNop()

	// Global flags
	configPath   string
	outputFormat string
	noColor      bool
	verbose      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "genie",
	Short: "genie - Game Boy Game Genie code toolkit",
	Long: `genie encodes and decodes Game Boy Game Genie codes and inspects
cartridge headers.

A code such as FF0-DE3-082 describes a one-byte patch: a new value, an
address and an optional compare byte that must match before the patch applies.

Examples:
  genie decode FF0-DE3-082
  genie encode C0DE?3A:FF
  genie header pokemon.gb`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadSettings(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// SetContainer injects the dependency container
func SetContainer(c *di.Container) {
	container = c
}

func getContainer() *di.Container {
	if container == nil {
		container = di.NewContainer()
	}
	return container
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadSettings reads the config file, applies flag overrides and builds the logger
func loadSettings(cmd *cobra.Command) error {
	loaded, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("output") {
		loaded.Output.Format = outputFormat
	}
	if noColor {
		loaded.Output.Color = false
	}
	if verbose {
		loaded.Logging.Level = "debug"
	}

	if err := loaded.Validate(); err != nil {
		return err
	}

	l, err := logging.New(loaded.Logging.Level)
	if err != nil {
		return err
	}

	cfg = loaded
	logger = l
	logger.Debug("configuration loaded", zap.String("path", configPath), zap.String("format", cfg.Output.Format))
	return nil
}

// loadConfig loads path, or the default config file when path is empty.
// A missing default file means defaults; a missing explicit file is an error.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.GetDefaultConfigPath()
		if !config.ConfigExists(path) {
			return config.DefaultConfig(), nil
		}
	}
	return config.LoadConfig(path)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ~/.config/genie/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", config.FormatText, "output format (text or json)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
