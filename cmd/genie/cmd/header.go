/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/ssargent/genie/pkg/header"
	"go.uber.org/zap"
)

// headerCmd represents the header command
var headerCmd = &cobra.Command{
	Use:   "header <rom>",
	Short: "Show the cartridge header of a ROM image",
	Long: `Read the cartridge header of a Game Boy ROM image and print its title,
cartridge type, memory sizes, destination and header checksum.

Examples:
  genie header tetris.gb
  genie header pokemon.gbc --output json`,
	Args: cobra.ExactArgs(1),
	RunE: runHeader,
}

func runHeader(cmd *cobra.Command, args []string) error {
	h, err := header.Load(args[0])
	if err != nil {
		return err
	}
	logger.Debug("read cartridge header", zap.String("path", args[0]), zap.String("title", h.Title),
		zap.Bool("checksum_valid", h.ChecksumValid))

	return newPrinter(cmd.OutOrStdout(), cfg.Output).header(h)
}

func init() {
	rootCmd.AddCommand(headerCmd)
}
