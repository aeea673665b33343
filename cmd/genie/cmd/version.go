/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X github.com/ssargent/genie/cmd/genie/cmd.Version=..."
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the genie version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("genie %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
