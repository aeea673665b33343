/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode <code>",
	Short: "Decode a Game Genie code",
	Long: `Decode a 6 or 9 digit Game Genie code into the patch it describes.

Hyphens and spaces are ignored and digits may be upper or lower case.

Examples:
  genie decode 000-011
  genie decode ff0-de3-082
  genie decode FF0-DE3-082 --output json`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

func runDecode(cmd *cobra.Command, args []string) error {
	code := args[0]

	patch, err := getContainer().GetCodec().Decode(code)
	if err != nil {
		logger.Debug("decode failed", zap.String("code", code), zap.Error(err))
		return err
	}

	canonical := getContainer().GetCodec().Encode(patch)
	logger.Debug("decoded code", zap.String("code", canonical), zap.Stringer("patch", patch))

	return newPrinter(cmd.OutOrStdout(), cfg.Output).patch(canonical, patch)
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
