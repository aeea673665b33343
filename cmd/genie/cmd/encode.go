/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	encodeAddress string
	encodeValue   string
	encodeCompare string
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode [ADDR:VAL | ADDR?CHECK:VAL]",
	Short: "Encode a patch as a Game Genie code",
	Long: `Encode a patch as a Game Genie code.

The patch is given either as shorthand (ADDR:VAL or ADDR?CHECK:VAL, all hex)
or with the --address, --value and --compare flags.

Examples:
  genie encode E001:00
  genie encode C0DE?3A:FF
  genie encode --address C0DE --value FF --compare 3A`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEncode,
}

func runEncode(cmd *cobra.Command, args []string) error {
	codec := getContainer().GetCodec()

	var (
		code string
		err  error
	)
	switch {
	case len(args) == 1:
		code, err = codec.EncodeShorthand(args[0])
	case cmd.Flags().Changed("address") || cmd.Flags().Changed("value"):
		code, err = codec.EncodeFields(encodeAddress, encodeValue, encodeCompare)
	default:
		return fmt.Errorf("provide a shorthand argument or --address and --value")
	}
	if err != nil {
		logger.Debug("encode failed", zap.Strings("args", args), zap.Error(err))
		return err
	}

	patch, err := codec.Decode(code)
	if err != nil {
		return fmt.Errorf("encoded code %s does not decode: %w", code, err)
	}
	logger.Debug("encoded patch", zap.String("code", code))

	return newPrinter(cmd.OutOrStdout(), cfg.Output).patch(code, patch)
}

func init() {
	rootCmd.AddCommand(encodeCmd)

	encodeCmd.Flags().StringVar(&encodeAddress, "address", "", "address to patch (4 hex digits)")
	encodeCmd.Flags().StringVar(&encodeValue, "value", "", "replacement value (2 hex digits)")
	encodeCmd.Flags().StringVar(&encodeCompare, "compare", "", "compare byte the original must match (2 hex digits, optional)")
}
