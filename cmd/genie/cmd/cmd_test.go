package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/ssargent/genie/pkg/api"
	"github.com/ssargent/genie/pkg/config"
	"github.com/ssargent/genie/pkg/di"
	"github.com/ssargent/genie/pkg/genie"
	"github.com/ssargent/genie/pkg/header"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setupCmdTest resets the package globals and returns a command writing to buf
func setupCmdTest(t *testing.T, format string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	SetContainer(di.NewContainer())
	cfg = config.DefaultConfig()
	cfg.Output.Format = format
	cfg.Output.Color = false
	logger = zap.NewNop()

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetContext(context.Background())
	return cmd, &buf
}

func TestDecodeCommand(t *testing.T) {
	t.Run("text output", func(t *testing.T) {
		cmd, buf := setupCmdTest(t, config.FormatText)

		require.NoError(t, runDecode(cmd, []string{"ff0-de3-082"}))

		out := buf.String()
		assert.Contains(t, out, "FF0-DE3-082")
		assert.Contains(t, out, "C0DE")
		assert.Contains(t, out, "3A")
		assert.Contains(t, out, "will set C0DE to always be 0xFF if the original byte is 0x3A")
	})

	t.Run("json output", func(t *testing.T) {
		cmd, buf := setupCmdTest(t, config.FormatJSON)

		require.NoError(t, runDecode(cmd, []string{"00-00-11"}))

		var resp api.PatchResponse
		require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
		assert.Equal(t, api.PatchResponse{
			Code:        "000-011",
			Value:       "00",
			Address:     "E001",
			Description: "will set E001 to always be 0x00",
		}, resp)
	})

	t.Run("errors", func(t *testing.T) {
		cmd, buf := setupCmdTest(t, config.FormatText)

		assert.ErrorIs(t, runDecode(cmd, []string{"ABCDE"}), genie.ErrInvalidLength)
		assert.ErrorIs(t, runDecode(cmd, []string{"GGHHII"}), genie.ErrInvalidCharacters)
		assert.ErrorIs(t, runDecode(cmd, []string{"FF0-DE3-002"}), genie.ErrIntegrityCheckFailed)
		assert.Empty(t, buf.String())
	})
}

func newEncodeTestCmd(t *testing.T, format string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	cmd, buf := setupCmdTest(t, format)
	encodeAddress, encodeValue, encodeCompare = "", "", ""
	cmd.Flags().StringVar(&encodeAddress, "address", "", "")
	cmd.Flags().StringVar(&encodeValue, "value", "", "")
	cmd.Flags().StringVar(&encodeCompare, "compare", "", "")
	return cmd, buf
}

func TestEncodeCommand(t *testing.T) {
	t.Run("shorthand", func(t *testing.T) {
		cmd, buf := newEncodeTestCmd(t, config.FormatText)

		require.NoError(t, runEncode(cmd, []string{"C0DE?3A:FF"}))
		assert.Contains(t, buf.String(), "FF0-DE3-082")
	})

	t.Run("flags", func(t *testing.T) {
		cmd, buf := newEncodeTestCmd(t, config.FormatJSON)
		require.NoError(t, cmd.Flags().Set("address", "1234"))
		require.NoError(t, cmd.Flags().Set("value", "AB"))
		require.NoError(t, cmd.Flags().Set("compare", "FF"))

		require.NoError(t, runEncode(cmd, nil))

		var resp api.PatchResponse
		require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
		assert.Equal(t, "AB2-34E-195", resp.Code)
		assert.Equal(t, "FF", resp.Compare)
	})

	t.Run("shorthand errors", func(t *testing.T) {
		cmd, _ := newEncodeTestCmd(t, config.FormatText)

		assert.ErrorIs(t, runEncode(cmd, []string{"C0DE"}), genie.ErrMissingValue)
		assert.ErrorIs(t, runEncode(cmd, []string{":FF"}), genie.ErrMissingAddress)
	})

	t.Run("flag missing address", func(t *testing.T) {
		cmd, _ := newEncodeTestCmd(t, config.FormatText)
		require.NoError(t, cmd.Flags().Set("value", "00"))

		assert.ErrorIs(t, runEncode(cmd, nil), genie.ErrMissingAddress)
	})

	t.Run("nothing to encode", func(t *testing.T) {
		cmd, _ := newEncodeTestCmd(t, config.FormatText)

		err := runEncode(cmd, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "shorthand")
	})
}

func writeTestROM(t *testing.T, title string) string {
	t.Helper()

	rom := make([]byte, 0x8000)
	copy(rom[0x134:], title)
	rom[0x147] = 0x01 // MBC1
	rom[0x14A] = 0x01 // Non-JP
	rom[0x14B] = 0x01
	rom[0x14D] = header.ComputeHeaderChecksum(rom)

	path := filepath.Join(t.TempDir(), "test.gb")
	require.NoError(t, os.WriteFile(path, rom, 0600))
	return path
}

func TestHeaderCommand(t *testing.T) {
	t.Run("text output", func(t *testing.T) {
		cmd, buf := setupCmdTest(t, config.FormatText)

		require.NoError(t, runHeader(cmd, []string{writeTestROM(t, "ZELDA")}))

		out := buf.String()
		assert.Contains(t, out, "ZELDA")
		assert.Contains(t, out, "MBC1")
		assert.Contains(t, out, "Non-JP")
		assert.Contains(t, out, "(ok)")
	})

	t.Run("json output", func(t *testing.T) {
		cmd, buf := setupCmdTest(t, config.FormatJSON)

		require.NoError(t, runHeader(cmd, []string{writeTestROM(t, "ZELDA")}))

		var data map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
		assert.Equal(t, "ZELDA", data["title"])
		assert.Equal(t, "MBC1", data["cartridge_type"])
		assert.Equal(t, "Game Boy", data["system"])
		assert.Equal(t, true, data["checksum_valid"])
	})

	t.Run("truncated image", func(t *testing.T) {
		cmd, _ := setupCmdTest(t, config.FormatText)
		path := filepath.Join(t.TempDir(), "short.gb")
		require.NoError(t, os.WriteFile(path, make([]byte, 32), 0600))

		assert.ErrorIs(t, runHeader(cmd, []string{path}), header.ErrTruncated)
	})

	t.Run("missing file", func(t *testing.T) {
		cmd, _ := setupCmdTest(t, config.FormatText)

		assert.Error(t, runHeader(cmd, []string{filepath.Join(t.TempDir(), "nope.gb")}))
	})
}

type captureStarter struct {
	got *api.ServerConfig
}

func (s captureStarter) StartServer(ctx context.Context, config api.ServerConfig) error {
	*s.got = config
	return nil
}

type captureFactory struct {
	got *api.ServerConfig
}

func (f captureFactory) CreateServerStarter(codec api.PatchCodec, logger *zap.Logger) api.ServerStarter {
	return captureStarter{got: f.got}
}

func newServeTestCmd(t *testing.T) (*cobra.Command, *api.ServerConfig) {
	t.Helper()

	cmd, _ := setupCmdTest(t, config.FormatText)
	cmd.Flags().String("bind", "", "")
	cmd.Flags().IntP("port", "p", 0, "")
	cmd.Flags().String("api-key", "", "")

	got := &api.ServerConfig{}
	getContainer().SetServerFactory(captureFactory{got: got})
	return cmd, got
}

func TestServeCommand(t *testing.T) {
	t.Run("config values", func(t *testing.T) {
		cmd, got := newServeTestCmd(t)
		cfg.Server.APIKey = "from-config"

		require.NoError(t, runServe(cmd, nil))
		assert.Equal(t, api.ServerConfig{Bind: "127.0.0.1", Port: 9200, APIKey: "from-config"}, *got)
	})

	t.Run("flag overrides", func(t *testing.T) {
		cmd, got := newServeTestCmd(t)
		require.NoError(t, cmd.Flags().Set("bind", "0.0.0.0"))
		require.NoError(t, cmd.Flags().Set("port", "8080"))
		require.NoError(t, cmd.Flags().Set("api-key", "from-flag"))

		require.NoError(t, runServe(cmd, nil))
		assert.Equal(t, api.ServerConfig{Bind: "0.0.0.0", Port: 8080, APIKey: "from-flag"}, *got)
	})
}

func newInitTestCmd(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	cmd, buf := setupCmdTest(t, config.FormatText)
	cmd.Flags().String("path", "", "")
	cmd.Flags().Bool("api-key", false, "")
	cmd.Flags().Bool("force", false, "")
	return cmd, buf
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genie", "config.yaml")

	t.Run("writes defaults", func(t *testing.T) {
		cmd, buf := newInitTestCmd(t)
		require.NoError(t, cmd.Flags().Set("path", path))

		require.NoError(t, runInit(cmd, nil))
		assert.Contains(t, buf.String(), "Config written to "+path)

		loaded, err := config.LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, config.DefaultConfig(), loaded)
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		cmd, _ := newInitTestCmd(t)
		require.NoError(t, cmd.Flags().Set("path", path))

		err := runInit(cmd, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("force with api key", func(t *testing.T) {
		cmd, buf := newInitTestCmd(t)
		require.NoError(t, cmd.Flags().Set("path", path))
		require.NoError(t, cmd.Flags().Set("force", "true"))
		require.NoError(t, cmd.Flags().Set("api-key", "true"))

		require.NoError(t, runInit(cmd, nil))

		loaded, err := config.LoadConfig(path)
		require.NoError(t, err)
		assert.Len(t, loaded.Server.APIKey, 64)
		assert.Contains(t, buf.String(), loaded.Server.APIKey)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("explicit path missing", func(t *testing.T) {
		_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("explicit path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output:\n  format: json\n"), 0600))

		loaded, err := loadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, config.FormatJSON, loaded.Output.Format)
		assert.Equal(t, 9200, loaded.Server.Port)
	})
}

func TestLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, config.SaveConfig(config.DefaultConfig(), path))

	t.Cleanup(func() {
		configPath, outputFormat, noColor, verbose = "", config.FormatText, false, false
	})

	t.Run("flag overrides", func(t *testing.T) {
		cmd, _ := setupCmdTest(t, config.FormatText)
		cmd.Flags().StringVar(&outputFormat, "output", config.FormatText, "")
		require.NoError(t, cmd.Flags().Set("output", config.FormatJSON))
		configPath, noColor, verbose = path, true, true

		require.NoError(t, loadSettings(cmd))
		assert.Equal(t, config.FormatJSON, cfg.Output.Format)
		assert.False(t, cfg.Output.Color)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("invalid output format", func(t *testing.T) {
		cmd, _ := setupCmdTest(t, config.FormatText)
		cmd.Flags().StringVar(&outputFormat, "output", config.FormatText, "")
		require.NoError(t, cmd.Flags().Set("output", "yaml"))
		configPath, noColor, verbose = path, false, false

		err := loadSettings(cmd)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid output format")
	})
}

func TestRootCommand_Execute(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, config.SaveConfig(config.DefaultConfig(), path))

	_, _ = setupCmdTest(t, config.FormatText)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		configPath, outputFormat, noColor = "", config.FormatText, false
	})

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"--config", path, "--no-color", "encode", "E001:00"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "000-011")
	assert.Contains(t, buf.String(), "will set E001 to always be 0x00")
}
