package configcmd_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/basket/internal/cli"
	"github.com/thenoetrevino/basket/internal/cli/configcmd"
	"github.com/thenoetrevino/basket/internal/config"
	"github.com/thenoetrevino/basket/internal/testutil"
)

func execute(t *testing.T, cfg *config.Config, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	testutil.SetupCobraCommand(cmd, args)
	cmd.SetContext(cli.WithCLI(context.Background(), &cli.CLI{Config: cfg}))
	return testutil.ExecuteCommand(t, cmd)
}

func TestConfigInit_WritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	output, err := execute(t, nil, configcmd.InitCmd(), []string{"--path", path})
	require.NoError(t, err)
	assert.Contains(t, output, path)

	loaded, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default().DBFile, loaded.DBFile)
	assert.Equal(t, config.Default().Daemon.Debounce, loaded.Daemon.Debounce)
}

func TestConfigInit_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0o644))

	_, err := execute(t, nil, configcmd.InitCmd(), []string{"--path", path})
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCodeOf(err))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "log_level: debug\n", string(data))

	_, err = execute(t, nil, configcmd.InitCmd(), []string{"--path", path, "--force", "--quiet"})
	require.NoError(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "log_level: info")
}

func TestConfigInit_DefaultLocation(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	output, err := execute(t, nil, configcmd.InitCmd(), []string{"--json"})
	require.NoError(t, err)

	want, err := config.Path()
	require.NoError(t, err)
	assert.Equal(t, want, testutil.ParseJSON(t, output)["path"])
	assert.FileExists(t, want)
}

func TestConfigShow(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "debug"
	cfg.Daemon.Debounce = 250 * time.Millisecond

	output, err := execute(t, cfg, configcmd.ShowCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "log_level: debug")
	assert.Contains(t, output, "debounce: 250ms")

	output, err = execute(t, cfg, configcmd.ShowCmd(), []string{"--json"})
	require.NoError(t, err)
	doc := testutil.ParseJSON(t, output)["config"].(map[string]any)
	assert.Equal(t, "debug", doc["log_level"])
	assert.Equal(t, "250ms", doc["daemon"].(map[string]any)["debounce"])
}

func TestConfigCmd_SkipsApp(t *testing.T) {
	cmd := configcmd.ConfigCmd()
	assert.False(t, cli.NeedsApp(cmd.Annotations))
	for _, sub := range cmd.Commands() {
		assert.False(t, cli.NeedsApp(sub.Annotations), sub.Name())
	}
}
