package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/fskit/internal/cli"
)

func Test_LoadConfig_Defaults_When_No_Files(t *testing.T) {
	dir := t.TempDir()

	cfg, sources, err := cli.LoadConfig(dir, "", map[string]string{"XDG_CONFIG_HOME": filepath.Join(dir, "none")})
	require.NoError(t, err)
	require.Equal(t, cli.Config{}, cfg)
	require.Empty(t, sources.Global)
	require.Empty(t, sources.Project)
}

func Test_LoadConfig_Project_File_With_Comments(t *testing.T) {
	dir := t.TempDir()

	content := `{
  // HuJSON: comments and trailing commas allowed
  "org": "Example Org",
  "app": "Example App",
  "case_insensitive": true,
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, cli.ConfigFileName), []byte(content), 0o644))

	cfg, sources, err := cli.LoadConfig(dir, "", map[string]string{"XDG_CONFIG_HOME": filepath.Join(dir, "none")})
	require.NoError(t, err)
	require.Equal(t, "Example Org", cfg.Org)
	require.Equal(t, "Example App", cfg.App)
	require.True(t, cfg.CaseInsensitive)
	require.Equal(t, filepath.Join(dir, cli.ConfigFileName), sources.Project)
}

func Test_LoadConfig_Project_Overrides_Global(t *testing.T) {
	dir := t.TempDir()
	xdg := filepath.Join(dir, "xdg")

	require.NoError(t, os.MkdirAll(filepath.Join(xdg, "fskit"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(xdg, "fskit", "config.json"),
		[]byte(`{"org": "Global Org", "app": "Global App"}`), 0o644))

	work := filepath.Join(dir, "work")
	require.NoError(t, os.MkdirAll(work, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(work, cli.ConfigFileName),
		[]byte(`{"app": "Project App"}`), 0o644))

	cfg, sources, err := cli.LoadConfig(work, "", map[string]string{"XDG_CONFIG_HOME": xdg})
	require.NoError(t, err)

	// Project wins where set; global fills the rest.
	require.Equal(t, "Global Org", cfg.Org)
	require.Equal(t, "Project App", cfg.App)
	require.NotEmpty(t, sources.Global)
	require.NotEmpty(t, sources.Project)
}

func Test_LoadConfig_Explicit_File_Must_Exist(t *testing.T) {
	dir := t.TempDir()

	_, _, err := cli.LoadConfig(dir, "missing.json", map[string]string{"XDG_CONFIG_HOME": filepath.Join(dir, "none")})
	require.ErrorContains(t, err, "config file not found")
}

func Test_LoadConfig_Invalid_Json_Fails(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, cli.ConfigFileName), []byte("{nope"), 0o644))

	_, _, err := cli.LoadConfig(dir, "", map[string]string{"XDG_CONFIG_HOME": filepath.Join(dir, "none")})
	require.ErrorContains(t, err, "invalid config file")
}
