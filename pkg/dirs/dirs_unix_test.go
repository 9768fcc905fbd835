//go:build unix && !darwin

package dirs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/fskit/pkg/dirs"
	"github.com/calvinalkan/fskit/pkg/fsys"
)

func TestPrefPath_CreatesAndIsIdempotent(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	first, err := dirs.PrefPath("Example Org", "Example App")
	require.NoError(t, err)
	require.DirExists(t, first)
	require.Equal(t, byte('/'), first[len(first)-1])

	// Second call must return the same path and not fail because the
	// directory already exists.
	second, err := dirs.PrefPath("Example Org", "Example App")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestPrefPath_EmptyOrgNestsUnderAppOnly(t *testing.T) {
	data := t.TempDir()
	t.Setenv("XDG_DATA_HOME", data)

	path, err := dirs.PrefPath("", "Example App")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(data, "Example App")+"/", path)
}

func TestUserFolder_HomeFallsBackToEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := dirs.UserFolder(dirs.Home)
	require.NoError(t, err)
	require.Equal(t, home, got)
}

func TestUserFolder_EnvOverrideWins(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DOWNLOAD_DIR", "/srv/downloads")

	got, err := dirs.UserFolder(dirs.Downloads)
	require.NoError(t, err)
	require.Equal(t, "/srv/downloads", got)
}

func TestUserFolder_ReadsUserDirsFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_PICTURES_DIR", "")

	cfg := filepath.Join(home, ".config")
	require.NoError(t, os.MkdirAll(cfg, 0o755))

	content := `# xdg-user-dirs
XDG_PICTURES_DIR="$HOME/My Pictures"
`
	require.NoError(t, os.WriteFile(filepath.Join(cfg, "user-dirs.dirs"), []byte(content), 0o644))

	got, err := dirs.UserFolder(dirs.Pictures)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, "My Pictures"), got)
}

func TestUserFolder_MissingEntry(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_VIDEOS_DIR", "")

	_, err := dirs.UserFolder(dirs.Videos)
	require.ErrorIs(t, err, fsys.ErrNotFound)
}

func TestUserFolder_SavedGamesUnsupported(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := dirs.UserFolder(dirs.SavedGames)
	require.ErrorIs(t, err, fsys.ErrUnsupported)
}
