//go:build unix && !darwin

package dirs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/calvinalkan/fskit/pkg/fsys"
)

// prefBase follows the XDG base directory spec: $XDG_DATA_HOME, falling
// back to ~/.local/share.
func prefBase() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return xdg, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve pref path: %w", err)
	}

	return filepath.Join(home, ".local", "share"), nil
}

// xdgKeys maps folder kinds to their xdg-user-dirs configuration keys.
// SavedGames and Screenshots have no XDG equivalent.
var xdgKeys = map[Folder]string{
	Desktop:     "XDG_DESKTOP_DIR",
	Documents:   "XDG_DOCUMENTS_DIR",
	Downloads:   "XDG_DOWNLOAD_DIR",
	Music:       "XDG_MUSIC_DIR",
	Pictures:    "XDG_PICTURES_DIR",
	PublicShare: "XDG_PUBLICSHARE_DIR",
	Templates:   "XDG_TEMPLATES_DIR",
	Videos:      "XDG_VIDEOS_DIR",
}

func userFolder(f Folder) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve user folder: %w", err)
	}

	if f == Home {
		return home, nil
	}

	key, ok := xdgKeys[f]
	if !ok {
		return "", fmt.Errorf("%w: %s", fsys.ErrUnsupported, f)
	}

	// An environment override wins over the configuration file.
	if dir := os.Getenv(key); dir != "" {
		return dir, nil
	}

	entries, err := loadUserDirs(home)
	if err != nil {
		return "", err
	}

	if dir, ok := entries[key]; ok {
		return dir, nil
	}

	return "", fmt.Errorf("%w: no xdg-user-dirs entry for %s", fsys.ErrNotFound, f)
}

// loadUserDirs reads and parses ~/.config/user-dirs.dirs (or the
// $XDG_CONFIG_HOME equivalent). A missing file is not an error; it
// yields an empty table.
func loadUserDirs(home string) (map[string]string, error) {
	cfgDir := os.Getenv("XDG_CONFIG_HOME")
	if cfgDir == "" {
		cfgDir = filepath.Join(home, ".config")
	}

	f, err := os.Open(filepath.Join(cfgDir, "user-dirs.dirs"))
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}

		return nil, fmt.Errorf("read user-dirs.dirs: %w", err)
	}
	defer f.Close()

	return parseUserDirs(f, home), nil
}
