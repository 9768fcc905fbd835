//go:build darwin

package dirs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/calvinalkan/fskit/pkg/fsys"
)

func prefBase() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve pref path: %w", err)
	}

	return filepath.Join(home, "Library", "Application Support"), nil
}

// darwinFolders maps folder kinds to their $HOME-relative locations.
// Note the Videos folder is called "Movies" on macOS.
var darwinFolders = map[Folder]string{
	Desktop:     "Desktop",
	Documents:   "Documents",
	Downloads:   "Downloads",
	Music:       "Music",
	Pictures:    "Pictures",
	PublicShare: "Public",
	Templates:   "Templates",
	Videos:      "Movies",
}

func userFolder(f Folder) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve user folder: %w", err)
	}

	if f == Home {
		return home, nil
	}

	rel, ok := darwinFolders[f]
	if !ok {
		return "", fmt.Errorf("%w: %s", fsys.ErrUnsupported, f)
	}

	return filepath.Join(home, rel), nil
}
