//go:build windows

package dirs

import (
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/calvinalkan/fskit/pkg/fsys"
)

func prefBase() (string, error) {
	path, err := windows.KnownFolderPath(windows.FOLDERID_RoamingAppData, windows.KF_FLAG_CREATE)
	if err != nil {
		return "", fmt.Errorf("resolve pref path: %w", err)
	}

	return path, nil
}

var knownFolderIDs = map[Folder]*windows.KNOWNFOLDERID{
	Home:        windows.FOLDERID_Profile,
	Desktop:     windows.FOLDERID_Desktop,
	Documents:   windows.FOLDERID_Documents,
	Downloads:   windows.FOLDERID_Downloads,
	Music:       windows.FOLDERID_Music,
	Pictures:    windows.FOLDERID_Pictures,
	PublicShare: windows.FOLDERID_Public,
	SavedGames:  windows.FOLDERID_SavedGames,
	Screenshots: windows.FOLDERID_Screenshots,
	Templates:   windows.FOLDERID_Templates,
	Videos:      windows.FOLDERID_Videos,
}

func userFolder(f Folder) (string, error) {
	id, ok := knownFolderIDs[f]
	if !ok {
		return "", fmt.Errorf("%w: %s", fsys.ErrUnsupported, f)
	}

	path, err := windows.KnownFolderPath(id, windows.KF_FLAG_DEFAULT)
	if err != nil {
		return "", fmt.Errorf("resolve user folder %s: %w", f, err)
	}

	return path, nil
}
