// Package dirs resolves OS-specific special directories: the
// application base path, the per-user writable preference path, and the
// standard user folders (Documents, Downloads, Pictures...).
//
// Resolution goes through platform tables and OS APIs selected by build
// tags; there is no runtime platform inspection. The lookups can be
// expensive, so callers should resolve once and cache the result.
//
// Errors carry the [fsys] taxonomy: a folder kind the platform has no
// concept of fails with [fsys.ErrUnsupported].
package dirs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/calvinalkan/fskit/pkg/fsys"
)

// Folder identifies an OS-provided default folder for a specific
// purpose. Not every platform defines every kind; see [UserFolder].
type Folder int

// Standard user folder kinds.
const (
	Home Folder = iota
	Desktop
	Documents
	Downloads
	Music
	Pictures
	PublicShare
	SavedGames
	Screenshots
	Templates
	Videos
)

var folderNames = map[Folder]string{
	Home:        "home",
	Desktop:     "desktop",
	Documents:   "documents",
	Downloads:   "downloads",
	Music:       "music",
	Pictures:    "pictures",
	PublicShare: "publicshare",
	SavedGames:  "savedgames",
	Screenshots: "screenshots",
	Templates:   "templates",
	Videos:      "videos",
}

func (f Folder) String() string {
	if name, ok := folderNames[f]; ok {
		return name
	}

	return fmt.Sprintf("folder(%d)", int(f))
}

// ParseFolder converts a lowercase kind name ("documents", "downloads",
// ...) to a [Folder]. Fails with [fsys.ErrInvalidArgument] for unknown
// names.
func ParseFolder(name string) (Folder, error) {
	for f, n := range folderNames {
		if n == name {
			return f, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown folder kind %q", fsys.ErrInvalidArgument, name)
}

// BasePath returns the directory containing the running executable,
// with symlinks resolved and a trailing separator. This is where
// read-only application resources live; it is not necessarily writable.
//
// Not a fast call: resolve once near startup and keep the result.
func BasePath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolve base path: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolve base path: %w", err)
	}

	return withTrailingSep(filepath.Dir(resolved)), nil
}

// PrefPath returns the per-user directory where the application may
// write preferences and data, creating it if absent. The result is
// unique per (org, app) pair and ends with a separator.
//
// org may be empty (the path then nests under app alone); an empty app
// fails with [fsys.ErrInvalidArgument]. Safe to call concurrently for
// the same pair: directory creation is idempotent.
func PrefPath(org, app string) (string, error) {
	if app == "" {
		return "", fmt.Errorf("%w: empty app name", fsys.ErrInvalidArgument)
	}

	base, err := prefBase()
	if err != nil {
		return "", err
	}

	path := filepath.Join(base, org, app)
	if err := os.MkdirAll(path, 0o700); err != nil {
		return "", fmt.Errorf("create pref path: %w", err)
	}

	return withTrailingSep(path), nil
}

// UserFolder returns the path of the given user folder in host-native
// notation. Folder kinds the platform does not define fail with
// [fsys.ErrUnsupported].
func UserFolder(f Folder) (string, error) {
	if _, ok := folderNames[f]; !ok {
		return "", fmt.Errorf("%w: %s", fsys.ErrInvalidArgument, f)
	}

	return userFolder(f)
}

func withTrailingSep(path string) string {
	sep := string(os.PathSeparator)
	if len(path) > 0 && path[len(path)-1] != os.PathSeparator {
		return path + sep
	}

	return path
}
