// Package fsys provides portable filesystem primitives: directory
// creation, removal, rename, stat, single-level enumeration, and a
// recursive wildcard glob over a directory tree.
//
// The main types are:
//   - [FS]: interface for the primitive operations
//   - [Real]: production implementation using the [os] package
//   - [PathInfo]: stat snapshot with type, size and timestamps
//
// The glob engine ([Glob]) is built only on the [FS] seam, so tests and
// callers can substitute their own implementation (fault injection,
// virtual trees).
//
// Example usage:
//
//	fs := fsys.NewReal()
//	paths, err := fsys.Glob(fs, root, "*.txt", 0)
//	if err != nil {
//	    return err
//	}
//	for _, p := range paths {
//	    fmt.Println(p) // relative to root, '/'-separated
//	}
package fsys

import (
	"errors"
	"os"
	"time"
)

// PathType classifies a filesystem path.
type PathType int

// Path types reported by [FS.GetPathInfo].
const (
	PathTypeNone      PathType = iota // path does not exist
	PathTypeFile                      // a regular file
	PathTypeDirectory                 // a directory
	PathTypeOther                     // device node, socket, fifo... (not a symlink, those are followed)
)

// String returns a short lowercase name for the path type.
func (t PathType) String() string {
	switch t {
	case PathTypeNone:
		return "none"
	case PathTypeFile:
		return "file"
	case PathTypeDirectory:
		return "directory"
	case PathTypeOther:
		return "other"
	default:
		return "unknown"
	}
}

// PathInfo is a point-in-time snapshot of a path's metadata.
//
// CreateTime is best-effort: POSIX systems report inode change time
// instead, since true creation time is not recorded.
type PathInfo struct {
	Type       PathType
	Size       uint64
	CreateTime time.Time
	ModifyTime time.Time
	AccessTime time.Time
}

// GlobFlags alter how [Glob] matches the pattern.
type GlobFlags uint32

// GlobCaseInsensitive makes pattern matching case-insensitive.
const GlobCaseInsensitive GlobFlags = 1 << 0

// ErrStopEnumeration stops a directory enumeration early without error.
// Return it from an [EnumerateCallback]; [FS.EnumerateDirectory] then
// returns nil. Analogous to [io/fs.SkipAll].
var ErrStopEnumeration = errors.New("stop enumeration")

// EnumerateCallback is invoked once per directory entry by
// [FS.EnumerateDirectory]. dir is the directory being enumerated and
// name the bare entry name; both are only valid for the duration of the
// call (copy them if retained).
//
// Return nil to keep enumerating, [ErrStopEnumeration] to stop cleanly,
// or any other error to abort the enumeration with that error.
type EnumerateCallback func(dir, name string) error

// FS defines the filesystem primitives the rest of this module builds
// on. [Real] is the host-OS implementation.
//
// All methods are safe for concurrent use and do not consult the
// process working directory beyond what the underlying OS calls do;
// pass absolute paths when in doubt.
type FS interface {
	// EnumerateDirectory calls cb once for each immediate child of
	// path, in the order reported by the OS listing (sorted by name on
	// the real filesystem). See [EnumerateCallback] for the stop
	// protocol.
	EnumerateDirectory(path string, cb EnumerateCallback) error

	// GetPathInfo stats path, following symlinks.
	// Returns a [PathError] of kind [ErrNotFound] if path does not exist.
	GetPathInfo(path string) (PathInfo, error)

	// CreateDirectory creates the directory at path, along with any
	// missing parents. Succeeds if path already is a directory.
	CreateDirectory(path string) error

	// RemovePath removes a file or an empty directory. Removing a
	// non-empty directory fails with a [PathError] of kind
	// [ErrNotEmpty] and leaves the directory untouched.
	RemovePath(path string) error

	// RenamePath renames (moves) oldpath to newpath.
	RenamePath(oldpath, newpath string) error

	// WriteFileAtomic writes data to path atomically via a temp file
	// and rename, so readers never observe a partial write.
	WriteFileAtomic(path string, data []byte, perm os.FileMode) error
}
