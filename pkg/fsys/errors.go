package fsys

import (
	"errors"
	"io/fs"
	"os"
)

// Error taxonomy sentinels. Every failed [FS] operation returns a
// [PathError] carrying exactly one of these kinds, so callers can
// branch with errors.Is without parsing messages. Failures that fit no
// specific kind carry [ErrIO].
var (
	ErrNotFound        = errors.New("path does not exist")
	ErrPermission      = errors.New("permission denied")
	ErrNotADirectory   = errors.New("not a directory")
	ErrAlreadyExists   = errors.New("path already exists")
	ErrNotEmpty        = errors.New("directory not empty")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnsupported     = errors.New("not supported on this platform")
	ErrIO              = errors.New("i/o failure")
)

// PathError records a failed filesystem operation together with its
// taxonomy kind. The underlying OS error is preserved verbatim, so both
//
//	errors.Is(err, fsys.ErrNotFound)
//	errors.Is(err, fs.ErrNotExist)
//
// hold for a missing path.
type PathError struct {
	Op   string // operation, e.g. "remove"
	Path string
	Kind error // one of the Err* sentinels above
	Err  error // underlying cause
}

func (e *PathError) Error() string {
	// OS-level errors already carry op and path; don't repeat them.
	var (
		pe *fs.PathError
		le *os.LinkError
	)

	if errors.As(e.Err, &pe) || errors.As(e.Err, &le) {
		return e.Err.Error()
	}

	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// pathErr wraps err as a [PathError], classifying it into the taxonomy.
func pathErr(op, path string, err error) error {
	return &PathError{Op: op, Path: path, Kind: classify(err), Err: err}
}

// classify maps an OS-level error onto a taxonomy sentinel.
//
// The errno-specific checks run before the fs.Err* ones: the Go errno
// mapping makes ENOTEMPTY (and ERROR_DIR_NOT_EMPTY on Windows) satisfy
// fs.ErrExist, which would otherwise shadow ErrNotEmpty.
func classify(err error) error {
	switch {
	case isNotEmpty(err):
		return ErrNotEmpty
	case isNotDir(err):
		return ErrNotADirectory
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrPermission
	case errors.Is(err, fs.ErrExist):
		return ErrAlreadyExists
	case errors.Is(err, fs.ErrInvalid):
		return ErrInvalidArgument
	default:
		return ErrIO
	}
}
