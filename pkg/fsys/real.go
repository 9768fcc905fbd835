package fsys

import (
	"bytes"
	"errors"
	"io/fs"
	"os"

	"github.com/natefinch/atomic"
)

const dirPerms = 0o755

// Real implements [FS] on the host filesystem.
//
// Methods wrap the [os] package, attaching the [PathError] taxonomy to
// every failure. The underlying OS error message is preserved verbatim.
type Real struct{}

// NewReal returns a new [Real] filesystem.
func NewReal() *Real {
	return &Real{}
}

func (r *Real) EnumerateDirectory(path string, cb EnumerateCallback) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		return pathErr("enumerate", path, err)
	}

	for _, entry := range entries {
		if err := cb(path, entry.Name()); err != nil {
			if errors.Is(err, ErrStopEnumeration) {
				return nil
			}

			return err
		}
	}

	return nil
}

func (r *Real) GetPathInfo(path string) (PathInfo, error) {
	st, err := os.Stat(path)
	if err != nil {
		return PathInfo{}, pathErr("stat", path, err)
	}

	info := PathInfo{
		Type:       pathType(st.Mode()),
		ModifyTime: st.ModTime(),
	}
	if info.Type == PathTypeFile {
		info.Size = uint64(st.Size())
	}

	// Creation and access times come from the native stat record.
	fillNativeTimes(&info, st)

	return info, nil
}

func (r *Real) CreateDirectory(path string) error {
	if err := os.MkdirAll(path, dirPerms); err != nil {
		return pathErr("mkdir", path, err)
	}

	return nil
}

func (r *Real) RemovePath(path string) error {
	if err := os.Remove(path); err != nil {
		return pathErr("remove", path, err)
	}

	return nil
}

func (r *Real) RenamePath(oldpath, newpath string) error {
	if err := os.Rename(oldpath, newpath); err != nil {
		return pathErr("rename", oldpath, err)
	}

	return nil
}

func (r *Real) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return pathErr("write", path, err)
	}

	if err := os.Chmod(path, perm); err != nil {
		return pathErr("write", path, err)
	}

	return nil
}

func pathType(mode fs.FileMode) PathType {
	switch {
	case mode.IsRegular():
		return PathTypeFile
	case mode.IsDir():
		return PathTypeDirectory
	default:
		return PathTypeOther
	}
}

// Compile-time interface check.
var _ FS = (*Real)(nil)
