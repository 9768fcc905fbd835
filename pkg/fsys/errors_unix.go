//go:build unix

package fsys

import (
	"errors"

	"golang.org/x/sys/unix"
)

func isNotEmpty(err error) bool {
	return errors.Is(err, unix.ENOTEMPTY)
}

func isNotDir(err error) bool {
	return errors.Is(err, unix.ENOTDIR)
}
