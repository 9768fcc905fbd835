package cli

import (
	"errors"
	"io"

	"github.com/calvinalkan/fskit/pkg/fsys"
)

// The small mutation commands share one file: each is a thin argument
// check in front of a single facade call.

var (
	errMkdirPathRequired = errors.New("mkdir requires a path")
	errRmPathRequired    = errors.New("rm requires a path")
	errMvPathsRequired   = errors.New("mv requires an old and a new path")
	errWritePathRequired = errors.New("write requires a path")
)

func cmdMkdir(fs fsys.FS, workDir string, args []string) error {
	if len(args) < 1 {
		return errMkdirPathRequired
	}

	return fs.CreateDirectory(resolvePath(workDir, args[0]))
}

func cmdRm(fs fsys.FS, workDir string, args []string) error {
	if len(args) < 1 {
		return errRmPathRequired
	}

	return fs.RemovePath(resolvePath(workDir, args[0]))
}

func cmdMv(fs fsys.FS, workDir string, args []string) error {
	if len(args) < 2 {
		return errMvPathsRequired
	}

	return fs.RenamePath(resolvePath(workDir, args[0]), resolvePath(workDir, args[1]))
}

func cmdWrite(stdin io.Reader, fs fsys.FS, workDir string, args []string) error {
	if len(args) < 1 {
		return errWritePathRequired
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return err
	}

	return fs.WriteFileAtomic(resolvePath(workDir, args[0]), data, 0o644)
}
