//go:build !unix && !windows

package dirs

import (
	"fmt"

	"github.com/calvinalkan/fskit/pkg/fsys"
)

func prefBase() (string, error) {
	return "", fmt.Errorf("%w: preference path", fsys.ErrUnsupported)
}

func userFolder(f Folder) (string, error) {
	return "", fmt.Errorf("%w: %s", fsys.ErrUnsupported, f)
}
