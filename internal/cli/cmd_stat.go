package cli

import (
	"errors"
	"time"

	"github.com/calvinalkan/fskit/pkg/fsys"
)

const statHelp = `Usage: fsk stat <path>

Show the type, size and timestamps of a path. Symlinks are followed.`

var errStatPathRequired = errors.New("stat requires a path")

func cmdStat(o *IO, fs fsys.FS, workDir string, args []string) error {
	if hasHelpFlag(args) {
		o.Println(statHelp)

		return nil
	}

	if len(args) < 1 {
		return errStatPathRequired
	}

	info, err := fs.GetPathInfo(resolvePath(workDir, args[0]))
	if err != nil {
		return err
	}

	o.Printf("type:     %s\n", info.Type)
	o.Printf("size:     %d\n", info.Size)
	o.Printf("created:  %s\n", info.CreateTime.Format(time.RFC3339))
	o.Printf("modified: %s\n", info.ModifyTime.Format(time.RFC3339))
	o.Printf("accessed: %s\n", info.AccessTime.Format(time.RFC3339))

	return nil
}
