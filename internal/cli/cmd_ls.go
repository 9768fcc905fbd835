package cli

import (
	"errors"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/fskit/pkg/fsys"
)

const lsHelp = `Usage: fsk ls [flags] <dir>

List the immediate entries of a directory in name order.

Flags:
  -l, --long   Show entry type and size`

var errLsDirRequired = errors.New("ls requires a directory")

func cmdLs(o *IO, fs fsys.FS, workDir string, args []string) error {
	if hasHelpFlag(args) {
		o.Println(lsHelp)

		return nil
	}

	flagSet := flag.NewFlagSet("ls", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	long := flagSet.BoolP("long", "l", false, "show entry type and size")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if flagSet.NArg() < 1 {
		return errLsDirRequired
	}

	dir := resolvePath(workDir, flagSet.Arg(0))

	return fs.EnumerateDirectory(dir, func(d, name string) error {
		if !*long {
			o.Println(name)

			return nil
		}

		info, err := fs.GetPathInfo(d + "/" + name)
		if err != nil {
			return err
		}

		o.Printf("%-9s %10d  %s\n", info.Type, info.Size, name)

		return nil
	})
}
