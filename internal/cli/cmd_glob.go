package cli

import (
	"errors"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/fskit/pkg/fsys"
)

const globHelp = `Usage: fsk glob [flags] <root> [pattern]

Recursively list entries under <root> whose path relative to <root>
matches <pattern>. Without a pattern, every entry is listed.

Pattern wildcards: '*' (any run of characters) and '?' (one character);
neither matches the '/' separator, so "a/*" matches "a/b" but not
"a/b/c". Results are depth-first pre-order, one per line, always
'/'-separated.

Flags:
  -i, --ignore-case   Match case-insensitively`

var errGlobRootRequired = errors.New("glob requires a root directory")

func cmdGlob(o *IO, fs fsys.FS, cfg Config, workDir string, args []string) error {
	if hasHelpFlag(args) {
		o.Println(globHelp)

		return nil
	}

	flagSet := flag.NewFlagSet("glob", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	ignoreCase := flagSet.BoolP("ignore-case", "i", cfg.CaseInsensitive, "match case-insensitively")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	rest := flagSet.Args()
	if len(rest) < 1 {
		return errGlobRootRequired
	}

	root := resolvePath(workDir, rest[0])

	pattern := ""
	if len(rest) > 1 {
		pattern = rest[1]
	}

	var flags fsys.GlobFlags
	if *ignoreCase {
		flags |= fsys.GlobCaseInsensitive
	}

	results, err := fsys.Glob(fs, root, pattern, flags)
	if err != nil {
		return err
	}

	for _, p := range results {
		o.Println(p)
	}

	return nil
}
