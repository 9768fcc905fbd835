package cli

import (
	"io"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/fskit/pkg/dirs"
)

const pathsHelp = `Usage: fsk paths [flags]

Show the application base path, the per-user preference path, and every
standard user folder this platform defines. Folders the platform has no
concept of are shown as "-".

The preference path needs an app name (and optionally an org name) from
flags or the config file; without one it is skipped.

Flags:
      --org <name>   Organization name for the preference path
      --app <name>   Application name for the preference path`

func cmdPaths(o *IO, cfg Config, args []string) error {
	if hasHelpFlag(args) {
		o.Println(pathsHelp)

		return nil
	}

	flagSet := flag.NewFlagSet("paths", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	org := flagSet.String("org", cfg.Org, "organization name")
	app := flagSet.String("app", cfg.App, "application name")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if base, err := dirs.BasePath(); err == nil {
		o.Println("base:", base)
	} else {
		o.Println("base: -")
	}

	if *app != "" {
		pref, err := dirs.PrefPath(*org, *app)
		if err != nil {
			return err
		}

		o.Println("pref:", pref)
	}

	for f := dirs.Home; f <= dirs.Videos; f++ {
		path, err := dirs.UserFolder(f)
		if err != nil {
			path = "-"
		}

		o.Printf("%-12s %s\n", f.String()+":", path)
	}

	return nil
}
