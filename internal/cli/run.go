package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/calvinalkan/fskit/pkg/fsys"
)

const helpFlag = "--help"

var (
	errFlagRequiresArg = errors.New("flag requires an argument")
	errUnknownFlag     = errors.New("unknown flag")
)

// Run is the main entry point. Returns exit code.
func Run(stdin io.Reader, out, errOut io.Writer, args []string, env map[string]string) int {
	o := NewIO(out, errOut)

	if len(args) < 2 {
		printUsage(out)

		return 0
	}

	flags, err := parseGlobalFlags(args[1:])
	if err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	workDir := flags.workDir
	if workDir == "" {
		workDir, err = os.Getwd()
		if err != nil {
			o.ErrPrintln("error: cannot get working directory:", err)

			return 1
		}
	}

	cfg, sources, err := LoadConfig(workDir, flags.configPath, env)
	if err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	if len(flags.remaining) == 0 {
		printUsage(out)

		return 0
	}

	cmd := flags.remaining[0]
	rest := flags.remaining[1:]

	if cmd == "-h" || cmd == helpFlag {
		printUsage(out)

		return 0
	}

	fs := fsys.NewReal()

	var cmdErr error

	switch cmd {
	case "glob":
		cmdErr = cmdGlob(o, fs, cfg, workDir, rest)
	case "ls":
		cmdErr = cmdLs(o, fs, workDir, rest)
	case "stat":
		cmdErr = cmdStat(o, fs, workDir, rest)
	case "mkdir":
		cmdErr = cmdMkdir(fs, workDir, rest)
	case "rm":
		cmdErr = cmdRm(fs, workDir, rest)
	case "mv":
		cmdErr = cmdMv(fs, workDir, rest)
	case "write":
		cmdErr = cmdWrite(stdin, fs, workDir, rest)
	case "paths":
		cmdErr = cmdPaths(o, cfg, rest)
	case "print-config":
		cmdErr = cmdPrintConfig(o, cfg, sources)
	default:
		o.ErrPrintln("error: unknown command:", cmd)
		printUsage(errOut)

		return 1
	}

	if cmdErr != nil {
		o.ErrPrintln("error:", cmdErr)

		return 1
	}

	return 0
}

type globalFlags struct {
	workDir    string
	configPath string
	remaining  []string
}

func parseGlobalFlags(args []string) (globalFlags, error) {
	var flags globalFlags

	idx := 0
	for idx < len(args) {
		arg := args[idx]

		switch {
		case arg == "-C" || arg == "--cwd":
			if idx+1 >= len(args) {
				return globalFlags{}, fmt.Errorf("%w: %s", errFlagRequiresArg, arg)
			}

			flags.workDir = args[idx+1]
			idx += 2

		case strings.HasPrefix(arg, "--cwd="):
			flags.workDir = strings.TrimPrefix(arg, "--cwd=")
			idx++

		case arg == "-c" || arg == "--config":
			if idx+1 >= len(args) {
				return globalFlags{}, fmt.Errorf("%w: %s", errFlagRequiresArg, arg)
			}

			flags.configPath = args[idx+1]
			idx += 2

		case strings.HasPrefix(arg, "--config="):
			flags.configPath = strings.TrimPrefix(arg, "--config=")
			idx++

		case arg == "-h" || arg == helpFlag:
			flags.remaining = []string{helpFlag}

			return flags, nil

		case strings.HasPrefix(arg, "-") && arg != "-":
			return globalFlags{}, fmt.Errorf("%w: %s", errUnknownFlag, arg)

		default:
			flags.remaining = args[idx:]

			return flags, nil
		}
	}

	return flags, nil
}

// resolvePath makes a command-line path absolute against workDir.
func resolvePath(workDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(workDir, path)
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func hasHelpFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == helpFlag {
			return true
		}
	}

	return false
}

func printUsage(w io.Writer) {
	fprintln(w, `fsk - filesystem primitives toolbox

Usage: fsk [options] <command> [args]

Options:
  -C, --cwd <dir>    Run as if started in <dir>
  -c, --config       Use specified config file

Commands:
  glob <root> [pattern]  Recursively list entries matching a wildcard pattern
  ls <dir>               List the immediate entries of a directory
  stat <path>            Show type, size and timestamps of a path
  mkdir <path>           Create a directory (with parents)
  rm <path>              Remove a file or empty directory
  mv <old> <new>         Rename a file or directory
  write <path>           Write stdin to a file atomically
  paths                  Show base, preference and user folder paths
  print-config           Show resolved configuration`)
}

func cmdPrintConfig(o *IO, cfg Config, sources ConfigSources) error {
	o.Printf("org: %q\napp: %q\ncase_insensitive: %v\n", cfg.Org, cfg.App, cfg.CaseInsensitive)

	o.Println()
	o.Println("# Sources:")

	if sources.Global != "" {
		o.Println("#   global:", sources.Global)
	}

	if sources.Project != "" {
		o.Println("#   project:", sources.Project)
	}

	if sources.Global == "" && sources.Project == "" {
		o.Println("#   (using defaults only)")
	}

	return nil
}
