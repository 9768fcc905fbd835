// fsksh is an interactive shell for browsing a directory tree with the
// fskit primitives.
//
// Usage:
//
//	fsksh [start-dir]
//
// Commands (in REPL):
//
//	cd <dir>               Change the current directory
//	pwd                    Print the current directory
//	ls [dir]               List immediate entries
//	glob <pattern> [-i]    Recursive wildcard listing from the current dir
//	stat <path>            Show type, size and timestamps
//	mkdir <path>           Create a directory (with parents)
//	rm <path>              Remove a file or empty directory
//	mv <old> <new>         Rename a file or directory
//	write <path> <text>    Write text to a file atomically
//	paths                  Show base / user folder paths
//	help                   Show this help
//	exit / quit / q        Exit
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/peterh/liner"

	"github.com/calvinalkan/fskit/pkg/dirs"
	"github.com/calvinalkan/fskit/pkg/fsys"
)

var replCommands = []string{
	"cd", "pwd", "ls", "glob", "stat", "mkdir", "rm", "mv", "write",
	"paths", "help", "exit", "quit",
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	if len(os.Args) > 1 {
		cwd, err = filepath.Abs(os.Args[1])
		if err != nil {
			return err
		}
	}

	repl := &REPL{fs: fsys.NewReal(), cwd: cwd}

	return repl.Run()
}

// REPL holds the interactive session state.
type REPL struct {
	fs  fsys.FS
	cwd string
}

func (r *REPL) Run() error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(l string) []string {
		var out []string

		for _, c := range replCommands {
			if strings.HasPrefix(c, strings.ToLower(l)) {
				out = append(out, c)
			}
		}

		return out
	})

	fmt.Println("fsksh - type 'help' for commands")

	for {
		input, err := line.Prompt(r.cwd + "> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return nil
			}

			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		line.AppendHistory(input)

		fields := strings.Fields(input)
		cmd, args := fields[0], fields[1:]

		if cmd == "exit" || cmd == "quit" || cmd == "q" {
			return nil
		}

		if err := r.dispatch(cmd, args); err != nil {
			fmt.Println("error:", err)
		}
	}
}

var (
	errMissingArg  = errors.New("missing argument")
	errUnknownCmd  = errors.New("unknown command (try 'help')")
	errNotADirHere = errors.New("not a directory")
)

func (r *REPL) dispatch(cmd string, args []string) error {
	switch cmd {
	case "help":
		printHelp()

		return nil
	case "pwd":
		fmt.Println(r.cwd)

		return nil
	case "cd":
		return r.cmdCd(args)
	case "ls":
		return r.cmdLs(args)
	case "glob":
		return r.cmdGlob(args)
	case "stat":
		return r.cmdStat(args)
	case "mkdir":
		return r.withArg(args, r.fs.CreateDirectory)
	case "rm":
		return r.withArg(args, r.fs.RemovePath)
	case "mv":
		return r.cmdMv(args)
	case "write":
		return r.cmdWrite(args)
	case "paths":
		return r.cmdPaths()
	default:
		return errUnknownCmd
	}
}

// resolve makes a REPL argument absolute against the current directory.
func (r *REPL) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(r.cwd, path)
}

func (r *REPL) withArg(args []string, op func(string) error) error {
	if len(args) < 1 {
		return errMissingArg
	}

	return op(r.resolve(args[0]))
}

func (r *REPL) cmdCd(args []string) error {
	if len(args) < 1 {
		return errMissingArg
	}

	target := r.resolve(args[0])

	info, err := r.fs.GetPathInfo(target)
	if err != nil {
		return err
	}

	if info.Type != fsys.PathTypeDirectory {
		return fmt.Errorf("%w: %s", errNotADirHere, target)
	}

	r.cwd = target

	return nil
}

func (r *REPL) cmdLs(args []string) error {
	dir := r.cwd
	if len(args) > 0 {
		dir = r.resolve(args[0])
	}

	return r.fs.EnumerateDirectory(dir, func(d, name string) error {
		info, err := r.fs.GetPathInfo(d + "/" + name)
		if err != nil {
			return err
		}

		fmt.Printf("%-9s %10d  %s\n", info.Type, info.Size, name)

		return nil
	})
}

func (r *REPL) cmdGlob(args []string) error {
	var (
		pattern string
		flags   fsys.GlobFlags
	)

	for _, a := range args {
		if a == "-i" {
			flags |= fsys.GlobCaseInsensitive
		} else {
			pattern = a
		}
	}

	results, err := fsys.Glob(r.fs, r.cwd, pattern, flags)
	if err != nil {
		return err
	}

	for _, p := range results {
		fmt.Println(p)
	}

	fmt.Printf("(%d entries)\n", len(results))

	return nil
}

func (r *REPL) cmdStat(args []string) error {
	if len(args) < 1 {
		return errMissingArg
	}

	info, err := r.fs.GetPathInfo(r.resolve(args[0]))
	if err != nil {
		return err
	}

	fmt.Printf("type:     %s\n", info.Type)
	fmt.Printf("size:     %d\n", info.Size)
	fmt.Printf("created:  %s\n", info.CreateTime.Format(time.RFC3339))
	fmt.Printf("modified: %s\n", info.ModifyTime.Format(time.RFC3339))
	fmt.Printf("accessed: %s\n", info.AccessTime.Format(time.RFC3339))

	return nil
}

func (r *REPL) cmdMv(args []string) error {
	if len(args) < 2 {
		return errMissingArg
	}

	return r.fs.RenamePath(r.resolve(args[0]), r.resolve(args[1]))
}

func (r *REPL) cmdWrite(args []string) error {
	if len(args) < 2 {
		return errMissingArg
	}

	data := strings.Join(args[1:], " ")

	return r.fs.WriteFileAtomic(r.resolve(args[0]), []byte(data), 0o644)
}

func (r *REPL) cmdPaths() error {
	if base, err := dirs.BasePath(); err == nil {
		fmt.Println("base:", base)
	}

	for f := dirs.Home; f <= dirs.Videos; f++ {
		path, err := dirs.UserFolder(f)
		if err != nil {
			path = "-"
		}

		fmt.Printf("%-12s %s\n", f.String()+":", path)
	}

	return nil
}

func printHelp() {
	fmt.Print(`Commands:
  cd <dir>               Change the current directory
  pwd                    Print the current directory
  ls [dir]               List immediate entries
  glob <pattern> [-i]    Recursive wildcard listing from the current dir
  stat <path>            Show type, size and timestamps
  mkdir <path>           Create a directory (with parents)
  rm <path>              Remove a file or empty directory
  mv <old> <new>         Rename a file or directory
  write <path> <text>    Write text to a file atomically
  paths                  Show base / user folder paths
  help                   Show this help
  exit / quit / q        Exit
`)
}
