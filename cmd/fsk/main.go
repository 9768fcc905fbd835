// Package main provides fsk, a toolbox around the fskit filesystem
// primitives: recursive glob, directory listing, stat, and the basic
// mutations.
package main

import (
	"os"
	"strings"

	"github.com/calvinalkan/fskit/internal/cli"
)

func main() {
	environ := os.Environ()
	env := make(map[string]string, len(environ))

	for _, e := range environ {
		if k, v, ok := strings.Cut(e, "="); ok {
			env[k] = v
		}
	}

	exitCode := cli.Run(os.Stdin, os.Stdout, os.Stderr, os.Args, env)

	os.Exit(exitCode)
}
