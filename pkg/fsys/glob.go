package fsys

// Glob walks the tree rooted at root and returns the relative paths of
// every entry matching pattern, using '/' as separator regardless of
// host convention. An empty pattern disables filtering and returns
// every entry.
//
// Traversal is depth-first pre-order: a directory's own match (if any)
// precedes its children's, and entries at each level appear in
// enumeration order. Every directory is descended into whether or not
// it matches, so "*.txt" still finds "sub/b.txt". Running the same glob
// twice over an unmodified tree yields identical output.
//
// Symlinks are followed as their target type and never treated
// specially; there is no cycle guard, so a cyclic symlink graph can
// recurse without bound.
//
// Glob is all-or-nothing: if enumerating or statting any entry fails,
// the whole call fails with that error and no partial results are
// returned.
func Glob(fsys FS, root, pattern string, flags GlobFlags) ([]string, error) {
	g := &globber{
		fsys:    fsys,
		pattern: pattern,
		flags:   flags,
		results: []string{},
	}

	if err := g.walk(root, ""); err != nil {
		return nil, err
	}

	return g.results, nil
}

// globber accumulates matches for one Glob call. The results slice is
// owned by the call and handed to the caller on success.
type globber struct {
	fsys    FS
	pattern string
	flags   GlobFlags
	results []string
}

// walk enumerates one directory frame. dir is the real path to
// enumerate; rel is its path relative to the glob root ("" for the root
// itself). Errors from deeper frames propagate unmodified, aborting
// every frame above.
func (g *globber) walk(dir, rel string) error {
	return g.fsys.EnumerateDirectory(dir, func(_, name string) error {
		entryRel := name
		if rel != "" {
			entryRel = rel + "/" + name
		}

		if g.pattern == "" || Match(entryRel, g.pattern, g.flags) {
			g.results = append(g.results, entryRel)
		}

		entryPath := dir + "/" + name

		info, err := g.fsys.GetPathInfo(entryPath)
		if err != nil {
			return err
		}

		if info.Type == PathTypeDirectory {
			return g.walk(entryPath, entryRel)
		}

		return nil
	})
}
