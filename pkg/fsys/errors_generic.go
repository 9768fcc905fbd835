//go:build !unix && !windows

package fsys

func isNotEmpty(error) bool { return false }

func isNotDir(error) bool { return false }
