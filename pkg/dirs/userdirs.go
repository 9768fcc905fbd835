//go:build unix && !darwin

package dirs

import (
	"bufio"
	"io"
	"path/filepath"
	"strings"
)

// parseUserDirs parses the xdg-user-dirs configuration format:
//
//	# comment
//	XDG_DOWNLOAD_DIR="$HOME/Downloads"
//	XDG_MUSIC_DIR="/mnt/media/music"
//
// Values must be double-quoted and either absolute or $HOME-relative;
// anything else is ignored, per the xdg-user-dirs format. A leading
// $HOME is expanded against home.
func parseUserDirs(r io.Reader, home string) map[string]string {
	entries := make(map[string]string)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok || !strings.HasPrefix(key, "XDG_") || !strings.HasSuffix(key, "_DIR") {
			continue
		}

		value, ok = unquote(strings.TrimSpace(value))
		if !ok {
			continue
		}

		switch {
		case value == "$HOME" || strings.HasPrefix(value, "$HOME/"):
			entries[strings.TrimSpace(key)] = filepath.Join(home, strings.TrimPrefix(value, "$HOME"))
		case strings.HasPrefix(value, "/"):
			entries[strings.TrimSpace(key)] = filepath.Clean(value)
		}
	}

	return entries
}

func unquote(s string) (string, bool) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", false
	}

	return s[1 : len(s)-1], true
}
