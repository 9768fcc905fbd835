package fsys_test

import (
	"testing"

	"github.com/calvinalkan/fskit/pkg/fsys"
)

// =============================================================================
// Match Tests
//
// The matcher contract: '*' and '?' never match '/', matching is anchored at
// both ends, adjacent stars collapse, and case-insensitive mode folds case.
// =============================================================================

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		pattern string
		flags   fsys.GlobFlags
		want    bool
	}{
		// Literals
		{"exact literal", "a.txt", "a.txt", 0, true},
		{"literal mismatch", "a.txt", "b.txt", 0, false},
		{"anchored: extra suffix", "a.txt.bak", "a.txt", 0, false},
		{"anchored: extra prefix", "xa.txt", "a.txt", 0, false},
		{"anchored: pattern longer", "a", "a.txt", 0, false},

		// Star
		{"star matches remainder", "abc", "a*", 0, true},
		{"star matches empty", "a", "a*", 0, true},
		{"star in middle", "a.txt", "a*t", 0, true},
		{"star only", "anything", "*", 0, true},
		{"star only empty path", "", "*", 0, true},
		{"adjacent stars collapse", "abc", "a**c", 0, true},
		{"many stars", "abc", "***", 0, true},
		{"star with suffix mismatch", "abc", "*d", 0, false},
		{"star backtracks", "aXbXc", "a*Xc", 0, true},

		// Star never crosses '/'
		{"star within segment", "a/b", "a/*", 0, true},
		{"star cannot cross separator", "a/b/c", "a/*", 0, false},
		{"star cannot swallow separator", "ab/c", "a*c", 0, false},
		{"star per segment", "a/b/c", "*/*/*", 0, true},
		{"leading star segment", "sub/b.txt", "*/*.txt", 0, true},
		{"star does not match into dir", "sub/b.txt", "*.txt", 0, false},

		// Question mark
		{"question matches one", "ab", "a?", 0, true},
		{"question needs one", "a", "a?", 0, false},
		{"question not two", "abc", "a?", 0, false},
		{"question not separator", "a/b", "a?b", 0, false},

		// Empty inputs
		{"empty path empty pattern", "", "", 0, true},
		{"empty path literal pattern", "", "a", 0, false},
		{"empty pattern nonempty path", "a", "", 0, false},

		// Case folding
		{"case sensitive by default", "FILE.TXT", "file.txt", 0, false},
		{"case insensitive literal", "FILE.TXT", "file.txt", fsys.GlobCaseInsensitive, true},
		{"case insensitive with star", "README.MD", "*.md", fsys.GlobCaseInsensitive, true},
		{"case insensitive non-ascii", "ÜBER.txt", "über.txt", fsys.GlobCaseInsensitive, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := fsys.Match(tc.path, tc.pattern, tc.flags); got != tc.want {
				t.Fatalf("Match(%q, %q, %v)=%v, want=%v", tc.path, tc.pattern, tc.flags, got, tc.want)
			}
		})
	}
}
