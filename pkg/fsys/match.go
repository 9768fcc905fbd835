package fsys

import "unicode"

// Match reports whether name matches the wildcard pattern.
//
// Pattern syntax:
//   - '*' matches zero or more characters, none of which is '/'
//   - '?' matches exactly one character that is not '/'
//   - every other character matches itself
//
// The path separator '/' is never matched by a wildcard, so patterns
// are implicitly segmented: "a/*" matches "a/b" but not "a/b/c".
// Matching is anchored at both ends; there is no partial-prefix match.
//
// With [GlobCaseInsensitive] set, literal characters and '?'/'*'
// comparisons fold case via unicode.ToLower.
func Match(name, pattern string, flags GlobFlags) bool {
	return matchRunes([]rune(name), []rune(pattern), flags&GlobCaseInsensitive != 0)
}

// matchRunes is a classic greedy wildcard matcher with single-point
// backtracking: on a mismatch, retry from the most recent '*', letting
// it swallow one more rune, unless that rune is the separator.
// O(n*m) worst case.
func matchRunes(name, pattern []rune, fold bool) bool {
	var ni, pi int

	star := -1  // pattern index just past the most recent '*'
	mark := 0   // name index where that '*' started consuming

	for ni < len(name) {
		if pi < len(pattern) {
			switch pattern[pi] {
			case '*':
				// Adjacent stars collapse: each iteration just moves
				// the backtrack point forward.
				star = pi + 1
				mark = ni
				pi++

				continue

			case '?':
				if name[ni] != '/' {
					ni++
					pi++

					continue
				}

			default:
				if runeEq(name[ni], pattern[pi], fold) {
					ni++
					pi++

					continue
				}
			}
		}

		// Mismatch. Backtrack: the last '*' consumes one more rune,
		// unless there is no star or the rune is the separator.
		if star < 0 || name[mark] == '/' {
			return false
		}

		mark++
		ni = mark
		pi = star
	}

	// Name consumed; any trailing stars match the empty remainder.
	for pi < len(pattern) && pattern[pi] == '*' {
		pi++
	}

	return pi == len(pattern)
}

func runeEq(a, b rune, fold bool) bool {
	if a == b {
		return true
	}

	return fold && unicode.ToLower(a) == unicode.ToLower(b)
}
