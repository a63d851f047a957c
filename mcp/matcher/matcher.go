package matcher

import "strings"

// Match reports whether any of candidates satisfies pattern: "*" matches
// everything, an empty pattern nothing, otherwise a prefix match.
func Match(pattern string, candidates ...string) bool {
	if pattern == "" {
		return false
	}
	for _, candidate := range candidates {
		if pattern == "*" || strings.HasPrefix(candidate, pattern) {
			return true
		}
	}
	return false
}
