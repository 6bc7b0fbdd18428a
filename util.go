package argparse

import (
	"strings"

	"github.com/huandu/xstrings"
)

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

// containsAny reports whether any rune of s matches pattern, using the
// xstrings pattern syntax (ranges like "a-z", leading "^" negates).
func containsAny(s, pattern string) bool {
	return xstrings.Count(s, pattern) > 0
}
