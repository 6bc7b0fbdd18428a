package argparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsAny(t *testing.T) {
	cases := []struct {
		in      string
		pattern string
		out     bool
	}{
		{"14000", floatMarkers, false},
		{"14000.00", floatMarkers, true},
		{"1e3", floatMarkers, true},
		{"1E3", floatMarkers, true},
		{"", floatMarkers, false},
		{"abc", "a-c", true},
		{"xyz", "a-c", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.out, containsAny(c.in, c.pattern), "%q %q", c.in, c.pattern)
	}
}

func TestContains(t *testing.T) {
	assert.True(t, contains("a=b", "="))
	assert.False(t, contains("ab", "="))
}
