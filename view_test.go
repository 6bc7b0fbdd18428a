package argparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewReads(t *testing.T) {
	p := newTestParser()
	require.NoError(t, p.ParseArgs([]string{"prog", "-flag", "-times", "3"}))
	v := p.View()

	assert.Equal(t, true, v.Get("flag"))
	assert.Equal(t, 3, v.Get("times"))
	assert.Nil(t, v.Get("unexists_flag"))

	_, ok := v.Lookup("unexists_flag")
	assert.False(t, ok)
}

func TestViewWritesUnsupported(t *testing.T) {
	p := newTestParser()
	require.NoError(t, p.ParseArgs([]string{"prog"}))
	v := p.View()

	err := v.Set("flag", true)
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
	assert.Equal(t, false, p.Get("flag"))

	err = v.Delete("times")
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
	assert.Equal(t, 0, p.Get("times"))
}
