package slog

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isobit/argparse"
)

func TestRegisterDefaults(t *testing.T) {
	opts := &Options{LogLevel: slog.LevelWarn}
	p := opts.Register(argparse.New())
	require.NoError(t, p.ParseArgs([]string{"prog"}))

	assert.Equal(t, "WARN", p.GetString(LevelOption))
	assert.False(t, p.GetBool(JSONOption))

	loaded := &Options{}
	require.NoError(t, loaded.Load(p))
	assert.Equal(t, slog.LevelWarn, loaded.LogLevel)
	assert.False(t, loaded.LogJSON)
}

func TestLoad(t *testing.T) {
	opts := &Options{}
	p := opts.Register(argparse.New())
	require.NoError(t, p.ParseArgs([]string{"prog", "--log-level", "debug", "-log-json", "rest"}))

	require.NoError(t, opts.Load(p))
	assert.Equal(t, slog.LevelDebug, opts.LogLevel)
	assert.True(t, opts.LogJSON)
	assert.Equal(t, []string{"rest"}, p.Args())
}

func TestLoadInvalidLevel(t *testing.T) {
	opts := &Options{}
	p := opts.Register(argparse.New())
	require.NoError(t, p.ParseArgs([]string{"prog", "--log-level=loud"}))

	err := opts.Load(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log-level")
}

func TestHandler(t *testing.T) {
	b := &bytes.Buffer{}
	opts := &Options{LogLevel: slog.LevelInfo, LogJSON: true}
	logger := slog.New(opts.Handler(b, nil))

	logger.Debug("hidden")
	logger.Info("hello", "k", "v")
	assert.NotContains(t, b.String(), "hidden")
	assert.Contains(t, b.String(), `"msg":"hello"`)
	assert.Contains(t, b.String(), `"k":"v"`)

	b.Reset()
	opts.LogJSON = false
	slog.New(opts.Handler(b, nil)).Warn("text")
	assert.Contains(t, b.String(), "level=WARN msg=text")
}

func TestConfigureWithHandlerOptions(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(old)
	})

	b := &bytes.Buffer{}
	opts := &Options{LogLevel: slog.LevelDebug}
	opts.ConfigureWithHandlerOptions(b, &slog.HandlerOptions{})

	slog.Debug("configured")
	assert.Contains(t, b.String(), "level=DEBUG msg=configured")
}
