// Package slog registers logging options on an argparse.Parser and installs a
// log/slog default handler from the parsed values.
package slog

import (
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"github.com/isobit/argparse"
)

const (
	LevelOption = "log-level"
	JSONOption  = "log-json"
)

type Options struct {
	LogLevel slog.Level
	LogJSON  bool
}

// Register adds the log-level and log-json options to p, using the current
// field values as defaults.
func (opts *Options) Register(p *argparse.Parser) *argparse.Parser {
	return p.
		AddString(LevelOption, opts.LogLevel.String(), "minimum log level (debug, info, warn, error)").
		AddBool(JSONOption, opts.LogJSON, "write logs as JSON")
}

// Load reads the option values back from a parsed p.
func (opts *Options) Load(p *argparse.Parser) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(p.GetString(LevelOption))); err != nil {
		return errors.Wrapf(err, "invalid %s", LevelOption)
	}
	opts.LogLevel = level
	opts.LogJSON = p.GetBool(JSONOption)
	return nil
}

func (opts *Options) Handler(w io.Writer, handlerOpts *slog.HandlerOptions) slog.Handler {
	if handlerOpts == nil {
		handlerOpts = &slog.HandlerOptions{}
	}
	handlerOpts.Level = opts.LogLevel

	if opts.LogJSON {
		return slog.NewJSONHandler(w, handlerOpts)
	}
	return slog.NewTextHandler(w, handlerOpts)
}

func (opts *Options) ConfigureWithHandlerOptions(w io.Writer, handlerOpts *slog.HandlerOptions) {
	slog.SetDefault(slog.New(opts.Handler(w, handlerOpts)))
}

func (opts *Options) Configure() {
	opts.ConfigureWithHandlerOptions(os.Stderr, nil)
}
