package argparse

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
)

// Parser holds a set of registered options and, once parsed, their resolved
// values and the positional arguments. A Parser is not safe for concurrent
// use.
type Parser struct {
	name   string
	help   string
	log    *slog.Logger
	specs  map[string]OptionSpec
	parsed map[string]interface{}
	// setCount counts the times each option was given on the command line.
	setCount map[string]uint
	args     []string
	isParsed bool
}

// New creates a Parser with no registered options.
func New(opts ...Option) *Parser {
	p := &Parser{
		specs: map[string]OptionSpec{},
		args:  []string{},
	}
	for _, opt := range opts {
		opt.Apply(p)
	}
	return p
}

func (p *Parser) logger() *slog.Logger {
	if p.log != nil {
		return p.log
	}
	return slog.Default()
}

// Register declares an option. The dynamic type of def must match t: int for
// Int, float64 for Float, bool for Bool and string for String. Registering a
// name again replaces the previous declaration.
//
// Options registered after a completed parse keep the parsed value, unless
// the type changed, in which case the value is reset to the new default.
func (p *Parser) Register(name string, t Type, def interface{}, help string) error {
	spec, err := newOptionSpec(name, t, def, help)
	if err != nil {
		return err
	}
	if prev, ok := p.specs[name]; ok && prev.Type != t {
		delete(p.parsed, name)
	}
	p.specs[name] = spec
	return nil
}

func (p *Parser) mustRegister(name string, t Type, def interface{}, help string) *Parser {
	if err := p.Register(name, t, def, help); err != nil {
		panic(fmt.Sprintf("argparse: %s", err))
	}
	return p
}

// AddBool registers a Bool option. Like the other Add methods it returns the
// Parser for chaining and panics if the declaration is invalid; use Register
// to get the error instead.
func (p *Parser) AddBool(name string, def bool, help string) *Parser {
	return p.mustRegister(name, Bool, def, help)
}

func (p *Parser) AddInt(name string, def int, help string) *Parser {
	return p.mustRegister(name, Int, def, help)
}

func (p *Parser) AddFloat(name string, def float64, help string) *Parser {
	return p.mustRegister(name, Float, def, help)
}

func (p *Parser) AddString(name string, def string, help string) *Parser {
	return p.mustRegister(name, String, def, help)
}

// Parse is a convenience method for calling ParseArgs(os.Args)
func (p *Parser) Parse() error {
	return p.ParseArgs(os.Args)
}

// ParseArgs parses the passed-in argument vector. The first element is the
// program name and is skipped.
//
// Scanning stops at "--" or at the first argument that is not shaped like an
// option; everything after that point is kept as positional arguments.
// Unknown options are dropped. Once ParseArgs succeeds, further calls return
// nil without rescanning.
//
// Errors match ErrMissingValue or ErrTypeMismatch. After an error the
// resolved values hold whatever was coerced before it.
func (p *Parser) ParseArgs(args []string) error {
	if p.isParsed {
		return nil
	}
	if p.name == "" && len(args) > 0 && args[0] != "" {
		p.name = filepath.Base(args[0])
	}

	p.parsed = make(map[string]interface{}, len(p.specs))
	for name, spec := range p.specs {
		p.parsed[name] = spec.Default
	}
	p.setCount = map[string]uint{}
	p.args = []string{}

	if len(args) > 1 {
		if err := p.scan(args[1:]); err != nil {
			return errors.Wrap(err, "failed to parse args")
		}
	}

	p.isParsed = true
	return nil
}

func (p *Parser) set(name string, v interface{}) {
	p.parsed[name] = v
	p.setCount[name] += 1
}

// Parsed reports whether ParseArgs has completed successfully.
func (p *Parser) Parsed() bool {
	return p.isParsed
}

// IsSet reports whether the named option was given on the command line.
func (p *Parser) IsSet(name string) bool {
	return p.setCount[name] > 0
}

// Lookup returns the value of the named option and whether it is
// registered. Before parsing the value is the declared default.
func (p *Parser) Lookup(name string) (interface{}, bool) {
	spec, ok := p.specs[name]
	if !ok {
		return nil, false
	}
	if v, ok := p.parsed[name]; ok {
		return v, true
	}
	return spec.Default, true
}

// Get is like Lookup but returns nil for options that were never registered.
func (p *Parser) Get(name string) interface{} {
	v, _ := p.Lookup(name)
	return v
}

func (p *Parser) GetInt(name string) int {
	v, _ := p.Get(name).(int)
	return v
}

func (p *Parser) GetFloat(name string) float64 {
	v, _ := p.Get(name).(float64)
	return v
}

func (p *Parser) GetBool(name string) bool {
	v, _ := p.Get(name).(bool)
	return v
}

func (p *Parser) GetString(name string) string {
	v, _ := p.Get(name).(string)
	return v
}

// Options returns a snapshot of every registered option's value.
func (p *Parser) Options() map[string]interface{} {
	m := make(map[string]interface{}, len(p.specs))
	for name := range p.specs {
		m[name] = p.Get(name)
	}
	return m
}

// Args returns the positional arguments. The result is never nil.
func (p *Parser) Args() []string {
	return append([]string{}, p.args...)
}

// Specs returns the registered options sorted by name.
func (p *Parser) Specs() []OptionSpec {
	specs := make([]OptionSpec, 0, len(p.specs))
	for _, spec := range p.specs {
		specs = append(specs, spec)
	}
	sort.Slice(specs, func(i, j int) bool {
		return specs[i].Name < specs[j].Name
	})
	return specs
}

type Option interface {
	Apply(p *Parser)
}

type optionFunc func(p *Parser)

func (of optionFunc) Apply(p *Parser) {
	of(p)
}

// WithName sets the program name shown in usage output. If unset, the base
// name of the first parsed argument is used.
func WithName(name string) Option {
	return optionFunc(func(p *Parser) {
		p.name = name
	})
}

// WithHelp sets a description printed above the usage line.
func WithHelp(help string) Option {
	return optionFunc(func(p *Parser) {
		p.help = help
	})
}

// WithLogger sets the logger that receives debug records about dropped and
// positional arguments. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return optionFunc(func(p *Parser) {
		p.log = logger
	})
}
