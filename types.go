package argparse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Type is the value type of a registered option.
type Type int

const (
	Int Type = iota + 1
	Float
	Bool
	String
)

func (t Type) String() string {
	switch t {
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case String:
		return "str"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

func (t Type) valid() bool {
	return t >= Int && t <= String
}

// OptionSpec describes a registered option. Default always holds a value of
// the Go type matching Type: int, float64, bool or string.
type OptionSpec struct {
	Name    string
	Type    Type
	Default interface{}
	Help    string
}

func (spec OptionSpec) hasArg() bool {
	return spec.Type != Bool
}

// isZeroDefault reports whether the default is the zero value of its type,
// in which case usage output leaves it out.
func (spec OptionSpec) isZeroDefault() bool {
	switch v := spec.Default.(type) {
	case int:
		return v == 0
	case float64:
		return v == 0
	case bool:
		return !v
	case string:
		return v == ""
	default:
		return true
	}
}

func newOptionSpec(name string, t Type, def interface{}, help string) (OptionSpec, error) {
	spec := OptionSpec{
		Name:    name,
		Type:    t,
		Default: def,
		Help:    help,
	}
	invalid := func(format string, args ...interface{}) (OptionSpec, error) {
		return OptionSpec{}, &InvalidSpecError{
			Name:    name,
			Type:    t,
			Default: def,
			Reason:  fmt.Sprintf(format, args...),
		}
	}

	if name == "" {
		return invalid("name must not be empty")
	}
	if contains(name, "=") {
		return invalid("name must not contain '='")
	}
	if !t.valid() {
		return invalid("unknown option type %s", t)
	}

	ok := false
	switch def.(type) {
	case int:
		ok = t == Int
	case float64:
		ok = t == Float
	case bool:
		ok = t == Bool
	case string:
		ok = t == String
	}
	if !ok {
		return invalid("default %#v is not of type %s", def, t)
	}
	return spec, nil
}

// coercers

const (
	floatMarkers  = ".eE"
	numericRunes  = "0123456789+-" + floatMarkers
	errNotNumeric = "not a numeric literal"
)

// isNumeric reports whether s is made only of characters that may appear in
// a decimal number. Structure is validated later by strconv.
func isNumeric(s string) bool {
	return s != "" && strings.Trim(s, numericRunes) == ""
}

func parseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if !isNumeric(s) {
		return 0, errors.New(errNotNumeric)
	}
	if containsAny(s, floatMarkers) {
		return 0, errors.New("float literal where int expected")
	}
	v, err := strconv.ParseInt(s, 10, 0)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if !isNumeric(s) {
		return 0, errors.New(errNotNumeric)
	}
	return strconv.ParseFloat(s, 64)
}

// coerce converts a raw token to the option's type. attached is true for
// values given in key=value form.
func (spec OptionSpec) coerce(raw string, attached bool) (interface{}, error) {
	var v interface{}
	var err error
	switch spec.Type {
	case Int:
		v, err = parseInt(raw)
	case Float:
		v, err = parseFloat(raw)
	case Bool:
		if !attached {
			return true, nil
		}
		v, err = strconv.ParseBool(raw)
	case String:
		if !attached && isOptionShaped(raw) {
			err = errors.New("value looks like an option")
		}
		v = raw
	default:
		err = errors.Errorf("unknown option type %s", spec.Type)
	}
	if err != nil {
		return nil, &TypeMismatchError{
			Name:     spec.Name,
			Expected: spec.Type,
			Value:    raw,
			Err:      err,
		}
	}
	return v, nil
}
