package argparse

import (
	"github.com/pkg/errors"
)

// View is a read-only, index-style view of a Parser's option values.
type View struct {
	p *Parser
}

func (p *Parser) View() View {
	return View{p: p}
}

func (v View) Get(name string) interface{} {
	return v.p.Get(name)
}

func (v View) Lookup(name string) (interface{}, bool) {
	return v.p.Lookup(name)
}

// Set always fails; option values can only come from parsing.
func (v View) Set(name string, value interface{}) error {
	return errors.Wrapf(ErrUnsupportedOperation, "cannot set option %s", name)
}

// Delete always fails.
func (v View) Delete(name string) error {
	return errors.Wrapf(ErrUnsupportedOperation, "cannot delete option %s", name)
}
