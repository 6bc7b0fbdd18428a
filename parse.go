/*
Some code in this file was copied from the go "flag" package source and
modified. That code's license is retained here:

Copyright (c) 2009 The Go Authors. All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are
met:

   * Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.
   * Redistributions in binary form must reproduce the above
copyright notice, this list of conditions and the following disclaimer
in the documentation and/or other materials provided with the
distribution.
   * Neither the name of Google Inc. nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

package argparse

import (
	"strings"
)

const terminator = "--"

// optionName classifies arg. It returns the option name with its leading
// dashes removed, and false if arg is not shaped like an option. One dash is
// stripped, or two when something remains after them.
func optionName(arg string) (string, bool) {
	s := strings.TrimSpace(arg)
	if len(s) < 2 || s[0] != '-' || s == terminator {
		return "", false
	}
	name := s[1:]
	if name[0] == '-' && len(name) > 1 {
		name = name[1:]
	}
	return name, true
}

func isOptionShaped(arg string) bool {
	_, ok := optionName(arg)
	return ok
}

type scanner struct {
	p     *Parser
	args  []string
	index int // position of args[0] in the original argument vector
}

// scan consumes arguments, which must not include the program name.
func (p *Parser) scan(arguments []string) error {
	s := scanner{p: p, args: arguments, index: 1}
	for {
		seen, err := s.scanOne()
		if err != nil {
			return err
		}
		if !seen {
			return nil
		}
	}
}

func (s *scanner) advance(n int) {
	s.args = s.args[n:]
	s.index += n
}

// stop ends option scanning, keeping rest as the positional arguments.
func (s *scanner) stop(rest []string, reason string) {
	s.p.args = append(s.p.args[:0], rest...)
	s.p.logger().Debug("option scanning stopped",
		"index", s.index,
		"reason", reason,
		"args", len(rest),
	)
}

func (s *scanner) drop(arg, reason string) {
	s.p.logger().Debug("dropped argument",
		"arg", arg,
		"index", s.index,
		"reason", reason,
	)
}

func (s *scanner) scanOne() (bool, error) {
	if len(s.args) == 0 {
		return false, nil
	}
	arg := s.args[0]
	if arg == terminator {
		s.stop(s.args[1:], "terminator")
		return false, nil
	}
	name, ok := optionName(arg)
	if !ok {
		s.stop(s.args, "non-option")
		return false, nil
	}

	// key=value, split at the first equals sign. The value is taken from the
	// raw argument so surrounding whitespace is kept.
	if i := strings.IndexByte(name, '='); i >= 0 {
		key := strings.TrimSpace(name[:i])
		value := arg[strings.IndexByte(arg, '=')+1:]
		spec, ok := s.p.specs[key]
		if key == "" || !ok {
			s.drop(arg, "unknown key")
			s.advance(1)
			return true, nil
		}
		v, err := spec.coerce(value, true)
		if err != nil {
			return false, err
		}
		s.p.set(key, v)
		s.advance(1)
		return true, nil
	}

	spec, ok := s.p.specs[name]
	if !ok {
		s.drop(arg, "unknown option")
		s.advance(1)
		return true, nil
	}

	if !spec.hasArg() {
		s.p.set(name, true)
		s.advance(1)
		return true, nil
	}

	// It must have a value, which is the next arg.
	if len(s.args) < 2 {
		return false, &MissingValueError{Name: name}
	}
	s.advance(1)
	value := s.args[0]
	if value == terminator {
		s.stop(s.args[1:], "terminator")
		return false, nil
	}
	v, err := spec.coerce(value, false)
	if err != nil {
		return false, err
	}
	s.p.set(name, v)
	s.advance(1)
	return true, nil
}
