/*
Package argparse parses command-line options and positional arguments without
the scaffolding of a full CLI framework.

Example

Greet program:

		package main

		import (
			"fmt"
			"os"

			"github.com/isobit/argparse"
		)

		func main() {
			p := argparse.New(argparse.WithHelp("Print a greeting.")).
				AddBool("excited", false, "use an exclamation point").
				AddString("greeting", "Hey", "the greeting to use").
				AddInt("times", 1, "how many times to greet")
			if err := p.Parse(); err != nil {
				fmt.Fprintf(os.Stderr, "error: %s\n\n%s", err, p.Usage())
				os.Exit(1)
			}

			punctuation := "."
			if p.GetBool("excited") {
				punctuation = "!"
			}
			for i := 0; i < p.GetInt("times"); i++ {
				for _, name := range p.Args() {
					fmt.Printf("%s, %s%s\n", p.GetString("greeting"), name, punctuation)
				}
			}
		}

Usage:

		$ greet -excited --greeting Hello -times=2 world
		Hello, world!
		Hello, world!

Option Syntax

Options are introduced with one or two dashes; "-name" and "--name" are the
same option. Values follow as the next argument or are attached with an
equals sign:

		-flag               // Bool options take no value and become true
		-times 3            // value in the next argument
		--times=3           // value attached; whitespace after "=" is kept
		-flag=false         // Bool values may be attached too
		--                  // everything after this is a positional argument

Scanning stops at "--" or at the first argument that is not shaped like an
option, such as "a", "-" or "===". That argument and all following ones are
returned by Args in their original order.

Options that were never registered are dropped without error. The argument
after an unknown option is scanned normally, so with no "unknown" option
registered, "-unknown 14000" yields the positional arguments ["14000"].

Types

Int values must be base-10 integers. Float values accept integers as well as
decimal and exponent forms. A value containing ".", "e" or "E" given to an Int
option is an error matching ErrTypeMismatch. String values given as the next
argument must not themselves look like an option, so that a missing value
does not swallow the following flag.
*/
package argparse
