package argparse_test

import (
	"errors"
	"fmt"

	"github.com/isobit/argparse"
)

func Example() {
	p := argparse.New().
		AddBool("flag", false, "test flag").
		AddInt("times", 0, "output times").
		AddFloat("salary", 0, "job salary").
		AddString("msg", "", "description")

	err := p.ParseArgs([]string{"prog", "-flag", "--times", "3", "-salary", "14000.00", "-msg", "hi", "a", "b"})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p.GetBool("flag"), p.GetInt("times"), p.GetFloat("salary"), p.GetString("msg"))
	fmt.Println(p.Args())
	// Output:
	// true 3 14000 hi
	// [a b]
}

func ExampleParser_ParseArgs_terminator() {
	p := argparse.New().
		AddBool("flag", false, "").
		AddString("msg", "", "")

	_ = p.ParseArgs([]string{"prog", "-flag", "--", "-msg", "hi", "a"})
	fmt.Printf("%q %q\n", p.GetString("msg"), p.Args())
	// Output:
	// "" ["-msg" "hi" "a"]
}

func ExampleParser_ParseArgs_error() {
	p := argparse.New().AddInt("times", 0, "")

	err := p.ParseArgs([]string{"prog", "-times", "14000.00"})
	var tme *argparse.TypeMismatchError
	if errors.As(err, &tme) {
		fmt.Println(tme.Name, tme.Expected)
	}
	fmt.Println(errors.Is(err, argparse.ErrTypeMismatch))
	// Output:
	// times int
	// true
}
