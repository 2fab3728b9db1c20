package peano

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

// Program is a named body evaluated under the prelude.
type Program struct {
	Name string
	Doc  string
	Body Expr

	// Want is the expected result as an int.
	Want int
}

// Eval runs the program under the prelude and converts the result.
func (p Program) Eval(ctx context.Context) (int, error) {
	val, err := Run(ctx, Prelude(), p.Body)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", p.Name, err)
	}
	n, err := ToInt(val)
	if err != nil {
		return 0, fmt.Errorf("%s: result %s: %w", p.Name, val, err)
	}
	return n, nil
}

// Programs returns the demonstration programs in display order.
func Programs() []Program {
	return []Program{
		{
			Name: "plus-minus",
			Doc:  "21 + ((21 + 1) - 1)",
			Body: call("plus",
				ref("21"),
				call("minus", inc(ref("21")), inc(&Zero{}))),
			Want: 42,
		},
		{
			Name: "fib-of-fib",
			Doc:  "fib(fib(5)) = fib(8)",
			Body: call("fib", call("fib", Int(5))),
			Want: 34,
		},
		{
			Name: "mult",
			Doc:  "3 * 21",
			Body: call("mult", Int(3), ref("21")),
			Want: 63,
		},
		{
			Name: "eq-same",
			Doc:  "eq(3, 3)",
			Body: call("eq", Int(3), Int(3)),
			Want: 1,
		},
		{
			Name: "eq-different",
			Doc:  "eq(3, 4)",
			Body: call("eq", Int(3), Int(4)),
			Want: 0,
		},
	}
}

// LookupProgram finds a program by name.
func LookupProgram(name string) (Program, error) {
	for _, p := range Programs() {
		if p.Name == name {
			return p, nil
		}
	}
	return Program{}, errors.Errorf("no program named %q", name)
}
