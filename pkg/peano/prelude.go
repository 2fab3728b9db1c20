package peano

import (
	"github.com/samber/lo"
)

// Prelude returns the standard bindings. They refer to each other and to
// themselves by name only, so they must be installed together as one layer
// (see WithPrelude). Each call builds fresh trees.
//
//	not(val)        1 if val is 0, else 0
//	or(val1, val2)  val1 ? 1 : val2
//	and(val1, val2) val1 ? val2 : 0
//	eq(x, y)        1 if x == y, else 0
//	plus(x, y)      x + y
//	minus(x, y)     x - y
//	mult(x, y)      x * y
//	"21"            4 * 5 + 1
//	fib(n)          1, 1, 2, 3, 5, 8, ... for n = 0, 1, 2, ...
func Prelude() []Binding {
	return []Binding{
		Bind("not", fn([]string{"val"},
			&If{
				Cond: ref("val"),
				Then: False(),
				Else: True(),
			})),

		Bind("or", fn([]string{"val1", "val2"},
			&If{
				Cond: ref("val1"),
				Then: True(),
				Else: ref("val2"),
			})),

		Bind("and", fn([]string{"val1", "val2"},
			&If{
				Cond: ref("val1"),
				Then: ref("val2"),
				Else: False(),
			})),

		// Walk x toward zero, moving y the same way; equal iff y lands on zero.
		Bind("eq", fn([]string{"x", "y"},
			&If{
				Cond: ref("x"),
				Then: &If{
					Cond: &Positive{Inner: ref("x")},
					Then: call("eq", dec(ref("x")), dec(ref("y"))),
					Else: call("eq", inc(ref("x")), inc(ref("y"))),
				},
				Else: call("not", ref("y")),
			})),

		// Move one unit from x to y until x is zero.
		Bind("plus", fn([]string{"x", "y"},
			&If{
				Cond: ref("x"),
				Then: &If{
					Cond: &Positive{Inner: ref("x")},
					Then: call("plus", dec(ref("x")), inc(ref("y"))),
					Else: call("plus", inc(ref("x")), dec(ref("y"))),
				},
				Else: ref("y"),
			})),

		// Walk y toward zero, moving x the same way.
		Bind("minus", fn([]string{"x", "y"},
			&If{
				Cond: ref("y"),
				Then: &If{
					Cond: &Positive{Inner: ref("y")},
					Then: call("minus", dec(ref("x")), dec(ref("y"))),
					Else: call("minus", inc(ref("x")), inc(ref("y"))),
				},
				Else: ref("x"),
			})),

		// x * y = y + (x-1)*y for positive x, (x+1)*y - y for negative x.
		// plus walks its first operand and minus its second, so y is the
		// one walked in both cases.
		Bind("mult", fn([]string{"x", "y"},
			&If{
				Cond: ref("x"),
				Then: &If{
					Cond: &Positive{Inner: ref("x")},
					Then: call("plus", ref("y"), call("mult", dec(ref("x")), ref("y"))),
					Else: call("minus", call("mult", inc(ref("x")), ref("y")), ref("y")),
				},
				Else: False(),
			})),

		Bind("21", inc(call("mult", Int(4), Int(5)))),

		// fib2 counts a up to n, carrying the last two terms. It reads n from
		// the enclosing call.
		Bind("fib", fn([]string{"n"},
			&If{
				Cond: call("and", ref("n"), dec(ref("n"))),
				Then: &Let{
					Bindings: []Binding{
						Bind("fib2", fn([]string{"a", "incr1", "incr2"},
							&If{
								Cond: call("eq", ref("a"), ref("n")),
								Then: ref("incr1"),
								Else: call("fib2",
									inc(ref("a")),
									call("plus", ref("incr1"), ref("incr2")),
									ref("incr1")),
							})),
					},
					Body: call("fib2", Int(1), Int(1), Int(1)),
				},
				Else: Int(1),
			})),
	}
}

// PreludeWithout returns the prelude minus the named bindings.
func PreludeWithout(names ...string) []Binding {
	return lo.Filter(Prelude(), func(b Binding, _ int) bool {
		return !lo.Contains(names, b.Name)
	})
}

// PreludeNames lists the names Prelude binds, in order.
func PreludeNames() []string {
	return lo.Map(Prelude(), func(b Binding, _ int) string {
		return b.Name
	})
}

// WithPrelude wraps body in a Let installing the whole prelude.
func WithPrelude(body Expr) *Let {
	return &Let{Bindings: Prelude(), Body: body}
}

func ref(name string) Expr { return &Var{Name: name} }

func inc(e Expr) Expr { return &Incr{Inner: e} }

func dec(e Expr) Expr { return &Substr{Inner: e} }

func fn(params []string, body Expr) Expr {
	return &Lambda{Params: params, Body: body}
}

func call(name string, args ...Expr) Expr {
	return &App{Fn: ref(name), Args: args}
}
