package peano

import (
	"fmt"
	"strings"
)

// Expr is a node in an expression tree. The set of implementations is
// closed; Eval has one arm per node.
type Expr interface {
	String() string

	expr()
}

// Binding pairs a name with an unevaluated expression.
type Binding struct {
	Name  string
	Value Expr
}

func (b Binding) String() string {
	return fmt.Sprintf("%s = %s", b.Name, b.Value)
}

// Bind is shorthand for constructing a Binding.
func Bind(name string, value Expr) Binding {
	return Binding{Name: name, Value: value}
}

// Zero is the numeral 0, which doubles as boolean false.
type Zero struct{}

// Incr is the successor of Inner.
type Incr struct {
	Inner Expr
}

// Substr is the predecessor of Inner.
type Substr struct {
	Inner Expr
}

// Positive tests whether Inner is strictly positive.
type Positive struct {
	Inner Expr
}

// If selects Then when Cond is anything but Zero, Else otherwise.
type If struct {
	Cond Expr
	Then Expr
	Else Expr
}

// Var references a name in the environment.
type Var struct {
	Name string
}

// Lambda is a function literal. It captures nothing; free names in Body
// resolve against the environment at the call site.
type Lambda struct {
	Params []string
	Body   Expr
}

// App applies Fn to Args.
type App struct {
	Fn   Expr
	Args []Expr
}

// Let evaluates Body with Bindings installed as a single layer.
type Let struct {
	Bindings []Binding
	Body     Expr
}

var (
	_ Expr = (*Zero)(nil)
	_ Expr = (*Incr)(nil)
	_ Expr = (*Substr)(nil)
	_ Expr = (*Positive)(nil)
	_ Expr = (*If)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*Lambda)(nil)
	_ Expr = (*App)(nil)
	_ Expr = (*Let)(nil)
)

func (*Zero) expr()     {}
func (*Incr) expr()     {}
func (*Substr) expr()   {}
func (*Positive) expr() {}
func (*If) expr()       {}
func (*Var) expr()      {}
func (*Lambda) expr()   {}
func (*App) expr()      {}
func (*Let) expr()      {}

func (*Zero) String() string { return "0" }

func (e *Incr) String() string {
	if n, err := ToInt(e); err == nil {
		return fmt.Sprint(n)
	}
	return fmt.Sprintf("Incr(%s)", e.Inner)
}

func (e *Substr) String() string {
	if n, err := ToInt(e); err == nil {
		return fmt.Sprint(n)
	}
	return fmt.Sprintf("Substr(%s)", e.Inner)
}

func (e *Positive) String() string {
	return fmt.Sprintf("Positive(%s)", e.Inner)
}

func (e *If) String() string {
	return fmt.Sprintf("If(%s, %s, %s)", e.Cond, e.Then, e.Else)
}

func (e *Var) String() string {
	return fmt.Sprintf("Var(%s)", e.Name)
}

func (e *Lambda) String() string {
	return fmt.Sprintf("Lambda(%s, %s)", strings.Join(e.Params, ", "), e.Body)
}

func (e *App) String() string {
	parts := make([]string, 0, len(e.Args)+1)
	parts = append(parts, e.Fn.String())
	for _, arg := range e.Args {
		parts = append(parts, arg.String())
	}
	return fmt.Sprintf("App(%s)", strings.Join(parts, ", "))
}

func (e *Let) String() string {
	binds := make([]string, len(e.Bindings))
	for i, b := range e.Bindings {
		binds[i] = b.Name
	}
	return fmt.Sprintf("Let([%s], %s)", strings.Join(binds, ", "), e.Body)
}

// IsValue reports whether e is already in normal form: Zero, a uniform
// chain of Incr or Substr ending in Zero, or a Lambda.
func IsValue(e Expr) bool {
	if _, ok := e.(*Lambda); ok {
		return true
	}
	_, err := ToInt(e)
	return err == nil
}
