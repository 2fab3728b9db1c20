package peano

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExprString(t *testing.T) {
	tests := []struct {
		expr     Expr
		expected string
	}{
		{&Zero{}, "0"},
		{Int(42), "42"},
		{Int(-3), "-3"},
		{&Incr{Inner: &Substr{Inner: &Zero{}}}, "Incr(-1)"},
		{&Substr{Inner: &Var{Name: "x"}}, "Substr(Var(x))"},
		{&Positive{Inner: &Var{Name: "x"}}, "Positive(Var(x))"},
		{&If{Cond: &Zero{}, Then: True(), Else: False()}, "If(0, 1, 0)"},
		{fn([]string{"x", "y"}, ref("x")), "Lambda(x, y, Var(x))"},
		{call("plus", Int(21), Int(1)), "App(Var(plus), 21, 1)"},
		{&Let{Bindings: []Binding{Bind("x", Int(1))}, Body: ref("x")}, "Let([x], Var(x))"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.expr.String())
		})
	}
}

func TestIsValue(t *testing.T) {
	assert.True(t, IsValue(&Zero{}))
	assert.True(t, IsValue(Int(5)))
	assert.True(t, IsValue(Int(-5)))
	assert.True(t, IsValue(fn(nil, ref("unbound"))))

	assert.False(t, IsValue(&Incr{Inner: &Substr{Inner: &Zero{}}}))
	assert.False(t, IsValue(&Incr{Inner: ref("x")}))
	assert.False(t, IsValue(ref("x")))
	assert.False(t, IsValue(&Positive{Inner: Int(1)}))
	assert.False(t, IsValue(call("f")))
	assert.False(t, IsValue(&Let{Body: &Zero{}}))
	assert.False(t, IsValue(&If{Cond: &Zero{}, Then: &Zero{}, Else: &Zero{}}))
}
