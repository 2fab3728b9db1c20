package peano

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrograms(t *testing.T) {
	ctx := context.Background()
	for _, prog := range Programs() {
		t.Run(prog.Name, func(t *testing.T) {
			got, err := prog.Eval(ctx)
			require.NoError(t, err)
			require.Equal(t, prog.Want, got)
		})
	}
}

func TestProgramEvalFailure(t *testing.T) {
	prog, err := LookupProgram("mult")
	require.NoError(t, err)

	_, err = prog.Eval(WithMaxDepth(context.Background(), 50))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrResourceExhausted))
	assert.Contains(t, err.Error(), "mult: ")
}

func TestProgramNonNumeralResult(t *testing.T) {
	prog := Program{Name: "fn", Body: ref("plus")}
	_, err := prog.Eval(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedNumeral))
}

func TestLookupProgram(t *testing.T) {
	prog, err := LookupProgram("fib-of-fib")
	require.NoError(t, err)
	assert.Equal(t, 34, prog.Want)

	_, err = LookupProgram("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no program named "nope"`)
}
