package peano

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/vito/peano/pkg/ioctx"
)

var (
	// ErrUnboundName is returned when a Var has no binding in scope.
	ErrUnboundName = errors.New("unbound name")

	// ErrNotAFunction is returned when App's function position does not
	// evaluate to a Lambda.
	ErrNotAFunction = errors.New("not a function")

	// ErrArityMismatch is returned when App passes a different number of
	// arguments than the Lambda declares.
	ErrArityMismatch = errors.New("arity mismatch")

	// ErrMalformedNumeral is returned when converting something other than a
	// uniform numeral chain to an int.
	ErrMalformedNumeral = errors.New("malformed numeral")

	// ErrResourceExhausted is returned when evaluation nests deeper than the
	// configured limit.
	ErrResourceExhausted = errors.New("resource exhausted")
)

// EvalError records the innermost node whose evaluation failed.
type EvalError struct {
	Inner error
	Node  Expr
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s: %s", e.Node, e.Inner)
}

func (e *EvalError) Unwrap() error {
	return e.Inner
}

// withEvalErrorHandling attaches node to any error returned by fn, unless an
// inner node has already claimed it.
func withEvalErrorHandling(ctx context.Context, node Expr, fn func() (Expr, error)) (Expr, error) {
	val, err := fn()
	if err != nil {
		var evalErr *EvalError
		if errors.As(err, &evalErr) {
			return nil, err
		}
		ioctx.LoggerFromContext(ctx).DebugContext(ctx, "evaluation failed",
			"node", node.String(),
			"error", err)
		return nil, &EvalError{Inner: err, Node: node}
	}
	return val, nil
}
