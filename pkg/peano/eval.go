package peano

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/vito/peano/pkg/ioctx"
)

// DefaultMaxDepth bounds evaluation nesting when the context sets no limit.
const DefaultMaxDepth = 10000

type maxDepthKey struct{}

// WithMaxDepth sets the nesting limit for evaluations run with ctx.
func WithMaxDepth(ctx context.Context, depth int) context.Context {
	return context.WithValue(ctx, maxDepthKey{}, depth)
}

// MaxDepthFromContext returns the nesting limit set by WithMaxDepth, or
// DefaultMaxDepth.
func MaxDepthFromContext(ctx context.Context) int {
	if depth, ok := ctx.Value(maxDepthKey{}).(int); ok && depth > 0 {
		return depth
	}
	return DefaultMaxDepth
}

// Run evaluates body with bindings installed as one layer over the empty
// environment.
func Run(ctx context.Context, bindings []Binding, body Expr) (Expr, error) {
	logger := ioctx.LoggerFromContext(ctx)
	logger.DebugContext(ctx, "evaluating", "bindings", len(bindings), "body", body)

	val, err := Eval(ctx, &Let{Bindings: bindings, Body: body}, NewEnv())
	if err != nil {
		return nil, err
	}

	logger.DebugContext(ctx, "evaluated", "value", val)
	return val, nil
}

// Eval reduces expr to a value in env.
func Eval(ctx context.Context, expr Expr, env *Env) (Expr, error) {
	ev := &evaluator{maxDepth: MaxDepthFromContext(ctx)}
	return ev.eval(ctx, expr, env)
}

// evaluator holds the state of a single Eval call.
type evaluator struct {
	depth    int
	maxDepth int
}

func (ev *evaluator) eval(ctx context.Context, expr Expr, env *Env) (Expr, error) {
	if expr == nil {
		return nil, errors.New("cannot evaluate nil expression")
	}

	ev.depth++
	defer func() { ev.depth-- }()

	return withEvalErrorHandling(ctx, expr, func() (Expr, error) {
		if ev.depth > ev.maxDepth {
			return nil, errors.Wrapf(ErrResourceExhausted, "nesting exceeds %d", ev.maxDepth)
		}

		switch e := expr.(type) {
		case *Zero:
			return e, nil

		case *Lambda:
			return e, nil

		case *Var:
			bound, err := env.Lookup(e.Name)
			if err != nil {
				ioctx.LoggerFromContext(ctx).DebugContext(ctx, "unbound name",
					"name", e.Name,
					"visible", env.Names())
				return nil, err
			}
			return ev.eval(ctx, bound, env)

		case *Incr:
			v, err := ev.eval(ctx, e.Inner, env)
			if err != nil {
				return nil, err
			}
			switch x := v.(type) {
			case *Substr:
				return x.Inner, nil
			default:
				return &Incr{Inner: v}, nil
			}

		case *Substr:
			v, err := ev.eval(ctx, e.Inner, env)
			if err != nil {
				return nil, err
			}
			switch x := v.(type) {
			case *Incr:
				return x.Inner, nil
			case *Lambda:
				return nil, errors.Wrap(ErrMalformedNumeral, "cannot decrement a function")
			default:
				return &Substr{Inner: v}, nil
			}

		case *Positive:
			v, err := ev.eval(ctx, e.Inner, env)
			if err != nil {
				return nil, err
			}
			_, positive := v.(*Incr)
			return Bool(positive), nil

		case *If:
			cond, err := ev.eval(ctx, e.Cond, env)
			if err != nil {
				return nil, err
			}
			if Truthy(cond) {
				return ev.eval(ctx, e.Then, env)
			}
			return ev.eval(ctx, e.Else, env)

		case *Let:
			return ev.eval(ctx, e.Body, env.Extend(e.Bindings))

		case *App:
			return ev.apply(ctx, e, env)

		default:
			return nil, errors.Errorf("expression of type %T is unhandled", expr)
		}
	})
}

// apply evaluates the callee and arguments in the caller's env, then
// evaluates the body in the caller's env extended with the parameters.
func (ev *evaluator) apply(ctx context.Context, app *App, env *Env) (Expr, error) {
	fnVal, err := ev.eval(ctx, app.Fn, env)
	if err != nil {
		return nil, err
	}

	fn, ok := fnVal.(*Lambda)
	if !ok {
		return nil, errors.Wrapf(ErrNotAFunction, "%s", fnVal)
	}

	if len(fn.Params) != len(app.Args) {
		return nil, errors.Wrapf(ErrArityMismatch, "expected %d arguments (%s), got %d",
			len(fn.Params), strings.Join(fn.Params, ", "), len(app.Args))
	}

	binds := make([]Binding, len(app.Args))
	for i, arg := range app.Args {
		val, err := ev.eval(ctx, arg, env)
		if err != nil {
			return nil, err
		}
		binds[i] = Binding{Name: fn.Params[i], Value: val}
	}

	return ev.eval(ctx, fn.Body, env.Extend(binds))
}
