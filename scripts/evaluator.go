package scripts

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync/atomic"
	"time"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"go.starlark.net/syntax"
)

// Evaluator executes one top-level statement at a time against a
// caller-provided global environment. It never mutates the passed
// environment; new and changed bindings appear in the returned one.
type Evaluator struct {
	Timeout  time.Duration // per statement; zero means no ceiling
	MaxSteps uint64
	Modules  map[string]*starlarkstruct.Module
}

func NewEvaluator(timeout time.Duration, maxSteps uint64) *Evaluator {
	return &Evaluator{
		Timeout:  timeout,
		MaxSteps: maxSteps,
		Modules:  BuiltinModules(),
	}
}

// BaseEnv is the environment a notebook starts from.
func (e *Evaluator) BaseEnv() starlark.StringDict {
	env := make(starlark.StringDict, len(e.Modules))
	for name, module := range e.Modules {
		env[name] = module
	}
	return env
}

func (e *Evaluator) load(_ *starlark.Thread, name string) (starlark.StringDict, error) {
	module, ok := e.Modules[name]
	if !ok {
		return nil, fmt.Errorf("no such module: %s", name)
	}
	return module.Members, nil
}

// Execute runs a single statement given as source text.
//
// Outcome rules: an expression statement yields its value; an
// assignment yields the value just bound (tuple targets yield a
// tuple); definitions, loads, and control statements yield no output.
// A raising statement yields an exception outcome; exceeding the
// execution budget yields a timeout outcome.
func (e *Evaluator) Execute(
	ctx context.Context,
	name string,
	source string,
	env starlark.StringDict,
) (Outcome, starlark.StringDict) {

	file, err := Parse(name, source)
	if err != nil {
		return Outcome{Kind: OutcomeError, Err: err.Error()}, env
	}
	if len(file.Stmts) == 0 {
		return Outcome{}, env
	}

	next := maps.Clone(env)

	thread := &starlark.Thread{
		Name: name,
		Load: e.load,
	}
	if e.MaxSteps > 0 {
		thread.SetMaxExecutionSteps(e.MaxSteps)
	}

	var timedOut atomic.Bool
	if e.Timeout > 0 {
		timer := time.AfterFunc(e.Timeout, func() {
			timedOut.Store(true)
			thread.Cancel("statement timeout")
		})
		defer timer.Stop()
	}
	if ctx.Done() != nil {
		stop := context.AfterFunc(ctx, func() {
			thread.Cancel("pass superseded")
		})
		defer stop()
	}

	switch stmt := file.Stmts[0].(type) {

	case *syntax.ExprStmt:
		value, err := starlark.EvalExprOptions(FileOptions, thread, stmt.X, next)
		if err != nil {
			return failureOutcome(err, &timedOut), next
		}
		return Outcome{Kind: OutcomeValue, Value: value}, next

	case *syntax.AssignStmt:
		if err := starlark.ExecREPLChunk(file, thread, next); err != nil {
			return failureOutcome(err, &timedOut), next
		}
		if value, ok := boundValue(stmt.LHS, next); ok {
			return Outcome{Kind: OutcomeValue, Value: value}, next
		}
		return Outcome{}, next

	default:
		if err := starlark.ExecREPLChunk(file, thread, next); err != nil {
			return failureOutcome(err, &timedOut), next
		}
		return Outcome{}, next
	}
}

func failureOutcome(err error, timedOut *atomic.Bool) Outcome {
	kind := OutcomeError
	if timedOut.Load() {
		kind = OutcomeTimeout
	}
	return Outcome{Kind: kind, Err: errMessage(err)}
}

func errMessage(err error) string {
	var evalErr *starlark.EvalError
	if errors.As(err, &evalErr) {
		return evalErr.Msg
	}
	return err.Error()
}

// boundValue resolves what an assignment statement just bound:
// a single name, or a tuple/list of names.
func boundValue(lhs syntax.Expr, env starlark.StringDict) (starlark.Value, bool) {
	switch lhs := lhs.(type) {
	case *syntax.Ident:
		value, ok := env[lhs.Name]
		return value, ok
	case *syntax.ParenExpr:
		return boundValue(lhs.X, env)
	case *syntax.TupleExpr:
		return boundTuple(lhs.List, env)
	case *syntax.ListExpr:
		return boundTuple(lhs.List, env)
	}
	return nil, false
}

func boundTuple(targets []syntax.Expr, env starlark.StringDict) (starlark.Value, bool) {
	tuple := make(starlark.Tuple, 0, len(targets))
	for _, target := range targets {
		ident, ok := target.(*syntax.Ident)
		if !ok {
			return nil, false
		}
		value, ok := env[ident.Name]
		if !ok {
			return nil, false
		}
		tuple = append(tuple, value)
	}
	return tuple, true
}
