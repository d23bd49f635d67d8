package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/tainote/logs"
	"github.com/reusee/tainote/scripts"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
)

// Tap opens an interactive Starlark REPL over a notebook environment,
// for poking at its bindings after a pass.
type Tap func(ctx context.Context, what string, env starlark.StringDict)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, env starlark.StringDict) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(env)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		globals := maps.Clone(env)
		globals["host"] = hostModule()

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(scripts.FileOptions, thread, globals)
	}
}
