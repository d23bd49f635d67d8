package notebooks

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/reusee/tainote/scripts"
	"go.starlark.net/starlark"
)

// CacheEntry records, for one ordinal position, the key of the
// statement executed there, its outcome, and the global environment as
// it stood just after that execution. An entry is valid only while
// every statement before it keeps its key, so invalidation always
// discards a whole suffix.
type CacheEntry struct {
	Key     scripts.Key
	Outcome scripts.Outcome
	Env     starlark.StringDict
}

// evaluate walks statements in order, reusing cache entries for the
// longest prefix of unchanged keys and re-executing everything from
// the first divergence onward, starting from the last valid entry's
// environment snapshot.
func evaluate(
	ctx context.Context,
	eval *scripts.Evaluator,
	stmts []Statement,
	cache []CacheEntry,
) (outcomes []scripts.Outcome, next []CacheEntry, executed int) {

	outcomes = make([]scripts.Outcome, 0, len(stmts))

	hits := 0
	for hits < len(stmts) && hits < len(cache) && cache[hits].Key == stmts[hits].Key {
		outcomes = append(outcomes, cache[hits].Outcome)
		hits++
	}

	if hits == len(stmts) && hits == len(cache) {
		// unchanged, zero executions
		return outcomes, cache, 0
	}

	next = slices.Clone(cache[:hits])

	env := eval.BaseEnv()
	if hits > 0 {
		env = maps.Clone(cache[hits-1].Env)
	}

	for _, stmt := range stmts[hits:] {
		outcome, after := eval.Execute(
			ctx,
			fmt.Sprintf("<line %d>", stmt.StartLine),
			stmt.Source,
			env,
		)
		outcomes = append(outcomes, outcome)
		next = append(next, CacheEntry{
			Key:     stmt.Key,
			Outcome: outcome,
			Env:     maps.Clone(after),
		})
		env = after
		executed++
	}

	return outcomes, next, executed
}
