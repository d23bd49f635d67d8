package scripts

import (
	"math/rand"

	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

// RandomModule returns a fresh random module backed by its own
// generator, so reseeding one notebook does not disturb another.
func RandomModule() *starlarkstruct.Module {
	rng := rand.New(rand.NewSource(rand.Int63()))
	return &starlarkstruct.Module{
		Name: "random",
		Members: starlark.StringDict{
			"random": starlarkutil.MakeFunc("random", rng.Float64),
			"randint": starlarkutil.MakeFunc("randint", func(lo, hi int64) int64 {
				if hi < lo {
					lo, hi = hi, lo
				}
				return lo + rng.Int63n(hi-lo+1)
			}),
			"seed": starlarkutil.MakeFunc("seed", func(n int64) {
				rng.Seed(n)
			}),
		},
	}
}
