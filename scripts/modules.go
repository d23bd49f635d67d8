package scripts

import (
	starjson "go.starlark.net/lib/json"
	starmath "go.starlark.net/lib/math"
	startime "go.starlark.net/lib/time"
	"go.starlark.net/starlarkstruct"
)

// BuiltinModules returns the modules a notebook environment starts
// with. They are pre-bound by name and also served to load().
func BuiltinModules() map[string]*starlarkstruct.Module {
	return map[string]*starlarkstruct.Module{
		"math":   starmath.Module,
		"time":   startime.Module,
		"json":   starjson.Module,
		"random": RandomModule(),
	}
}
