package debugs

import (
	"os"
	"time"

	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

// hostModule exposes a few process-level helpers to the REPL.
func hostModule() *starlarkstruct.Module {
	return &starlarkstruct.Module{
		Name: "host",
		Members: starlark.StringDict{
			"pid": starlarkutil.MakeFunc("pid", os.Getpid),
			"env": starlarkutil.MakeFunc("env", os.Getenv),
			"now": starlarkutil.MakeFunc("now", func() string {
				return time.Now().Format(time.RFC3339)
			}),
		},
	}
}
