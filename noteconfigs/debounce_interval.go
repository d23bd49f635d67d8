package noteconfigs

import (
	"time"

	"github.com/reusee/tainote/cmds"
	"github.com/reusee/tainote/configs"
	"github.com/reusee/tainote/vars"
)

// DebounceInterval is the quiet period between the last buffer change
// and the evaluation pass it triggers.
type DebounceInterval time.Duration

var debounceFlag = cmds.Var[string]("-debounce")

func (Module) DebounceInterval(
	loader configs.Loader,
) DebounceInterval {
	interval := 300 * time.Millisecond

	if str := vars.FirstNonZero(
		*debounceFlag,
		configs.First[string](loader, "debounce_interval"),
	); str != "" {
		if d, err := time.ParseDuration(str); err == nil && d > 0 {
			interval = d
		}
	}

	return DebounceInterval(interval)
}
