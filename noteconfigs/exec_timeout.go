package noteconfigs

import (
	"time"

	"github.com/reusee/tainote/cmds"
	"github.com/reusee/tainote/configs"
	"github.com/reusee/tainote/vars"
)

// ExecTimeout is the ceiling on a single statement's execution.
type ExecTimeout time.Duration

var execTimeoutFlag = cmds.Var[string]("-exec-timeout")

func (Module) ExecTimeout(
	loader configs.Loader,
) ExecTimeout {
	timeout := 5 * time.Second

	if str := vars.FirstNonZero(
		*execTimeoutFlag,
		configs.First[string](loader, "exec_timeout"),
	); str != "" {
		if d, err := time.ParseDuration(str); err == nil && d > 0 {
			timeout = d
		}
	}

	return ExecTimeout(timeout)
}
