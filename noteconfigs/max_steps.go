package noteconfigs

import (
	"github.com/reusee/tainote/cmds"
	"github.com/reusee/tainote/configs"
	"github.com/reusee/tainote/vars"
)

// MaxSteps caps the Starlark execution steps of one statement. Zero
// disables the cap.
type MaxSteps uint64

var maxStepsFlag = cmds.Var[int]("-max-steps")

func (Module) MaxSteps(
	loader configs.Loader,
) MaxSteps {
	steps := vars.FirstNonZero(
		*maxStepsFlag,
		configs.First[int](loader, "max_steps"),
	)
	if steps < 0 {
		steps = 0
	}
	return MaxSteps(steps)
}
