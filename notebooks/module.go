package notebooks

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tainote/logs"
	"github.com/reusee/tainote/noteconfigs"
)

type Module struct {
	dscope.Module
	Configs noteconfigs.Module
	Logs    logs.Module
}
