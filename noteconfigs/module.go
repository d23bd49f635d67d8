package noteconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tainote/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
