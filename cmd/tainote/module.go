package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tainote/debugs"
	"github.com/reusee/tainote/notebooks"
)

type Module struct {
	dscope.Module
	Notebooks notebooks.Module
	Debugs    debugs.Module
}
