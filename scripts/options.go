package scripts

import "go.starlark.net/syntax"

// FileOptions enables the dialect features notebook-style top-level
// code needs: set literals, while loops, top-level control flow, and
// reassignment of globals across statements.
var FileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

func Parse(name string, source string) (*syntax.File, error) {
	return FileOptions.Parse(name, source, 0)
}
