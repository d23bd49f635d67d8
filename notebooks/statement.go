package notebooks

import "github.com/reusee/tainote/scripts"

type MarkStyle int

const (
	// MarkInline: the sigil trails the statement's last line.
	MarkInline MarkStyle = iota
	// MarkBlock: a dedicated marker line follows the statement.
	MarkBlock
)

// Mark is an output request attached to exactly one statement.
type Mark struct {
	Style MarkStyle
	// Line is the original line number of the marker itself, 1-based.
	Line int
}

// Statement is one top-level construct of the filtered source.
type Statement struct {
	Index     int
	StartLine int // 1-based, inclusive
	EndLine   int // 1-based, inclusive
	Source    string
	Key       scripts.Key
	Mark      *Mark
}
