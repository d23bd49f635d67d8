package notebooks

import (
	"slices"
	"strings"

	"github.com/reusee/tainote/scripts"
)

// FilterLines returns a copy of lines where every line that cannot be
// part of a syntactically valid whole is replaced by a blank
// placeholder, keeping line numbers stable. If nothing parses, all
// lines come back blank; that is not an error.
func FilterLines(lines []string) []string {
	return removeUnparseable(lines)
}

// removeUnparseable keeps the longest parseable prefix, then recurses
// on the remainder. A line that cannot join any parseable prefix is
// blanked; lines inside a broken multi-line construct fall one by one
// until the construct is gone.
func removeUnparseable(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}
	for end := len(lines); end > 0; end-- {
		if parses(lines[:end]) {
			return append(
				slices.Clone(lines[:end]),
				removeUnparseable(lines[end:])...,
			)
		}
	}
	return append([]string{""}, removeUnparseable(lines[1:])...)
}

func parses(lines []string) bool {
	_, err := scripts.Parse("", strings.Join(lines, "\n"))
	return err == nil
}
