package notebooks

import (
	"regexp"
	"strings"

	"github.com/reusee/tainote/scripts"
)

var (
	// sigil, optionally followed by an annotation to be overwritten
	inlineMarkPattern = regexp.MustCompile(`#\s*=(\s.*)?$`)
	blockMarkPattern  = regexp.MustCompile(`^\s*#\s*<<<\s*$`)
)

// Segment parses the filtered source into the ordered statement
// sequence, attaching marks and normalized keys. Mark scanning runs
// against the original lines so blanked placeholders cannot hide a
// marker.
func Segment(original []string, filtered []string) ([]Statement, error) {
	file, err := scripts.Parse("", strings.Join(filtered, "\n"))
	if err != nil {
		return nil, err
	}

	stmts := make([]Statement, 0, len(file.Stmts))
	for i, stmt := range file.Stmts {
		start, end := stmt.Span()
		statement := Statement{
			Index:     i,
			StartLine: int(start.Line),
			EndLine:   int(end.Line),
			Source:    strings.Join(filtered[start.Line-1:end.Line], "\n"),
			Key:       scripts.NormalizeStmt(stmt),
		}

		nextStart := len(original) + 1
		if i+1 < len(file.Stmts) {
			next, _ := file.Stmts[i+1].Span()
			nextStart = int(next.Line)
		}
		statement.Mark = findMark(original, statement.EndLine, nextStart)

		stmts = append(stmts, statement)
	}
	return stmts, nil
}

// findMark locates at most one mark for a statement ending at endLine.
// An inline sigil on the last line wins over a block marker; only the
// first non-blank line of the gap before the next statement can be a
// block marker.
func findMark(lines []string, endLine int, nextStart int) *Mark {
	if endLine-1 < len(lines) && inlineMarkPattern.MatchString(lines[endLine-1]) {
		return &Mark{Style: MarkInline, Line: endLine}
	}
	for line := endLine + 1; line < nextStart && line-1 < len(lines); line++ {
		text := lines[line-1]
		if strings.TrimSpace(text) == "" {
			continue
		}
		if blockMarkPattern.MatchString(text) {
			return &Mark{Style: MarkBlock, Line: line}
		}
		break
	}
	return nil
}
