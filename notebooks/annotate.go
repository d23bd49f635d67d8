package notebooks

import (
	"regexp"
	"strings"

	"github.com/reusee/tainote/scripts"
	"go.starlark.net/starlark"
)

// RenderedAnnotation is one pass's worth of display output for a
// marked statement. It is transient: the sink owns what happens to it.
type RenderedAnnotation struct {
	Line  int
	Text  string // multi-line only for block marks
	Style MarkStyle
}

const (
	injectPrimaryToken      = "# >>> "
	injectContinuationToken = "# ... "
)

var injectedLinePattern = regexp.MustCompile(`^\s*#\s*(>>>|\.\.\.)`)

// Annotate pairs marked statements with their outcomes. Statements
// without an outcome to show produce no annotation at all, which is
// different from an annotation of empty text.
func Annotate(stmts []Statement, outcomes []scripts.Outcome) []RenderedAnnotation {
	var anns []RenderedAnnotation
	for i, stmt := range stmts {
		if stmt.Mark == nil || i >= len(outcomes) {
			continue
		}
		text, ok := renderOutcome(outcomes[i])
		if !ok {
			continue
		}
		if stmt.Mark.Style == MarkInline {
			// inline annotations hold a single line only
			if idx := strings.IndexByte(text, '\n'); idx >= 0 {
				text = text[:idx]
			}
		}
		anns = append(anns, RenderedAnnotation{
			Line:  stmt.Mark.Line,
			Text:  text,
			Style: stmt.Mark.Style,
		})
	}
	return anns
}

func renderOutcome(outcome scripts.Outcome) (string, bool) {
	switch outcome.Kind {
	case scripts.OutcomeValue:
		return outcome.Value.String(), true
	case scripts.OutcomeError:
		return "! " + outcome.Err, true
	case scripts.OutcomeTimeout:
		return "! timeout: " + outcome.Err, true
	}
	return "", false
}

// renderInject renders an outcome for persistent injection. Multi-line
// strings inject their raw content; everything else uses the display
// form.
func renderInject(outcome scripts.Outcome) (string, bool) {
	if outcome.Kind == scripts.OutcomeValue {
		if str, ok := starlark.AsString(outcome.Value); ok && strings.Contains(str, "\n") {
			return str, true
		}
	}
	return renderOutcome(outcome)
}

// InjectLines renders display text as persistent buffer lines, one
// primary line and a distinct token for continuations.
func InjectLines(text string) []string {
	chunks := strings.Split(text, "\n")
	lines := []string{injectPrimaryToken + chunks[0]}
	for _, chunk := range chunks[1:] {
		lines = append(lines, injectContinuationToken+chunk)
	}
	return lines
}
