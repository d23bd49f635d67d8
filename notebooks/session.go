package notebooks

import (
	"context"
	"errors"
	"maps"
	"sync"
	"time"

	"github.com/reusee/tainote/logs"
	"github.com/reusee/tainote/noteconfigs"
	"github.com/reusee/tainote/schedulers"
	"github.com/reusee/tainote/scripts"
	"go.starlark.net/starlark"
)

// Buffer is the host-owned text a notebook reads from. The notebook
// never stores raw buffer content itself.
type Buffer interface {
	Lines() ([]string, error)
}

// Sink receives rendered output. Overlay output is transient and fully
// replaced every pass; Replace is a persistent text edit used by
// inject mode, replacing the 0-based line range [start, end).
type Sink interface {
	Overlay(annotations []RenderedAnnotation) error
	Replace(start, end int, lines []string) error
}

var ErrNoStatement = errors.New("no statement under line")

// Session is the per-document notebook: one environment, one cache,
// one scheduler, created on enable and torn down on disable. The
// environment and cache are only ever touched from inside a pass.
type Session struct {
	name     string
	buffer   Buffer
	sink     Sink
	logger   logs.Logger
	newSpan  logs.NewSpan
	eval     *scripts.Evaluator
	interval time.Duration

	mu       sync.Mutex
	enabled  bool
	cache    []CacheEntry
	debounce *schedulers.Debounce
}

type NewSession func(name string, buffer Buffer, sink Sink) *Session

func (Module) NewSession(
	logger logs.Logger,
	newSpan logs.NewSpan,
	interval noteconfigs.DebounceInterval,
	timeout noteconfigs.ExecTimeout,
	maxSteps noteconfigs.MaxSteps,
) NewSession {
	return func(name string, buffer Buffer, sink Sink) *Session {
		return &Session{
			name:     name,
			buffer:   buffer,
			sink:     sink,
			logger:   logger,
			newSpan:  newSpan,
			eval:     scripts.NewEvaluator(time.Duration(timeout), uint64(maxSteps)),
			interval: time.Duration(interval),
		}
	}
}

func (s *Session) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

func (s *Session) Enable() {
	s.mu.Lock()
	if s.enabled {
		s.mu.Unlock()
		return
	}
	s.enabled = true
	s.debounce = schedulers.NewDebounce(s.interval, s.pass)
	debounce := s.debounce
	s.mu.Unlock()

	s.logger.Info("notebook enabled", "name", s.name)
	debounce.Event()
}

func (s *Session) Disable() {
	s.mu.Lock()
	if !s.enabled {
		s.mu.Unlock()
		return
	}
	s.enabled = false
	debounce := s.debounce
	s.debounce = nil
	s.cache = nil
	s.mu.Unlock()

	if debounce != nil {
		debounce.Close()
	}
	if err := s.sink.Overlay(nil); err != nil {
		s.logger.Error("clear overlay", "error", err)
	}
	s.logger.Info("notebook disabled", "name", s.name)
}

func (s *Session) Toggle() {
	if s.Enabled() {
		s.Disable()
	} else {
		s.Enable()
	}
}

// Reset drops the cache so the next pass replays everything from a
// fresh environment.
func (s *Session) Reset() {
	s.mu.Lock()
	s.cache = nil
	debounce := s.debounce
	s.mu.Unlock()
	if debounce != nil {
		debounce.Event()
	}
}

// OnChange reports a buffer change event; passes are debounced.
func (s *Session) OnChange() {
	s.mu.Lock()
	debounce := s.debounce
	s.mu.Unlock()
	if debounce != nil {
		debounce.Event()
	}
}

func (s *Session) pass(ctx context.Context) {
	if _, _, err := s.RunPass(ctx); err != nil && ctx.Err() == nil {
		s.logger.Error("pass failed", "name", s.name, "error", err)
	}
}

// RunPass runs one full evaluation pass: filter, segment, evaluate,
// annotate, emit. A pass superseded mid-flight leaves the cache
// exactly as it was.
func (s *Session) RunPass(ctx context.Context) ([]RenderedAnnotation, int, error) {
	ctx, _ = s.newSpan(ctx, "")

	stmts, outcomes, executed, err := s.evaluateBuffer(ctx)
	if err != nil {
		return nil, 0, logs.WrapSpan(ctx, err)
	}

	anns := Annotate(stmts, outcomes)
	if err := s.sink.Overlay(anns); err != nil {
		return anns, executed, logs.WrapSpan(ctx, err)
	}

	s.logger.InfoContext(ctx, "pass complete",
		"name", s.name,
		"statements", len(stmts),
		"executed", executed,
		"annotations", len(anns),
	)
	return anns, executed, nil
}

// evaluateBuffer reads the buffer, evaluates it against the cache, and
// commits the updated cache unless the pass was superseded.
func (s *Session) evaluateBuffer(ctx context.Context) ([]Statement, []scripts.Outcome, int, error) {
	lines, err := s.buffer.Lines()
	if err != nil {
		return nil, nil, 0, err
	}

	filtered := FilterLines(lines)
	stmts, err := Segment(lines, filtered)
	if err != nil {
		// the filtered source always parses; treat anything else as
		// an empty notebook
		stmts = nil
	}

	s.mu.Lock()
	cache := s.cache
	s.mu.Unlock()

	outcomes, next, executed := evaluate(ctx, s.eval, stmts, cache)

	if err := ctx.Err(); err != nil {
		return nil, nil, executed, err
	}

	s.mu.Lock()
	s.cache = next
	s.mu.Unlock()

	return stmts, outcomes, executed, nil
}

// Inject writes the rendered outcome of the statement under
// cursorLine into the buffer as literal text, replacing any block it
// injected there before. One-shot: edits do not re-trigger it.
func (s *Session) Inject(ctx context.Context, cursorLine int) error {
	stmt, outcome, err := s.statementAt(ctx, cursorLine)
	if err != nil {
		return err
	}

	text, ok := renderInject(outcome)
	if !ok {
		return nil
	}

	lines, err := s.buffer.Lines()
	if err != nil {
		return err
	}

	// replace the previously injected run right after the statement
	start := stmt.EndLine
	end := start
	for end < len(lines) && injectedLinePattern.MatchString(lines[end]) {
		end++
	}

	return s.sink.Replace(start, end, InjectLines(text))
}

// Copy returns the clipboard form of the outcome of the statement
// under cursorLine: raw content for strings, display form otherwise.
func (s *Session) Copy(ctx context.Context, cursorLine int) (string, bool, error) {
	_, outcome, err := s.statementAt(ctx, cursorLine)
	if err != nil {
		return "", false, err
	}
	if outcome.Kind == scripts.OutcomeValue {
		if str, ok := starlark.AsString(outcome.Value); ok {
			return str, true, nil
		}
	}
	text, ok := renderOutcome(outcome)
	return text, ok, nil
}

func (s *Session) statementAt(ctx context.Context, cursorLine int) (Statement, scripts.Outcome, error) {
	stmts, outcomes, _, err := s.evaluateBuffer(ctx)
	if err != nil {
		return Statement{}, scripts.Outcome{}, err
	}
	for i, stmt := range stmts {
		if cursorLine >= stmt.StartLine && cursorLine <= stmt.EndLine {
			return stmt, outcomes[i], nil
		}
		if stmt.Mark != nil && stmt.Mark.Line == cursorLine {
			return stmt, outcomes[i], nil
		}
	}
	return Statement{}, scripts.Outcome{}, ErrNoStatement
}

// Env returns a snapshot of the current notebook environment.
func (s *Session) Env() starlark.StringDict {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.cache) > 0 {
		return maps.Clone(s.cache[len(s.cache)-1].Env)
	}
	return s.eval.BaseEnv()
}
