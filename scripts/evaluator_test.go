package scripts

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestExecuteExpression(t *testing.T) {
	eval := NewEvaluator(0, 0)
	outcome, _ := eval.Execute(t.Context(), "test", "1 + 2", eval.BaseEnv())
	if outcome.Kind != OutcomeValue {
		t.Fatalf("got %v", outcome)
	}
	if outcome.Value.String() != "3" {
		t.Fatalf("got %s", outcome.Value)
	}
}

func TestExecuteAssignment(t *testing.T) {
	eval := NewEvaluator(0, 0)
	env := eval.BaseEnv()

	outcome, env := eval.Execute(t.Context(), "test", "a = 5", env)
	if outcome.Kind != OutcomeValue || outcome.Value.String() != "5" {
		t.Fatalf("got %v", outcome)
	}
	if _, ok := env["a"]; !ok {
		t.Fatal("a not bound")
	}

	outcome, env = eval.Execute(t.Context(), "test", "a, b = 1, 2", env)
	if outcome.Kind != OutcomeValue || outcome.Value.String() != "(1, 2)" {
		t.Fatalf("got %v", outcome)
	}

	outcome, _ = eval.Execute(t.Context(), "test", "a += 2", env)
	if outcome.Kind != OutcomeValue || outcome.Value.String() != "3" {
		t.Fatalf("got %v", outcome)
	}
}

func TestExecuteEnvNotMutated(t *testing.T) {
	eval := NewEvaluator(0, 0)
	env := eval.BaseEnv()
	_, next := eval.Execute(t.Context(), "test", "x = 1", env)
	if _, ok := env["x"]; ok {
		t.Fatal("input environment mutated")
	}
	if _, ok := next["x"]; !ok {
		t.Fatal("x not in result environment")
	}
}

func TestExecuteDefinition(t *testing.T) {
	eval := NewEvaluator(0, 0)
	env := eval.BaseEnv()

	outcome, env := eval.Execute(t.Context(), "test", "def double(x):\n  return x * 2", env)
	if outcome.Kind != OutcomeNone {
		t.Fatalf("got %v", outcome)
	}

	outcome, _ = eval.Execute(t.Context(), "test", "double(21)", env)
	if outcome.Kind != OutcomeValue || outcome.Value.String() != "42" {
		t.Fatalf("got %v", outcome)
	}
}

func TestExecuteLoad(t *testing.T) {
	eval := NewEvaluator(0, 0)
	env := eval.BaseEnv()

	outcome, env := eval.Execute(t.Context(), "test", `load("math", "sqrt")`, env)
	if outcome.Kind != OutcomeNone {
		t.Fatalf("got %v", outcome)
	}

	outcome, _ = eval.Execute(t.Context(), "test", "sqrt(4.0)", env)
	if outcome.Kind != OutcomeValue || outcome.Value.String() != "2.0" {
		t.Fatalf("got %v", outcome)
	}

	outcome, _ = eval.Execute(t.Context(), "test", `load("nope", "x")`, env)
	if outcome.Kind != OutcomeError {
		t.Fatalf("got %v", outcome)
	}
}

func TestExecuteException(t *testing.T) {
	eval := NewEvaluator(0, 0)
	outcome, _ := eval.Execute(t.Context(), "test", "1 / 0", eval.BaseEnv())
	if outcome.Kind != OutcomeError {
		t.Fatalf("got %v", outcome)
	}
	if !strings.Contains(outcome.Err, "zero") {
		t.Fatalf("got %q", outcome.Err)
	}
}

func TestExecuteFailedBindLeavesNameUnbound(t *testing.T) {
	eval := NewEvaluator(0, 0)
	env := eval.BaseEnv()
	outcome, env := eval.Execute(t.Context(), "test", "q = 1 / 0", env)
	if outcome.Kind != OutcomeError {
		t.Fatalf("got %v", outcome)
	}
	if v, ok := env["q"]; ok && v != nil {
		t.Fatalf("q should stay unbound, got %v", v)
	}
}

func TestExecuteTimeout(t *testing.T) {
	eval := NewEvaluator(50*time.Millisecond, 0)
	outcome, _ := eval.Execute(t.Context(), "test", "while True:\n  pass", eval.BaseEnv())
	if outcome.Kind != OutcomeTimeout {
		t.Fatalf("got %v", outcome)
	}
}

func TestExecuteSuperseded(t *testing.T) {
	eval := NewEvaluator(0, 0)
	ctx, cancel := context.WithCancel(t.Context())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	outcome, _ := eval.Execute(ctx, "test", "while True:\n  pass", eval.BaseEnv())
	if outcome.Kind != OutcomeError {
		t.Fatalf("got %v", outcome)
	}
}

func TestRandomModule(t *testing.T) {
	eval := NewEvaluator(0, 0)
	env := eval.BaseEnv()

	outcome, env := eval.Execute(t.Context(), "test", "r = random.random()", env)
	if outcome.Kind != OutcomeValue {
		t.Fatalf("got %v", outcome)
	}

	outcome, _ = eval.Execute(t.Context(), "test", "random.randint(3, 3)", env)
	if outcome.Kind != OutcomeValue || outcome.Value.String() != "3" {
		t.Fatalf("got %v", outcome)
	}
}
