package scripts

import (
	"testing"
)

func keyOf(t *testing.T, source string) Key {
	t.Helper()
	file, err := Parse("test", source)
	if err != nil {
		t.Fatal(err)
	}
	if len(file.Stmts) != 1 {
		t.Fatalf("got %d statements", len(file.Stmts))
	}
	return NormalizeStmt(file.Stmts[0])
}

func TestKeyIgnoresFormatting(t *testing.T) {
	if keyOf(t, "a = 1000") != keyOf(t, "a =  1_000") {
		t.Fatal("keys should match")
	}
	if keyOf(t, "a = 1000") == keyOf(t, "a = 1001") {
		t.Fatal("keys should differ")
	}
	if keyOf(t, "a = 1  # comment") != keyOf(t, "a = 1") {
		t.Fatal("comments should not affect the key")
	}
	if keyOf(t, "b = (1 + 2)") != keyOf(t, "b = 1 + 2") {
		t.Fatal("parentheses should not affect the key")
	}
}

func TestKeyDistinguishesValueKinds(t *testing.T) {
	if keyOf(t, "a = 1") == keyOf(t, `a = "1"`) {
		t.Fatal("int and string literals should differ")
	}
	if keyOf(t, "a = 1") == keyOf(t, "a = 1.0") {
		t.Fatal("int and float literals should differ")
	}
	if keyOf(t, "a = 1") == keyOf(t, "b = 1") {
		t.Fatal("target names should differ")
	}
}

func TestKeyCoversCompoundStatements(t *testing.T) {
	def1 := keyOf(t, "def f(x, y=2):\n  return x + y")
	def2 := keyOf(t, "def f(x, y = 2):\n  return (x + y)")
	if def1 != def2 {
		t.Fatal("reformatted def should match")
	}
	def3 := keyOf(t, "def f(x, y=3):\n  return x + y")
	if def1 == def3 {
		t.Fatal("different default should differ")
	}

	if keyOf(t, "for x in [1, 2]:\n  x") != keyOf(t, "for x in [1,2]:\n  x") {
		t.Fatal("list spacing should not affect the key")
	}
	if keyOf(t, `load("math", "sqrt")`) == keyOf(t, `load("time", "now")`) {
		t.Fatal("load targets should differ")
	}
}
