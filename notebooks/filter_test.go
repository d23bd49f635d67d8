package notebooks

import (
	"slices"
	"testing"
)

func TestFilterLinesValid(t *testing.T) {
	lines := []string{
		"a = 1",
		"b = a + 1",
		"",
		"c = b * 2",
	}
	filtered := FilterLines(lines)
	if !slices.Equal(filtered, lines) {
		t.Fatalf("got %v", filtered)
	}
}

func TestFilterLinesBadMiddle(t *testing.T) {
	filtered := FilterLines([]string{
		"a = 1",
		"b = = 2",
		"c = 3",
	})
	expected := []string{
		"a = 1",
		"",
		"c = 3",
	}
	if !slices.Equal(filtered, expected) {
		t.Fatalf("got %v", filtered)
	}
}

func TestFilterLinesBrokenConstruct(t *testing.T) {
	filtered := FilterLines([]string{
		"a = 1",
		"x = [",
		"),",
		"]",
		"b = 2",
	})
	expected := []string{
		"a = 1",
		"",
		"",
		"",
		"b = 2",
	}
	if !slices.Equal(filtered, expected) {
		t.Fatalf("got %v", filtered)
	}
}

func TestFilterLinesValidConstruct(t *testing.T) {
	lines := []string{
		"x = [",
		"  1,",
		"  2,",
		"]",
	}
	filtered := FilterLines(lines)
	if !slices.Equal(filtered, lines) {
		t.Fatalf("got %v", filtered)
	}
}

func TestFilterLinesNothingParses(t *testing.T) {
	filtered := FilterLines([]string{
		"= =",
		") (",
	})
	expected := []string{"", ""}
	if !slices.Equal(filtered, expected) {
		t.Fatalf("got %v", filtered)
	}
}

func TestFilterLinesEmpty(t *testing.T) {
	if filtered := FilterLines(nil); len(filtered) != 0 {
		t.Fatalf("got %v", filtered)
	}
}
