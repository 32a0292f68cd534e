package regex

import (
	"testing"

	"github.com/brenns10/fsm/nfa"
)

func acc(t *testing.T, pattern, in string, want bool) {
	t.Helper()
	n, err := Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", pattern, err)
	}
	if got := nfa.AcceptsString(n, in); got != want {
		t.Errorf("Parse(%q).Accepts(%q) = %v, want %v", pattern, in, got, want)
	}
}

func TestLiteralConcat(t *testing.T) {
	acc(t, "abc", "abc", true)
	acc(t, "abc", "ab", false)
	acc(t, "abc", "abcd", false)
}

func TestAlternation(t *testing.T) {
	acc(t, "cat|dog", "cat", true)
	acc(t, "cat|dog", "dog", true)
	acc(t, "cat|dog", "cow", false)
}

func TestStarPlusOptional(t *testing.T) {
	acc(t, "a*", "", true)
	acc(t, "a*", "aaaa", true)
	acc(t, "a+", "", false)
	acc(t, "a+", "a", true)
	acc(t, "colou?r", "color", true)
	acc(t, "colou?r", "colour", true)
	acc(t, "colou?r", "colouur", false)
}

func TestGrouping(t *testing.T) {
	acc(t, "(ab)+", "ababab", true)
	acc(t, "(ab)+", "aba", false)
	acc(t, "(ab|cd)*", "abcdab", true)
}

func TestCharClass(t *testing.T) {
	acc(t, "[a-z]+", "hello", true)
	acc(t, "[a-z]+", "Hello", false)
	acc(t, "[^0-9]+", "abc", true)
	acc(t, "[^0-9]+", "a1c", false)
	acc(t, "[\\]a]", "]", true)
	acc(t, "[\\]a]", "a", true)
}

func TestDotAndPredefinedClasses(t *testing.T) {
	acc(t, "a.c", "abc", true)
	acc(t, "\\d+", "1234", true)
	acc(t, "\\d+", "12a4", false)
	acc(t, "\\w+", "word_1", true)
	acc(t, "\\s+", " \t\n", true)
}

func TestEscapeInPattern(t *testing.T) {
	acc(t, "a\\.b", "a.b", true)
	acc(t, "a\\.b", "axb", false)
}

func TestUnbalancedParenIsBadRegex(t *testing.T) {
	if _, err := Parse("(ab"); err == nil {
		t.Fatal("expected error for unbalanced '('")
	}
	if _, err := Parse("ab)"); err == nil {
		t.Fatal("expected error for unbalanced ')'")
	}
}

func TestUnterminatedCharClass(t *testing.T) {
	if _, err := Parse("[abc"); err == nil {
		t.Fatal("expected error for unterminated character class")
	}
}

func TestWordSearchPattern(t *testing.T) {
	acc(t, "\\w+", "hello", true)
	acc(t, "\\w+", "", false)
}
