package lex

import "testing"

func TestLongestMatchWins(t *testing.T) {
	l := New()
	if err := l.Add(`if`, "IF"); err != nil {
		t.Fatal(err)
	}
	if err := l.Add(`[a-z]+`, "IDENT"); err != nil {
		t.Fatal(err)
	}
	name, length := l.Yylex("iffy")
	if name != "IDENT" || length != 4 {
		t.Fatalf("got (%q, %d), want (IDENT, 4)", name, length)
	}
}

func TestEarliestPatternWinsOnTie(t *testing.T) {
	l := New()
	if err := l.Add(`if`, "IF"); err != nil {
		t.Fatal(err)
	}
	if err := l.Add(`[a-z]+`, "IDENT"); err != nil {
		t.Fatal(err)
	}
	name, length := l.Yylex("if")
	if name != "IF" || length != 2 {
		t.Fatalf("got (%q, %d), want (IF, 2)", name, length)
	}
}

func TestNoMatchReturnsLengthNegativeOne(t *testing.T) {
	l := New()
	if err := l.Add(`[0-9]+`, "NUM"); err != nil {
		t.Fatal(err)
	}
	name, length := l.Yylex("abc")
	if length != -1 || name != NoMatch {
		t.Fatalf("got (%q, %d), want (\"\", -1)", name, length)
	}
}

func TestLoadParsesCommentsAndRules(t *testing.T) {
	l := New()
	spec := "# this is a comment\n[0-9]+\tNUM\n[a-z]+\tIDENT\n\n"
	if err := l.Load(spec); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(l.patterns) != 2 {
		t.Fatalf("got %d patterns, want 2", len(l.patterns))
	}
	name, length := l.Yylex("42abc")
	if name != "NUM" || length != 2 {
		t.Fatalf("got (%q, %d), want (NUM, 2)", name, length)
	}
}

func TestLoadMissingTabIsBadLexSpec(t *testing.T) {
	l := New()
	err := l.Load("[0-9]+ NUM\n")
	if err == nil {
		t.Fatal("expected BadLexSpec error")
	}
	lexErr, ok := err.(*Error)
	if !ok || lexErr.Kind != BadLexSpec {
		t.Fatalf("got %v, want *Error{Kind: BadLexSpec}", err)
	}
}
