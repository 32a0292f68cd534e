package main

import (
	"fmt"
	"strings"
	"testing"
)

func TestParseAndRunCompileMatch(t *testing.T) {
	src := `
compile greeting = "hi|hey";
match greeting "hi";
match greeting "bye";
`
	script, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var out strings.Builder
	env := NewEnv(func(format string, args ...interface{}) {
		out.WriteString(fmt.Sprintf(format, args...))
	})
	if err := env.Run(script); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "\"hi\" -> true") {
		t.Fatalf("expected a true match for hi, got:\n%s", got)
	}
	if !strings.Contains(got, "\"bye\" -> false") {
		t.Fatalf("expected a false match for bye, got:\n%s", got)
	}
}

func TestRunSearchStatement(t *testing.T) {
	src := `
compile word = "[a-z]+";
search word "foo bar" overlap;
`
	script, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var out strings.Builder
	env := NewEnv(func(format string, args ...interface{}) {
		out.WriteString(fmt.Sprintf(format, args...))
	})
	if err := env.Run(script); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "hit(s)") {
		t.Fatalf("expected hit count in output, got:\n%s", out.String())
	}
}

func TestMatchUndefinedNameErrors(t *testing.T) {
	script, err := Parse(`match nope "x";`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	env := NewEnv(func(string, ...interface{}) {})
	if err := env.Run(script); err == nil {
		t.Fatal("expected an error for an undefined name")
	}
}
