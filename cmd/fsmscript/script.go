// Package main implements fsmscript, a batch driver over the
// regex/nfa/persist/search surface (spec.md §6.4) driven by a small
// struct-tag grammar, grounded on internal/interpreter/parser.go's use
// of participle/v2.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"

	"github.com/brenns10/fsm/nfa"
	"github.com/brenns10/fsm/persist"
	"github.com/brenns10/fsm/regex"
	"github.com/brenns10/fsm/search"
)

// Script is a sequence of statements executed in order against a shared
// environment of named, compiled NFAs.
type Script struct {
	Statements []*Statement `parser:"@@*"`
}

// Statement is exactly one of the batch commands.
type Statement struct {
	Compile *CompileStmt `parser:"@@ ';'"`
	Load    *LoadStmt    `parser:"| @@ ';'"`
	Match   *MatchStmt   `parser:"| @@ ';'"`
	Search  *SearchStmt  `parser:"| @@ ';'"`
	Dot     *DotStmt     `parser:"| @@ ';'"`
	Save    *SaveStmt    `parser:"| @@ ';'"`
}

// CompileStmt binds name to the NFA compiled from a regex pattern:
// `compile name = "pattern";`
type CompileStmt struct {
	Name    string `parser:"'compile' @Ident"`
	Pattern string `parser:"'=' @String"`
}

// LoadStmt binds name to an NFA read from a persisted text file:
// `load name from "path";`
type LoadStmt struct {
	Name string `parser:"'load' @Ident"`
	Path string `parser:"'from' @String"`
}

// MatchStmt reports whether name's NFA accepts a whole string:
// `match name "input";`
type MatchStmt struct {
	Name  string `parser:"'match' @Ident"`
	Input string `parser:"@String"`
}

// SearchStmt finds matches of name's NFA in text:
// `search name "text" [greedy] [overlap];`
type SearchStmt struct {
	Name    string `parser:"'search' @Ident"`
	Text    string `parser:"@String"`
	Greedy  bool   `parser:"@'greedy'?"`
	Overlap bool   `parser:"@'overlap'?"`
}

// DotStmt writes name's NFA as Graphviz DOT to a file:
// `dot name to "path";`
type DotStmt struct {
	Name string `parser:"'dot' @Ident"`
	Path string `parser:"'to' @String"`
}

// SaveStmt writes name's NFA in the persisted text format to a file:
// `save name to "path";`
type SaveStmt struct {
	Name string `parser:"'save' @Ident"`
	Path string `parser:"'to' @String"`
}

var scriptParser = participle.MustBuild[Script](participle.Unquote("String"))

// Parse parses the contents of a fsmscript batch file.
func Parse(src string) (*Script, error) {
	return scriptParser.ParseString("", src)
}

// Env holds the named NFAs produced by compile/load statements.
type Env struct {
	nfas map[string]*nfa.NFA
	out  func(format string, args ...interface{})
}

// NewEnv returns an empty execution environment that writes results via
// out (typically fmt.Printf).
func NewEnv(out func(string, ...interface{})) *Env {
	return &Env{nfas: make(map[string]*nfa.NFA), out: out}
}

func (e *Env) lookup(name string) (*nfa.NFA, error) {
	n, ok := e.nfas[name]
	if !ok {
		return nil, fmt.Errorf("undefined name %q", name)
	}
	return n, nil
}

// Run executes every statement in s against e in order.
func (e *Env) Run(s *Script) error {
	for _, stmt := range s.Statements {
		if err := e.exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (e *Env) exec(s *Statement) error {
	switch {
	case s.Compile != nil:
		n, err := regex.Parse(s.Compile.Pattern)
		if err != nil {
			return fmt.Errorf("compile %s: %w", s.Compile.Name, err)
		}
		e.nfas[s.Compile.Name] = n
	case s.Load != nil:
		data, err := os.ReadFile(s.Load.Path)
		if err != nil {
			return fmt.Errorf("load %s: %w", s.Load.Name, err)
		}
		n, err := persist.Read(string(data))
		if err != nil {
			return fmt.Errorf("load %s: %w", s.Load.Name, err)
		}
		e.nfas[s.Load.Name] = n
	case s.Match != nil:
		n, err := e.lookup(s.Match.Name)
		if err != nil {
			return err
		}
		e.out("match %s %q -> %v\n", s.Match.Name, s.Match.Input, nfa.AcceptsString(n, s.Match.Input))
	case s.Search != nil:
		n, err := e.lookup(s.Search.Name)
		if err != nil {
			return err
		}
		hits := search.Find(n, s.Search.Text, s.Search.Greedy, s.Search.Overlap)
		e.out("search %s %q -> %d hit(s)\n", s.Search.Name, s.Search.Text, len(hits))
		for _, h := range hits {
			e.out("  start=%d length=%d\n", h.Start, h.Length)
		}
	case s.Dot != nil:
		n, err := e.lookup(s.Dot.Name)
		if err != nil {
			return err
		}
		if err := os.WriteFile(s.Dot.Path, []byte(persist.ExportDOT(n)), 0o644); err != nil {
			return fmt.Errorf("dot %s: %w", s.Dot.Name, err)
		}
	case s.Save != nil:
		n, err := e.lookup(s.Save.Name)
		if err != nil {
			return err
		}
		if err := os.WriteFile(s.Save.Path, []byte(persist.Write(n)), 0o644); err != nil {
			return fmt.Errorf("save %s: %w", s.Save.Name, err)
		}
	}
	return nil
}
