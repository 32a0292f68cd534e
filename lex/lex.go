// Package lex implements a table-driven longest-match, earliest-pattern
// tokenizer running one simulator per pattern in lockstep, grounded on
// the original implementation's lex_load/lex_start/lex_step (lex.c).
package lex

import (
	"strings"

	"github.com/brenns10/fsm/charutil"
	"github.com/brenns10/fsm/nfa"
	"github.com/brenns10/fsm/regex"
)

// pattern is one loaded rule: its compiled matcher and the token name
// it produces.
type pattern struct {
	nfa  *nfa.NFA
	name string
}

// Lexer holds an ordered list of patterns. Order matters: on a
// longest-match tie, the earliest-loaded pattern wins.
type Lexer struct {
	patterns []pattern
}

// New returns an empty Lexer.
func New() *Lexer {
	return &Lexer{}
}

// Add compiles regex and appends it to l's pattern table under name.
func (l *Lexer) Add(re, name string) error {
	n, err := regex.Parse(re)
	if err != nil {
		return err
	}
	l.patterns = append(l.patterns, pattern{nfa: n, name: name})
	return nil
}

// Load ingests a text description per spec.md §6.3: one rule per
// non-comment, non-blank line, "<regex>\t<token-name>"; lines starting
// with '#' are comments. It fails with BadLexSpec if a rule line lacks
// a tab, grounded on lex_load_line's SMB_INDEX_ERROR case.
func (l *Lexer) Load(spec string) error {
	for i, line := range charutil.SplitLines(spec) {
		lineNo := i + 1
		trimmed := strings.TrimRight(line, "\r")
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		tab := strings.IndexByte(trimmed, '\t')
		if tab < 0 {
			return newErr(BadLexSpec, lineNo, nil, "missing tab separator in %q", trimmed)
		}
		re, name := trimmed[:tab], trimmed[tab+1:]
		if err := l.Add(re, name); err != nil {
			return newErr(BadLexSpec, lineNo, err, "bad pattern %q: %v", re, err)
		}
	}
	return nil
}

// NoMatch is the token-name Yylex/Simulation.Result return when no
// pattern matched.
const NoMatch = ""

// Simulation is one run of the lexer over a fixed input, advancing one
// simulator per pattern in lockstep.
type Simulation struct {
	lexer *Lexer
	sims  []*nfa.Sim
	input []rune
	j     int
	lastP int
	lastN int // length of the longest match found so far, in runes
	found bool
}

// Begin starts a Simulation of l over input, per spec.md §4.9 step 1-2.
func (l *Lexer) Begin(input string) *Simulation {
	runes := []rune(input)
	sims := make([]*nfa.Sim, len(l.patterns))
	for i, p := range l.patterns {
		sims[i] = nfa.Begin(p.nfa, runes)
	}
	return &Simulation{lexer: l, sims: sims, input: runes, lastP: -1}
}

// Step advances every live pattern simulator by one input character and
// updates the longest-match arbitration, per spec.md §4.9 step 3. It
// returns false once every simulator is rejected, the input is
// exhausted, or no pattern extended the best match this round while
// already past it.
func (s *Simulation) Step() bool {
	if s.j >= len(s.input) {
		return false
	}
	s.j++
	anyLive := false
	anyAcceptingThisRound := false
	for i, sim := range s.sims {
		if sim == nil {
			continue
		}
		sim.Step()
		switch sim.State() {
		case nfa.Rejected:
			s.sims[i] = nil
		case nfa.Accepting, nfa.Accepted:
			anyLive = true
			anyAcceptingThisRound = true
			// Ties keep the earlier pattern: only take this
			// match if it strictly extends the current best,
			// matching lex_step's "sim->last_index < curr_idx"
			// guard.
			if s.j > s.lastN {
				s.lastP = i
				s.lastN = s.j
				s.found = true
			}
		case nfa.NotAccepting:
			anyLive = true
		}
	}
	if !anyAcceptingThisRound && s.j > s.lastN {
		return false
	}
	return anyLive
}

// Result returns the longest-match, earliest-pattern token found so
// far: the token name and its length in runes, or (NoMatch, -1) if no
// pattern has matched, per spec.md §4.9 step 4.
func (s *Simulation) Result() (name string, length int) {
	if !s.found {
		return NoMatch, -1
	}
	return s.lexer.patterns[s.lastP].name, s.lastN
}

// Yylex runs a full Simulation over input to completion and returns the
// longest-match, earliest-pattern token.
func (l *Lexer) Yylex(input string) (name string, length int) {
	sim := l.Begin(input)
	for sim.Step() {
	}
	return sim.Result()
}
