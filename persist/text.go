// Package persist implements the line-oriented NFA persistence format
// (spec.md §6.1) and its Graphviz DOT export variant (§6.2), grounded on
// the original implementation's fsm_read/fsm_print/fsm_dot in
// fsm/io.c, plus a zstd-compressed variant of the text format for large
// generated automata.
package persist

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/brenns10/fsm/charutil"
	"github.com/brenns10/fsm/nfa"
)

// ensureState pads n.States (creating non-accepting, edgeless states) so
// that idx is a valid index, matching fsm_read's lazy state extension.
func ensureState(n *nfa.NFA, idx int) {
	for len(n.States) <= idx {
		n.AddState(false)
	}
}

func ensureAccepting(n *nfa.NFA, idx int) {
	ensureState(n, idx)
	if !n.AcceptsAtIndex(idx) {
		n.Accepting = append(n.Accepting, idx)
	}
}

// Read parses the line-oriented format of spec.md §6.1 into an NFA. The
// start state defaults to 0 if no start-line is present.
func Read(text string) (*nfa.NFA, error) {
	n := nfa.New()
	ensureState(n, 0)

	for i, line := range charutil.SplitLines(text) {
		lineNo := i + 1
		trimmed := strings.TrimRight(line, "\r")
		if trimmed == "" {
			continue
		}
		switch {
		case strings.HasPrefix(trimmed, "start:"):
			nat, err := parseNat(strings.TrimSpace(trimmed[len("start:"):]))
			if err != nil {
				return nil, newErr(BadFormat, lineNo, err, "bad start-line: %v", err)
			}
			ensureState(n, nat)
			n.Start = nat
		case strings.HasPrefix(trimmed, "accept:"):
			nat, err := parseNat(strings.TrimSpace(trimmed[len("accept:"):]))
			if err != nil {
				return nil, newErr(BadFormat, lineNo, err, "bad accept-line: %v", err)
			}
			ensureAccepting(n, nat)
		default:
			if err := readTransitionLine(n, trimmed); err != nil {
				kind := BadFormat
				var escErr *charutil.ErrBadEscape
				if errors.As(err, &escErr) {
					kind = BadEscape
				}
				return nil, newErr(kind, lineNo, err, "bad transition line %q: %v", trimmed, err)
			}
		}
	}
	return n, nil
}

func parseNat(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("expected a non-negative integer, got %q", s)
	}
	return v, nil
}

// readTransitionLine parses "nat-nat:polarity range( range)*" per
// spec.md §6.1's transition-line grammar, matching the character-class
// state machine of fsm_read_trans.
func readTransitionLine(n *nfa.NFA, line string) error {
	r := []rune(line)
	pos := 0

	from, pos, err := scanNat(r, pos)
	if err != nil {
		return err
	}
	if pos >= len(r) || r[pos] != '-' {
		return fmt.Errorf("expected '-' after source state")
	}
	pos++

	to, pos, err := scanNat(r, pos)
	if err != nil {
		return err
	}
	if pos >= len(r) || r[pos] != ':' {
		return fmt.Errorf("expected ':' after destination state")
	}
	pos++

	if pos >= len(r) {
		return fmt.Errorf("missing polarity")
	}
	var polarity nfa.Polarity
	switch r[pos] {
	case '+':
		polarity = nfa.Positive
	case '-':
		polarity = nfa.Negative
	default:
		return fmt.Errorf("expected '+' or '-' polarity, got %q", r[pos])
	}
	pos++

	var ranges []nfa.Range
	for {
		lo, next, err := readTransChar(r, pos)
		if err != nil {
			return err
		}
		pos = next
		if pos >= len(r) || r[pos] != '-' {
			return fmt.Errorf("expected '-' inside range")
		}
		pos++
		hi, next, err := readTransChar(r, pos)
		if err != nil {
			return err
		}
		pos = next
		ranges = append(ranges, nfa.Range{Lo: lo, Hi: hi})

		if pos < len(r) && r[pos] == ' ' {
			pos++
			if pos >= len(r) {
				break
			}
			continue
		}
		break
	}

	ensureState(n, from)
	ensureState(n, to)
	e := nfa.NewEdge(len(ranges), polarity, to)
	copy(e.Ranges, ranges)
	n.AddEdge(from, e)
	return nil
}

func scanNat(r []rune, pos int) (int, int, error) {
	start := pos
	for pos < len(r) && r[pos] >= '0' && r[pos] <= '9' {
		pos++
	}
	if pos == start {
		return 0, pos, fmt.Errorf("expected a state index")
	}
	v, err := strconv.Atoi(string(r[start:pos]))
	return v, pos, err
}

func readTransChar(r []rune, pos int) (rune, int, error) {
	if pos >= len(r) {
		return 0, pos, fmt.Errorf("unexpected end of line")
	}
	if r[pos] == '\\' {
		pos++
		c, err := charutil.DecodeEscape(r, &pos, nfa.Epsilon)
		if err != nil {
			return 0, pos, err
		}
		return c, pos, nil
	}
	c := r[pos]
	if c == ' ' || c == '-' {
		return 0, pos, fmt.Errorf("unescaped %q in char position", c)
	}
	return c, pos + 1, nil
}

// Write serializes n in the format Read parses: a start line, one
// accept line per accepting state, then each state's edges in
// state-index order, per spec.md §4.6.
func Write(n *nfa.NFA) string {
	var b strings.Builder
	fmt.Fprintf(&b, "start:%d\n", n.Start)
	for _, a := range n.Accepting {
		fmt.Fprintf(&b, "accept:%d\n", a)
	}
	for i, st := range n.States {
		for _, e := range st.Edges {
			pol := '+'
			if e.Polarity == nfa.Negative {
				pol = '-'
			}
			ranges := make([]string, len(e.Ranges))
			for j, rg := range e.Ranges {
				ranges[j] = fmt.Sprintf("%s-%s", encodeChar(rg.Lo), encodeChar(rg.Hi))
			}
			fmt.Fprintf(&b, "%d-%d:%c%s\n", i, e.Dest, pol, strings.Join(ranges, " "))
		}
	}
	return b.String()
}

// encodeChar renders a single range endpoint per the escape table of
// spec.md §6.1, matching fsm_print_char.
func encodeChar(c rune) string {
	switch c {
	case nfa.Epsilon:
		return `\e`
	case '\\':
		return `\\`
	case ' ':
		return `\ `
	case '-':
		return `\-`
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	case '\v':
		return `\v`
	case '\f':
		return `\f`
	case '\a':
		return `\a`
	case '\b':
		return `\b`
	}
	if c < 0x20 || c == 0x7f {
		if c <= 0xff {
			return fmt.Sprintf(`\x%02x`, c)
		}
		return fmt.Sprintf(`\u%04x`, c)
	}
	return string(c)
}
