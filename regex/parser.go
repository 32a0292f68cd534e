// Package regex compiles a regular expression pattern directly into an
// *nfa.NFA via Thompson's construction, following the recursive-descent
// algorithm of spec.md §4.5: there is no separate AST stage — each atom
// is compiled to its own sub-NFA and immediately concatenated into the
// "current" NFA for its enclosing scope, exactly as the original
// create_regex_fsm_recursive crawls the pattern once, and as the
// teacher's regexlib parser resolves postfix/infix precedence for each
// atom before folding it in.
package regex

import (
	"github.com/brenns10/fsm/charutil"
	"github.com/brenns10/fsm/nfa"
)

type parser struct {
	src []rune
}

// Parse compiles pattern into an NFA. It fails with BadRegex on
// unbalanced parentheses (spec.md §9 resolves this open question in
// favor of failing rather than guessing), with BadEscape on an
// ill-formed \x/\u escape, and with BadCharClass on a malformed [...].
func Parse(pattern string) (*nfa.NFA, error) {
	p := &parser{src: []rune(pattern)}
	result, pos, err := p.parseAlt(0)
	if err != nil {
		return nil, err
	}
	if pos != len(p.src) {
		return nil, newErr(BadRegex, pos, nil, "unexpected %q (unbalanced parenthesis?)", p.src[pos])
	}
	return result, nil
}

// MustParse is like Parse but panics on error, for tests and
// call sites that compile a known-good literal pattern.
func MustParse(pattern string) *nfa.NFA {
	n, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return n
}

func isAtomStart(r rune) bool {
	return r != '|' && r != ')'
}

// parseAlt parses a sequence of concatenations separated by '|',
// right-associatively: on seeing '|', spec.md §4.5 says to recursively
// parse the remainder and union it in, then return to the caller.
func (p *parser) parseAlt(pos int) (*nfa.NFA, int, error) {
	left, pos, err := p.parseConcat(pos)
	if err != nil {
		return nil, pos, err
	}
	if pos < len(p.src) && p.src[pos] == '|' {
		right, pos2, err := p.parseAlt(pos + 1)
		if err != nil {
			return nil, pos2, err
		}
		nfa.Union(left, right)
		return left, pos2, nil
	}
	return left, pos, nil
}

// parseConcat maintains a "current" NFA that initially accepts only the
// empty string, concatenating each successive atom into it, per
// spec.md §4.5.
func (p *parser) parseConcat(pos int) (*nfa.NFA, int, error) {
	current := nfa.EmptyStringNFA()
	for pos < len(p.src) && isAtomStart(p.src[pos]) {
		atom, next, err := p.parseAtom(pos)
		if err != nil {
			return nil, next, err
		}
		pos = next
		atom, pos, err = p.applyPostfix(atom, pos)
		if err != nil {
			return nil, pos, err
		}
		nfa.Concat(current, atom)
	}
	return current, pos, nil
}

// applyPostfix wraps atom in star/plus/optional for each of *, +, ? that
// follows it.
func (p *parser) applyPostfix(atom *nfa.NFA, pos int) (*nfa.NFA, int, error) {
	for pos < len(p.src) {
		switch p.src[pos] {
		case '*':
			nfa.Star(atom)
			pos++
		case '+':
			nfa.Plus(atom)
			pos++
		case '?':
			nfa.Optional(atom)
			pos++
		default:
			return atom, pos, nil
		}
	}
	return atom, pos, nil
}

func (p *parser) parseAtom(pos int) (*nfa.NFA, int, error) {
	switch p.src[pos] {
	case '(':
		inner, next, err := p.parseAlt(pos + 1)
		if err != nil {
			return nil, next, err
		}
		if next >= len(p.src) || p.src[next] != ')' {
			return nil, next, newErr(BadRegex, pos, nil, "unbalanced '(': missing matching ')'")
		}
		return inner, next + 1, nil
	case '[':
		return p.parseClass(pos + 1)
	case '.':
		return anyCharNFA(), pos + 1, nil
	case '\\':
		return p.parseEscapeAtom(pos + 1)
	default:
		return singleCharNFA(p.src[pos]), pos + 1, nil
	}
}

func (p *parser) parseEscapeAtom(pos int) (*nfa.NFA, int, error) {
	if pos >= len(p.src) {
		return nil, pos, newErr(BadEscape, pos, nil, "trailing backslash")
	}
	switch p.src[pos] {
	case 's':
		return rangesNFA(whitespaceRanges, nfa.Positive), pos + 1, nil
	case 'S':
		return rangesNFA(whitespaceRanges, nfa.Negative), pos + 1, nil
	case 'w':
		return rangesNFA(wordRanges, nfa.Positive), pos + 1, nil
	case 'W':
		return rangesNFA(wordRanges, nfa.Negative), pos + 1, nil
	case 'd':
		return rangesNFA(digitRanges, nfa.Positive), pos + 1, nil
	case 'D':
		return rangesNFA(digitRanges, nfa.Negative), pos + 1, nil
	default:
		c, err := charutil.DecodeEscape(p.src, &pos, nfa.Epsilon)
		if err != nil {
			return nil, pos, newErr(BadEscape, pos, err, "%v", err)
		}
		return singleCharNFA(c), pos, nil
	}
}

func singleCharNFA(c rune) *nfa.NFA {
	n := nfa.New()
	s0 := n.AddState(false)
	s1 := n.AddState(true)
	n.Start = s0
	n.AddSingleEdge(s0, s1, c, c, nfa.Positive)
	return n
}

// anyCharNFA implements '.': a positive range covering the full usable
// alphabet of Unicode scalar values.
func anyCharNFA() *nfa.NFA {
	n := nfa.New()
	s0 := n.AddState(false)
	s1 := n.AddState(true)
	n.Start = s0
	n.AddSingleEdge(s0, s1, 0, 0x10FFFF, nfa.Positive)
	return n
}

// rangesNFA builds a single-edge NFA whose one transition carries all of
// ranges, under the given polarity — used for both predefined classes
// and parsed [...] character classes.
func rangesNFA(ranges []nfa.Range, polarity nfa.Polarity) *nfa.NFA {
	n := nfa.New()
	s0 := n.AddState(false)
	s1 := n.AddState(true)
	n.Start = s0
	e := nfa.NewEdge(len(ranges), polarity, s1)
	copy(e.Ranges, ranges)
	n.AddEdge(s0, e)
	return n
}

var (
	whitespaceRanges = []nfa.Range{
		{Lo: ' ', Hi: ' '}, {Lo: '\f', Hi: '\f'}, {Lo: '\n', Hi: '\n'},
		{Lo: '\r', Hi: '\r'}, {Lo: '\t', Hi: '\t'}, {Lo: '\v', Hi: '\v'},
	}
	wordRanges = []nfa.Range{
		{Lo: 'a', Hi: 'z'}, {Lo: 'A', Hi: 'Z'}, {Lo: '_', Hi: '_'}, {Lo: '0', Hi: '9'},
	}
	digitRanges = []nfa.Range{
		{Lo: '0', Hi: '9'},
	}
)

// parseClass parses a [...] or [^...] character class, starting just
// after the '['. It supports escaped endpoints (including \]) per
// spec.md §9's resolution of the later-revision behavior over the
// original's scan-until-unescaped-']'.
func (p *parser) parseClass(pos int) (*nfa.NFA, int, error) {
	polarity := nfa.Positive
	if pos < len(p.src) && p.src[pos] == '^' {
		polarity = nfa.Negative
		pos++
	}

	var ranges []nfa.Range
	first := true
	for {
		if pos >= len(p.src) {
			return nil, pos, newErr(BadCharClass, pos, nil, "unterminated character class")
		}
		if p.src[pos] == ']' && !first {
			pos++
			break
		}
		first = false

		lo, next, err := p.classChar(pos)
		if err != nil {
			return nil, next, err
		}
		pos = next

		if pos < len(p.src) && p.src[pos] == '-' && pos+1 < len(p.src) && p.src[pos+1] != ']' {
			hi, next, err := p.classChar(pos + 1)
			if err != nil {
				return nil, next, err
			}
			pos = next
			if hi < lo {
				return nil, pos, newErr(BadCharClass, pos, nil, "range %q-%q has high < low", lo, hi)
			}
			ranges = append(ranges, nfa.Range{Lo: lo, Hi: hi})
		} else {
			ranges = append(ranges, nfa.Range{Lo: lo, Hi: lo})
		}
	}
	if len(ranges) == 0 {
		return nil, pos, newErr(BadCharClass, pos, nil, "empty character class")
	}
	return rangesNFA(ranges, polarity), pos, nil
}

// classChar reads one literal or escaped character inside a [...] class.
func (p *parser) classChar(pos int) (rune, int, error) {
	if p.src[pos] == '\\' {
		pos++
		c, err := charutil.DecodeEscape(p.src, &pos, nfa.Epsilon)
		if err != nil {
			return 0, pos, newErr(BadEscape, pos, err, "%v", err)
		}
		return c, pos, nil
	}
	return p.src[pos], pos + 1, nil
}
