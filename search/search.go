// Package search implements the outer-loop substring search driver over
// an NFA, grounded on the original implementation's fsm_search
// (regex/search.c).
package search

import "github.com/brenns10/fsm/nfa"

// Hit is one match: the starting rune index in the searched text and
// its length in runes.
type Hit struct {
	Start  int
	Length int
}

// Find scans text for matches of n, per spec.md §4.8.
//
// greedy returns immediately after the first hit found, anywhere in
// text — useful for membership queries. overlap advances the start
// index by one rune after each hit instead of skipping past it, so
// overlapping matches are reported.
func Find(n *nfa.NFA, text string, greedy, overlap bool) []Hit {
	runes := []rune(text)
	var hits []Hit

	for i := 0; i <= len(runes); {
		length, found := longestMatchAt(n, runes[i:])
		if !found {
			i++
			continue
		}
		hits = append(hits, Hit{Start: i, Length: length})
		switch {
		case greedy:
			return hits
		case overlap:
			i++
		default:
			if length == 0 {
				i++
			} else {
				i += length
			}
		}
	}
	return hits
}

// longestMatchAt runs the simulator over input starting at its first
// character, recording the longest prefix length at which the
// classification was Accepting or Accepted, per spec.md §4.8 step 2.
func longestMatchAt(n *nfa.NFA, input []rune) (length int, found bool) {
	sim := nfa.Begin(n, input)
	length = 0
	last := -1

	st := sim.State()
	for {
		if st == nfa.Accepting || st == nfa.Accepted {
			last = length
		}
		if st == nfa.Accepted || st == nfa.Rejected {
			break
		}
		sim.Step()
		length++
		st = sim.State()
	}
	if last < 0 {
		return 0, false
	}
	return last, true
}
