package persist

import (
	"fmt"
	"strings"

	"github.com/brenns10/fsm/nfa"
)

// ExportDOT renders n as a Graphviz directed graph, per spec.md §6.2:
// the start state is oval, accepting states are octagons, all others
// are boxes; each edge's label is "(+|-) <range> <range> …" with "eps"
// standing in for EPSILON, grounded on fsm_dot/fsm_dot_char.
func ExportDOT(n *nfa.NFA) string {
	var b strings.Builder
	b.WriteString("digraph fsm {\n")
	for i := range n.States {
		shape := "box"
		if i == n.Start {
			shape = "oval"
		} else if n.AcceptsAtIndex(i) {
			shape = "octagon"
		}
		fmt.Fprintf(&b, "\ts%d [shape=%s];\n", i, shape)
	}
	for i, st := range n.States {
		for _, e := range st.Edges {
			pol := '+'
			if e.Polarity == nfa.Negative {
				pol = '-'
			}
			parts := make([]string, len(e.Ranges))
			for j, r := range e.Ranges {
				parts[j] = fmt.Sprintf("%s-%s", dotChar(r.Lo), dotChar(r.Hi))
			}
			label := fmt.Sprintf("%c %s", pol, strings.Join(parts, " "))
			if e.IsEpsilon() {
				label = "eps"
			}
			fmt.Fprintf(&b, "\ts%d -> s%d [label=\"%s\"];\n", i, e.Dest, escapeDotLabel(label))
		}
	}
	b.WriteString("}\n")
	return b.String()
}

func dotChar(c rune) string {
	if c == nfa.Epsilon {
		return "eps"
	}
	return string(c)
}

// escapeDotLabel escapes double quotes inside a DOT label, matching
// fsm_dot_char's handling of the label string.
func escapeDotLabel(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
