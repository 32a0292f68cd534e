// Package nfa implements the core automaton data model: range-set edges,
// the NFA graph, the in-place composition algebra (concat/union/star),
// and the epsilon-closure simulator. States are addressed by index into
// an arena rather than by pointer, so that deep-copy-with-offset (the
// workhorse of the composition algebra) is a simple loop rather than a
// pointer-graph traversal, per spec.md §9.
package nfa

// State is one node of an NFA: an ordered list of outgoing edges.
// Acceptance is tracked at the NFA level (the Accepting set), not here,
// matching spec.md §3.
type State struct {
	Edges []Edge
}

// NFA is a nondeterministic finite automaton with epsilon transitions:
// an arena of States, a start state, and a set of accepting state
// indices.
type NFA struct {
	States    []State
	Accepting []int
	Start     int
}

// New returns an empty NFA with no start state set (Start is left at its
// zero value, 0; callers building from scratch should AddState before
// relying on it).
func New() *NFA {
	return &NFA{}
}

// AddState appends a new state with no outgoing edges and returns its
// index. If accepting is true, the index is also appended to Accepting.
func (n *NFA) AddState(accepting bool) int {
	idx := len(n.States)
	n.States = append(n.States, State{})
	if accepting {
		n.Accepting = append(n.Accepting, idx)
	}
	return idx
}

// AddEdge appends e to the outgoing edge list of state from. from must be
// a valid state index; e.Dest is not validated here, matching spec.md
// §4.2 ("the algebra and persistence are responsible for consistency").
func (n *NFA) AddEdge(from int, e Edge) {
	n.States[from].Edges = append(n.States[from].Edges, e)
}

// AddSingleEdge is a convenience wrapper that builds a single-range edge
// and appends it, returning the index of the new edge within that
// state's edge list.
func (n *NFA) AddSingleEdge(from, to int, lo, hi rune, polarity Polarity) (int, error) {
	e, err := NewSingleEdge(lo, hi, polarity, to)
	if err != nil {
		return -1, err
	}
	n.AddEdge(from, e)
	return len(n.States[from].Edges) - 1, nil
}

// AddEpsilonEdge appends an epsilon edge from -> to.
func (n *NFA) AddEpsilonEdge(from, to int) {
	n.AddEdge(from, NewEpsilonEdge(to))
}

// AcceptsAtIndex reports whether idx is a member of the accepting set.
func (n *NFA) AcceptsAtIndex(idx int) bool {
	for _, a := range n.Accepting {
		if a == idx {
			return true
		}
	}
	return false
}
