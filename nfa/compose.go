package nfa

// Clone returns a deep, independently-owned copy of n.
func (n *NFA) Clone() *NFA {
	out := &NFA{Start: n.Start}
	out.States = make([]State, len(n.States))
	for i, s := range n.States {
		edges := make([]Edge, len(s.Edges))
		for j, e := range s.Edges {
			edges[j] = e.Clone()
		}
		out.States[i] = State{Edges: edges}
	}
	out.Accepting = make([]int, len(n.Accepting))
	copy(out.Accepting, n.Accepting)
	return out
}

// mergeStatesFrom appends clones of every state of src into dest,
// rewriting each cloned edge's Dest by adding the number of states dest
// had before the merge. It does not touch dest.Accepting or dest.Start.
// Returns that offset, grounded on the original fsm_copy_trans /
// regexlib's merge-with-offset pattern used by concat/union.
func mergeStatesFrom(dest, src *NFA) int {
	offset := len(dest.States)
	for _, s := range src.States {
		edges := make([]Edge, len(s.Edges))
		for j, e := range s.Edges {
			clone := e.Clone()
			clone.Dest += offset
			edges[j] = clone
		}
		dest.States = append(dest.States, State{Edges: edges})
	}
	return offset
}

// Concat builds, in place into a, an NFA accepting L(a)·L(b). b is
// merged by value (deep-copied) into a; the caller retains ownership of
// b and may release it independently. Grounded on fsm_concat.
func Concat(a, b *NFA) {
	offset := mergeStatesFrom(a, b)
	oldAccepting := make([]int, len(a.Accepting))
	copy(oldAccepting, a.Accepting)

	for _, s := range oldAccepting {
		a.AddEpsilonEdge(s, b.Start+offset)
	}

	newAccepting := make([]int, len(b.Accepting))
	for i, acc := range b.Accepting {
		newAccepting[i] = acc + offset
	}
	a.Accepting = newAccepting
}

// Union builds, in place into a, an NFA accepting L(a) ∪ L(b). Grounded
// on fsm_union.
func Union(a, b *NFA) {
	offset := mergeStatesFrom(a, b)

	for _, acc := range b.Accepting {
		a.Accepting = append(a.Accepting, acc+offset)
	}

	q := a.AddState(false)
	a.AddEpsilonEdge(q, a.Start)
	a.AddEpsilonEdge(q, b.Start+offset)
	a.Start = q
}

// Star builds, in place into a, an NFA accepting L(a)*. Grounded on
// fsm_kleene.
func Star(a *NFA) {
	oldAccepting := make([]int, len(a.Accepting))
	copy(oldAccepting, a.Accepting)
	oldStart := a.Start

	q := a.AddState(true)
	a.AddEpsilonEdge(q, oldStart)
	for _, s := range oldAccepting {
		a.AddEpsilonEdge(s, q)
	}
	a.Start = q
}

// Plus builds, in place into a, an NFA accepting L(a)+ = a ∘ a*.
func Plus(a *NFA) {
	tail := a.Clone()
	Star(tail)
	Concat(a, tail)
}

// EmptyStringNFA returns a fresh NFA with a single state that is both
// start and accepting, i.e. one accepting only the empty string.
func EmptyStringNFA() *NFA {
	n := New()
	n.Start = n.AddState(true)
	return n
}

// Optional builds, in place into a, an NFA accepting L(a) ∪ {ε}.
func Optional(a *NFA) {
	Union(a, EmptyStringNFA())
}
