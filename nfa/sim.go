package nfa

// Classification is the simulator's relationship to the accepting set
// after begin/step, per spec.md §4.7.
type Classification int

const (
	Accepting Classification = iota
	NotAccepting
	Accepted
	Rejected
)

func (c Classification) String() string {
	switch c {
	case Accepting:
		return "Accepting"
	case NotAccepting:
		return "NotAccepting"
	case Accepted:
		return "Accepted"
	case Rejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// Closure returns the epsilon-closure of state s in nfa: every state
// reachable from s by zero or more epsilon edges, breadth-first,
// insertion-ordered, deduplicated. Grounded on
// fsm_sim_nondet_epsilon_closure.
func Closure(n *NFA, s int) []int {
	seen := map[int]bool{s: true}
	closure := []int{s}
	queue := []int{s}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range n.States[cur].Edges {
			if !e.IsEpsilon() {
				continue
			}
			if seen[e.Dest] {
				continue
			}
			seen[e.Dest] = true
			closure = append(closure, e.Dest)
			queue = append(queue, e.Dest)
		}
	}
	return closure
}

func closureAll(n *NFA, states []int) []int {
	seen := make(map[int]bool, len(states))
	out := make([]int, 0, len(states))
	for _, s := range states {
		if seen[s] {
			continue
		}
		for _, c := range Closure(n, s) {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}

// Sim is a single run of the nondeterministic simulator over wide
// character input: the set of states the machine could currently be in,
// and the remaining input.
type Sim struct {
	NFA     *NFA
	Current []int
	Input   []rune
	pos     int
}

// Begin starts a simulation of nfa over input, per spec.md §4.7: the
// current state set is the epsilon-closure of the start state.
func Begin(n *NFA, input []rune) *Sim {
	return &Sim{
		NFA:     n,
		Current: Closure(n, n.Start),
		Input:   input,
	}
}

// Remaining reports whether any input remains unconsumed.
func (s *Sim) Remaining() bool {
	return s.pos < len(s.Input)
}

// Step advances the simulation over exactly one input character,
// matching spec.md §4.7's step algorithm.
func (s *Sim) Step() {
	if !s.Remaining() {
		s.Current = nil
		return
	}
	c := s.Input[s.pos]

	var next []int
	seen := map[int]bool{}
	for _, st := range s.Current {
		for _, e := range s.NFA.States[st].Edges {
			if e.IsEpsilon() {
				continue
			}
			if e.Accepts(c) && !seen[e.Dest] {
				seen[e.Dest] = true
				next = append(next, e.Dest)
			}
		}
	}

	s.Current = closureAll(s.NFA, next)
	s.pos++
}

// State classifies the simulation's current relationship to the
// accepting set, per spec.md §4.7.
func (s *Sim) State() Classification {
	if len(s.Current) == 0 {
		return Rejected
	}
	accepting := false
	for _, st := range s.Current {
		if s.NFA.AcceptsAtIndex(st) {
			accepting = true
			break
		}
	}
	if accepting {
		if !s.Remaining() {
			return Accepted
		}
		return Accepting
	}
	if !s.Remaining() {
		return Rejected
	}
	return NotAccepting
}

// Accepts runs the nondeterministic whole-string recognizer, per
// spec.md §4.7.
func Accepts(n *NFA, input []rune) bool {
	sim := Begin(n, input)
	st := sim.State()
	for st != Accepted && st != Rejected {
		sim.Step()
		st = sim.State()
	}
	return st == Accepted
}

// AcceptsString is a convenience wrapper for Accepts taking a Go string.
func AcceptsString(n *NFA, input string) bool {
	return Accepts(n, []rune(input))
}

// AcceptsDeterministic walks a single current state with no
// epsilon-closure applied — the caller is responsible for supplying an
// epsilon-free machine. If some state has two outgoing edges that both
// accept the same character, nondeterministic is reported true and the
// walk continues using the first such edge, matching fsm_sim_det's
// permissive diagnose-and-continue behavior (spec.md §9 leaves this
// upgrade optional).
func AcceptsDeterministic(n *NFA, input []rune) (accepted bool, nondeterministic bool) {
	state := n.Start
	for _, c := range input {
		next := -1
		for _, e := range n.States[state].Edges {
			if e.Accepts(c) {
				if next == -1 {
					next = e.Dest
				} else {
					nondeterministic = true
				}
			}
		}
		if next == -1 {
			return false, nondeterministic
		}
		state = next
	}
	return n.AcceptsAtIndex(state), nondeterministic
}
