package nfa

import "testing"

func singleCharNFA(c rune) *NFA {
	n := New()
	s0 := n.AddState(false)
	s1 := n.AddState(true)
	n.Start = s0
	if _, err := n.AddSingleEdge(s0, s1, c, c, Positive); err != nil {
		panic(err)
	}
	return n
}

func TestAddSingleEdgeInvalidRange(t *testing.T) {
	n := New()
	s0 := n.AddState(false)
	s1 := n.AddState(true)
	if _, err := n.AddSingleEdge(s0, s1, 'z', 'a', Positive); err == nil {
		t.Fatal("expected InvalidRange error")
	}
}

func TestEdgeAcceptsDuality(t *testing.T) {
	pos := Edge{Polarity: Positive, Ranges: []Range{{Lo: 'a', Hi: 'z'}}}
	neg := Edge{Polarity: Negative, Ranges: []Range{{Lo: 'a', Hi: 'z'}}}
	for c := rune('A'); c < 'z'+2; c++ {
		if pos.Accepts(c) == neg.Accepts(c) {
			t.Fatalf("duality broken at %q", c)
		}
	}
}

func TestConcat(t *testing.T) {
	a := singleCharNFA('a')
	b := singleCharNFA('b')
	Concat(a, b)
	if !AcceptsString(a, "ab") {
		t.Fatal("expected ab to be accepted")
	}
	if AcceptsString(a, "a") || AcceptsString(a, "b") || AcceptsString(a, "ba") {
		t.Fatal("concat accepted something outside L(a)L(b)")
	}
}

func TestUnion(t *testing.T) {
	a := singleCharNFA('a')
	b := singleCharNFA('b')
	Union(a, b)
	if !AcceptsString(a, "a") || !AcceptsString(a, "b") {
		t.Fatal("expected union to accept both a and b")
	}
	if AcceptsString(a, "ab") || AcceptsString(a, "") {
		t.Fatal("union accepted something outside L(a) ∪ L(b)")
	}
}

func TestStar(t *testing.T) {
	a := singleCharNFA('a')
	Star(a)
	for _, s := range []string{"", "a", "aa", "aaaaa"} {
		if !AcceptsString(a, s) {
			t.Fatalf("star(a) should accept %q", s)
		}
	}
	if AcceptsString(a, "aab") {
		t.Fatal("star(a) accepted aab")
	}
}

func TestPlus(t *testing.T) {
	a := singleCharNFA('a')
	Plus(a)
	if AcceptsString(a, "") {
		t.Fatal("plus(a) should reject empty string")
	}
	for _, s := range []string{"a", "aa", "aaa"} {
		if !AcceptsString(a, s) {
			t.Fatalf("plus(a) should accept %q", s)
		}
	}
}

func TestOptional(t *testing.T) {
	a := singleCharNFA('a')
	Optional(a)
	if !AcceptsString(a, "") || !AcceptsString(a, "a") {
		t.Fatal("optional(a) should accept '' and 'a'")
	}
	if AcceptsString(a, "aa") {
		t.Fatal("optional(a) should reject aa")
	}
}

func TestCloneIndependence(t *testing.T) {
	a := singleCharNFA('a')
	clone := a.Clone()
	Star(clone)
	if AcceptsString(a, "aa") {
		t.Fatal("mutating the clone should not affect the original")
	}
	if !AcceptsString(clone, "aaa") {
		t.Fatal("clone should have been starred")
	}
}

func TestAcceptsDeterministicReportsConflict(t *testing.T) {
	n := New()
	s0 := n.AddState(false)
	s1 := n.AddState(true)
	s2 := n.AddState(true)
	n.Start = s0
	n.AddSingleEdge(s0, s1, 'a', 'a', Positive)
	n.AddSingleEdge(s0, s2, 'a', 'a', Positive)
	_, nondet := AcceptsDeterministic(n, []rune("a"))
	if !nondet {
		t.Fatal("expected nondeterminism to be reported")
	}
}
