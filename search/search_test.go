package search

import (
	"testing"

	"github.com/brenns10/fsm/regex"
)

func TestFindNonOverlapping(t *testing.T) {
	n := regex.MustParse(`\w+`)
	hits := Find(n, "foo bar baz", false, false)
	if len(hits) != 3 {
		t.Fatalf("got %d hits, want 3: %+v", len(hits), hits)
	}
	want := []Hit{{0, 3}, {4, 3}, {8, 3}}
	for i, h := range hits {
		if h != want[i] {
			t.Errorf("hit %d = %+v, want %+v", i, h, want[i])
		}
	}
}

func TestFindGreedyStopsAtFirst(t *testing.T) {
	n := regex.MustParse(`\d+`)
	hits := Find(n, "a12 b34", true, false)
	if len(hits) != 1 {
		t.Fatalf("got %d hits, want 1", len(hits))
	}
	if hits[0] != (Hit{Start: 1, Length: 2}) {
		t.Fatalf("got %+v, want {1 2}", hits[0])
	}
}

func TestFindOverlap(t *testing.T) {
	n := regex.MustParse(`aa`)
	hits := Find(n, "aaaa", false, true)
	if len(hits) != 3 {
		t.Fatalf("got %d hits, want 3: %+v", len(hits), hits)
	}
}

func TestFindNoMatch(t *testing.T) {
	n := regex.MustParse(`\d+`)
	hits := Find(n, "no digits here", false, false)
	if len(hits) != 0 {
		t.Fatalf("got %d hits, want 0", len(hits))
	}
}
