package form

import (
	"testing"

	"github.com/retailops/storectl/pkg/api"
)

func TestSuggestions_LatestKeystrokeWins(t *testing.T) {
	var s Suggestions[api.Product]

	// Two keystrokes in quick succession; the first response arrives last.
	gen1 := s.Next() // "ao"
	gen2 := s.Next() // "ao t"

	if !s.Deliver(gen2, []api.Product{{Code: "P1", Name: "Ao Thun"}}) {
		t.Fatal("current generation should deliver")
	}
	if s.Deliver(gen1, []api.Product{{Code: "P1"}, {Code: "P2"}}) {
		t.Fatal("stale generation must be discarded")
	}

	got := s.Items()
	if len(got) != 1 || got[0].Name != "Ao Thun" {
		t.Errorf("suggestions = %+v, want the newest keystroke's results", got)
	}
}

func TestSuggestions_ClearDropsInFlight(t *testing.T) {
	var s Suggestions[api.Customer]

	gen := s.Next()
	s.Clear() // user picked a suggestion

	if s.Deliver(gen, []api.Customer{{Code: "KH01"}}) {
		t.Fatal("response issued before Clear must not repopulate the list")
	}
	if len(s.Items()) != 0 {
		t.Errorf("items after Clear = %+v, want empty", s.Items())
	}
}

func TestSuggestions_SameGenerationDeliversOnce(t *testing.T) {
	var s Suggestions[api.Product]

	gen := s.Next()
	if !s.Deliver(gen, nil) {
		t.Fatal("first delivery should be accepted")
	}
	// A duplicate of the same generation is still "latest" and may land
	// again; only older generations are rejected.
	if !s.Deliver(gen, []api.Product{{Code: "P1"}}) {
		t.Fatal("same-generation delivery should still be accepted")
	}
}
