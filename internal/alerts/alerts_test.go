package alerts

import (
	"sort"
	"testing"
)

func TestByStateKnown(t *testing.T) {
	got := ByState("Assam")
	if len(got) != 2 {
		t.Fatalf("expected 2 alerts for Assam, got %d", len(got))
	}
	if got[0].Severity != SeverityHigh {
		t.Fatalf("expected high severity first, got %s", got[0].Severity)
	}
}

func TestByStateUnknownReturnsEmpty(t *testing.T) {
	got := ByState("Atlantis")
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
}

func TestStatesSorted(t *testing.T) {
	states := States()
	if len(states) == 0 {
		t.Fatal("expected at least one covered state")
	}
	if !sort.StringsAreSorted(states) {
		t.Fatalf("expected sorted state list, got %v", states)
	}
}
