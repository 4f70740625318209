package match

import "testing"

func TestMatchValidate(t *testing.T) {
	m := Match{ID: "1", TeamA: "India", TeamB: "Pakistan", TeamAShort: "IND", TeamBShort: "PAK", Time: "Today, 7:30 PM"}
	if err := m.Validate(); err != nil {
		t.Fatalf("expected valid match: %v", err)
	}
	if got := m.Title(); got != "India vs Pakistan" {
		t.Fatalf("unexpected title %q", got)
	}
	if !m.Involves("pak") || m.Involves("AUS") {
		t.Fatalf("unexpected Involves result")
	}

	same := m
	same.TeamBShort = "IND"
	if err := same.Validate(); err == nil {
		t.Fatalf("expected error when both sides share a code")
	}

	if err := (Match{TeamA: "A", TeamB: "B"}).Validate(); err == nil {
		t.Fatalf("expected error for missing id")
	}
}
