package domain

import "testing"

func TestLongestConsecutiveDays(t *testing.T) {
	h := &WorkerHistory{WorkerID: "w1", Assignments: []Assignment{
		{Date: "2025-03-01"},
		{Date: "2025-03-02"},
		{Date: "2025-03-03"},
		{Date: "2025-03-05"}, // gap
		{Date: "2025-03-06"},
	}}
	if got := h.LongestConsecutiveDays(); got != 3 {
		t.Errorf("LongestConsecutiveDays() = %d, want 3", got)
	}
}

func TestRecentWithinDays(t *testing.T) {
	h := &WorkerHistory{WorkerID: "w1", Assignments: []Assignment{
		{Date: "2025-03-01"}, // far away, should be excluded
		{Date: "2025-03-08"}, // exactly 2 days away, included
		{Date: "2025-03-09"},
	}}
	got := h.RecentWithinDays("2025-03-10", 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries within 2 days of 2025-03-10, got %d: %+v", len(got), got)
	}
}

func TestGlobalStatsStdev(t *testing.T) {
	g := NewGlobalStats()
	g.History("w1").Assignments = []Assignment{{IsZoneChange: true}, {IsZoneChange: true}}
	g.History("w2").Assignments = []Assignment{{IsZoneChange: false}}

	if sd := g.StdevZoneChanges(); sd <= 0 {
		t.Errorf("StdevZoneChanges() = %v, want > 0", sd)
	}
	if sd := g.StdevShiftChanges(); sd != 0 {
		t.Errorf("StdevShiftChanges() = %v, want 0 (no shift changes recorded)", sd)
	}
}
