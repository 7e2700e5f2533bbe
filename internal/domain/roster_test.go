package domain

import "testing"

func TestRosterInvariantViolations(t *testing.T) {
	r := Roster{
		{WorkerID: "w1", ShiftID: "s1", Date: "2025-03-10"},
		{WorkerID: "w1", ShiftID: "s2", Date: "2025-03-10"}, // same worker, same date, two shifts
	}
	if !r.HasDoubleBooking() {
		t.Error("expected a double booking (same worker, same date, two shifts)")
	}

	r2 := Roster{
		{WorkerID: "w1", ShiftID: "s1", Date: "2025-03-10"},
		{WorkerID: "w2", ShiftID: "s1", Date: "2025-03-10"}, // same shift, same date, two workers
	}
	if !r2.HasDuplicateCoverage() {
		t.Error("expected duplicate coverage (same shift, same date, two workers)")
	}
}

func TestRosterNoViolations(t *testing.T) {
	r := Roster{
		{WorkerID: "w1", ShiftID: "s1", Date: "2025-03-10"},
		{WorkerID: "w2", ShiftID: "s2", Date: "2025-03-10"},
		{WorkerID: "w1", ShiftID: "s3", Date: "2025-03-11"},
	}
	if r.HasDoubleBooking() || r.HasDuplicateCoverage() {
		t.Error("expected no invariant violations")
	}
}

func TestRosterClone(t *testing.T) {
	r := Roster{{WorkerID: "w1", ShiftID: "s1", Date: "2025-03-10"}}
	c := r.Clone()
	c[0].WorkerID = "w2"
	if r[0].WorkerID != "w1" {
		t.Error("mutating clone affected original")
	}
}
