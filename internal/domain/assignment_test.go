package domain

import "testing"

// Duration equals end - start accounting for midnight crossover, and is
// never negative.
func TestAssignmentEndDatetimeCrossesMidnight(t *testing.T) {
	a := Assignment{
		Date:      "2025-03-10",
		StartHour: 22, StartMinute: 0,
		EndHour: 6, EndMinute: 0,
		DurationHours: 8,
	}
	end, err := a.EndDatetime()
	if err != nil {
		t.Fatal(err)
	}
	if end.Day() != 11 {
		t.Errorf("expected end on day 11 (next day), got day %d", end.Day())
	}
	start, err := a.StartDatetime()
	if err != nil {
		t.Fatal(err)
	}
	if got := end.Sub(start).Hours(); got != 8 {
		t.Errorf("end-start = %v hours, want 8", got)
	}
}

func TestAssignmentEndDatetimeSameDay(t *testing.T) {
	a := Assignment{
		Date:      "2025-03-10",
		StartHour: 8, StartMinute: 0,
		EndHour: 16, EndMinute: 0,
	}
	end, err := a.EndDatetime()
	if err != nil {
		t.Fatal(err)
	}
	if end.Day() != 10 {
		t.Errorf("expected end on same day 10, got %d", end.Day())
	}
}

func TestNewAssignmentDerivesChangeFlags(t *testing.T) {
	w := NewWorker("w1", "Worker One")
	w.Zone = "F"
	w.HomeShift = "Mati"
	w.Skills["AE"] = struct{}{}

	need := CoverageNeed{Shift: "S1", Date: "2025-03-10", Zone: "G", Skill: "AE"}
	win := NewServiceWindow(2, []string{"100"}, 14, 0, 22, 0) // afternoon

	a := NewAssignment(w, need, win)
	if !a.IsZoneChange {
		t.Error("expected zone change (worker home F, need zone G)")
	}
	if !a.IsShiftChange {
		t.Error("expected shift change (worker home Mati, assigned afternoon)")
	}
}

func TestNewAssignmentRotationTokenOverridesHourBucket(t *testing.T) {
	w := NewWorker("w1", "Worker One")
	w.HomeShift = "Rotatiu"

	need := CoverageNeed{Shift: "S1", Date: "2025-03-10", Rotation: "Rotatiu"}
	win := NewServiceWindow(2, []string{"100"}, 14, 0, 22, 0) // afternoon hour bucket

	a := NewAssignment(w, need, win)
	if a.IsShiftChange {
		t.Error("need rotation matching worker's home shift should not count as a change, even though the hour bucket differs")
	}
}
