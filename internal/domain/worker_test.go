package domain

import "testing"

// Adding the same rest-day period twice leaves the set unchanged.
func TestAddRestDaysIdempotent(t *testing.T) {
	w := NewWorker("w1", "Worker One")
	dates := []string{"2025-03-10", "2025-03-11", "2025-03-12"}

	w.AddRestDays(RestOriginManual, dates)
	first := len(w.RestDays)

	w.AddRestDays(RestOriginManual, dates)
	second := len(w.RestDays)

	if first != second {
		t.Fatalf("rest-day set size changed on repeat call: %d vs %d", first, second)
	}
	for _, d := range dates {
		if !w.HasRestDay(d) {
			t.Errorf("expected rest day %s", d)
		}
	}
}

func TestAddRestDaysUnionsOrigins(t *testing.T) {
	w := NewWorker("w1", "Worker One")
	w.AddRestDays(RestOriginBase, []string{"2025-01-01"})
	w.AddRestDays(RestOriginTemporal, []string{"2025-01-02"})
	w.AddRestDays(RestOriginLeave, []string{"2025-01-03"})
	w.AddRestDays(RestOriginManual, []string{"2025-01-04"})

	if len(w.RestDays) != 4 {
		t.Fatalf("expected 4 rest days across origins, got %d", len(w.RestDays))
	}
}

func TestIsShiftChangeHourFallback(t *testing.T) {
	w := NewWorker("w1", "Worker One")
	w.HomeShift = "Mati,Nit"

	if w.IsShiftChange("", 8) { // morning
		t.Error("morning shift should not count as change for Mati home shift")
	}
	if !w.IsShiftChange("", 15) { // afternoon
		t.Error("afternoon shift should count as change")
	}
	if w.IsShiftChange("", 21) { // night
		t.Error("night shift should not count as change for Nit home shift")
	}
}

func TestIsShiftChangeRotationToken(t *testing.T) {
	w := NewWorker("w1", "Worker One")
	w.HomeShift = "Rotatiu"

	if w.IsShiftChange("Rotatiu", 15) {
		t.Error("rotation token matching a home-shift option should not count as a change, regardless of hour")
	}
	if !w.IsShiftChange("Mati", 8) {
		t.Error("rotation token not among the worker's home-shift options should count as a change")
	}
}

func TestHoursAvailableAndStandardCap(t *testing.T) {
	w := NewWorker("w1", "Worker One")
	w.HoursWorked = 1200

	if !w.WithinStandardCap() {
		t.Error("1200 <= 1218 should be within standard cap")
	}
	if got := w.HoursAvailable(); got != ExtendableHoursCap-1200 {
		t.Errorf("HoursAvailable() = %v, want %v", got, ExtendableHoursCap-1200)
	}

	w.HoursWorked = 1219
	if w.WithinStandardCap() {
		t.Error("1219 > 1218 should not be within standard cap")
	}
}
