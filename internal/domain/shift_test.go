package domain

import "testing"

func TestServiceWindowDurationNoMidnight(t *testing.T) {
	w := NewServiceWindow(1, []string{"100"}, 8, 0, 16, 0)
	if w.CrossesMidnight {
		t.Error("8:00-16:00 should not cross midnight")
	}
	if got := w.DurationHours(); got != 8.0 {
		t.Errorf("DurationHours() = %v, want 8.0", got)
	}
}

func TestServiceWindowDurationCrossesMidnight(t *testing.T) {
	w := NewServiceWindow(3, []string{"300"}, 22, 0, 6, 0)
	if !w.CrossesMidnight {
		t.Error("22:00-06:00 should cross midnight")
	}
	if got := w.DurationHours(); got != 8.0 {
		t.Errorf("DurationHours() = %v, want 8.0", got)
	}
}

func TestShiftTemplateWindowForDayCode(t *testing.T) {
	tmpl := ShiftTemplate{
		ID: "AAL1",
		Services: map[int]ServiceWindow{
			1: NewServiceWindow(1, []string{"000"}, 6, 0, 14, 0),
			2: NewServiceWindow(2, []string{"100"}, 14, 0, 22, 0),
		},
	}
	win, ok := tmpl.WindowForDayCode("100")
	if !ok || win.Number != 2 {
		t.Fatalf("expected window 2 for day code 100, got %+v ok=%v", win, ok)
	}
	if _, ok := tmpl.WindowForDayCode("999"); ok {
		t.Error("expected no match for unknown day code")
	}
}
