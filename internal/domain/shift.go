package domain

// ServiceWindow is one of a shift template's up to four alternative time
// windows, selected per calendar day by a day-code token.
type ServiceWindow struct {
	Number  int
	DayCodes map[string]struct{} // e.g. {"000", "100", "504"}

	StartHour, StartMinute int
	EndHour, EndMinute     int

	CrossesMidnight bool
}

// NewServiceWindow derives CrossesMidnight from the two clock times.
func NewServiceWindow(number int, dayCodes []string, startH, startM, endH, endM int) ServiceWindow {
	codes := make(map[string]struct{}, len(dayCodes))
	for _, c := range dayCodes {
		codes[c] = struct{}{}
	}
	crosses := endH < startH || (endH == startH && endM < startM)
	return ServiceWindow{
		Number:          number,
		DayCodes:        codes,
		StartHour:       startH,
		StartMinute:     startM,
		EndHour:         endH,
		EndMinute:       endM,
		CrossesMidnight: crosses,
	}
}

// Matches reports whether this window applies on a day carrying dayCode.
func (w ServiceWindow) Matches(dayCode string) bool {
	_, ok := w.DayCodes[dayCode]
	return ok
}

// DurationHours mirrors ServeiTorn.durada_hores(): total span in hours,
// accounting for midnight crossing.
func (w ServiceWindow) DurationHours() float64 {
	startMin := w.StartHour*60 + w.StartMinute
	endMin := w.EndHour*60 + w.EndMinute
	var totalMin int
	if w.CrossesMidnight {
		totalMin = (24*60 - startMin) + endMin
	} else {
		totalMin = endMin - startMin
	}
	return float64(totalMin) / 60.0
}

// ShiftTemplate ("Torn") is a named shift with up to four alternative time
// windows, one of which applies on a given calendar day.
type ShiftTemplate struct {
	ID   string
	Line string
	Zone string

	// Services maps service-number (1..4) to its window.
	Services map[int]ServiceWindow

	// Plaza option references used by the greedy availability analyzer.
	Option1Plaza string
	Option2Plaza string

	// RequiredSkill and RequiredShiftName denormalize the fields a
	// coverage need would otherwise need to repeat when the need is
	// derived straight from the template.
	RequiredSkill     string
	RequiredShiftName string
}

// WindowForDayCode finds the service window whose day-code set contains
// dayCode, returning ok=false if none matches.
func (t ShiftTemplate) WindowForDayCode(dayCode string) (ServiceWindow, bool) {
	for _, w := range t.Services {
		if w.Matches(dayCode) {
			return w, true
		}
	}
	return ServiceWindow{}, false
}
