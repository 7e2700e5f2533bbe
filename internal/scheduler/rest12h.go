package scheduler

import (
	"github.com/fgcagents/reserveroster/internal/domain"
)

// satisfiesRest12h reports whether assigning worker to (date, window) keeps
// at least 12 hours of rest against the worker's historic entries (within 2
// days of date, per the resolved Open Question) and every assignment already
// placed in the in-progress roster.
func satisfiesRest12h(workerID, date string, win domain.ServiceWindow, roster domain.Roster, stats *domain.GlobalStats) bool {
	candidate := domain.Assignment{
		WorkerID:    workerID,
		Date:        date,
		StartHour:   win.StartHour,
		StartMinute: win.StartMinute,
		EndHour:     win.EndHour,
		EndMinute:   win.EndMinute,
	}
	candidateStart, err := candidate.StartDatetime()
	if err != nil {
		return false
	}
	candidateEnd, err := candidate.EndDatetime()
	if err != nil {
		return false
	}

	check := func(other domain.Assignment) bool {
		otherStart, err1 := other.StartDatetime()
		otherEnd, err2 := other.EndDatetime()
		if err1 != nil || err2 != nil {
			return true
		}
		var gap float64
		if otherStart.After(candidateStart) {
			gap = otherStart.Sub(candidateEnd).Hours()
		} else {
			gap = candidateStart.Sub(otherEnd).Hours()
		}
		return gap >= 12
	}

	for _, a := range roster {
		if a.WorkerID != workerID {
			continue
		}
		if !check(a) {
			return false
		}
	}

	if stats != nil {
		if h := stats.Histories[workerID]; h != nil {
			for _, a := range h.RecentWithinDays(date, 2) {
				if !check(a) {
					return false
				}
			}
		}
	}

	return true
}
