package domain

import "time"

// Assignment binds a worker to a shift on a date, with the clock window
// actually worked and the fairness flags derived at creation time.
type Assignment struct {
	WorkerID string
	ShiftID  string
	Date     string // canonical YYYY-MM-DD

	StartHour, StartMinute int
	EndHour, EndMinute     int
	DurationHours          float64

	IsZoneChange  bool
	IsShiftChange bool
}

// WorkerDateKey identifies the (worker, date) pair used to enforce
// per-worker-day uniqueness.
type WorkerDateKey struct {
	WorkerID string
	Date     string
}

// NewAssignment builds an Assignment from a worker, need, and the service
// window it covers, deriving the zone/shift-change flags and duration.
func NewAssignment(w *Worker, n CoverageNeed, win ServiceWindow) Assignment {
	return Assignment{
		WorkerID:      w.ID,
		ShiftID:       n.Shift,
		Date:          n.Date,
		StartHour:     win.StartHour,
		StartMinute:   win.StartMinute,
		EndHour:       win.EndHour,
		EndMinute:     win.EndMinute,
		DurationHours: win.DurationHours(),
		IsZoneChange:  w.IsZoneChange(n.Zone),
		IsShiftChange: w.IsShiftChange(n.Rotation, win.StartHour),
	}
}

// WorkerDate returns the (worker, date) key used for per-worker-day
// uniqueness checks.
func (a Assignment) WorkerDate() WorkerDateKey {
	return WorkerDateKey{WorkerID: a.WorkerID, Date: a.Date}
}

// NeedKey returns the (shift, date) key used for coverage-uniqueness checks.
func (a Assignment) NeedKey() NeedKey {
	return NeedKey{Shift: a.ShiftID, Date: a.Date}
}

// StartMinutesOfDay returns the start clock time as minutes-since-midnight, for
// ordering assignments within a day.
func (a Assignment) StartMinutesOfDay() int {
	return a.StartHour*60 + a.StartMinute
}

// EndDatetime returns the real end instant, accounting for midnight
// crossing (mirrors Assignacio.hora_fi_real()).
func (a Assignment) EndDatetime() (time.Time, error) {
	d, err := ParseDateISO(a.Date)
	if err != nil {
		return time.Time{}, err
	}
	end := time.Date(d.Year(), d.Month(), d.Day(), a.EndHour, a.EndMinute, 0, 0, time.UTC)
	startMin := a.StartHour*60 + a.StartMinute
	endMin := a.EndHour*60 + a.EndMinute
	if endMin < startMin {
		end = end.AddDate(0, 0, 1)
	}
	return end, nil
}

// StartDatetime returns the assignment's start instant.
func (a Assignment) StartDatetime() (time.Time, error) {
	d, err := ParseDateISO(a.Date)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), a.StartHour, a.StartMinute, 0, 0, time.UTC), nil
}
