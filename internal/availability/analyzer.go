// Package availability implements the greedy day-by-day coverage report
// (4.4): a deterministic, two-option "plaza" matcher independent of the
// evolutionary scheduler.
package availability

import (
	"fmt"

	"github.com/fgcagents/reserveroster/internal/domain"
)

const maxRangeDays = 180

// Reason codes for an uncovered shift.
const (
	ReasonOnRest   = "on rest"
	ReasonBusy     = "busy"
	ReasonNotFound = "not found"
)

// Covered is a shift successfully matched to a worker on a date.
type Covered struct {
	Shift    string
	Date     string
	Worker   string
	WorkerID string
	Plaza    string
	Priority string // "option_1" or "option_2"
}

// Uncovered is a shift left unmatched on a date, with the reason why.
type Uncovered struct {
	Shift  string
	Date   string
	Reason string
}

// Result is the full report for a date range.
type Result struct {
	Covered       []Covered
	Uncovered     []Uncovered
	CoverageRatio float64
}

// Analyzer runs the greedy matcher against a fixed worker/shift catalog.
type Analyzer struct {
	// WorkersByPlaza indexes every worker (not just group T) by their plaza
	// slot, as referenced by a shift template's Option1Plaza/Option2Plaza.
	WorkersByPlaza map[string]*domain.Worker
	// Shifts is iterated in catalog order, so output is deterministic.
	Shifts []domain.ShiftTemplate
}

// Analyze walks dates ascending, then shifts in catalog order, matching
// option_1 then option_2 for each (4.4).
func (a *Analyzer) Analyze(start, end string) (Result, error) {
	startDate, err := domain.ParseDateISO(start)
	if err != nil {
		return Result{}, fmt.Errorf("parsing start date: %w", err)
	}
	endDate, err := domain.ParseDateISO(end)
	if err != nil {
		return Result{}, fmt.Errorf("parsing end date: %w", err)
	}
	dates, err := domain.DateRange(startDate, endDate)
	if err != nil {
		return Result{}, err
	}
	if len(dates) > maxRangeDays {
		return Result{}, fmt.Errorf("date range spans %d days, exceeds the %d-day cap for the availability analyzer", len(dates), maxRangeDays)
	}

	var result Result
	for _, date := range dates {
		occupied := map[string]struct{}{}
		for _, shift := range a.Shifts {
			covered, uncovered, workerName := a.matchShift(shift, date, occupied)
			if workerName != "" {
				occupied[workerName] = struct{}{}
			}
			if covered != nil {
				result.Covered = append(result.Covered, *covered)
			} else {
				result.Uncovered = append(result.Uncovered, *uncovered)
			}
		}
	}

	total := len(result.Covered) + len(result.Uncovered)
	if total > 0 {
		result.CoverageRatio = float64(len(result.Covered)) / float64(total)
	}
	return result, nil
}

// matchShift tries option_1, then option_2; returns whichever record applies
// and, on a match, the worker's display name (so the caller can mark the
// occupied set for this date).
func (a *Analyzer) matchShift(shift domain.ShiftTemplate, date string, occupied map[string]struct{}) (*Covered, *Uncovered, string) {
	if covered := a.tryPlaza(shift, date, shift.Option1Plaza, "option_1", occupied); covered != nil {
		return covered, nil, covered.Worker
	}
	if covered := a.tryPlaza(shift, date, shift.Option2Plaza, "option_2", occupied); covered != nil {
		return covered, nil, covered.Worker
	}

	reason := ReasonNotFound
	if r, ok := a.reasonForPlaza(shift.Option1Plaza, date, occupied); ok {
		reason = r
	} else if r, ok := a.reasonForPlaza(shift.Option2Plaza, date, occupied); ok {
		reason = r
	}

	return nil, &Uncovered{Shift: shift.ID, Date: date, Reason: reason}, ""
}

func (a *Analyzer) tryPlaza(shift domain.ShiftTemplate, date, plaza, priority string, occupied map[string]struct{}) *Covered {
	if plaza == "" {
		return nil
	}
	w, ok := a.WorkersByPlaza[plaza]
	if !ok {
		return nil
	}
	if w.HasRestDay(date) {
		return nil
	}
	if _, busy := occupied[w.Name]; busy {
		return nil
	}
	return &Covered{
		Shift:    shift.ID,
		Date:     date,
		Worker:   w.Name,
		WorkerID: w.ID,
		Plaza:    plaza,
		Priority: priority,
	}
}

// reasonForPlaza reports the specific reason a plaza's worker is unavailable,
// for an uncovered shift's diagnostic message. ok is false if the plaza
// doesn't resolve to a known worker at all (falls through to "not found").
func (a *Analyzer) reasonForPlaza(plaza, date string, occupied map[string]struct{}) (string, bool) {
	if plaza == "" {
		return "", false
	}
	w, ok := a.WorkersByPlaza[plaza]
	if !ok {
		return "", false
	}
	if w.HasRestDay(date) {
		return ReasonOnRest, true
	}
	if _, busy := occupied[w.Name]; busy {
		return ReasonBusy, true
	}
	return "", false
}
