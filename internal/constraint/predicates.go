package constraint

import (
	"sort"
	"time"

	"github.com/fgcagents/reserveroster/internal/domain"
)

// Default weights, taken verbatim from the original's constraint
// registration (see DESIGN.md).
const (
	WeightGroupT                = 100.0
	WeightNoWorkOnRest          = 80.0
	WeightSkillRequired         = 100.0
	WeightCorrectLine           = 90.0
	WeightAnnualHours           = 70.0
	WeightConsecutiveDays       = 60.0
	WeightZoneChangeEquity      = 50.0
	WeightShiftChangeEquity     = 50.0
	WeightFullCoverage          = 120.0
	WeightWorkloadDistribution  = 40.0
)

// RegisterDefault registers all 14 predicates with their spec-mandated
// weights and labels, matching controllers/genetic_controller.py's
// registration block exactly.
func RegisterDefault(r *Registry) {
	r.Add("unique-per-day", Rigid, UniquePerDay)
	r.Add("no-overlap", Rigid, NoOverlap)
	r.Add("min-rest-12h", Rigid, MinRest12h)
	r.Add("friday-weekend-cutoff", Rigid, FridayWeekendCutoff)

	r.Add("group-T", WeightGroupT, GroupT)
	r.Add("no-work-on-rest", WeightNoWorkOnRest, NoWorkOnRest)
	r.Add("skill-required", WeightSkillRequired, SkillRequired)
	r.Add("correct-line", WeightCorrectLine, CorrectLine)
	r.Add("annual-hours", WeightAnnualHours, AnnualHours)
	r.Add("consecutive-days", WeightConsecutiveDays, ConsecutiveDays)
	r.Add("zone-change-equity", WeightZoneChangeEquity, ZoneChangeEquity)
	r.Add("shift-change-equity", WeightShiftChangeEquity, ShiftChangeEquity)
	r.Add("full-coverage", WeightFullCoverage, FullCoverage)
	r.Add("workload-distribution", WeightWorkloadDistribution, WorkloadDistribution)
}

// --- Rigid predicates ---

// UniquePerDay: for every worker, at most one assignment per date,
// including the last historic assignment's date.
func UniquePerDay(in Input) (float64, error) {
	seen := map[domain.WorkerDateKey]struct{}{}
	for _, a := range in.Roster {
		k := a.WorkerDate()
		if _, ok := seen[k]; ok {
			return 0, nil
		}
		seen[k] = struct{}{}
	}
	if in.Stats != nil {
		for workerID, assignments := range in.Roster.AssignmentsByWorker() {
			h := in.Stats.Histories[workerID]
			if h == nil {
				continue
			}
			last, ok := h.LastAssignment()
			if !ok {
				continue
			}
			for _, a := range assignments {
				if a.Date == last.Date {
					return 0, nil
				}
			}
		}
	}
	return 100, nil
}

// NoOverlap: for every worker-date with >=2 assignments (sorted by start
// time), each end must be <= the next start. Considers the worker's last
// historic assignment, when dated before that date, as if prepended.
func NoOverlap(in Input) (float64, error) {
	byWorkerDate := map[domain.WorkerDateKey][]domain.Assignment{}
	for _, a := range in.Roster {
		byWorkerDate[a.WorkerDate()] = append(byWorkerDate[a.WorkerDate()], a)
	}
	for key, group := range byWorkerDate {
		sort.Slice(group, func(i, j int) bool {
			return group[i].StartMinutesOfDay() < group[j].StartMinutesOfDay()
		})
		if in.Stats != nil {
			if h := in.Stats.Histories[key.WorkerID]; h != nil {
				if last, ok := h.LastAssignment(); ok && last.Date < key.Date {
					group = append([]domain.Assignment{last}, group...)
				}
			}
		}
		if len(group) < 2 {
			continue
		}
		for i := 1; i < len(group); i++ {
			prevEnd, err := group[i-1].EndDatetime()
			if err != nil {
				continue
			}
			curStart, err := group[i].StartDatetime()
			if err != nil {
				continue
			}
			if curStart.Before(prevEnd) {
				return 0, nil
			}
		}
	}
	return 100, nil
}

// MinRest12h: between any consecutive assignments of a worker (chronological
// order, historic tail included), start_next - end_prev >= 12h.
func MinRest12h(in Input) (float64, error) {
	byWorker := in.Roster.AssignmentsByWorker()
	for workerID, assignments := range byWorker {
		all := make([]domain.Assignment, 0, len(assignments)+10)
		all = append(all, assignments...)
		if in.Stats != nil {
			if h := in.Stats.Histories[workerID]; h != nil {
				all = append(all, h.Assignments...)
			}
		}
		sort.Slice(all, func(i, j int) bool {
			if all[i].Date != all[j].Date {
				return all[i].Date < all[j].Date
			}
			return all[i].StartMinutesOfDay() < all[j].StartMinutesOfDay()
		})
		for i := 1; i < len(all); i++ {
			prevEnd, err1 := all[i-1].EndDatetime()
			curStart, err2 := all[i].StartDatetime()
			if err1 != nil || err2 != nil {
				continue
			}
			if curStart.Sub(prevEnd).Hours() < 12 {
				return 0, nil
			}
		}
	}
	return 100, nil
}

// FridayWeekendCutoff: if a worker has rest on both the Saturday and Sunday
// following a Friday they're assigned, the Friday shift must not cross
// midnight and must end at or before 22:00.
func FridayWeekendCutoff(in Input) (float64, error) {
	for _, a := range in.Roster {
		d, err := domain.ParseDateISO(a.Date)
		if err != nil {
			continue
		}
		if d.Weekday() != time.Friday {
			continue
		}
		w, ok := in.Workers[a.WorkerID]
		if !ok {
			continue
		}
		saturday := domain.FormatDateISO(d.AddDate(0, 0, 1))
		sunday := domain.FormatDateISO(d.AddDate(0, 0, 2))
		if w.HasRestDay(saturday) && w.HasRestDay(sunday) {
			crossesMidnight := a.EndHour < a.StartHour || (a.EndHour == a.StartHour && a.EndMinute < a.StartMinute)
			endsAfter22 := a.EndHour > 22 || (a.EndHour == 22 && a.EndMinute > 0)
			if crossesMidnight || endsAfter22 {
				return 0, nil
			}
		}
	}
	return 100, nil
}

// --- Soft predicates ---

func GroupT(in Input) (float64, error) {
	if len(in.Roster) == 0 {
		return 100, nil
	}
	violations := 0
	for _, a := range in.Roster {
		w := in.Workers[a.WorkerID]
		if w == nil || w.Group != domain.ReserveGroup {
			violations++
		}
	}
	return 100 * (1 - float64(violations)/float64(len(in.Roster))), nil
}

func NoWorkOnRest(in Input) (float64, error) {
	if len(in.Roster) == 0 {
		return 100, nil
	}
	violations := 0
	for _, a := range in.Roster {
		w := in.Workers[a.WorkerID]
		if w != nil && w.HasRestDay(a.Date) {
			violations++
		}
	}
	return 100 * (1 - float64(violations)/float64(len(in.Roster))), nil
}

func SkillRequired(in Input) (float64, error) {
	if len(in.Roster) == 0 {
		return 100, nil
	}
	needByKey := needLookup(in.Needs)
	violations := 0
	for _, a := range in.Roster {
		need, ok := needByKey[a.NeedKey()]
		if !ok {
			continue
		}
		w := in.Workers[a.WorkerID]
		if w == nil || !w.HasSkill(need.Skill) {
			violations++
		}
	}
	return 100 * (1 - float64(violations)/float64(len(in.Roster))), nil
}

func CorrectLine(in Input) (float64, error) {
	if len(in.Roster) == 0 {
		return 100, nil
	}
	needByKey := needLookup(in.Needs)
	violations := 0
	for _, a := range in.Roster {
		need, ok := needByKey[a.NeedKey()]
		if !ok {
			continue
		}
		w := in.Workers[a.WorkerID]
		if w == nil || w.Line != need.Line {
			violations++
		}
	}
	return 100 * (1 - float64(violations)/float64(len(in.Roster))), nil
}

func AnnualHours(in Input) (float64, error) {
	byWorker := in.Roster.AssignmentsByWorker()
	if len(byWorker) == 0 {
		return 100, nil
	}
	violations := 0
	withinStandard := 0
	for workerID, assignments := range byWorker {
		w := in.Workers[workerID]
		if w == nil {
			continue
		}
		total := w.HoursWorked
		for _, a := range assignments {
			total += a.DurationHours
		}
		if total > w.ExtendableHoursCap {
			violations++
		}
		if total <= w.StandardHoursCap {
			withinStandard++
		}
	}
	n := float64(len(byWorker))
	base := 100 * (1 - float64(violations)/n)
	bonus := 10 * (float64(withinStandard) / n)
	score := base + bonus
	if score > 100 {
		score = 100
	}
	return score, nil
}

func ConsecutiveDays(in Input) (float64, error) {
	byWorker := in.Roster.AssignmentsByWorker()
	if len(byWorker) == 0 {
		return 100, nil
	}
	excess := 0.0
	for workerID, assignments := range byWorker {
		h := &domain.WorkerHistory{WorkerID: workerID}
		if in.Stats != nil {
			if existing := in.Stats.Histories[workerID]; existing != nil {
				h.Assignments = append(h.Assignments, existing.Assignments...)
			}
		}
		h.Assignments = append(h.Assignments, assignments...)
		run := h.LongestConsecutiveDays()
		if run > 9 {
			excess += float64(run - 9)
		}
	}
	w := float64(len(byWorker))
	score := 100 - 100*excess/(5*w)
	if score < 0 {
		score = 0
	}
	return score, nil
}

func ZoneChangeEquity(in Input) (float64, error) {
	return equityScore(in, func(g *domain.GlobalStats) float64 { return g.StdevZoneChanges() })
}

func ShiftChangeEquity(in Input) (float64, error) {
	return equityScore(in, func(g *domain.GlobalStats) float64 { return g.StdevShiftChanges() })
}

// equityScore builds, for each worker assigned in this candidate roster,
// the worker's historic assignments plus the roster's, and scores on the
// population standard deviation (via sigmaOf) of those assigned workers'
// totals.
func equityScore(in Input, sigmaOf func(*domain.GlobalStats) float64) (float64, error) {
	byWorker := in.Roster.AssignmentsByWorker()
	if len(byWorker) == 0 {
		return 100, nil
	}
	merged := domain.NewGlobalStats()
	for workerID, assignments := range byWorker {
		h := merged.History(workerID)
		if in.Stats != nil {
			if existing := in.Stats.Histories[workerID]; existing != nil {
				h.Assignments = append(h.Assignments, existing.Assignments...)
			}
		}
		h.Assignments = append(h.Assignments, assignments...)
	}
	sigma := sigmaOf(merged)
	score := 100 - 100*sigma/3
	if score < 0 {
		score = 0
	}
	return score, nil
}

func FullCoverage(in Input) (float64, error) {
	if len(in.Needs) == 0 {
		return 100, nil
	}
	covered := in.Roster.ByNeedKey()
	count := 0
	for _, n := range in.Needs {
		if _, ok := covered[n.Key()]; ok {
			count++
		}
	}
	return 100 * float64(count) / float64(len(in.Needs)), nil
}

func WorkloadDistribution(in Input) (float64, error) {
	byWorker := in.Roster.AssignmentsByWorker()
	if len(byWorker) == 0 {
		return 100, nil
	}
	counts := make([]float64, 0, len(byWorker))
	total := 0.0
	for _, assignments := range byWorker {
		n := float64(len(assignments))
		counts = append(counts, n)
		total += n
	}
	mean := total / float64(len(counts))
	mad := 0.0
	for _, c := range counts {
		d := c - mean
		if d < 0 {
			d = -d
		}
		mad += d
	}
	mad /= float64(len(counts))
	score := 100 - 10*mad
	if score < 0 {
		score = 0
	}
	return score, nil
}

func needLookup(needs []domain.CoverageNeed) map[domain.NeedKey]domain.CoverageNeed {
	m := make(map[domain.NeedKey]domain.CoverageNeed, len(needs))
	for _, n := range needs {
		m[n.Key()] = n
	}
	return m
}
