package scheduler

import (
	"github.com/fgcagents/reserveroster/internal/domain"
)

// validityPenalty mirrors evalua_validesa: 50 per duplicate worker-day, 50
// per duplicate shift-day, 20 per uncovered need.
func validityPenalty(p *Params, roster domain.Roster) float64 {
	dupWorkerDay := 0
	seenWorkerDate := map[domain.WorkerDateKey]struct{}{}
	for _, a := range roster {
		k := a.WorkerDate()
		if _, ok := seenWorkerDate[k]; ok {
			dupWorkerDay++
			continue
		}
		seenWorkerDate[k] = struct{}{}
	}

	dupShiftDay := 0
	seenNeed := map[domain.NeedKey]struct{}{}
	for _, a := range roster {
		k := a.NeedKey()
		if _, ok := seenNeed[k]; ok {
			dupShiftDay++
			continue
		}
		seenNeed[k] = struct{}{}
	}

	covered := roster.ByNeedKey()
	uncovered := 0
	for _, n := range p.Needs {
		if _, ok := covered[n.Key()]; !ok {
			uncovered++
		}
	}

	return 50*float64(dupWorkerDay) + 50*float64(dupShiftDay) + 20*float64(uncovered)
}

// repair deduplicates the roster (first occurrence wins for both the
// worker-date and need-date keys) and then tries to fill any need left
// uncovered by the dedup pass (4.3.6).
func repair(p *Params, roster domain.Roster) domain.Roster {
	deduped := deduplicate(roster)
	return recoverUncovered(p, deduped)
}

func deduplicate(roster domain.Roster) domain.Roster {
	out := make(domain.Roster, 0, len(roster))
	seenWorkerDate := map[domain.WorkerDateKey]struct{}{}
	seenNeed := map[domain.NeedKey]struct{}{}
	for _, a := range roster {
		wd := a.WorkerDate()
		nk := a.NeedKey()
		if _, ok := seenWorkerDate[wd]; ok {
			continue
		}
		if _, ok := seenNeed[nk]; ok {
			continue
		}
		seenWorkerDate[wd] = struct{}{}
		seenNeed[nk] = struct{}{}
		out = append(out, a)
	}
	return out
}

func recoverUncovered(p *Params, roster domain.Roster) domain.Roster {
	covered := roster.ByNeedKey()
	occupied := map[domain.WorkerDateKey]struct{}{}
	for _, a := range roster {
		occupied[a.WorkerDate()] = struct{}{}
	}

	out := roster.Clone()
	for _, need := range p.Needs {
		if _, ok := covered[need.Key()]; ok {
			continue
		}
		win, ok := p.windowForNeed(need)
		if !ok {
			continue
		}
		workerID, ok := pickRecoveryCandidate(p, need, win, occupied, out)
		if !ok {
			continue
		}
		assignment := domain.NewAssignment(p.Workers[workerID], need, win)
		out = append(out, assignment)
		occupied[assignment.WorkerDate()] = struct{}{}
	}
	return out
}

type recoveryCandidate struct {
	workerID string
	priority int
}

// pickRecoveryCandidate ranks eligible workers by priority (4.3.6: +10 same
// zone, +10 same shift-name, +5 under-standard-cap) and returns the first,
// in priority order, that also satisfies 12-hour rest.
func pickRecoveryCandidate(p *Params, need domain.CoverageNeed, win domain.ServiceWindow, occupied map[domain.WorkerDateKey]struct{}, roster domain.Roster) (string, bool) {
	var candidates []recoveryCandidate
	for id, w := range p.Workers {
		if !w.IsReserve() {
			continue
		}
		if _, busy := occupied[domain.WorkerDateKey{WorkerID: id, Date: need.Date}]; busy {
			continue
		}
		if w.HasRestDay(need.Date) {
			continue
		}
		if w.Line != need.Line {
			continue
		}
		if need.Skill != "" && !w.HasSkill(need.Skill) {
			continue
		}
		priority := 0
		if !w.IsZoneChange(need.Zone) {
			priority += 10
		}
		if !w.IsShiftChange(need.Rotation, win.StartHour) {
			priority += 10
		}
		if w.WithinStandardCap() {
			priority += 5
		}
		candidates = append(candidates, recoveryCandidate{workerID: id, priority: priority})
	}

	sortByPriorityDesc(candidates, func(i int) int { return candidates[i].priority })

	for _, c := range candidates {
		if satisfiesRest12h(c.workerID, need.Date, win, roster, p.Stats) {
			return c.workerID, true
		}
	}
	return "", false
}
