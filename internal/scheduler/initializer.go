package scheduler

import (
	"github.com/fgcagents/reserveroster/internal/domain"
)

const topCandidatesConsidered = 10

// generateRandomSolution builds one feasible roster by walking the needs
// list in order and, for each, picking a weighted-random candidate from the
// top-priority eligible workers (4.3.1).
func generateRandomSolution(p *Params) domain.Roster {
	roster := make(domain.Roster, 0, len(p.Needs))
	occupied := map[domain.WorkerDateKey]struct{}{}

	for _, need := range p.Needs {
		win, ok := p.windowForNeed(need)
		if !ok {
			continue
		}
		picked, ok := pickInitialCandidate(p, need, win, roster, occupied)
		if !ok {
			continue
		}
		assignment := domain.NewAssignment(p.Workers[picked], need, win)
		roster = append(roster, assignment)
		occupied[assignment.WorkerDate()] = struct{}{}
	}
	return roster
}

// pickInitialCandidate filters eligible workers for need, scores them by
// priority, and returns one worker id chosen from the top 10 weighted by
// max(1, priority).
func pickInitialCandidate(p *Params, need domain.CoverageNeed, win domain.ServiceWindow, roster domain.Roster, occupied map[domain.WorkerDateKey]struct{}) (string, bool) {
	type scored struct {
		workerID string
		priority int
	}
	var candidates []scored

	assignmentCounts := countAssignmentsByWorker(roster)

	for id, w := range p.Workers {
		if !eligibleForNeed(p, w, need, win, occupied, roster) {
			continue
		}
		priority := 0
		if w.WithinStandardCap() {
			priority += 10
		}
		if !w.IsZoneChange(need.Zone) {
			priority += 5
		}
		if !w.IsShiftChange(need.Rotation, win.StartHour) {
			priority += 5
		}
		priority -= 2 * assignmentCounts[id]
		candidates = append(candidates, scored{workerID: id, priority: priority})
	}
	if len(candidates) == 0 {
		return "", false
	}

	sortByPriorityDesc(candidates, func(i int) int { return candidates[i].priority })
	if len(candidates) > topCandidatesConsidered {
		candidates = candidates[:topCandidatesConsidered]
	}

	totalWeight := 0
	weights := make([]int, len(candidates))
	for i, c := range candidates {
		weight := c.priority
		if weight < 1 {
			weight = 1
		}
		weights[i] = weight
		totalWeight += weight
	}

	r := p.Rand.Intn(totalWeight)
	cum := 0
	for i, weight := range weights {
		cum += weight
		if r < cum {
			return candidates[i].workerID, true
		}
	}
	return candidates[len(candidates)-1].workerID, true
}

// eligibleForNeed applies the full 4.3.1 eligibility filter for the initial
// random construction (also reused, with minor variation, by mutation).
func eligibleForNeed(p *Params, w *domain.Worker, need domain.CoverageNeed, win domain.ServiceWindow, occupied map[domain.WorkerDateKey]struct{}, roster domain.Roster) bool {
	if !w.IsReserve() {
		return false
	}
	if p.Exclude.Excluded(need.Date, w.ID) {
		return false
	}
	if w.HasRestDay(need.Date) {
		return false
	}
	if w.Line != need.Line {
		return false
	}
	if need.Skill != "" && !w.HasSkill(need.Skill) {
		return false
	}
	if w.HoursWorked+win.DurationHours() > w.ExtendableHoursCap {
		return false
	}
	if _, busy := occupied[domain.WorkerDateKey{WorkerID: w.ID, Date: need.Date}]; busy {
		return false
	}
	return satisfiesRest12h(w.ID, need.Date, win, roster, p.Stats)
}

func countAssignmentsByWorker(roster domain.Roster) map[string]int {
	counts := map[string]int{}
	for _, a := range roster {
		counts[a.WorkerID]++
	}
	return counts
}

// sortByPriorityDesc is a tiny insertion sort: candidate lists are small
// (bounded by the worker pool size) so O(n^2) is fine and keeps ties in
// encounter order, matching the reference implementation's stable sort.
func sortByPriorityDesc[T any](items []T, priority func(i int) int) {
	for i := 1; i < len(items); i++ {
		j := i
		for j > 0 && priority(j-1) < priority(j) {
			items[j-1], items[j] = items[j], items[j-1]
			j--
		}
	}
}
