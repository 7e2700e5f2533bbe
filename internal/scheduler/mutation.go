package scheduler

import (
	"github.com/fgcagents/reserveroster/internal/domain"
)

// mutate walks the roster and, with probability p for each assignment,
// replaces its worker with a uniformly-chosen eligible alternative (4.3.5).
func mutate(params *Params, roster domain.Roster, p float64) domain.Roster {
	if len(roster) == 0 {
		return roster
	}
	out := roster.Clone()
	needByKey := make(map[domain.NeedKey]domain.CoverageNeed, len(params.Needs))
	for _, n := range params.Needs {
		needByKey[n.Key()] = n
	}

	occupied := map[domain.WorkerDateKey]struct{}{}
	for _, a := range out {
		occupied[a.WorkerDate()] = struct{}{}
	}

	for i, a := range out {
		if params.Rand.Float64() >= p {
			continue
		}
		need, ok := needByKey[a.NeedKey()]
		if !ok {
			continue
		}
		win, ok := params.windowForNeed(need)
		if !ok {
			continue
		}

		delete(occupied, a.WorkerDate())
		replacement, ok := pickMutationCandidate(params, need, win, a.WorkerID, occupied, out)
		if !ok {
			occupied[a.WorkerDate()] = struct{}{}
			continue
		}

		out[i] = domain.NewAssignment(params.Workers[replacement], need, win)
		occupied[out[i].WorkerDate()] = struct{}{}
	}
	return out
}

// pickMutationCandidate returns a worker id uniformly chosen among eligible
// alternatives (excluding the currently assigned worker).
func pickMutationCandidate(p *Params, need domain.CoverageNeed, win domain.ServiceWindow, currentWorkerID string, occupied map[domain.WorkerDateKey]struct{}, roster domain.Roster) (string, bool) {
	var candidates []string
	for id, w := range p.Workers {
		if id == currentWorkerID {
			continue
		}
		if !eligibleForNeed(p, w, need, win, occupied, roster) {
			continue
		}
		candidates = append(candidates, id)
	}
	if len(candidates) == 0 {
		return "", false
	}
	return candidates[p.Rand.Intn(len(candidates))], true
}
