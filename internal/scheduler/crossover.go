package scheduler

import (
	"github.com/fgcagents/reserveroster/internal/domain"
)

// crossover produces a child roster from two parents by walking the needs
// list and, for each (shift, date) key, picking whichever parent's
// assignment (if any) survives the (worker, date) occupancy check, weighted
// stochastically toward the fitter candidate when both survive (4.3.4).
func crossover(p *Params, a, b domain.Roster) domain.Roster {
	aByNeed := a.ByNeedKey()
	bByNeed := b.ByNeedKey()

	child := make(domain.Roster, 0, len(p.Needs))
	occupied := map[domain.WorkerDateKey]struct{}{}

	for _, need := range p.Needs {
		key := need.Key()
		fromA, okA := aByNeed[key]
		fromB, okB := bByNeed[key]

		if okA {
			if _, taken := occupied[fromA.WorkerDate()]; taken {
				okA = false
			}
		}
		if okB {
			if _, taken := occupied[fromB.WorkerDate()]; taken {
				okB = false
			}
		}

		var chosen domain.Assignment
		switch {
		case okA && okB:
			score1 := crossoverScore(p, fromA)
			score2 := crossoverScore(p, fromB)
			if score1+score2 == 0 {
				if p.Rand.Intn(2) == 0 {
					chosen = fromA
				} else {
					chosen = fromB
				}
			} else if p.Rand.Float64() < float64(score1)/float64(score1+score2) {
				chosen = fromA
			} else {
				chosen = fromB
			}
		case okA:
			chosen = fromA
		case okB:
			chosen = fromB
		default:
			continue
		}

		child = append(child, chosen)
		occupied[chosen.WorkerDate()] = struct{}{}
	}
	return child
}

// crossoverScore scores an assignment's worker for crossover tie-breaking:
// +2 under standard cap, +1 no zone change, +1 no shift change.
func crossoverScore(p *Params, a domain.Assignment) int {
	w, ok := p.Workers[a.WorkerID]
	if !ok {
		return 0
	}
	score := 0
	if w.WithinStandardCap() {
		score += 2
	}
	if !a.IsZoneChange {
		score++
	}
	if !a.IsShiftChange {
		score++
	}
	return score
}
