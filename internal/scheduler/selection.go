package scheduler

// tournamentSelect samples tournamentSize individuals without replacement
// and returns the one with the highest total score (4.3.3).
func tournamentSelect(p *Params, pop []candidate) candidate {
	n := len(pop)
	k := tournamentSize
	if k > n {
		k = n
	}
	idxs := p.Rand.Perm(n)[:k]

	best := pop[idxs[0]]
	for _, idx := range idxs[1:] {
		if pop[idx].Result.Total > best.Result.Total {
			best = pop[idx]
		}
	}
	return best
}
