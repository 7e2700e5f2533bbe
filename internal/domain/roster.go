package domain

// Roster is an ordered candidate solution: a sequence of assignments. It is
// treated with value semantics — crossover, mutation, and repair all
// produce a new Roster rather than mutating one in place, though the
// underlying slice is grown with append for efficiency within a single
// operator.
type Roster []Assignment

// Clone returns an independent copy, so callers can mutate the result
// without aliasing the original slice's backing array.
func (r Roster) Clone() Roster {
	out := make(Roster, len(r))
	copy(out, r)
	return out
}

// ByWorkerDate indexes the roster by (worker, date) for O(1) occupancy
// checks.
func (r Roster) ByWorkerDate() map[WorkerDateKey]Assignment {
	idx := make(map[WorkerDateKey]Assignment, len(r))
	for _, a := range r {
		idx[a.WorkerDate()] = a
	}
	return idx
}

// ByNeedKey indexes the roster by (shift, date) for O(1) coverage checks.
func (r Roster) ByNeedKey() map[NeedKey]Assignment {
	idx := make(map[NeedKey]Assignment, len(r))
	for _, a := range r {
		idx[a.NeedKey()] = a
	}
	return idx
}

// AssignmentsByWorker groups assignments by worker id.
func (r Roster) AssignmentsByWorker() map[string][]Assignment {
	out := map[string][]Assignment{}
	for _, a := range r {
		out[a.WorkerID] = append(out[a.WorkerID], a)
	}
	return out
}

// HasDoubleBooking reports whether any two assignments share a (worker, date).
func (r Roster) HasDoubleBooking() bool {
	seen := map[WorkerDateKey]struct{}{}
	for _, a := range r {
		k := a.WorkerDate()
		if _, ok := seen[k]; ok {
			return true
		}
		seen[k] = struct{}{}
	}
	return false
}

// HasDuplicateCoverage reports whether any two assignments share a (shift, date).
func (r Roster) HasDuplicateCoverage() bool {
	seen := map[NeedKey]struct{}{}
	for _, a := range r {
		k := a.NeedKey()
		if _, ok := seen[k]; ok {
			return true
		}
		seen[k] = struct{}{}
	}
	return false
}
