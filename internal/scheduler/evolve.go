package scheduler

import (
	"context"
	"math"
	"sort"
	"sync/atomic"

	"github.com/fgcagents/reserveroster/internal/constraint"
	"github.com/fgcagents/reserveroster/internal/domain"
)

// ProgressCallback reports generation index (1-based), total generations,
// and the current best total score. Invocations for a given run are
// totally ordered and monotonic in generation index.
type ProgressCallback func(generation, totalGenerations int, bestScore float64)

// CompletionCallback reports the terminal outcome of a run.
type CompletionCallback func(success bool, best domain.Roster, detail constraint.Result, err error)

// GenerationCallback fires once per generation processed, unthrottled
// (unlike ProgressCallback, which fires only every 10th generation and on
// the last one, to limit state-mirroring writes), so callers that just need a tally of work done
// don't miss any.
type GenerationCallback func(generation int)

// Scheduler runs the evolutionary algorithm described in 4.3 against a
// fixed Params configuration.
type Scheduler struct {
	params  *Params
	running atomic.Bool

	OnProgress   ProgressCallback
	OnCompletion CompletionCallback
	OnGeneration GenerationCallback
}

// New builds a Scheduler, applying spec defaults to any unset Params field.
func New(params Params) *Scheduler {
	params.applyDefaults()
	return &Scheduler{params: &params}
}

// Cancel requests cooperative cancellation. Checked only at generation
// boundaries, so cancellation may be delayed up to one generation.
func (s *Scheduler) Cancel() {
	s.running.Store(false)
}

// Run executes the evolutionary loop for up to s.params.Generations
// generations (or until Cancel is called) and returns the best roster
// found, mirroring genetica.executa (4.3.7).
func (s *Scheduler) Run(ctx context.Context) (domain.Roster, constraint.Result, error) {
	s.running.Store(true)
	defer s.running.Store(false)

	pop := generateInitialPopulation(s.params)
	sortPopulationDesc(pop)

	bestGlobal := pop[0]
	stagnantGenerations := 0

	for g := 1; g <= s.params.Generations; g++ {
		if ctx.Err() != nil || !s.running.Load() {
			break
		}

		sortPopulationDesc(pop)
		next := make([]candidate, 0, len(pop))
		next = append(next, pop[:min(eliteCount, len(pop))]...)

		for len(next) < s.params.PopulationSize {
			parentA := tournamentSelect(s.params, pop)
			parentB := tournamentSelect(s.params, pop)

			child := crossover(s.params, parentA.Roster, parentB.Roster)
			mutationProb := adaptiveMutationProb(stagnantGenerations)
			child = mutate(s.params, child, mutationProb)

			penalty := validityPenalty(s.params, child)
			if penalty > 50 {
				child = repair(s.params, child)
			}
			child = repair(s.params, child)

			result := s.params.evaluate(child)
			result = applyValidityPenalty(result, penalty)
			next = append(next, candidate{Roster: child, Result: result})
		}
		pop = next

		sortPopulationDesc(pop)
		if pop[0].Result.Total > bestGlobal.Result.Total {
			bestGlobal = pop[0]
			stagnantGenerations = 0
		} else {
			stagnantGenerations++
		}

		if stagnantGenerations > stagnationThreshold {
			pop = restartPopulation(s.params, pop)
			stagnantGenerations = 0
		}

		if s.OnProgress != nil && (g%10 == 0 || g == s.params.Generations) {
			s.OnProgress(g, s.params.Generations, bestGlobal.Result.Total)
		}
		if s.OnGeneration != nil {
			s.OnGeneration(g)
		}
	}

	success := !isNegativeInfinity(bestGlobal.Result.Total)
	var err error
	if !success {
		err = errAllRigidConstraintsUnsatisfiable
	}
	if s.OnCompletion != nil {
		s.OnCompletion(success, bestGlobal.Roster, bestGlobal.Result, err)
	}
	return bestGlobal.Roster, bestGlobal.Result, err
}

// adaptiveMutationProb mirrors 4.3.5's p := min(0.35, 0.05 + 0.20*stagnant/25).
func adaptiveMutationProb(stagnantGenerations int) float64 {
	p := 0.05 + 0.20*float64(stagnantGenerations)/25
	if p > 0.35 {
		p = 0.35
	}
	return p
}

// applyValidityPenalty subtracts 5% of the validity penalty from a result's
// total, leaving per-constraint detail untouched.
func applyValidityPenalty(result constraint.Result, penalty float64) constraint.Result {
	if isNegativeInfinity(result.Total) {
		return result
	}
	result.Total -= validityPenaltyWeight * penalty
	return result
}

// restartPopulation keeps the top restartSurvivors individuals and
// regenerates the rest with forced high mutation (p=0.5), per the
// stagnation-restart rule.
func restartPopulation(p *Params, pop []candidate) []candidate {
	survivors := min(restartSurvivors, len(pop))
	next := make([]candidate, 0, len(pop))
	next = append(next, pop[:survivors]...)

	for len(next) < len(pop) {
		roster := generateRandomSolution(p)
		roster = mutate(p, roster, 0.5)
		roster = repair(p, roster)
		result := p.evaluate(roster)
		result = applyValidityPenalty(result, validityPenalty(p, roster))
		next = append(next, candidate{Roster: roster, Result: result})
	}
	return next
}

func sortPopulationDesc(pop []candidate) {
	sort.SliceStable(pop, func(i, j int) bool {
		return pop[i].Result.Total > pop[j].Result.Total
	})
}

func isNegativeInfinity(v float64) bool {
	return math.IsInf(v, -1)
}

var errAllRigidConstraintsUnsatisfiable = schedulerError("no roster satisfied every rigid constraint")

type schedulerError string

func (e schedulerError) Error() string { return string(e) }
