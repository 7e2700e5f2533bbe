// Package constraint implements the constraint registry and the 14 named
// predicates (4 rigid, 10 soft) used to score a candidate roster.
package constraint

import (
	"fmt"
	"math"

	"github.com/fgcagents/reserveroster/internal/domain"
)

// Rigid is the sentinel weight for rigid constraints: any predicate
// registered at this weight that scores 0 collapses the roster's total to
// a sentinel (math.Inf(-1)), making it unselectable.
const Rigid = math.MaxFloat64

// Predicate scores a roster in [0, 100]. Inputs mirror spec.md §4.2:
// the candidate roster, the known workers/shifts/needs/calendar, and the
// global fairness statistics.
type Predicate func(input Input) (score float64, err error)

// Input bundles everything a predicate needs to evaluate a roster.
type Input struct {
	Roster   domain.Roster
	Workers  map[string]*domain.Worker
	Shifts   map[string]domain.ShiftTemplate
	Needs    []domain.CoverageNeed
	Calendar domain.Calendar
	Stats    *domain.GlobalStats
}

// Constraint is a (predicate, weight, label) triple.
type Constraint struct {
	Label     string
	Weight    float64
	Predicate Predicate
}

// ConstraintDetail is the per-constraint evaluation outcome.
type ConstraintDetail struct {
	RawScore float64
	Weighted float64
	Error    string // non-empty if the predicate panicked or errored
}

// Result is the outcome of evaluating a roster against every registered
// constraint.
type Result struct {
	Total float64
	Detail map[string]ConstraintDetail
}

// Registry holds an ordered list of constraints and evaluates rosters
// against all of them, mirroring RestriccionManager.
type Registry struct {
	constraints []Constraint
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends a constraint to the registry.
func (r *Registry) Add(label string, weight float64, predicate Predicate) {
	r.constraints = append(r.constraints, Constraint{Label: label, Weight: weight, Predicate: predicate})
}

// Evaluate applies every registered predicate to the roster, multiplying
// each [0,100] raw score by its weight and summing. A rigid predicate
// (weight == Rigid) that scores 0 collapses Total to negative infinity.
// Predicate panics are recovered and reported as an error detail
// contributing 0 to the total; evaluation continues for the remaining
// constraints.
func (r *Registry) Evaluate(input Input) Result {
	result := Result{Detail: make(map[string]ConstraintDetail, len(r.constraints))}

	collapsed := false
	for _, c := range r.constraints {
		raw, errNote := r.safeEvaluate(c, input)

		detail := ConstraintDetail{RawScore: raw, Error: errNote}
		if errNote != "" {
			detail.Weighted = 0
			result.Detail[c.Label] = detail
			continue
		}

		if c.Weight == Rigid {
			if raw <= 0 {
				collapsed = true
				detail.Weighted = math.Inf(-1)
			} else {
				detail.Weighted = 0 // rigid constraints don't contribute positively
			}
		} else {
			detail.Weighted = raw * c.Weight
		}
		result.Detail[c.Label] = detail
	}

	if collapsed {
		result.Total = math.Inf(-1)
		return result
	}

	total := 0.0
	for _, c := range r.constraints {
		if c.Weight == Rigid {
			continue
		}
		total += result.Detail[c.Label].Weighted
	}
	result.Total = total
	return result
}

func (r *Registry) safeEvaluate(c Constraint, input Input) (raw float64, errNote string) {
	defer func() {
		if rec := recover(); rec != nil {
			errNote = fmt.Sprintf("panic: %v", rec)
			raw = 0
		}
	}()
	score, err := c.Predicate(input)
	if err != nil {
		return 0, err.Error()
	}
	return score, ""
}
