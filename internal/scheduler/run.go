package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/fgcagents/reserveroster/internal/constraint"
	"github.com/fgcagents/reserveroster/internal/domain"
)

// RunStatus is the lifecycle state of a scheduling run.
type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
	RunStatusCancelled RunStatus = "cancelled"
)

// RunState is the externally-visible snapshot of a run, served by
// GET /api/v1/scheduler/runs/{id}.
type RunState struct {
	ID               string    `json:"id"`
	Status           RunStatus `json:"status"`
	Generation       int       `json:"generation"`
	TotalGenerations int       `json:"total_generations"`
	BestScore        float64   `json:"best_score"`
	Error            string    `json:"error,omitempty"`
	Roster           domain.Roster `json:"roster,omitempty"`
}

const redisKeyPrefix = "reserveroster:scheduler:run:"

// RunRegistry tracks in-flight and completed runs in memory, mirroring each
// state transition into Redis so GET /api/v1/scheduler/runs/{id} works
// across replicas that didn't start the run.
type RunRegistry struct {
	redis *redis.Client
	ttl   time.Duration

	mu      sync.RWMutex
	runs    map[string]*RunState
	cancels map[string]*Scheduler

	// OnFinished, if set, is invoked once after a run's goroutine returns
	// (after the completion callback has already updated and persisted its
	// state), so a caller can chain further side effects such as writing
	// the roster to the store.
	OnFinished func(id string, state RunState)

	// OnGeneration, if set, is invoked once per generation processed by any
	// run, unthrottled, so a caller can tally total work done (e.g. for
	// metrics) without it being gated by the progress-reporting cadence.
	OnGeneration func(id string, generation int)
}

// NewRunRegistry builds a registry backed by the given Redis client. A nil
// client disables cross-replica mirroring but keeps in-process tracking.
func NewRunRegistry(redisClient *redis.Client, ttl time.Duration) *RunRegistry {
	return &RunRegistry{
		redis:   redisClient,
		ttl:     ttl,
		runs:    map[string]*RunState{},
		cancels: map[string]*Scheduler{},
	}
}

// Start launches a new run in a background goroutine and returns its id
// immediately, per the concurrency model's "background executor" contract.
func (reg *RunRegistry) Start(ctx context.Context, params Params) string {
	id := uuid.NewString()
	state := &RunState{ID: id, Status: RunStatusRunning, TotalGenerations: params.Generations}
	if state.TotalGenerations == 0 {
		state.TotalGenerations = DefaultGenerations
	}

	sched := New(params)
	sched.OnProgress = func(generation, total int, bestScore float64) {
		reg.update(id, func(s *RunState) {
			s.Generation = generation
			s.TotalGenerations = total
			s.BestScore = bestScore
		})
	}
	sched.OnGeneration = func(generation int) {
		if reg.OnGeneration != nil {
			reg.OnGeneration(id, generation)
		}
	}
	sched.OnCompletion = func(success bool, best domain.Roster, detail constraint.Result, err error) {
		reg.update(id, func(s *RunState) {
			// A cancelled run keeps its status and carries no roster, so
			// nothing is persisted for it.
			if s.Status == RunStatusCancelled {
				return
			}
			s.Roster = best
			s.BestScore = detail.Total
			if !success {
				s.Status = RunStatusFailed
				if err != nil {
					s.Error = err.Error()
				}
				return
			}
			s.Status = RunStatusCompleted
		})
	}

	reg.mu.Lock()
	reg.runs[id] = state
	reg.cancels[id] = sched
	reg.mu.Unlock()
	reg.persist(ctx, state)

	go func() {
		_, _, _ = sched.Run(context.Background())
		reg.mu.Lock()
		delete(reg.cancels, id)
		reg.mu.Unlock()

		if reg.OnFinished != nil {
			if final, ok := reg.Get(context.Background(), id); ok {
				reg.OnFinished(id, *final)
			}
		}
	}()

	return id
}

// Cancel requests cooperative cancellation of a running run. Returns false
// if no such run is tracked locally (it may be running on another replica).
func (reg *RunRegistry) Cancel(id string) bool {
	reg.mu.Lock()
	sched, ok := reg.cancels[id]
	reg.mu.Unlock()
	if !ok {
		return false
	}
	sched.Cancel()
	reg.update(id, func(s *RunState) {
		if s.Status == RunStatusRunning {
			s.Status = RunStatusCancelled
		}
	})
	return true
}

// Get returns the current state of a run, checking the in-process map first
// and falling back to Redis (for a run started on a different replica).
func (reg *RunRegistry) Get(ctx context.Context, id string) (*RunState, bool) {
	reg.mu.RLock()
	state, ok := reg.runs[id]
	reg.mu.RUnlock()
	if ok {
		cp := *state
		return &cp, true
	}
	if reg.redis == nil {
		return nil, false
	}
	raw, err := reg.redis.Get(ctx, redisKeyPrefix+id).Bytes()
	if err != nil {
		return nil, false
	}
	var remote RunState
	if err := json.Unmarshal(raw, &remote); err != nil {
		return nil, false
	}
	return &remote, true
}

func (reg *RunRegistry) update(id string, mutate func(*RunState)) {
	reg.mu.Lock()
	state, ok := reg.runs[id]
	var snapshot RunState
	if ok {
		mutate(state)
		snapshot = *state
	}
	reg.mu.Unlock()
	if ok {
		reg.persist(context.Background(), &snapshot)
	}
}

func (reg *RunRegistry) persist(ctx context.Context, state *RunState) {
	if reg.redis == nil {
		return
	}
	payload, err := json.Marshal(state)
	if err != nil {
		return
	}
	_ = reg.redis.Set(ctx, fmt.Sprintf("%s%s", redisKeyPrefix, state.ID), payload, reg.ttl).Err()
}
