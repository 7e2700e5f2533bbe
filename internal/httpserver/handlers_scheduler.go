package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fgcagents/reserveroster/internal/config"
	"github.com/fgcagents/reserveroster/internal/constraint"
	"github.com/fgcagents/reserveroster/internal/domain"
	"github.com/fgcagents/reserveroster/internal/scheduler"
	"github.com/fgcagents/reserveroster/internal/store"
	"github.com/fgcagents/reserveroster/internal/telemetry"
)

// runMetadata carries the persistence parameters a run was started with,
// looked up by id once the run finishes (the scheduler's completion hook
// only carries the run's id and final state).
type runMetadata struct {
	dateStart, dateEnd, onDuplicate string
	populationSize, generations     int
	started                         time.Time
}

// SchedulerHandler wires the evolutionary scheduler's invocation surface:
// starting, polling, and cancelling background runs.
type SchedulerHandler struct {
	DB       *pgxpool.Pool
	Registry *scheduler.RunRegistry
	Cfg      *config.Config
	Logger   *slog.Logger

	mu      sync.Mutex
	pending map[string]runMetadata
}

// Mount registers the scheduler routes on r and wires the registry's
// single completion hook to this handler's persistence logic.
func (h *SchedulerHandler) Mount(r chi.Router) {
	h.mu.Lock()
	h.pending = map[string]runMetadata{}
	h.mu.Unlock()
	h.Registry.OnFinished = h.handleRunFinished
	h.Registry.OnGeneration = func(id string, generation int) {
		telemetry.SchedulerGenerationsProcessedTotal.Inc()
	}

	r.Post("/scheduler/runs", h.handleStartRun)
	r.Get("/scheduler/runs/{id}", h.handleGetRun)
	r.Post("/scheduler/runs/{id}/cancel", h.handleCancelRun)
}

// startRunRequest is the validated request body for starting a run.
type startRunRequest struct {
	DateStart      string  `json:"date_start" validate:"required"`
	DateEnd        string  `json:"date_end" validate:"required"`
	PopulationSize int     `json:"population_size"`
	Generations    int     `json:"generations"`
	MutationProb   float64 `json:"mutation_prob"`
	OnDuplicate    string  `json:"on_duplicate" validate:"omitempty,oneof=replace_all add_new_only"`
	Seed           *int64  `json:"seed"`
}

type startRunResponse struct {
	ID string `json:"id"`
}

func (h *SchedulerHandler) handleStartRun(w http.ResponseWriter, r *http.Request) {
	var req startRunRequest
	if err := Decode(r, &req); err != nil {
		RespondError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	if errs := Validate(req); errs != nil {
		Respond(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
			Error: "validation_failed", Message: "request failed validation", Details: errs,
		})
		return
	}
	if req.OnDuplicate == "" {
		req.OnDuplicate = store.OnDuplicateReplaceAll
	}

	start, err := domain.ParseDateISO(req.DateStart)
	if err != nil {
		RespondError(w, http.StatusBadRequest, "invalid_date", err.Error())
		return
	}
	end, err := domain.ParseDateISO(req.DateEnd)
	if err != nil {
		RespondError(w, http.StatusBadRequest, "invalid_date", err.Error())
		return
	}
	dates, err := domain.DateRange(start, end)
	if err != nil {
		RespondError(w, http.StatusBadRequest, "invalid_range", err.Error())
		return
	}
	if len(dates) > h.Cfg.SchedulerMaxRangeDays {
		RespondError(w, http.StatusBadRequest, "range_too_large",
			fmt.Sprintf("date range spans %d days, exceeds the %d-day cap", len(dates), h.Cfg.SchedulerMaxRangeDays))
		return
	}

	ctx := r.Context()
	st := store.New(h.DB)

	workers, err := st.LoadReserveWorkers(ctx)
	if err != nil {
		h.Logger.Error("loading workers", "error", err)
		RespondError(w, http.StatusInternalServerError, "internal_error", "failed to load workers")
		return
	}
	shifts, err := st.LoadShiftTemplates(ctx)
	if err != nil {
		h.Logger.Error("loading shift templates", "error", err)
		RespondError(w, http.StatusInternalServerError, "internal_error", "failed to load shift templates")
		return
	}
	calendar, err := st.LoadCalendar(ctx, req.DateStart, req.DateEnd)
	if err != nil {
		h.Logger.Error("loading calendar", "error", err)
		RespondError(w, http.StatusInternalServerError, "internal_error", "failed to load calendar")
		return
	}
	needs, err := st.LoadNeeds(ctx, req.DateStart, req.DateEnd)
	if err != nil {
		h.Logger.Error("loading coverage needs", "error", err)
		RespondError(w, http.StatusInternalServerError, "internal_error", "failed to load coverage needs")
		return
	}
	stats, err := st.LoadGlobalStats(ctx)
	if err != nil {
		h.Logger.Error("loading history", "error", err)
		RespondError(w, http.StatusInternalServerError, "internal_error", "failed to load history")
		return
	}

	var exclude scheduler.ExcludeMap
	if req.OnDuplicate == store.OnDuplicateAddNewOnly {
		exclude, err = st.LoadExcludeMap(ctx, req.DateStart, req.DateEnd)
		if err != nil {
			h.Logger.Error("loading existing roster", "error", err)
			RespondError(w, http.StatusInternalServerError, "internal_error", "failed to load existing roster")
			return
		}
	}

	registry := constraint.NewRegistry()
	constraint.RegisterDefault(registry)

	randSource := rand.NewSource(time.Now().UnixNano())
	if req.Seed != nil {
		randSource = rand.NewSource(*req.Seed)
	}

	params := scheduler.Params{
		Workers:        workers,
		Shifts:         shifts,
		Needs:          needs,
		Calendar:       calendar,
		Registry:       registry,
		Stats:          stats,
		Exclude:        exclude,
		PopulationSize: req.PopulationSize,
		Generations:    req.Generations,
		MutationProb:   req.MutationProb,
		Rand:           rand.New(randSource),
	}

	telemetry.SchedulerRunsStartedTotal.Inc()
	runID := h.Registry.Start(ctx, params)

	h.mu.Lock()
	h.pending[runID] = runMetadata{
		dateStart:      req.DateStart,
		dateEnd:        req.DateEnd,
		onDuplicate:    req.OnDuplicate,
		populationSize: params.PopulationSize,
		generations:    params.Generations,
		started:        time.Now(),
	}
	h.mu.Unlock()

	Respond(w, http.StatusAccepted, startRunResponse{ID: runID})
}

// handleRunFinished writes the roster (on success) and the durable run
// record once a run leaves the running state. It is the registry's single,
// permanently-wired completion hook (set once in Mount), dispatching by id
// rather than by closure to stay correct under concurrent runs.
func (h *SchedulerHandler) handleRunFinished(runID string, state scheduler.RunState) {
	h.mu.Lock()
	meta, ok := h.pending[runID]
	delete(h.pending, runID)
	h.mu.Unlock()
	if !ok {
		h.Logger.Error("no pending metadata for finished run", "run_id", runID)
		return
	}

	ctx := context.Background()

	if state.Status == scheduler.RunStatusCompleted {
		err := store.WithTx(ctx, h.DB, func(tx *store.Store) error {
			if err := tx.SaveRoster(ctx, meta.dateStart, meta.dateEnd, state.Roster, meta.onDuplicate); err != nil {
				return err
			}
			return tx.AppendHistory(ctx, state.Roster)
		})
		if err != nil {
			h.Logger.Error("persisting roster and history", "run_id", runID, "error", err)
		} else {
			telemetry.SchedulerBestScore.Set(state.BestScore)
		}
	}
	telemetry.SchedulerRunsFinishedTotal.WithLabelValues(string(state.Status)).Inc()
	telemetry.SchedulerRunDuration.WithLabelValues(string(state.Status)).Observe(time.Since(meta.started).Seconds())

	st := store.New(h.DB)
	if err := st.SaveRunRecord(ctx, runID, meta.dateStart, meta.dateEnd, meta.onDuplicate, meta.populationSize, meta.generations, state); err != nil {
		h.Logger.Error("saving run record", "run_id", runID, "error", err)
	}
}

func (h *SchedulerHandler) handleGetRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	state, ok := h.Registry.Get(r.Context(), id)
	if !ok {
		RespondError(w, http.StatusNotFound, "not_found", "run not found")
		return
	}
	Respond(w, http.StatusOK, state)
}

func (h *SchedulerHandler) handleCancelRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.Registry.Cancel(id) {
		RespondError(w, http.StatusNotFound, "not_found", "run not found or already finished")
		return
	}
	Respond(w, http.StatusAccepted, map[string]string{"status": "cancelling"})
}
