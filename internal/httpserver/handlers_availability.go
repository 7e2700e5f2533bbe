package httpserver

import (
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fgcagents/reserveroster/internal/availability"
	"github.com/fgcagents/reserveroster/internal/config"
	"github.com/fgcagents/reserveroster/internal/domain"
	"github.com/fgcagents/reserveroster/internal/store"
	"github.com/fgcagents/reserveroster/internal/telemetry"
)

// AvailabilityHandler runs the greedy availability analyzer synchronously,
// since it is cheap enough (O(days × shifts)) to not need the background-run
// machinery the evolutionary scheduler requires.
type AvailabilityHandler struct {
	DB     *pgxpool.Pool
	Cfg    *config.Config
	Logger *slog.Logger
}

// Mount registers the availability routes on r.
func (h *AvailabilityHandler) Mount(r chi.Router) {
	r.Post("/availability/reports", h.handleCreateReport)
}

type createReportRequest struct {
	DateStart string `json:"date_start" validate:"required"`
	DateEnd   string `json:"date_end" validate:"required"`
}

type reportResponse struct {
	Covered       []availability.Covered   `json:"covered"`
	Uncovered     []availability.Uncovered `json:"uncovered"`
	CoverageRatio float64                  `json:"coverage_ratio"`
}

func (h *AvailabilityHandler) handleCreateReport(w http.ResponseWriter, r *http.Request) {
	var req createReportRequest
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

	startDate, err := domain.ParseDateISO(req.DateStart)
	if err != nil {
		RespondError(w, http.StatusBadRequest, "invalid_date", err.Error())
		return
	}
	endDate, err := domain.ParseDateISO(req.DateEnd)
	if err != nil {
		RespondError(w, http.StatusBadRequest, "invalid_date", err.Error())
		return
	}
	dates, err := domain.DateRange(startDate, endDate)
	if err != nil {
		RespondError(w, http.StatusBadRequest, "invalid_range", err.Error())
		return
	}
	if len(dates) > h.Cfg.AvailabilityMaxRangeDays {
		RespondError(w, http.StatusBadRequest, "range_too_large",
			fmt.Sprintf("date range spans %d days, exceeds the %d-day cap", len(dates), h.Cfg.AvailabilityMaxRangeDays))
		return
	}

	ctx := r.Context()
	st := store.New(h.DB)

	workersByPlaza, err := st.LoadWorkersByPlaza(ctx)
	if err != nil {
		h.Logger.Error("loading workers by plaza", "error", err)
		RespondError(w, http.StatusInternalServerError, "internal_error", "failed to load workers")
		return
	}
	shifts, err := st.LoadShiftTemplates(ctx)
	if err != nil {
		h.Logger.Error("loading shift templates", "error", err)
		RespondError(w, http.StatusInternalServerError, "internal_error", "failed to load shift templates")
		return
	}

	shiftList := shiftsInOrder(shifts)

	analyzer := availability.Analyzer{
		WorkersByPlaza: workersByPlaza,
		Shifts:         shiftList,
	}

	start := time.Now()
	result, err := analyzer.Analyze(req.DateStart, req.DateEnd)
	telemetry.AvailabilityReportDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		RespondError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	telemetry.AvailabilityCoverageRatio.Set(result.CoverageRatio)

	err = store.WithTx(ctx, h.DB, func(tx *store.Store) error {
		return tx.SaveAvailabilityReport(ctx, req.DateStart, req.DateEnd, result)
	})
	if err != nil {
		h.Logger.Error("saving availability report", "error", err)
		RespondError(w, http.StatusInternalServerError, "internal_error", "failed to save report")
		return
	}

	Respond(w, http.StatusOK, reportResponse{
		Covered:       result.Covered,
		Uncovered:     result.Uncovered,
		CoverageRatio: result.CoverageRatio,
	})
}

// shiftsInOrder renders the shift catalog as a slice sorted by id, so the
// analyzer iterates shifts in a deterministic, reproducible order.
func shiftsInOrder(shifts map[string]domain.ShiftTemplate) []domain.ShiftTemplate {
	ids := make([]string, 0, len(shifts))
	for id := range shifts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]domain.ShiftTemplate, 0, len(shifts))
	for _, id := range ids {
		out = append(out, shifts[id])
	}
	return out
}
