package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fgcagents/reserveroster/internal/domain"
	"github.com/fgcagents/reserveroster/internal/store"
)

// RosterHandler serves the persisted roster for a date range.
type RosterHandler struct {
	DB     *pgxpool.Pool
	Logger *slog.Logger
}

// Mount registers the roster routes on r.
func (h *RosterHandler) Mount(r chi.Router) {
	r.Get("/roster", h.handleGetRoster)
}

type rosterEntry struct {
	Date          string  `json:"date"`
	Shift         string  `json:"shift"`
	WorkerID      string  `json:"worker_id"`
	StartHour     int     `json:"start_hour"`
	StartMinute   int     `json:"start_minute"`
	EndHour       int     `json:"end_hour"`
	EndMinute     int     `json:"end_minute"`
	DurationHours float64 `json:"duration_hours"`
	IsZoneChange  bool    `json:"is_zone_change"`
	IsShiftChange bool    `json:"is_shift_change"`
}

type rosterResponse struct {
	DateStart string                  `json:"date_start"`
	DateEnd   string                  `json:"date_end"`
	Page      OffsetPage[rosterEntry] `json:"page"`
}

func (h *RosterHandler) handleGetRoster(w http.ResponseWriter, r *http.Request) {
	dateStart := r.URL.Query().Get("date_start")
	dateEnd := r.URL.Query().Get("date_end")
	if dateStart == "" || dateEnd == "" {
		RespondError(w, http.StatusBadRequest, "invalid_request", "date_start and date_end are required")
		return
	}
	if _, err := domain.ParseDateISO(dateStart); err != nil {
		RespondError(w, http.StatusBadRequest, "invalid_date", err.Error())
		return
	}
	if _, err := domain.ParseDateISO(dateEnd); err != nil {
		RespondError(w, http.StatusBadRequest, "invalid_date", err.Error())
		return
	}

	params, err := ParseOffsetParams(r)
	if err != nil {
		RespondError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	st := store.New(h.DB)
	roster, err := st.LoadRoster(r.Context(), dateStart, dateEnd)
	if err != nil {
		h.Logger.Error("loading roster", "error", err)
		RespondError(w, http.StatusInternalServerError, "internal_error", "failed to load roster")
		return
	}

	entries := make([]rosterEntry, 0, len(roster))
	for _, a := range roster {
		entries = append(entries, rosterEntry{
			Date:          a.Date,
			Shift:         a.ShiftID,
			WorkerID:      a.WorkerID,
			StartHour:     a.StartHour,
			StartMinute:   a.StartMinute,
			EndHour:       a.EndHour,
			EndMinute:     a.EndMinute,
			DurationHours: a.DurationHours,
			IsZoneChange:  a.IsZoneChange,
			IsShiftChange: a.IsShiftChange,
		})
	}

	total := len(entries)
	start := params.Offset
	if start > total {
		start = total
	}
	end := start + params.PageSize
	if end > total {
		end = total
	}

	Respond(w, http.StatusOK, rosterResponse{
		DateStart: dateStart,
		DateEnd:   dateEnd,
		Page:      NewOffsetPage(entries[start:end], params, total),
	})
}
