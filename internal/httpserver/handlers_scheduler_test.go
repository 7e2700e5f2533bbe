package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/fgcagents/reserveroster/internal/config"
	"github.com/fgcagents/reserveroster/internal/scheduler"
)

func newSchedulerTestRouter() chi.Router {
	h := &SchedulerHandler{
		Registry: scheduler.NewRunRegistry(nil, 0),
		Cfg:      &config.Config{SchedulerMaxRangeDays: 90},
		Logger:   testLogger(),
	}
	router := chi.NewRouter()
	router.Route("/api/v1", func(r chi.Router) { h.Mount(r) })
	return router
}

func TestStartRun_EmptyBody(t *testing.T) {
	router := newSchedulerTestRouter()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/scheduler/runs", strings.NewReader(""))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d; body = %s", w.Code, http.StatusBadRequest, w.Body.String())
	}
}

func TestStartRun_MissingDates(t *testing.T) {
	router := newSchedulerTestRouter()

	body := `{"population_size":50,"generations":150}`
	r := httptest.NewRequest(http.MethodPost, "/api/v1/scheduler/runs", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want %d; body = %s", w.Code, http.StatusUnprocessableEntity, w.Body.String())
	}
}

func TestStartRun_InvalidOnDuplicate(t *testing.T) {
	router := newSchedulerTestRouter()

	body := `{"date_start":"2026-01-01","date_end":"2026-01-07","on_duplicate":"overwrite_everything"}`
	r := httptest.NewRequest(http.MethodPost, "/api/v1/scheduler/runs", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want %d; body = %s", w.Code, http.StatusUnprocessableEntity, w.Body.String())
	}
}

func TestStartRun_InvalidDate(t *testing.T) {
	router := newSchedulerTestRouter()

	body := `{"date_start":"not-a-date","date_end":"2026-01-07"}`
	r := httptest.NewRequest(http.MethodPost, "/api/v1/scheduler/runs", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d; body = %s", w.Code, http.StatusBadRequest, w.Body.String())
	}
}

func TestStartRun_RangeTooLarge(t *testing.T) {
	router := newSchedulerTestRouter()

	body := `{"date_start":"2026-01-01","date_end":"2027-01-01"}`
	r := httptest.NewRequest(http.MethodPost, "/api/v1/scheduler/runs", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d; body = %s", w.Code, http.StatusBadRequest, w.Body.String())
	}
}

func TestGetRun_NotFound(t *testing.T) {
	router := newSchedulerTestRouter()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/scheduler/runs/00000000-0000-0000-0000-000000000001", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d; body = %s", w.Code, http.StatusNotFound, w.Body.String())
	}
}

func TestCancelRun_NotFound(t *testing.T) {
	router := newSchedulerTestRouter()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/scheduler/runs/00000000-0000-0000-0000-000000000001/cancel", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d; body = %s", w.Code, http.StatusNotFound, w.Body.String())
	}
}
