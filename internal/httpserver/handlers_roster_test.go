package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func newRosterTestRouter() chi.Router {
	h := &RosterHandler{Logger: testLogger()}
	router := chi.NewRouter()
	router.Route("/api/v1", func(r chi.Router) { h.Mount(r) })
	return router
}

func TestGetRoster_MissingDates(t *testing.T) {
	router := newRosterTestRouter()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/roster", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d; body = %s", w.Code, http.StatusBadRequest, w.Body.String())
	}
}

func TestGetRoster_InvalidDate(t *testing.T) {
	router := newRosterTestRouter()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/roster?date_start=not-a-date&date_end=2026-01-07", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d; body = %s", w.Code, http.StatusBadRequest, w.Body.String())
	}
}

func TestGetRoster_InvalidPage(t *testing.T) {
	router := newRosterTestRouter()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/roster?date_start=2026-01-01&date_end=2026-01-07&page=-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d; body = %s", w.Code, http.StatusBadRequest, w.Body.String())
	}
}
