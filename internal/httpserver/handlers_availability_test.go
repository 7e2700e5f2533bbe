package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/fgcagents/reserveroster/internal/config"
)

func newAvailabilityTestRouter() chi.Router {
	h := &AvailabilityHandler{Cfg: &config.Config{AvailabilityMaxRangeDays: 180}, Logger: testLogger()}
	router := chi.NewRouter()
	router.Route("/api/v1", func(r chi.Router) { h.Mount(r) })
	return router
}

func TestCreateReport_EmptyBody(t *testing.T) {
	router := newAvailabilityTestRouter()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/availability/reports", strings.NewReader(""))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d; body = %s", w.Code, http.StatusBadRequest, w.Body.String())
	}
}

func TestCreateReport_MissingDates(t *testing.T) {
	router := newAvailabilityTestRouter()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/availability/reports", strings.NewReader(`{}`))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want %d; body = %s", w.Code, http.StatusUnprocessableEntity, w.Body.String())
	}
}

func TestCreateReport_RangeTooLarge(t *testing.T) {
	router := newAvailabilityTestRouter()

	body := `{"date_start":"2026-01-01","date_end":"2027-06-01"}`
	r := httptest.NewRequest(http.MethodPost, "/api/v1/availability/reports", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d; body = %s", w.Code, http.StatusBadRequest, w.Body.String())
	}
}
