// Package domain holds the scheduler's core data model: workers, shift
// templates, calendar days, coverage needs, assignments, and rosters.
package domain

import "strings"

// ReserveGroup is the only worker group eligible for evolutionary
// scheduling; all other groups are filtered out at load time.
const ReserveGroup = "T"

const (
	StandardHoursCap   = 1218.0
	ExtendableHoursCap = 1605.0
)

// RestOrigin identifies why a date landed in a worker's rest-day set.
type RestOrigin string

const (
	RestOriginBase     RestOrigin = "base"
	RestOriginTemporal RestOrigin = "temporal"
	RestOriginLeave    RestOrigin = "baixa"
	RestOriginManual   RestOrigin = "manual"
)

// Worker is a candidate for shift coverage.
type Worker struct {
	ID   string
	Name string
	Plaza string

	Group string // only ReserveGroup workers are schedulable
	Line  string
	Zone  string

	// HomeShift may hold several comma-separated shift names, e.g.
	// "Mati,Nit". A worker is not considered to have changed shift if the
	// assigned shift matches any of them.
	HomeShift string

	Skills map[string]struct{}

	// RestDays is the union of all origins for this worker, keyed by date
	// in its canonical YYYY-MM-DD form (see dateparse.go).
	RestDays map[string]RestOrigin

	HoursWorked       float64
	StandardHoursCap   float64
	ExtendableHoursCap float64

	ZoneChanges  int
	ShiftChanges int
}

// NewWorker builds a Worker with the default policy hour caps.
func NewWorker(id, name string) *Worker {
	return &Worker{
		ID:                 id,
		Name:               name,
		Skills:             map[string]struct{}{},
		RestDays:           map[string]RestOrigin{},
		StandardHoursCap:   StandardHoursCap,
		ExtendableHoursCap: ExtendableHoursCap,
	}
}

// IsReserve reports whether the worker belongs to the reserve group.
func (w *Worker) IsReserve() bool {
	return w.Group == ReserveGroup
}

// HasSkill reports whether the worker holds the given skill tag.
func (w *Worker) HasSkill(skill string) bool {
	_, ok := w.Skills[skill]
	return ok
}

// HasRestDay reports whether the worker is unavailable on the given date
// (canonical YYYY-MM-DD form).
func (w *Worker) HasRestDay(date string) bool {
	_, ok := w.RestDays[date]
	return ok
}

// AddRestDays unions the given dates into the worker's rest-day set under
// the given origin; a date already present keeps its existing origin.
// Calling it twice with the same arguments leaves the set unchanged.
func (w *Worker) AddRestDays(origin RestOrigin, dates []string) {
	if w.RestDays == nil {
		w.RestDays = map[string]RestOrigin{}
	}
	for _, d := range dates {
		if _, exists := w.RestDays[d]; !exists {
			w.RestDays[d] = origin
		}
	}
}

// HoursAvailable returns how many more hours the worker can take on this
// year before hitting the extendable cap.
func (w *Worker) HoursAvailable() float64 {
	return w.ExtendableHoursCap - w.HoursWorked
}

// WithinStandardCap reports whether the worker is still within the
// standard (non-extended) annual hours cap.
func (w *Worker) WithinStandardCap() bool {
	return w.HoursWorked <= w.StandardHoursCap
}

// CanCover reports whether the worker is eligible to cover a shift template
// by group and line (mirrors Treballador.pot_cobrir_torn).
func (w *Worker) CanCover(line string) bool {
	return w.IsReserve() && w.Line == line
}

// IsZoneChange reports whether working in zone would be a change from the
// worker's home zone.
func (w *Worker) IsZoneChange(zone string) bool {
	return w.Zone != zone
}

func normalizeShiftToken(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.ReplaceAll(s, "í", "i")
	s = strings.ReplaceAll(s, " ", " ")
	return s
}

// homeShiftOptions splits HomeShift on commas into normalized tokens.
func (w *Worker) homeShiftOptions() map[string]struct{} {
	opts := map[string]struct{}{}
	for _, part := range strings.Split(w.HomeShift, ",") {
		part = normalizeShiftToken(part)
		if part != "" {
			opts[part] = struct{}{}
		}
	}
	return opts
}

// ShiftNameForHour buckets a 24h clock hour into a shift-name token,
// matching the original's morning/afternoon/night split.
func ShiftNameForHour(hour int) string {
	switch {
	case hour < 12:
		return "mati"
	case hour >= 20:
		return "nit"
	default:
		return "tarda"
	}
}

// IsShiftChange reports whether covering a need with the given rotation
// name, starting at startHour, would count as a shift change from the
// worker's home shift(s). It checks the need's rotation token against the
// worker's home-shift tokens when the need carries one (mirrors
// Treballador.es_canvi_torn being called with the need's string shift
// name), and falls back to bucketing startHour into mati/tarda/nit only
// when rotation is empty.
func (w *Worker) IsShiftChange(rotation string, startHour int) bool {
	opts := w.homeShiftOptions()
	if token := normalizeShiftToken(rotation); token != "" {
		_, ok := opts[token]
		return !ok
	}
	shiftName := ShiftNameForHour(startHour)
	_, ok := opts[shiftName]
	return !ok
}
