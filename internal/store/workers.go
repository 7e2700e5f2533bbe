package store

import (
	"context"
	"fmt"

	"github.com/fgcagents/reserveroster/internal/domain"
)

// LoadReserveWorkers loads every group-T worker along with their rest days,
// pre-filtered at the query level so callers never see a non-schedulable
// worker.
func (s *Store) LoadReserveWorkers(ctx context.Context) (map[string]*domain.Worker, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, plaza, group_code, line, zone, home_shift, skills,
		       standard_hours_cap, extendable_hours_cap, hours_worked,
		       zone_changes, shift_changes
		FROM workers
		WHERE group_code = $1
		ORDER BY id`, domain.ReserveGroup)
	if err != nil {
		return nil, fmt.Errorf("loading workers: %w", err)
	}
	defer rows.Close()

	workers := map[string]*domain.Worker{}
	for rows.Next() {
		w := domain.NewWorker("", "")
		var skills []string
		if err := rows.Scan(&w.ID, &w.Name, &w.Plaza, &w.Group, &w.Line, &w.Zone, &w.HomeShift,
			&skills, &w.StandardHoursCap, &w.ExtendableHoursCap, &w.HoursWorked,
			&w.ZoneChanges, &w.ShiftChanges); err != nil {
			return nil, fmt.Errorf("scanning worker: %w", err)
		}
		for _, sk := range skills {
			w.Skills[sk] = struct{}{}
		}
		workers[w.ID] = w
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := s.loadRestDays(ctx, workers); err != nil {
		return nil, err
	}
	return workers, nil
}

// LoadWorkersByPlaza loads every worker (any group), keyed by plaza slot,
// for the greedy availability analyzer which matches by option_1/option_2
// plaza rather than group.
func (s *Store) LoadWorkersByPlaza(ctx context.Context) (map[string]*domain.Worker, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, plaza, group_code, line, zone, home_shift, skills,
		       standard_hours_cap, extendable_hours_cap, hours_worked,
		       zone_changes, shift_changes
		FROM workers WHERE plaza IS NOT NULL AND plaza != ''`)
	if err != nil {
		return nil, fmt.Errorf("loading workers by plaza: %w", err)
	}
	defer rows.Close()

	byID := map[string]*domain.Worker{}
	byPlaza := map[string]*domain.Worker{}
	for rows.Next() {
		w := domain.NewWorker("", "")
		var skills []string
		if err := rows.Scan(&w.ID, &w.Name, &w.Plaza, &w.Group, &w.Line, &w.Zone, &w.HomeShift,
			&skills, &w.StandardHoursCap, &w.ExtendableHoursCap, &w.HoursWorked,
			&w.ZoneChanges, &w.ShiftChanges); err != nil {
			return nil, fmt.Errorf("scanning worker: %w", err)
		}
		for _, sk := range skills {
			w.Skills[sk] = struct{}{}
		}
		byID[w.ID] = w
		byPlaza[w.Plaza] = w
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := s.loadRestDays(ctx, byID); err != nil {
		return nil, err
	}
	return byPlaza, nil
}

func (s *Store) loadRestDays(ctx context.Context, workers map[string]*domain.Worker) error {
	if len(workers) == 0 {
		return nil
	}
	ids := make([]string, 0, len(workers))
	for id := range workers {
		ids = append(ids, id)
	}

	rows, err := s.db.Query(ctx, `
		SELECT worker_id, rest_date, origin FROM rest_days WHERE worker_id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("loading rest days: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var workerID, date, origin string
		if err := rows.Scan(&workerID, &date, &origin); err != nil {
			return fmt.Errorf("scanning rest day: %w", err)
		}
		if w, ok := workers[workerID]; ok {
			w.AddRestDays(domain.RestOrigin(origin), []string{date})
		}
	}
	return rows.Err()
}

// AddRestDays persists a rest-day range for a worker under the given
// origin, mirroring Worker.AddRestDays' idempotence (duplicate dates are
// skipped via ON CONFLICT DO NOTHING).
func (s *Store) AddRestDays(ctx context.Context, workerID string, origin domain.RestOrigin, dates []string) error {
	for _, d := range dates {
		_, err := s.db.Exec(ctx, `INSERT INTO rest_days (worker_id, rest_date, origin)
			VALUES ($1, $2, $3) ON CONFLICT (worker_id, rest_date) DO NOTHING`,
			workerID, d, string(origin))
		if err != nil {
			return fmt.Errorf("inserting rest day: %w", err)
		}
	}
	return nil
}
