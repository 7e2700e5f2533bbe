package store

import (
	"context"
	"fmt"

	"github.com/fgcagents/reserveroster/internal/domain"
	"github.com/fgcagents/reserveroster/internal/scheduler"
)

// OnDuplicateReplaceAll and OnDuplicateAddNewOnly are the two persistence
// policies a scheduler run request may choose between.
const (
	OnDuplicateReplaceAll = "replace_all"
	OnDuplicateAddNewOnly = "add_new_only"
)

// SaveRoster persists a completed run's roster for [start, end] under the
// given on_duplicate policy, in a single transaction per the concurrency
// model: a full delete-then-insert under replace_all, or a conflict-safe
// insert under add_new_only.
func (s *Store) SaveRoster(ctx context.Context, start, end string, roster domain.Roster, policy string) error {
	if policy == OnDuplicateReplaceAll {
		if _, err := s.db.Exec(ctx, `DELETE FROM roster WHERE assignment_date BETWEEN $1 AND $2`, start, end); err != nil {
			return fmt.Errorf("clearing roster range: %w", err)
		}
	}

	conflictClause := "ON CONFLICT (shift_id, assignment_date) DO NOTHING"
	if policy == OnDuplicateReplaceAll {
		conflictClause = ""
	}

	for _, a := range roster {
		query := fmt.Sprintf(`
			INSERT INTO roster (assignment_date, shift_id, worker_id, start_hour, start_minute,
			                    end_hour, end_minute, duration_hours, is_zone_change, is_shift_change)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10) %s`, conflictClause)
		_, err := s.db.Exec(ctx, query,
			a.Date, a.ShiftID, a.WorkerID, a.StartHour, a.StartMinute,
			a.EndHour, a.EndMinute, a.DurationHours, a.IsZoneChange, a.IsShiftChange)
		if err != nil {
			return fmt.Errorf("inserting roster assignment: %w", err)
		}
	}
	return nil
}

// LoadRoster reads back the persisted roster for [start, end] inclusive.
func (s *Store) LoadRoster(ctx context.Context, start, end string) (domain.Roster, error) {
	rows, err := s.db.Query(ctx, `
		SELECT worker_id, shift_id, assignment_date, start_hour, start_minute,
		       end_hour, end_minute, duration_hours, is_zone_change, is_shift_change
		FROM roster WHERE assignment_date BETWEEN $1 AND $2
		ORDER BY assignment_date, shift_id`, start, end)
	if err != nil {
		return nil, fmt.Errorf("loading roster: %w", err)
	}
	defer rows.Close()

	var roster domain.Roster
	for rows.Next() {
		var a domain.Assignment
		if err := rows.Scan(&a.WorkerID, &a.ShiftID, &a.Date, &a.StartHour, &a.StartMinute,
			&a.EndHour, &a.EndMinute, &a.DurationHours, &a.IsZoneChange, &a.IsShiftChange); err != nil {
			return nil, fmt.Errorf("scanning roster assignment: %w", err)
		}
		roster = append(roster, a)
	}
	return roster, rows.Err()
}

// LoadExcludeMap builds the (date -> already-assigned worker ids) map a run
// started under add_new_only must respect, from the already-persisted
// roster in [start, end].
func (s *Store) LoadExcludeMap(ctx context.Context, start, end string) (scheduler.ExcludeMap, error) {
	existing, err := s.LoadRoster(ctx, start, end)
	if err != nil {
		return nil, err
	}
	exclude := scheduler.ExcludeMap{}
	for _, a := range existing {
		set, ok := exclude[a.Date]
		if !ok {
			set = map[string]struct{}{}
			exclude[a.Date] = set
		}
		set[a.WorkerID] = struct{}{}
	}
	return exclude, nil
}
