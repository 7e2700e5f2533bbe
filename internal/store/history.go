package store

import (
	"context"
	"fmt"

	"github.com/fgcagents/reserveroster/internal/domain"
)

// LoadGlobalStats loads every worker's historic assignments into a
// GlobalStats aggregate, used for the 12-hour-rest check and the equity
// predicates.
func (s *Store) LoadGlobalStats(ctx context.Context) (*domain.GlobalStats, error) {
	rows, err := s.db.Query(ctx, `
		SELECT worker_id, shift_id, assignment_date, start_hour, start_minute,
		       end_hour, end_minute, duration_hours, is_zone_change, is_shift_change
		FROM history
		ORDER BY worker_id, assignment_date`)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	defer rows.Close()

	stats := domain.NewGlobalStats()
	for rows.Next() {
		var workerID string
		var a domain.Assignment
		if err := rows.Scan(&workerID, &a.ShiftID, &a.Date, &a.StartHour, &a.StartMinute,
			&a.EndHour, &a.EndMinute, &a.DurationHours, &a.IsZoneChange, &a.IsShiftChange); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}
		a.WorkerID = workerID
		h := stats.History(workerID)
		h.Assignments = append(h.Assignments, a)
	}
	return stats, rows.Err()
}

// AppendHistory records a completed run's assignments as history, so
// future runs see them for the 12-hour-rest check and equity scoring.
func (s *Store) AppendHistory(ctx context.Context, roster domain.Roster) error {
	for _, a := range roster {
		_, err := s.db.Exec(ctx, `
			INSERT INTO history (worker_id, shift_id, assignment_date, start_hour, start_minute,
			                     end_hour, end_minute, duration_hours, is_zone_change, is_shift_change)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
			a.WorkerID, a.ShiftID, a.Date, a.StartHour, a.StartMinute,
			a.EndHour, a.EndMinute, a.DurationHours, a.IsZoneChange, a.IsShiftChange)
		if err != nil {
			return fmt.Errorf("appending history entry: %w", err)
		}
	}
	return nil
}
