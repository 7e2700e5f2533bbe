package store

import (
	"context"
	"fmt"

	"github.com/fgcagents/reserveroster/internal/availability"
)

// SaveAvailabilityReport persists a greedy-analyzer result as a
// replace-then-insert pair over coverage_out/assignments_out, scoped to
// [start, end], in a single transaction.
func (s *Store) SaveAvailabilityReport(ctx context.Context, start, end string, result availability.Result) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM coverage_out WHERE need_date BETWEEN $1 AND $2`, start, end); err != nil {
		return fmt.Errorf("clearing coverage_out range: %w", err)
	}
	if _, err := s.db.Exec(ctx, `DELETE FROM assignments_out WHERE need_date BETWEEN $1 AND $2`, start, end); err != nil {
		return fmt.Errorf("clearing assignments_out range: %w", err)
	}

	for _, u := range result.Uncovered {
		_, err := s.db.Exec(ctx, `
			INSERT INTO coverage_out (shift_id, need_date, reason) VALUES ($1,$2,$3)`,
			u.Shift, u.Date, u.Reason)
		if err != nil {
			return fmt.Errorf("inserting uncovered record: %w", err)
		}
	}

	for _, c := range result.Covered {
		_, err := s.db.Exec(ctx, `
			INSERT INTO assignments_out (shift_id, worker_id, need_date, priority)
			VALUES ($1,$2,$3,$4)`,
			c.Shift, c.WorkerID, c.Date, c.Priority)
		if err != nil {
			return fmt.Errorf("inserting covered record: %w", err)
		}
	}
	return nil
}
