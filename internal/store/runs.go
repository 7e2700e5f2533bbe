package store

import (
	"context"
	"fmt"

	"github.com/fgcagents/reserveroster/internal/scheduler"
)

// SaveRunRecord writes the durable mirror of a finished or cancelled run,
// queried by operators independently of the in-process/Redis-mirrored
// RunRegistry that serves live polling.
func (s *Store) SaveRunRecord(ctx context.Context, id, dateStart, dateEnd, onDuplicate string, populationSize, generations int, state scheduler.RunState) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO scheduler_runs (id, status, population_size, generations, date_start,
		                            date_end, on_duplicate, best_score, finished_at, error)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8, now(), NULLIF($9, ''))
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			best_score = EXCLUDED.best_score,
			finished_at = EXCLUDED.finished_at,
			error = EXCLUDED.error`,
		id, string(state.Status), populationSize, generations, dateStart,
		dateEnd, onDuplicate, state.BestScore, state.Error)
	if err != nil {
		return fmt.Errorf("saving scheduler run record: %w", err)
	}
	return nil
}
