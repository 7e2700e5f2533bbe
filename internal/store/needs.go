package store

import (
	"context"
	"fmt"

	"github.com/fgcagents/reserveroster/internal/domain"
)

// LoadNeeds loads every coverage need in [start, end] inclusive.
func (s *Store) LoadNeeds(ctx context.Context, start, end string) ([]domain.CoverageNeed, error) {
	rows, err := s.db.Query(ctx, `
		SELECT shift_id, need_date, residence, rotation, skill, line, zone, reason
		FROM coverage_needs
		WHERE need_date BETWEEN $1 AND $2
		ORDER BY need_date, shift_id`, start, end)
	if err != nil {
		return nil, fmt.Errorf("loading coverage needs: %w", err)
	}
	defer rows.Close()

	var needs []domain.CoverageNeed
	for rows.Next() {
		var n domain.CoverageNeed
		if err := rows.Scan(&n.Shift, &n.Date, &n.Residence, &n.Rotation, &n.Skill, &n.Line, &n.Zone, &n.Reason); err != nil {
			return nil, fmt.Errorf("scanning coverage need: %w", err)
		}
		needs = append(needs, n)
	}
	return needs, rows.Err()
}
