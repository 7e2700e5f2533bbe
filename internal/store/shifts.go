package store

import (
	"context"
	"fmt"

	"github.com/fgcagents/reserveroster/internal/domain"
)

// LoadShiftTemplates loads every shift template together with its up-to-four
// service windows.
func (s *Store) LoadShiftTemplates(ctx context.Context) (map[string]domain.ShiftTemplate, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, line, zone, option1_plaza, option2_plaza, required_skill, required_shift_name
		FROM shift_templates ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("loading shift templates: %w", err)
	}
	defer rows.Close()

	templates := map[string]domain.ShiftTemplate{}
	for rows.Next() {
		var t domain.ShiftTemplate
		t.Services = map[int]domain.ServiceWindow{}
		if err := rows.Scan(&t.ID, &t.Line, &t.Zone, &t.Option1Plaza, &t.Option2Plaza,
			&t.RequiredSkill, &t.RequiredShiftName); err != nil {
			return nil, fmt.Errorf("scanning shift template: %w", err)
		}
		templates[t.ID] = t
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := s.loadServiceWindows(ctx, templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (s *Store) loadServiceWindows(ctx context.Context, templates map[string]domain.ShiftTemplate) error {
	rows, err := s.db.Query(ctx, `
		SELECT shift_id, service_number, day_codes, start_hour, start_minute, end_hour, end_minute
		FROM shift_windows ORDER BY shift_id, service_number`)
	if err != nil {
		return fmt.Errorf("loading service windows: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var shiftID string
		var num, startH, startM, endH, endM int
		var dayCodes []string
		if err := rows.Scan(&shiftID, &num, &dayCodes, &startH, &startM, &endH, &endM); err != nil {
			return fmt.Errorf("scanning service window: %w", err)
		}
		t, ok := templates[shiftID]
		if !ok {
			continue
		}
		t.Services[num] = domain.NewServiceWindow(num, dayCodes, startH, startM, endH, endM)
	}
	return rows.Err()
}
