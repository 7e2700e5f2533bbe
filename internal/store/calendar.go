package store

import (
	"context"
	"fmt"

	"github.com/fgcagents/reserveroster/internal/domain"
)

// LoadCalendar loads every calendar day in [start, end] inclusive.
func (s *Store) LoadCalendar(ctx context.Context, start, end string) (domain.Calendar, error) {
	rows, err := s.db.Query(ctx, `
		SELECT cal_date, service_code FROM calendar
		WHERE cal_date BETWEEN $1 AND $2 ORDER BY cal_date`, start, end)
	if err != nil {
		return nil, fmt.Errorf("loading calendar: %w", err)
	}
	defer rows.Close()

	var days []domain.CalendarDay
	for rows.Next() {
		var date, serviceCode string
		if err := rows.Scan(&date, &serviceCode); err != nil {
			return nil, fmt.Errorf("scanning calendar day: %w", err)
		}
		t, err := domain.ParseDateISO(date)
		if err != nil {
			return nil, err
		}
		days = append(days, domain.CalendarDay{
			Date:        date,
			ServiceCode: serviceCode,
			Weekday:     t.Weekday(),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return domain.NewCalendar(days), nil
}

// EnsureCalendarRange reports whether every date in [start, end] has a
// calendar row, returning the first missing date if not.
func (s *Store) EnsureCalendarRange(ctx context.Context, start, end string) (missing string, ok bool, err error) {
	startDate, err := domain.ParseDateISO(start)
	if err != nil {
		return "", false, err
	}
	endDate, err := domain.ParseDateISO(end)
	if err != nil {
		return "", false, err
	}
	dates, err := domain.DateRange(startDate, endDate)
	if err != nil {
		return "", false, err
	}

	cal, err := s.LoadCalendar(ctx, start, end)
	if err != nil {
		return "", false, err
	}
	for _, d := range dates {
		if _, ok := cal[d]; !ok {
			return d, false, nil
		}
	}
	return "", true, nil
}
