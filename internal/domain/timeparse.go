package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClockTime accepts H:M, HH:MM, HMM, HHMM, H, or HH and returns
// (hour, minute), hour taken modulo 24. Mirrors DataLoader.parse_time.
func ParseClockTime(raw string) (hour, minute int, err error) {
	s := strings.Trim(strings.TrimSpace(raw), `"'`)
	if s == "" {
		return 0, 0, fmt.Errorf("parsing clock time %q: empty", raw)
	}

	if strings.Contains(s, ":") {
		parts := strings.SplitN(s, ":", 2)
		if len(parts) != 2 {
			return 0, 0, fmt.Errorf("parsing clock time %q: malformed", raw)
		}
		h, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		m, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err1 != nil || err2 != nil {
			return 0, 0, fmt.Errorf("parsing clock time %q: not numeric", raw)
		}
		return h % 24, m, nil
	}

	digits := strings.TrimSpace(s)
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, 0, fmt.Errorf("parsing clock time %q: non-digit characters", raw)
		}
	}

	switch {
	case len(digits) <= 2:
		h, err := strconv.Atoi(digits)
		if err != nil {
			return 0, 0, fmt.Errorf("parsing clock time %q: %w", raw, err)
		}
		return h % 24, 0, nil
	case len(digits) == 3:
		h, err1 := strconv.Atoi(digits[:1])
		m, err2 := strconv.Atoi(digits[1:])
		if err1 != nil || err2 != nil {
			return 0, 0, fmt.Errorf("parsing clock time %q: malformed", raw)
		}
		return h % 24, m, nil
	default:
		h, err1 := strconv.Atoi(digits[:len(digits)-2])
		m, err2 := strconv.Atoi(digits[len(digits)-2:])
		if err1 != nil || err2 != nil {
			return 0, 0, fmt.Errorf("parsing clock time %q: malformed", raw)
		}
		return h % 24, m, nil
	}
}

// FormatClockTime renders (hour, minute) in canonical HH:MM form.
func FormatClockTime(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
