package domain

import "testing"

func TestParseClockTime(t *testing.T) {
	cases := []struct {
		in       string
		hour, min int
	}{
		{"9:30", 9, 30},
		{"09:30", 9, 30},
		{"930", 9, 30},
		{"1930", 19, 30},
		{"9", 9, 0},
		{"23", 23, 0},
		{"25", 1, 0}, // modulo 24
	}
	for _, c := range cases {
		h, m, err := ParseClockTime(c.in)
		if err != nil {
			t.Fatalf("ParseClockTime(%q) error: %v", c.in, err)
		}
		if h != c.hour || m != c.min {
			t.Errorf("ParseClockTime(%q) = %d:%d, want %d:%d", c.in, h, m, c.hour, c.min)
		}
	}
}

func TestParseClockTimeInvalid(t *testing.T) {
	for _, in := range []string{"", "ab:cd", "9:ab"} {
		if _, _, err := ParseClockTime(in); err == nil {
			t.Errorf("ParseClockTime(%q) expected error, got nil", in)
		}
	}
}

// Parsing then formatting a clock-time in HH:MM form is the identity.
func TestClockTimeRoundTrip(t *testing.T) {
	for _, in := range []string{"00:00", "09:05", "23:59"} {
		h, m, err := ParseClockTime(in)
		if err != nil {
			t.Fatalf("ParseClockTime(%q): %v", in, err)
		}
		if got := FormatClockTime(h, m); got != in {
			t.Errorf("round trip %q -> %q", in, got)
		}
	}
}
