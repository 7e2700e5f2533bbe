package domain

import "testing"

// Parsing then formatting a date in YYYY-MM-DD form is the identity.
func TestDateISORoundTrip(t *testing.T) {
	for _, in := range []string{"2025-01-01", "2025-03-10", "2025-12-31"} {
		d, err := ParseDateISO(in)
		if err != nil {
			t.Fatalf("ParseDateISO(%q): %v", in, err)
		}
		if got := FormatDateISO(d); got != in {
			t.Errorf("round trip %q -> %q", in, got)
		}
	}
}

func TestParseDateFlexible(t *testing.T) {
	cases := []struct{ in, wantISO string }{
		{"2025-03-10", "2025-03-10"},
		{"10/03/2025", "2025-03-10"},
		{"2025/03/10", "2025-03-10"},
	}
	for _, c := range cases {
		d, err := ParseDateFlexible(c.in)
		if err != nil {
			t.Fatalf("ParseDateFlexible(%q): %v", c.in, err)
		}
		if got := FormatDateISO(d); got != c.wantISO {
			t.Errorf("ParseDateFlexible(%q) = %q, want %q", c.in, got, c.wantISO)
		}
	}
}

func TestDateRangeInverted(t *testing.T) {
	start, _ := ParseDateISO("2025-03-10")
	end, _ := ParseDateISO("2025-03-01")
	if _, err := DateRange(start, end); err == nil {
		t.Error("expected error for inverted range")
	}
}

func TestDateRange(t *testing.T) {
	start, _ := ParseDateISO("2025-03-10")
	end, _ := ParseDateISO("2025-03-12")
	got, err := DateRange(start, end)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"2025-03-10", "2025-03-11", "2025-03-12"}
	if len(got) != len(want) {
		t.Fatalf("len(got)=%d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d]=%q, want %q", i, got[i], want[i])
		}
	}
}
