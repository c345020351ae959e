package valueobject

import (
	"testing"
	"time"
)

func TestParseISODate(t *testing.T) {
	valid := []string{"2024-01-05", "2024-12-31", "2000-02-29"}
	for _, s := range valid {
		t.Run("accepts "+s, func(t *testing.T) {
			d, err := ParseISODate(s)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.String() != s {
				t.Errorf("expected %s, got %s", s, d)
			}
		})
	}

	invalid := []string{"", "2024-1-5", "05-01-2024", "2024-02-30", "2024-13-01", "not a date"}
	for _, s := range invalid {
		t.Run("rejects "+s, func(t *testing.T) {
			if _, err := ParseISODate(s); err == nil {
				t.Errorf("expected %q to be rejected", s)
			}
		})
	}
}

func TestISODateOrdering(t *testing.T) {
	earlier := ISODate("2024-08-01")
	later := ISODate("2024-08-15")

	if !earlier.Before(later) {
		t.Error("expected 2024-08-01 before 2024-08-15")
	}
	if !later.After(earlier) {
		t.Error("expected 2024-08-15 after 2024-08-01")
	}
	if earlier.Before(earlier) || earlier.After(earlier) {
		t.Error("a date must not order before or after itself")
	}
	if !ISODate("2023-12-31").Before(ISODate("2024-01-01")) {
		t.Error("expected ordering to hold across a year boundary")
	}
}

func TestISODateMonth(t *testing.T) {
	d := ISODate("2024-08-15")

	if got := d.Month(); got != "2024-08" {
		t.Errorf("expected month 2024-08, got %s", got)
	}
	if got := d.MonthOfYear(); got != "08" {
		t.Errorf("expected month of year 08, got %s", got)
	}
	if !d.InMonth("2024-08") {
		t.Error("expected date to be in 2024-08")
	}
	if d.InMonth("2024-07") {
		t.Error("did not expect date to be in 2024-07")
	}

	if got := ISODate("2025-08-01").MonthOfYear(); got != "08" {
		t.Errorf("expected same month of year across years, got %s", got)
	}
	if got := ISODate("bad").Month(); got != "" {
		t.Errorf("expected empty month for malformed date, got %s", got)
	}
}

func TestToday(t *testing.T) {
	got := Today()
	want := ISODate(time.Now().Format("2006-01-02"))
	if got != want {
		t.Errorf("expected today %s, got %s", want, got)
	}
}
