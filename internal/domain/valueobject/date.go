// Package valueobject holds small immutable domain values and the pure
// computations over them.
package valueobject

import (
	"time"
)

// dateLayout is the ISO-8601 calendar date form used across the ledger.
const dateLayout = "2006-01-02"

// ISODate is a calendar date in YYYY-MM-DD form. It stays a string because
// ISO dates order lexicographically, which is what every range filter and
// month-prefix aggregation in the ledger relies on.
type ISODate string

// ParseISODate validates s as a real calendar date and returns it as an
// ISODate. Non-normalized forms ("2024-1-5") and impossible dates are
// rejected.
func ParseISODate(s string) (ISODate, error) {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", err
	}
	return ISODate(s), nil
}

// Today returns the current local date.
func Today() ISODate {
	return ISODate(time.Now().Format(dateLayout))
}

// Before reports whether d falls strictly before other.
func (d ISODate) Before(other ISODate) bool {
	return string(d) < string(other)
}

// After reports whether d falls strictly after other.
func (d ISODate) After(other ISODate) bool {
	return string(d) > string(other)
}

// Month returns the YYYY-MM prefix of the date.
func (d ISODate) Month() string {
	if len(d) < 7 {
		return ""
	}
	return string(d[:7])
}

// MonthOfYear returns the two-digit month component (01-12) regardless of
// year, matching the month selector of the category chart.
func (d ISODate) MonthOfYear() string {
	if len(d) < 7 {
		return ""
	}
	return string(d[5:7])
}

// InMonth reports whether the date falls inside the given YYYY-MM month.
func (d ISODate) InMonth(month string) bool {
	return d.Month() == month
}

func (d ISODate) String() string {
	return string(d)
}
