package calendar

import (
	"fmt"
	"time"
)

// Layout is the textual form of a Date.
const Layout = "2006-01-02"

// Date is a calendar day. The zero value is not a valid date; use NewDate
// to build one from possibly overflowing fields.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date for year, month and day, normalizing values
// outside their usual ranges the same way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 12, 0, 0, 0, time.UTC))
}

// FromTime returns the calendar date of t in t's location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a date in the 2006-01-02 layout.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return FromTime(t), nil
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns d shifted by n days. n may be negative.
func (d Date) AddDays(n int) Date {
	// noon avoids any chance of DST edge effects should the location change
	return FromTime(time.Date(d.Year, d.Month, d.Day+n, 12, 0, 0, 0, time.UTC))
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(int(d.Month) - int(other.Month))
	default:
		return sign(d.Day - other.Day)
	}
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// After reports whether d is later than other.
func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

// Sub returns the number of days from other to d.
func (d Date) Sub(other Date) int {
	return int(d.Time().Sub(other.Time()).Hours() / 24)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalText implements encoding.TextMarshaler so that dates can be used as
// map keys by the JSON, YAML and msgpack encoders.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalCSV is used by gocsv.
func (d Date) MarshalCSV() (string, error) {
	return d.String(), nil
}

// UnmarshalCSV is used by gocsv.
func (d *Date) UnmarshalCSV(s string) error {
	return d.UnmarshalText([]byte(s))
}

// IsWeekend reports whether d falls on a Saturday or Sunday.
func IsWeekend(d Date) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// LastDayOfMonth returns the last day of month in year.
func LastDayOfMonth(year int, month time.Month) Date {
	return NewDate(year, month+1, 0)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
