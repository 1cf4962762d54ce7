package calendar

import (
	"fmt"
	"time"
)

// NthWeekdayOfMonth returns the nth occurrence of weekday in month of year.
//
// The value of n affects the direction of counting:
//   - n > 0: counting begins at the first day of the month.
//   - n == 0: InvalidRuleError.
//   - n < 0: counting begins at the end of the month (-1 is the last one).
//
// An occurrence that does not exist (the 5th Monday of most months) is also
// an InvalidRuleError.
func NthWeekdayOfMonth(n int, weekday time.Weekday, month time.Month, year int) (Date, error) {
	if n == 0 {
		return Date{}, InvalidRuleError(fmt.Sprintf("n must not be 0 (%s of %s %d)", weekday, month, year))
	}

	var d Date
	if n > 0 {
		d = NthWeekdayFrom(n, weekday, NewDate(year, month, 1))
	} else {
		d = NthWeekdayFrom(n, weekday, LastDayOfMonth(year, month))
	}

	if d.Month != month || d.Year != year {
		return Date{}, InvalidRuleError(fmt.Sprintf("no %s #%d in %s %d", weekday, n, month, year))
	}
	return d, nil
}

// MustNthWeekdayOfMonth is like NthWeekdayOfMonth but panics on an invalid
// rule. It is meant for holiday definitions where a bad n is a defect.
func MustNthWeekdayOfMonth(n int, weekday time.Weekday, month time.Month, year int) Date {
	d, err := NthWeekdayOfMonth(n, weekday, month, year)
	if err != nil {
		panic(err)
	}
	return d
}

// NthWeekdayFrom returns the nth occurrence of weekday counting from from.
// from itself counts as the first occurrence when it falls on weekday.
// n > 0 searches forward, n < 0 backward; n == 0 returns from unchanged.
func NthWeekdayFrom(n int, weekday time.Weekday, from Date) Date {
	wd := from.Weekday()
	switch {
	case n > 0:
		ahead := (int(weekday) - int(wd) + 7) % 7
		return from.AddDays(ahead + (n-1)*7)
	case n < 0:
		behind := (int(wd) - int(weekday) + 7) % 7
		return from.AddDays(-behind + (n+1)*7)
	}
	return from
}

// NearestWeekday returns the occurrence of weekday closest to target.
// target is returned when it already falls on weekday. Ties resolve to the
// earlier date, although with a seven day week two distinct weekdays are
// never equally distant.
func NearestWeekday(target Date, weekday time.Weekday) Date {
	wd := target.Weekday()
	ahead := (int(weekday) - int(wd) + 7) % 7
	behind := (int(wd) - int(weekday) + 7) % 7
	if behind <= ahead {
		return target.AddDays(-behind)
	}
	return target.AddDays(ahead)
}

// IsWeekdayN reports whether d is the nth occurrence of its weekday in its
// month, counting from the end of the month when n is negative.
func IsWeekdayN(d Date, weekday time.Weekday, n int) bool {
	if d.Weekday() != weekday || n == 0 {
		return false
	}
	if n > 0 {
		return (d.Day-1)/7 == n-1
	}
	last := LastDayOfMonth(d.Year, d.Month).Day
	return (last-d.Day)/7 == -n-1
}
