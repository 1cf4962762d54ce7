package jurisdiction

import (
	"time"

	"github.com/alpacahq/holidays/calendar"
	"github.com/alpacahq/holidays/groups"
	"github.com/alpacahq/holidays/i18n"
	"github.com/alpacahq/holidays/observance"
	"github.com/alpacahq/holidays/registry"
)

// Builder is handed to rule functions while one year is populated. Names
// passed to it are canonical keys; they are translated before they reach
// the registry.
type Builder struct {
	Christian     groups.Christian
	International groups.International

	year         int
	subdivision  string
	locale       string
	observed     bool
	observedRule observance.Rule
	resolver     i18n.Resolver
	reg          *registry.Registry
}

var _ groups.Adder = (*Builder)(nil)

// Year returns the year being populated.
func (b *Builder) Year() int { return b.year }

// Subdivision returns the selected subdivision code, or "".
func (b *Builder) Subdivision() string { return b.subdivision }

// Observed reports whether observance rules are enabled.
func (b *Builder) Observed() bool { return b.observed }

// Since reports whether the year is year or later.
func (b *Builder) Since(year int) bool { return b.year >= year }

// Until reports whether the year is year or earlier.
func (b *Builder) Until(year int) bool { return b.year <= year }

// Between reports whether the year is within [from, to].
func (b *Builder) Between(from, to int) bool { return b.year >= from && b.year <= to }

// In reports whether the year is one of years.
func (b *Builder) In(years ...int) bool {
	for _, y := range years {
		if y == b.year {
			return true
		}
	}
	return false
}

// Tr translates a canonical name into the selected locale.
func (b *Builder) Tr(name string) string {
	return b.resolver.Resolve(b.locale, name)
}

// Date returns month/day of the year being populated.
func (b *Builder) Date(month time.Month, day int) calendar.Date {
	return calendar.NewDate(b.year, month, day)
}

// Add records name on d.
func (b *Builder) Add(name string, d calendar.Date) calendar.Date {
	return b.reg.Add(d, b.Tr(name))
}

// AddOn records name on month/day of the year.
func (b *Builder) AddOn(name string, month time.Month, day int) calendar.Date {
	return b.Add(name, b.Date(month, day))
}

// AddNthWeekday records name on the nth weekday of month. A rule naming a
// missing occurrence is a defect and panics.
func (b *Builder) AddNthWeekday(name string, n int, weekday time.Weekday, month time.Month) calendar.Date {
	return b.Add(name, calendar.MustNthWeekdayOfMonth(n, weekday, month, b.year))
}

// AddNthWeekdayFrom records name on the nth weekday counted from
// month/day, inclusive. Negative n counts backward.
func (b *Builder) AddNthWeekdayFrom(name string, n int, weekday time.Weekday, month time.Month, day int) calendar.Date {
	return b.Add(name, calendar.NthWeekdayFrom(n, weekday, b.Date(month, day)))
}

// AddObserved applies the first of rules, or the jurisdiction's rule when
// none is given, to the holidays on d. Nothing happens when observance is
// disabled.
func (b *Builder) AddObserved(d calendar.Date, rules ...observance.Rule) (calendar.Date, bool) {
	if !b.observed {
		return d, false
	}
	rule := b.observedRule
	if len(rules) > 0 {
		rule = rules[0]
	}
	return b.reg.AddObserved(d, rule)
}

// AddShifted records name on the date rule moves d to, leaving d itself
// empty when it moves. With observance disabled name is recorded on d.
func (b *Builder) AddShifted(name string, d calendar.Date, rule observance.Rule) calendar.Date {
	if !b.observed {
		return b.Add(name, d)
	}
	return b.reg.AddShifted(d, b.Tr(name), rule)
}
