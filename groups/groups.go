// Package groups provides holidays shared by many jurisdictions. The
// providers are stateless: a jurisdiction calls the ones it needs while it
// populates a year.
package groups

import (
	"time"

	"github.com/alpacahq/holidays/calendar"
)

// Adder receives holidays for the year being populated.
type Adder interface {
	Year() int
	// Add records name on d and returns d.
	Add(name string, d calendar.Date) calendar.Date
}

func add(a Adder, name string, month time.Month, day int) calendar.Date {
	return a.Add(name, calendar.Date{Year: a.Year(), Month: month, Day: day})
}

// Christian holidays, fixed and Easter based.
type Christian struct{}

// EasterSunday adds Easter Sunday.
func (Christian) EasterSunday(a Adder, name string) calendar.Date {
	return a.Add(name, calendar.EasterSunday(a.Year()))
}

// GoodFriday adds the Friday before Easter Sunday.
func (Christian) GoodFriday(a Adder, name string) calendar.Date {
	return a.Add(name, calendar.EasterOffset(a.Year(), -2))
}

// EasterMonday adds the Monday after Easter Sunday.
func (Christian) EasterMonday(a Adder, name string) calendar.Date {
	return a.Add(name, calendar.EasterOffset(a.Year(), 1))
}

// AscensionDay adds the 39th day after Easter Sunday.
func (Christian) AscensionDay(a Adder, name string) calendar.Date {
	return a.Add(name, calendar.EasterOffset(a.Year(), 39))
}

// WhitMonday adds the 50th day after Easter Sunday.
func (Christian) WhitMonday(a Adder, name string) calendar.Date {
	return a.Add(name, calendar.EasterOffset(a.Year(), 50))
}

// SaintJohnsDay adds June 24.
func (Christian) SaintJohnsDay(a Adder, name string) calendar.Date {
	return add(a, name, time.June, 24)
}

// ChristmasDay adds December 25.
func (Christian) ChristmasDay(a Adder, name string) calendar.Date {
	return add(a, name, time.December, 25)
}

// ChristmasDayTwo adds December 26.
func (Christian) ChristmasDayTwo(a Adder, name string) calendar.Date {
	return add(a, name, time.December, 26)
}

// International holidays with fixed dates.
type International struct{}

// NewYearsDay adds January 1.
func (International) NewYearsDay(a Adder, name string) calendar.Date {
	return add(a, name, time.January, 1)
}

// LabourDay adds May 1.
func (International) LabourDay(a Adder, name string) calendar.Date {
	return add(a, name, time.May, 1)
}

// RemembranceDay adds November 11.
func (International) RemembranceDay(a Adder, name string) calendar.Date {
	return add(a, name, time.November, 11)
}
