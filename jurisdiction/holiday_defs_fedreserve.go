package jurisdiction

import (
	"time"

	"github.com/alpacahq/holidays/observance"
)

// FederalReserve holidays. A holiday on a weekend is closed on the nearest
// weekday instead of its own date: Saturday moves to Friday, Sunday to
// Monday.
var FederalReserve = &Definition{
	Code:             "FEDRESERVE",
	Aliases:          []string{"FRES"},
	Name:             "Federal Reserve",
	ObservedRule:     observance.SatToPrevFriSunToNextMonday,
	SupportedLocales: []string{"en"},
	DefaultLocale:    "en",
	Populate:         addFederalReserveHolidays,
}

func addFederalReserveObserved(b *Builder, name string, month time.Month, day int) {
	b.AddShifted(name, b.Date(month, day), b.observedRule)
}

func addFederalReserveHolidays(b *Builder) {
	// a Saturday New Year's Day is closed on Dec 31 of the year before
	addFederalReserveObserved(b, "New Year's Day", time.January, 1)

	if b.Since(1998) {
		b.AddNthWeekday("Martin Luther King Jr. Day", 3, time.Monday, time.January)
	}

	if b.Until(1970) {
		addFederalReserveObserved(b, "Washington's Birthday", time.February, 22)
	} else {
		b.AddNthWeekday("Washington's Birthday", 3, time.Monday, time.February)
	}

	switch {
	case b.Since(1971):
		b.AddNthWeekday("Memorial Day", -1, time.Monday, time.May)
	case b.Since(1873):
		addFederalReserveObserved(b, "Memorial Day", time.May, 30)
	}

	if b.Since(2021) {
		addFederalReserveObserved(b, "Juneteenth National Independence Day", time.June, 19)
	}

	addFederalReserveObserved(b, "Independence Day", time.July, 4)

	if b.Since(1887) {
		b.AddNthWeekday("Labor Day", 1, time.Monday, time.September)
	}

	if b.Since(1909) {
		b.AddNthWeekday("Columbus Day", 2, time.Monday, time.October)
	}

	if b.In(1918, 1921) || b.Since(1934) {
		addFederalReserveObserved(b, "Veteran's Day", time.November, 11)
	}

	b.AddNthWeekday("Thanksgiving Day", 4, time.Thursday, time.November)

	addFederalReserveObserved(b, "Christmas Day", time.December, 25)
}
