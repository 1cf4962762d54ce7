package jurisdiction

import "github.com/alpacahq/holidays/observance"

// EuropeanCentralBank holidays of the TARGET payment system. TARGET opened
// in 1999 closed only on New Year's Day and Christmas Day.
var EuropeanCentralBank = &Definition{
	Code:             "ECB",
	Aliases:          []string{"TAR", "TARGET"},
	Name:             "European Central Bank",
	ObservedRule:     observance.None,
	SupportedLocales: []string{"en"},
	DefaultLocale:    "en",
	StartYear:        1999,
	Populate:         addECBHolidays,
}

func addECBHolidays(b *Builder) {
	b.International.NewYearsDay(b, "New Year's Day")
	if b.Since(2000) {
		b.Christian.GoodFriday(b, "Good Friday")
		b.Christian.EasterMonday(b, "Easter Monday")
		b.International.LabourDay(b, "Labour Day")
	}
	b.Christian.ChristmasDay(b, "Christmas Day")
	if b.Since(2000) {
		b.Christian.ChristmasDayTwo(b, "Christmas Holiday")
	}
}
