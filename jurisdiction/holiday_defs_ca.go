package jurisdiction

import (
	"time"

	"github.com/alpacahq/holidays/calendar"
	"github.com/alpacahq/holidays/observance"
)

// Canada holidays, federal and provincial.
var Canada = &Definition{
	Code:          "CA",
	Aliases:       []string{"CAN"},
	Name:          "Canada",
	ObservedRule:  observance.SatSunToNextMonday,
	ObservedLabel: "%s (Observed)",
	Subdivisions: []string{
		"AB", "BC", "MB", "NB", "NL", "NS", "NT",
		"NU", "ON", "PE", "QC", "SK", "YT",
	},
	DefaultSubdivision: "ON",
	SupportedLocales:   []string{"ar", "en", "fr", "th"},
	DefaultLocale:      "en",
	StartYear:          1867,
	Populate:           addCanadaHolidays,
	SubdivisionRules: map[string]RuleFunc{
		"AB": addCanadaABHolidays,
		"BC": addCanadaBCHolidays,
		"MB": addCanadaMBHolidays,
		"NB": addCanadaNBHolidays,
		"NL": addCanadaNLHolidays,
		"NS": addCanadaNSHolidays,
		"NT": addCanadaNTHolidays,
		"NU": addCanadaNUHolidays,
		"ON": addCanadaONHolidays,
		"PE": addCanadaPEHolidays,
		"QC": addCanadaQCHolidays,
		"SK": addCanadaSKHolidays,
		"YT": addCanadaYTHolidays,
	},
}

func addCanadaHolidays(b *Builder) {
	b.AddObserved(b.International.NewYearsDay(b, "New Year's Day"))

	b.Christian.GoodFriday(b, "Good Friday")
	b.Christian.EasterMonday(b, "Easter Monday")

	if b.Until(1982) {
		b.AddObserved(b.AddOn("Dominion Day", time.July, 1))
	}

	if b.Since(1894) {
		b.AddNthWeekday("Labour Day", 1, time.Monday, time.September)
	}

	b.AddObserved(b.Christian.ChristmasDay(b, "Christmas Day"), observance.SatSunToNextMondayTuesday)
	b.AddObserved(b.Christian.ChristmasDayTwo(b, "Boxing Day"), observance.SatSunToNextMondayTuesday)

	// July 1 is added ahead of the provincial holidays
	if b.Since(1983) {
		name := "Canada Day"
		if b.Subdivision() == "NL" {
			name = "Memorial Day"
		}
		b.AddObserved(b.AddOn(name, time.July, 1))
	}
}

func addCanadaFamilyDay(b *Builder) {
	b.AddNthWeekday("Family Day", 3, time.Monday, time.February)
}

func addCanadaVictoriaDay(b *Builder) {
	if b.Since(1953) {
		b.AddNthWeekdayFrom("Victoria Day", -1, time.Monday, time.May, 24)
	}
}

func addCanadaThanksgiving(b *Builder) {
	if !b.Since(1931) {
		return
	}
	// moved for the general election held on the second Monday of October
	if b.In(1935) {
		b.AddOn("Thanksgiving", time.October, 25)
		return
	}
	b.AddNthWeekday("Thanksgiving", 2, time.Monday, time.October)
}

func addCanadaQueensFuneral(b *Builder) {
	if b.In(2022) {
		b.AddOn("Funeral of Her Majesty the Queen Elizabeth II", time.September, 19)
	}
}

func addCanadaRemembranceDay(b *Builder, observed bool) {
	if !b.Since(1931) {
		return
	}
	d := b.International.RemembranceDay(b, "Remembrance Day")
	if observed {
		b.AddObserved(d, observance.SunToNextMonday)
	}
}

func addCanadaTruthAndReconciliation(b *Builder, since int) {
	if b.Since(since) {
		b.AddOn("National Day for Truth and Reconciliation", time.September, 30)
	}
}

func nearestMonday(b *Builder, month time.Month, day int) calendar.Date {
	return calendar.NearestWeekday(b.Date(month, day), time.Monday)
}

func addCanadaABHolidays(b *Builder) {
	if b.Since(1990) {
		addCanadaFamilyDay(b)
	}
	addCanadaVictoriaDay(b)
	if b.Since(1974) {
		b.AddNthWeekday("Heritage Day", 1, time.Monday, time.August)
	}
	addCanadaThanksgiving(b)
	addCanadaRemembranceDay(b, false)
}

func addCanadaBCHolidays(b *Builder) {
	switch {
	case b.Since(2019):
		b.AddNthWeekday("Family Day", 3, time.Monday, time.February)
	case b.Since(2013):
		b.AddNthWeekday("Family Day", 2, time.Monday, time.February)
	}
	addCanadaVictoriaDay(b)
	if b.Since(1974) {
		b.AddNthWeekday("British Columbia Day", 1, time.Monday, time.August)
	}
	addCanadaQueensFuneral(b)
	addCanadaTruthAndReconciliation(b, 2023)
	addCanadaThanksgiving(b)
	addCanadaRemembranceDay(b, false)
}

func addCanadaMBHolidays(b *Builder) {
	if b.Since(2008) {
		b.AddNthWeekday("Louis Riel Day", 3, time.Monday, time.February)
	}
	addCanadaVictoriaDay(b)
	if b.Since(1900) {
		name := "Civic Holiday"
		if b.Since(2015) {
			name = "Terry Fox Day"
		}
		b.AddNthWeekday(name, 1, time.Monday, time.August)
	}
	addCanadaTruthAndReconciliation(b, 2021)
	addCanadaThanksgiving(b)
	addCanadaRemembranceDay(b, false)
}

func addCanadaNBHolidays(b *Builder) {
	if b.Since(2018) {
		addCanadaFamilyDay(b)
	}
	addCanadaVictoriaDay(b)
	if b.Since(1900) {
		b.AddNthWeekday("New Brunswick Day", 1, time.Monday, time.August)
	}
	addCanadaQueensFuneral(b)
	addCanadaRemembranceDay(b, false)
}

func addCanadaNLHolidays(b *Builder) {
	if b.Since(1900) {
		b.Add("St. Patrick's Day", nearestMonday(b, time.March, 17))
	}
	if b.Since(1990) {
		d := nearestMonday(b, time.April, 23)
		// observed a week early in 2010 although the 26th is nearer
		if b.In(2010) {
			d = b.Date(time.April, 19)
		}
		b.Add("St. George's Day", d)
	}
	if b.Since(1997) {
		b.Add("Discovery Day", nearestMonday(b, time.June, 24))
	}
	addCanadaQueensFuneral(b)
	addCanadaRemembranceDay(b, true)
}

func addCanadaNSHolidays(b *Builder) {
	if b.Since(2015) {
		b.AddNthWeekday("Heritage Day", 3, time.Monday, time.February)
	}
	addCanadaQueensFuneral(b)
	addCanadaTruthAndReconciliation(b, 2021)
	addCanadaRemembranceDay(b, true)
}

func addCanadaNTHolidays(b *Builder) {
	addCanadaVictoriaDay(b)
	if b.Since(1996) {
		b.AddOn("National Aboriginal Day", time.June, 21)
	}
	if b.Since(1900) {
		b.AddNthWeekday("Civic Holiday", 1, time.Monday, time.August)
	}
	addCanadaThanksgiving(b)
	addCanadaRemembranceDay(b, true)
}

func addCanadaNUHolidays(b *Builder) {
	addCanadaVictoriaDay(b)
	if b.Since(2000) {
		d := b.Date(time.July, 9)
		if b.In(2000) {
			d = b.Date(time.April, 1)
		}
		b.AddObserved(b.Add("Nunavut Day", d), observance.SunToNextMonday)
	}
	addCanadaThanksgiving(b)
	addCanadaRemembranceDay(b, false)
}

func addCanadaONHolidays(b *Builder) {
	if b.Since(2008) {
		addCanadaFamilyDay(b)
	}
	addCanadaVictoriaDay(b)
	if b.Since(1900) {
		b.AddNthWeekday("Civic Holiday", 1, time.Monday, time.August)
	}
	addCanadaThanksgiving(b)
}

func addCanadaPEHolidays(b *Builder) {
	switch {
	case b.Since(2010):
		b.AddNthWeekday("Islander Day", 3, time.Monday, time.February)
	case b.Since(2009):
		b.AddNthWeekday("Islander Day", 2, time.Monday, time.February)
	}
	addCanadaQueensFuneral(b)
	addCanadaRemembranceDay(b, true)
}

func addCanadaQCHolidays(b *Builder) {
	if b.Since(2003) {
		b.AddNthWeekdayFrom("National Patriots' Day", -1, time.Monday, time.May, 24)
	}
	if b.Since(1925) {
		b.AddObserved(b.Christian.SaintJohnsDay(b, "St. Jean Baptiste Day"), observance.SunToNextMonday)
	}
	addCanadaThanksgiving(b)
}

func addCanadaSKHolidays(b *Builder) {
	if b.Since(2007) {
		addCanadaFamilyDay(b)
	}
	addCanadaVictoriaDay(b)
	if b.Since(1900) {
		b.AddNthWeekday("Saskatchewan Day", 1, time.Monday, time.August)
	}
	addCanadaThanksgiving(b)
	addCanadaRemembranceDay(b, true)
}

func addCanadaYTHolidays(b *Builder) {
	// Friday before the last Sunday of February
	if b.Since(1974) {
		lastSunday := calendar.MustNthWeekdayOfMonth(-1, time.Sunday, time.February, b.Year())
		b.Add("Heritage Day", lastSunday.AddDays(-2))
	}
	addCanadaVictoriaDay(b)
	if b.Since(1912) {
		b.AddNthWeekday("Discovery Day", 3, time.Monday, time.August)
	}
	addCanadaQueensFuneral(b)
	addCanadaThanksgiving(b)
	addCanadaRemembranceDay(b, false)
}
