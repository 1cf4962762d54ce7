// Package observance holds the named policies that move a holiday falling
// on a weekend (or, for some rules, any day) to the date on which it is
// observed.
package observance

import (
	"sort"
	"time"

	"github.com/alpacahq/holidays/calendar"
)

// Rule maps the weekday of a holiday to the number of days it moves.
// Rules are plain values and safe to share between jurisdictions.
type Rule struct {
	Name  string
	shift [7]int
}

// NewRule creates a rule from a weekday -> day delta table. Weekdays not
// in the table are observed on the day itself.
func NewRule(name string, shifts map[time.Weekday]int) Rule {
	r := Rule{Name: name}
	for wd, delta := range shifts {
		r.shift[wd] = delta
	}
	return r
}

// Apply returns the observed date for d and whether it moved.
func (r Rule) Apply(d calendar.Date) (calendar.Date, bool) {
	delta := r.shift[d.Weekday()]
	if delta == 0 {
		return d, false
	}
	return d.AddDays(delta), true
}

// Shift returns the day delta the rule applies to weekday.
func (r Rule) Shift(weekday time.Weekday) int {
	return r.shift[weekday]
}

// IsZero reports whether r is the zero Rule, which never shifts.
func (r Rule) IsZero() bool {
	return r.Name == "" && r.shift == [7]int{}
}

func (r Rule) String() string {
	return r.Name
}

// Named rules.
var (
	// None never moves a holiday.
	None = NewRule("NONE", nil)

	// AllToNearestMonday moves any day but Monday to the closest Monday.
	AllToNearestMonday = NewRule("ALL_TO_NEAREST_MON", map[time.Weekday]int{
		time.Tuesday:   -1,
		time.Wednesday: -2,
		time.Thursday:  -3,
		time.Friday:    +3,
		time.Saturday:  +2,
		time.Sunday:    +1,
	})

	// SatSunToNextMonday moves Saturday and Sunday to the following Monday.
	SatSunToNextMonday = NewRule("SAT_SUN_TO_NEXT_MON", map[time.Weekday]int{
		time.Saturday: +2,
		time.Sunday:   +1,
	})

	// SatSunToNextMondayTuesday moves Saturday to Monday and Sunday to
	// Tuesday, so that two consecutive weekend holidays get distinct
	// observed days.
	SatSunToNextMondayTuesday = NewRule("SAT_SUN_TO_NEXT_MON_TUE", map[time.Weekday]int{
		time.Saturday: +2,
		time.Sunday:   +2,
	})

	// SunToNextMonday moves Sunday to Monday; Saturday is kept.
	SunToNextMonday = NewRule("SUN_TO_NEXT_MON", map[time.Weekday]int{
		time.Sunday: +1,
	})

	// SatToPrevFriSunToNextMonday moves Saturday back to Friday and Sunday
	// forward to Monday.
	SatToPrevFriSunToNextMonday = NewRule("SAT_TO_PREV_FRI_SUN_TO_NEXT_MON", map[time.Weekday]int{
		time.Saturday: -1,
		time.Sunday:   +1,
	})
)

var rules = map[string]Rule{}

func init() {
	for _, r := range []Rule{
		None,
		AllToNearestMonday,
		SatSunToNextMonday,
		SatSunToNextMondayTuesday,
		SunToNextMonday,
		SatToPrevFriSunToNextMonday,
	} {
		rules[r.Name] = r
	}
}

// Lookup returns the rule registered under name.
func Lookup(name string) (Rule, error) {
	r, ok := rules[name]
	if !ok {
		return Rule{}, UnknownRuleError(name)
	}
	return r, nil
}

// Names returns the sorted names of all registered rules.
func Names() []string {
	out := make([]string, 0, len(rules))
	for name := range rules {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// UnknownRuleError is returned by Lookup for an unregistered name.
type UnknownRuleError string

func (msg UnknownRuleError) Error() string {
	return string(msg) + ": unknown observance rule"
}
