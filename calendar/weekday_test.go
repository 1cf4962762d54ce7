package calendar

import (
	"testing"
	"time"

	"github.com/rickar/cal/v2/us"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNthWeekdayOfMonth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		n       int
		weekday time.Weekday
		month   time.Month
		year    int
		want    Date
	}{
		{"ok/3rd Monday of January", 3, time.Monday, time.January, 2021, Date{2021, time.January, 18}},
		{"ok/last Monday of May", -1, time.Monday, time.May, 2021, Date{2021, time.May, 31}},
		{"ok/last Monday of May 2022", -1, time.Monday, time.May, 2022, Date{2022, time.May, 30}},
		{"ok/4th Thursday of November", 4, time.Thursday, time.November, 2021, Date{2021, time.November, 25}},
		{"ok/1st Monday when the 1st is Monday", 1, time.Monday, time.August, 2022, Date{2022, time.August, 1}},
		{"ok/2nd to last Tuesday", -2, time.Tuesday, time.June, 2014, Date{2014, time.June, 17}},
		{"ok/5th Sunday", 5, time.Sunday, time.June, 2014, Date{2014, time.June, 29}},
		{"ok/1st Monday of September 1887", 1, time.Monday, time.September, 1887, Date{1887, time.September, 5}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NthWeekdayOfMonth(tt.n, tt.weekday, tt.month, tt.year)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, IsWeekdayN(got, tt.weekday, tt.n))
		})
	}
}

func TestNthWeekdayOfMonth_InvalidRule(t *testing.T) {
	t.Parallel()

	_, err := NthWeekdayOfMonth(0, time.Monday, time.January, 2021)
	require.Error(t, err)
	assert.IsType(t, InvalidRuleError(""), err)

	// February 2021 has only four Mondays
	_, err = NthWeekdayOfMonth(5, time.Monday, time.February, 2021)
	assert.IsType(t, InvalidRuleError(""), err)

	_, err = NthWeekdayOfMonth(-6, time.Monday, time.February, 2021)
	assert.IsType(t, InvalidRuleError(""), err)

	assert.Panics(t, func() { MustNthWeekdayOfMonth(0, time.Monday, time.January, 2021) })
}

func TestNthWeekdayOfMonth_MatchesRickarCal(t *testing.T) {
	t.Parallel()

	for year := 2000; year <= 2040; year++ {
		mlk, _ := us.MlkDay.Calc(year)
		assert.Equal(t, FromTime(mlk), MustNthWeekdayOfMonth(3, time.Monday, time.January, year), "MLK %d", year)

		memorial, _ := us.MemorialDay.Calc(year)
		assert.Equal(t, FromTime(memorial), MustNthWeekdayOfMonth(-1, time.Monday, time.May, year), "Memorial %d", year)

		thanksgiving, _ := us.ThanksgivingDay.Calc(year)
		assert.Equal(t, FromTime(thanksgiving), MustNthWeekdayOfMonth(4, time.Thursday, time.November, year), "Thanksgiving %d", year)
	}
}

func TestNthWeekdayFrom(t *testing.T) {
	t.Parallel()

	// Monday on or before May 24
	assert.Equal(t, Date{2021, time.May, 24}, NthWeekdayFrom(-1, time.Monday, Date{2021, time.May, 24}))
	assert.Equal(t, Date{2022, time.May, 23}, NthWeekdayFrom(-1, time.Monday, Date{2022, time.May, 24}))
	assert.Equal(t, Date{2023, time.May, 22}, NthWeekdayFrom(-1, time.Monday, Date{2023, time.May, 24}))

	assert.Equal(t, Date{2021, time.June, 7}, NthWeekdayFrom(2, time.Monday, Date{2021, time.May, 25}))
	assert.Equal(t, Date{2021, time.May, 25}, NthWeekdayFrom(0, time.Monday, Date{2021, time.May, 25}))
}

func TestNearestWeekday(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		target Date
		want   Date
	}{
		"ok/ Monday stays":          {target: Date{2022, time.March, 14}, want: Date{2022, time.March, 14}},
		"ok/ Tuesday goes back 1":   {target: Date{2022, time.March, 15}, want: Date{2022, time.March, 14}},
		"ok/ Wednesday goes back 2": {target: Date{2023, time.March, 15}, want: Date{2023, time.March, 13}},
		"ok/ Thursday goes back 3":  {target: Date{2022, time.March, 17}, want: Date{2022, time.March, 14}},
		"ok/ Friday goes forward 3": {target: Date{2023, time.March, 17}, want: Date{2023, time.March, 20}},
		"ok/ Saturday forward 2":    {target: Date{2024, time.March, 16}, want: Date{2024, time.March, 18}},
		"ok/ Sunday forward 1":      {target: Date{2019, time.March, 17}, want: Date{2019, time.March, 18}},
		"ok/ April 23 2010":         {target: Date{2010, time.April, 23}, want: Date{2010, time.April, 26}},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NearestWeekday(tt.target, time.Monday))
		})
	}
}

func TestIsWeekdayN(t *testing.T) {
	t.Parallel()

	assert.True(t, IsWeekdayN(Date{2014, time.June, 30}, time.Monday, -1))
	assert.True(t, IsWeekdayN(Date{2014, time.June, 17}, time.Tuesday, -2))
	assert.False(t, IsWeekdayN(Date{2014, time.June, 17}, time.Tuesday, -6))
	assert.False(t, IsWeekdayN(Date{2014, time.June, 16}, time.Monday, 2))
	assert.False(t, IsWeekdayN(Date{2014, time.June, 16}, time.Monday, 0))
}
