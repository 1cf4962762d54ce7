package calendar

import (
	"testing"
	"time"

	"github.com/rickar/cal/v2/aa"
	"github.com/stretchr/testify/assert"
)

func TestEasterSunday(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year int
		want Date
	}{
		{1818, Date{1818, time.March, 22}},
		{1943, Date{1943, time.April, 25}},
		{2000, Date{2000, time.April, 23}},
		{2010, Date{2010, time.April, 4}},
		{2019, Date{2019, time.April, 21}},
		{2023, Date{2023, time.April, 9}},
		{2024, Date{2024, time.March, 31}},
		{2038, Date{2038, time.April, 25}},
		{2200, Date{2200, time.April, 6}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EasterSunday(tt.year), "year %d", tt.year)
	}
}

func TestEasterOffset_2023(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Date{2023, time.April, 7}, EasterOffset(2023, -2))
	assert.Equal(t, Date{2023, time.April, 10}, EasterOffset(2023, 1))
}

func TestEasterOffset_MatchesRickarCal(t *testing.T) {
	t.Parallel()

	for year := 1900; year <= 2100; year++ {
		gf, _ := aa.GoodFriday.Calc(year)
		em, _ := aa.EasterMonday.Calc(year)
		assert.Equal(t, FromTime(gf), EasterOffset(year, -2), "Good Friday %d", year)
		assert.Equal(t, FromTime(em), EasterOffset(year, 1), "Easter Monday %d", year)
	}
}
