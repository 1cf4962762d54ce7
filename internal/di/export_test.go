package di

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alpacahq/holidays/utils"
)

func TestContainer_GetHolidays(t *testing.T) {
	t.Parallel()

	cfg := utils.NewConfig()
	cfg.Subdivision = "QC"
	cfg.Locale = "fr"
	c := NewContainer(cfg)

	h, err := c.GetHolidays()
	require.NoError(t, err)
	assert.Equal(t, "QC", h.Subdivision())
	assert.Equal(t, "fr", h.Locale())

	again, err := c.GetHolidays()
	require.NoError(t, err)
	assert.Same(t, h, again)

	cfg = utils.NewConfig()
	cfg.Subdivision = "ZZ"
	_, err = NewContainer(cfg).GetHolidays()
	assert.Error(t, err)
}

func TestContainer_Export(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := utils.NewConfig()
	cfg.Workers = 2
	cfg.Exports = []*utils.ExportSetting{
		{Jurisdiction: "FEDRESERVE", Output: filepath.Join(dir, "fed.csv")},
		{Jurisdiction: "CA", Subdivision: "NL", Format: "ics", Output: filepath.Join(dir, "nl.txt")},
		{Jurisdiction: "ECB", Output: filepath.Join(dir, "ecb.json.gz")},
	}
	c := NewContainer(cfg)

	settings := c.GetExportSettings("")
	require.Len(t, settings, 3)

	p := c.NewExportPool([]int{2021})
	jobs := make(chan interface{}, len(settings))
	for _, s := range settings {
		jobs <- s
	}
	close(jobs)
	p.Work(context.Background(), jobs)
	require.NoError(t, p.Wait())

	csv, err := os.ReadFile(filepath.Join(dir, "fed.csv"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(csv), "date,weekday,name"))

	ics, err := os.ReadFile(filepath.Join(dir, "nl.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(ics), "X-WR-CALNAME:Canada (NL)")

	_, err = os.Stat(filepath.Join(dir, "ecb.json.gz"))
	assert.NoError(t, err)
}

func TestContainer_ExportErrors(t *testing.T) {
	t.Parallel()

	cfg := utils.NewConfig()
	cfg.Exports = []*utils.ExportSetting{
		{Jurisdiction: "XX", Output: filepath.Join(t.TempDir(), "x.json")},
	}
	c := NewContainer(cfg)

	p := c.NewExportPool([]int{2021})
	jobs := make(chan interface{}, 2)
	jobs <- cfg.Exports[0]
	jobs <- "not a setting"
	close(jobs)
	p.Work(context.Background(), jobs)
	assert.Error(t, p.Wait())
}

func TestContainer_DefaultExportSetting(t *testing.T) {
	t.Parallel()

	cfg := utils.NewConfig()
	cfg.Subdivision = "BC"
	cfg.Format = "yaml"
	settings := NewContainer(cfg).GetExportSettings("out.yaml")
	require.Len(t, settings, 1)
	assert.Equal(t, &utils.ExportSetting{
		Jurisdiction: "CA",
		Subdivision:  "BC",
		Output:       "out.yaml",
	}, settings[0])
}

func TestContainer_ExportMoreJobsThanWorkers(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := utils.NewConfig()
	cfg.Workers = 3
	subdivisions := []string{"AB", "BC", "MB", "NB", "NL", "NS", "ON", "QC"}
	for _, sub := range subdivisions {
		cfg.Exports = append(cfg.Exports, &utils.ExportSetting{
			Jurisdiction: "CA",
			Subdivision:  sub,
			Output:       filepath.Join(dir, strings.ToLower(sub)+".json"),
		})
	}
	c := NewContainer(cfg)

	p := c.NewExportPool([]int{2023})
	jobs := make(chan interface{})
	go func() {
		defer close(jobs)
		for _, s := range c.GetExportSettings("") {
			jobs <- s
		}
	}()
	p.Work(context.Background(), jobs)
	require.NoError(t, p.Wait())

	for _, sub := range subdivisions {
		data, err := os.ReadFile(filepath.Join(dir, strings.ToLower(sub)+".json"))
		require.NoError(t, err, sub)
		assert.Contains(t, string(data), `"`+sub+`"`, sub)
	}
}
