package di

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/alpacahq/holidays/export"
	"github.com/alpacahq/holidays/jurisdiction"
	"github.com/alpacahq/holidays/metrics"
	"github.com/alpacahq/holidays/utils"
	"github.com/alpacahq/holidays/utils/log"
	"github.com/alpacahq/holidays/utils/pool"
)

// GetExportSettings returns the configured export jobs. Without any, a
// single job for the top level jurisdiction is written to output. Jobs
// without a format use the output extension, then the config format.
func (c *Container) GetExportSettings(output string) []*utils.ExportSetting {
	if len(c.cfg.Exports) > 0 {
		return c.cfg.Exports
	}
	return []*utils.ExportSetting{{
		Jurisdiction: c.cfg.Jurisdiction,
		Subdivision:  c.cfg.Subdivision,
		Locale:       c.cfg.Locale,
		Output:       output,
	}}
}

// NewExportPool returns a pool writing one *utils.ExportSetting per
// input. Every job builds its own Holidays from options resolved before
// the workers start.
func (c *Container) NewExportPool(years []int) *pool.Pool {
	base := c.GetOptions()
	return pool.NewPool(c.cfg.Workers, func(ctx context.Context, input interface{}) error {
		setting, ok := input.(*utils.ExportSetting)
		if !ok {
			return fmt.Errorf("unexpected export job %T", input)
		}
		return c.runExport(setting, base, years)
	})
}

func (c *Container) runExport(setting *utils.ExportSetting, base jurisdiction.Options, years []int) error {
	format, err := c.exportFormat(setting)
	if err != nil {
		metrics.ExportJobsTotal.WithLabelValues("unknown", metrics.StatusError).Inc()
		return err
	}
	if err := c.writeExport(setting, base, format, years); err != nil {
		metrics.ExportJobsTotal.WithLabelValues(string(format), metrics.StatusError).Inc()
		return err
	}
	metrics.ExportJobsTotal.WithLabelValues(string(format), metrics.StatusOK).Inc()
	return nil
}

func (c *Container) writeExport(setting *utils.ExportSetting, opts jurisdiction.Options, format export.Format, years []int) error {
	if setting.Subdivision != "" || !strings.EqualFold(setting.Jurisdiction, c.cfg.Jurisdiction) {
		opts.Subdivision = setting.Subdivision
	}
	if setting.Locale != "" {
		opts.Locale = setting.Locale
	}

	h, err := jurisdiction.New(setting.Jurisdiction, opts)
	if err != nil {
		return errors.Wrapf(err, "export %s", setting.Output)
	}

	doc := export.FromHolidays(h, years...)
	if err := export.WriteFile(setting.Output, format, doc); err != nil {
		return err
	}
	metrics.ExportedHolidaysTotal.Add(float64(len(doc.Holidays)))
	log.Info("wrote %d holidays of %s to %s", len(doc.Holidays), h.Code(), setting.Output)
	return nil
}

func (c *Container) exportFormat(setting *utils.ExportSetting) (export.Format, error) {
	if setting.Format != "" {
		return export.ParseFormat(setting.Format)
	}
	if f, err := export.FormatFromPath(setting.Output); err == nil {
		return f, nil
	}
	return export.ParseFormat(c.cfg.Format)
}
