package di

import (
	"github.com/alpacahq/holidays/jurisdiction"
	"github.com/alpacahq/holidays/utils/log"
)

// GetOptions returns the jurisdiction options of the config.
func (c *Container) GetOptions() jurisdiction.Options {
	return jurisdiction.Options{
		Subdivision:     c.cfg.Subdivision,
		Locale:          c.cfg.Locale,
		ObservedRule:    c.cfg.ObservedRule,
		DisableObserved: c.cfg.DisableObserved,
		Resolver:        c.GetCatalog(),
	}
}

// GetHolidays returns the configured jurisdiction, shared by the caller's
// goroutine only.
func (c *Container) GetHolidays() (*jurisdiction.Holidays, error) {
	if c.holidays != nil {
		return c.holidays, nil
	}
	h, err := jurisdiction.New(c.cfg.Jurisdiction, c.GetOptions())
	if err != nil {
		log.Error("could not configure jurisdiction %s: %v", c.cfg.Jurisdiction, err)
		return nil, err
	}
	c.holidays = h
	return c.holidays, nil
}
