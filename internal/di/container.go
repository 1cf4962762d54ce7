package di

import (
	"sync"

	"github.com/alpacahq/holidays/i18n"
	"github.com/alpacahq/holidays/jurisdiction"
	"github.com/alpacahq/holidays/utils"
)

// Container wires the CLI dependencies from a config. Getters build their
// value on first use.
type Container struct {
	cfg      *utils.HolidaysConfig
	holidays *jurisdiction.Holidays

	catalogOnce sync.Once
	catalog     *i18n.Catalog
}

func NewContainer(cfg *utils.HolidaysConfig) *Container {
	return &Container{cfg: cfg}
}

func (c *Container) GetConfig() *utils.HolidaysConfig {
	return c.cfg
}

// GetCatalog is safe for concurrent use.
func (c *Container) GetCatalog() *i18n.Catalog {
	c.catalogOnce.Do(func() {
		c.catalog = i18n.Default()
	})
	return c.catalog
}
