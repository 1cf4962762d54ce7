package utils

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/alpacahq/holidays/utils/log"
)

const (
	DefaultJurisdiction = "CA"
	DefaultFormat       = "json"
	DefaultWorkers      = 4
)

var InstanceConfig = NewConfig()

// ExportSetting is one export job of the export command.
type ExportSetting struct {
	Jurisdiction string
	Subdivision  string
	Locale       string
	Format       string
	Output       string
}

type HolidaysConfig struct {
	Jurisdiction    string
	Subdivision     string
	Locale          string
	ObservedRule    string
	DisableObserved bool
	Years           []int
	Format          string
	Workers         int
	LogLevel        log.Level
	Exports         []*ExportSetting
}

// NewConfig returns the defaults used when no file is given.
func NewConfig() *HolidaysConfig {
	return &HolidaysConfig{
		Jurisdiction: DefaultJurisdiction,
		Format:       DefaultFormat,
		Workers:      DefaultWorkers,
		LogLevel:     log.INFO,
	}
}

// envOverrides mirrors the settings that may come from the environment.
// Unset variables leave the pointers nil.
type envOverrides struct {
	Jurisdiction    *string `env:"HOLIDAYS_JURISDICTION"`
	Subdivision     *string `env:"HOLIDAYS_SUBDIVISION"`
	Locale          *string `env:"HOLIDAYS_LOCALE"`
	ObservedRule    *string `env:"HOLIDAYS_OBSERVED_RULE"`
	DisableObserved *bool   `env:"HOLIDAYS_DISABLE_OBSERVED"`
	Format          *string `env:"HOLIDAYS_FORMAT"`
	LogLevel        *string `env:"HOLIDAYS_LOG_LEVEL"`
	Workers         *int    `env:"HOLIDAYS_WORKERS"`
}

// LoadConfig reads path, when given, then applies the environment.
func LoadConfig(path string) (*HolidaysConfig, error) {
	cfg := NewConfig()
	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
		if err := cfg.Parse(data); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *HolidaysConfig) Parse(data []byte) error {
	var aux struct {
		Jurisdiction    string `yaml:"jurisdiction"`
		Subdivision     string `yaml:"subdivision"`
		Locale          string `yaml:"locale"`
		ObservedRule    string `yaml:"observed_rule"`
		DisableObserved string `yaml:"disable_observed"`
		Years           []int  `yaml:"years"`
		Format          string `yaml:"format"`
		Workers         int    `yaml:"workers"`
		LogLevel        string `yaml:"log_level"`
		Exports         []struct {
			Jurisdiction string `yaml:"jurisdiction"`
			Subdivision  string `yaml:"subdivision"`
			Locale       string `yaml:"locale"`
			Format       string `yaml:"format"`
			Output       string `yaml:"output"`
		} `yaml:"exports"`
	}

	if err := yaml.Unmarshal(data, &aux); err != nil {
		return err
	}

	if aux.Jurisdiction != "" {
		c.Jurisdiction = aux.Jurisdiction
	}
	c.Subdivision = aux.Subdivision
	c.Locale = aux.Locale
	c.ObservedRule = aux.ObservedRule
	c.Years = aux.Years

	if aux.DisableObserved != "" {
		disable, err := strconv.ParseBool(aux.DisableObserved)
		if err != nil {
			log.Error("Invalid value: %v for disable_observed. Keeping observed holidays...", aux.DisableObserved)
		} else {
			c.DisableObserved = disable
		}
	}

	if aux.Format != "" {
		c.Format = aux.Format
	}

	if aux.Workers < 0 {
		return errors.Errorf("invalid workers: %d", aux.Workers)
	} else if aux.Workers > 0 {
		c.Workers = aux.Workers
	}

	if aux.LogLevel != "" {
		c.LogLevel = log.ParseLevel(aux.LogLevel)
	}

	for i, exp := range aux.Exports {
		if exp.Output == "" {
			return errors.Errorf("exports[%d]: output is required", i)
		}
		setting := &ExportSetting{
			Jurisdiction: exp.Jurisdiction,
			Subdivision:  exp.Subdivision,
			Locale:       exp.Locale,
			Format:       exp.Format,
			Output:       exp.Output,
		}
		if setting.Jurisdiction == "" {
			setting.Jurisdiction = c.Jurisdiction
		}
		c.Exports = append(c.Exports, setting)
	}

	return nil
}

// ApplyEnv overrides settings with HOLIDAYS_* environment variables.
func (c *HolidaysConfig) ApplyEnv() error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return errors.Wrap(err, "parse env")
	}

	setString := func(dst *string, src *string) {
		if src != nil && strings.TrimSpace(*src) != "" {
			*dst = strings.TrimSpace(*src)
		}
	}
	setString(&c.Jurisdiction, o.Jurisdiction)
	setString(&c.Subdivision, o.Subdivision)
	setString(&c.Locale, o.Locale)
	setString(&c.ObservedRule, o.ObservedRule)
	setString(&c.Format, o.Format)

	if o.DisableObserved != nil {
		c.DisableObserved = *o.DisableObserved
	}
	if o.LogLevel != nil {
		c.LogLevel = log.ParseLevel(*o.LogLevel)
	}
	if o.Workers != nil {
		if *o.Workers <= 0 {
			return errors.Errorf("invalid HOLIDAYS_WORKERS: %d", *o.Workers)
		}
		c.Workers = *o.Workers
	}
	return nil
}
