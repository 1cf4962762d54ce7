// Package common holds the flags shared by the subcommands.
package common

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/alpacahq/holidays/utils"
	"github.com/alpacahq/holidays/utils/log"
)

const (
	configDesc       = "path of a YAML configuration file"
	jurisdictionDesc = "jurisdiction code or alias, such as CA or FEDRESERVE"
	subdivisionDesc  = "subdivision code, such as ON"
	localeDesc       = "locale of the holiday names, such as fr"
	observedRuleDesc = "observance rule replacing the jurisdiction default"
	noObservedDesc   = "do not add observed holidays"
	logLevelDesc     = "log level: debug, info, warning, error or fatal"
	yearDesc         = "year to evaluate, repeatable (default: current year)"
)

// Settings are flag values layered over the config file and environment.
type Settings struct {
	ConfigPath   string
	Jurisdiction string
	Subdivision  string
	Locale       string
	ObservedRule string
	NoObserved   bool
	LogLevel     string
	Years        []int
}

// Register adds the shared flags to cmd.
func (s *Settings) Register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&s.ConfigPath, "config", "c", "", configDesc)
	fs.StringVarP(&s.Jurisdiction, "jurisdiction", "j", "", jurisdictionDesc)
	fs.StringVarP(&s.Subdivision, "subdivision", "s", "", subdivisionDesc)
	fs.StringVarP(&s.Locale, "locale", "l", "", localeDesc)
	fs.StringVar(&s.ObservedRule, "observed-rule", "", observedRuleDesc)
	fs.BoolVar(&s.NoObserved, "no-observed", false, noObservedDesc)
	fs.StringVar(&s.LogLevel, "log-level", "", logLevelDesc)
	fs.IntSliceVarP(&s.Years, "year", "y", nil, yearDesc)
}

// Load reads the config file and environment, then applies the flags
// that were set on cmd.
func (s *Settings) Load(cmd *cobra.Command) (*utils.HolidaysConfig, error) {
	cfg, err := utils.LoadConfig(s.ConfigPath)
	if err != nil {
		return nil, err
	}

	fs := cmd.Flags()
	if fs.Changed("jurisdiction") {
		cfg.Jurisdiction = s.Jurisdiction
		// the subdivision of another jurisdiction does not carry over
		if !fs.Changed("subdivision") {
			cfg.Subdivision = ""
		}
	}
	if fs.Changed("subdivision") {
		cfg.Subdivision = s.Subdivision
	}
	if fs.Changed("locale") {
		cfg.Locale = s.Locale
	}
	if fs.Changed("observed-rule") {
		cfg.ObservedRule = s.ObservedRule
	}
	if fs.Changed("no-observed") {
		cfg.DisableObserved = s.NoObserved
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = log.ParseLevel(s.LogLevel)
	}
	if fs.Changed("year") {
		cfg.Years = s.Years
	}
	if len(cfg.Years) == 0 {
		cfg.Years = []int{time.Now().Year()}
	}

	log.SetLevel(cfg.LogLevel)
	if s.ConfigPath != "" {
		log.Debug("using %v for configuration", s.ConfigPath)
	}
	return cfg, nil
}
