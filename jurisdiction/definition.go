// Package jurisdiction evaluates the holiday rules of countries and markets.
//
// A Definition carries the rules of one jurisdiction. Holidays binds a
// Definition to a subdivision, a locale and an observance policy, and
// populates its registry one year at a time on first use.
package jurisdiction

import (
	"github.com/alpacahq/holidays/i18n"
	"github.com/alpacahq/holidays/observance"
	"github.com/alpacahq/holidays/registry"
)

// RuleFunc adds the holidays of the year the Builder is populating.
type RuleFunc func(b *Builder)

// Definition describes the rules of one jurisdiction.
type Definition struct {
	// Code is the primary identifier, such as "CA".
	Code string
	// Aliases resolve to the same Definition in Lookup.
	Aliases []string
	Name    string

	// ObservedRule is used by Builder.AddObserved when a contribution does
	// not name its own rule.
	ObservedRule observance.Rule
	// ObservedLabel is the canonical key of the observed name format.
	ObservedLabel string
	// Collision decides whether an observed name is added on a date that
	// already holds a holiday. The zero value merges.
	Collision registry.Collision

	Subdivisions       []string
	DefaultSubdivision string

	SupportedLocales []string
	DefaultLocale    string

	// StartYear is the first year with any holidays. Earlier years are empty.
	StartYear int

	// Populate adds the holidays common to every subdivision.
	Populate RuleFunc
	// SubdivisionRules run after Populate for the selected subdivision.
	SubdivisionRules map[string]RuleFunc
}

func (def *Definition) hasSubdivision(code string) bool {
	for _, s := range def.Subdivisions {
		if s == code {
			return true
		}
	}
	return false
}

func (def *Definition) observedLabel() string {
	if def.ObservedLabel == "" {
		return "%s (Observed)"
	}
	return def.ObservedLabel
}

func (def *Definition) defaultLocale() string {
	if def.DefaultLocale == "" {
		return i18n.BaseLocale
	}
	return def.DefaultLocale
}
