package jurisdiction

import (
	"sort"
	"strings"
	"time"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"

	"github.com/alpacahq/holidays/calendar"
	"github.com/alpacahq/holidays/i18n"
	"github.com/alpacahq/holidays/metrics"
	"github.com/alpacahq/holidays/observance"
	"github.com/alpacahq/holidays/registry"
	"github.com/alpacahq/holidays/utils/log"
)

// Options configure a Holidays instance. The zero value selects the
// jurisdiction defaults.
type Options struct {
	// Subdivision code, validated against the Definition.
	Subdivision string
	// Locale of the names. An unsupported locale falls back to the
	// jurisdiction default.
	Locale string
	// Years are populated at construction.
	Years []int
	// ObservedRule names an observance.Rule replacing the jurisdiction
	// default. Contributions with their own rule keep it.
	ObservedRule string
	// DisableObserved turns off every observance shift.
	DisableObserved bool
	// NoExpand limits queries to Years; other years look empty.
	NoExpand bool
	// Resolver translates names. Defaults to the embedded i18n catalog.
	Resolver i18n.Resolver
}

// Holidays answers holiday queries for one configured jurisdiction.
// Years are populated on first use and cached until Reset. A Holidays is
// not safe for concurrent use.
type Holidays struct {
	def          *Definition
	subdivision  string
	locale       string
	observed     bool
	observedRule observance.Rule
	expand       bool
	resolver     i18n.Resolver

	reg   *registry.Registry
	years map[int]struct{}
}

// New looks up code and builds a Holidays for it.
func New(code string, opts Options) (*Holidays, error) {
	def, err := Lookup(code)
	if err != nil {
		return nil, err
	}
	return NewFromDefinition(def, opts)
}

// NewFromDefinition builds a Holidays for def.
func NewFromDefinition(def *Definition, opts Options) (*Holidays, error) {
	subdivision := strings.ToUpper(strings.TrimSpace(opts.Subdivision))
	if subdivision == "" {
		subdivision = def.DefaultSubdivision
	}
	if subdivision != "" && !def.hasSubdivision(subdivision) {
		return nil, InvalidSubdivisionError(opts.Subdivision)
	}

	rule := def.ObservedRule
	if opts.ObservedRule != "" {
		r, err := observance.Lookup(opts.ObservedRule)
		if err != nil {
			return nil, errors.Wrapf(err, "configure %s", def.Code)
		}
		rule = r
	}

	resolver := opts.Resolver
	if resolver == nil {
		resolver = i18n.Default()
	}

	h := &Holidays{
		def:          def,
		subdivision:  subdivision,
		observed:     !opts.DisableObserved,
		observedRule: rule,
		expand:       !opts.NoExpand,
		resolver:     resolver,
		reg:          registry.New(),
		years:        map[int]struct{}{},
	}
	h.locale = h.selectLocale(opts.Locale)
	h.reg.ObservedLabel = resolver.Resolve(h.locale, def.observedLabel())
	h.reg.Collision = def.Collision

	for _, year := range opts.Years {
		h.populate(year)
	}
	return h, nil
}

func (h *Holidays) selectLocale(requested string) string {
	fallback := h.def.defaultLocale()
	if strings.TrimSpace(requested) == "" {
		return fallback
	}
	if locale, ok := i18n.Match(requested, h.def.SupportedLocales); ok {
		return locale
	}
	log.Warn("locale %s is not supported by %s, using %s", requested, h.def.Code, fallback)
	return fallback
}

// populate evaluates year and both neighbours, keeping only the dates of
// year. Observed dates crossing a year boundary land in the year they fall
// in whatever the query order.
func (h *Holidays) populate(year int) {
	if _, ok := h.years[year]; ok {
		return
	}
	h.years[year] = struct{}{}

	if year < h.def.StartYear {
		log.Debug("%s has no holidays before %d, skipping %d", h.def.Code, h.def.StartYear, year)
		return
	}

	start := time.Now()
	before := h.reg.Len()
	for _, y := range []int{year, year - 1, year + 1} {
		if y < h.def.StartYear {
			continue
		}
		h.reg.Import(h.evaluate(y), year)
	}
	metrics.YearsPopulatedTotal.WithLabelValues(h.def.Code).Inc()
	metrics.PopulateDuration.WithLabelValues(h.def.Code).Observe(time.Since(start).Seconds())
	log.Debug("populated %s/%s %d: %d dates", h.def.Code, h.subdivision, year, h.reg.Len()-before)
}

// evaluate runs the rules of year into a scratch registry.
func (h *Holidays) evaluate(year int) *registry.Registry {
	reg := registry.New()
	reg.ObservedLabel = h.reg.ObservedLabel
	reg.Collision = h.reg.Collision
	b := &Builder{
		year:         year,
		subdivision:  h.subdivision,
		locale:       h.locale,
		observed:     h.observed,
		observedRule: h.observedRule,
		resolver:     h.resolver,
		reg:          reg,
	}
	if h.def.Populate != nil {
		h.def.Populate(b)
	}
	if fn, ok := h.def.SubdivisionRules[h.subdivision]; ok {
		fn(b)
	}
	return reg
}

// ensure populates year if allowed and reports whether year is available.
func (h *Holidays) ensure(year int) bool {
	if _, ok := h.years[year]; ok {
		return true
	}
	if !h.expand {
		return false
	}
	h.populate(year)
	return true
}

// IsHoliday reports whether d is a holiday.
func (h *Holidays) IsHoliday(d calendar.Date) bool {
	return h.ensure(d.Year) && h.reg.Contains(d)
}

// NameOf returns the label on d. Several holidays on one date are joined
// with registry.Separator.
func (h *Holidays) NameOf(d calendar.Date) (string, bool) {
	if !h.ensure(d.Year) {
		return "", false
	}
	return h.reg.Get(d)
}

// Names returns the individual names on d.
func (h *Holidays) Names(d calendar.Date) []string {
	if !h.ensure(d.Year) {
		return nil
	}
	return h.reg.Names(d)
}

// ForYear returns a copy of the holidays of year.
func (h *Holidays) ForYear(year int) map[calendar.Date]string {
	if !h.ensure(year) {
		return map[calendar.Date]string{}
	}
	return h.reg.Year(year)
}

// Range returns the holidays between from and to inclusive in date order.
func (h *Holidays) Range(from, to calendar.Date) []registry.Entry {
	if to.Before(from) {
		return nil
	}
	for year := from.Year; year <= to.Year; year++ {
		h.ensure(year)
	}
	return h.reg.Entries(from, to)
}

// Named returns the dates of the populated years whose names match
// pattern. Matching ignores case. A pattern without glob syntax matches
// any name containing it.
func (h *Holidays) Named(pattern string) ([]calendar.Date, error) {
	pattern = strings.ToLower(pattern)
	if !strings.ContainsAny(pattern, "*?[{") {
		pattern = "*" + pattern + "*"
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "compile pattern %q", pattern)
	}

	var out []calendar.Date
	for _, d := range h.reg.Dates() {
		for _, name := range h.reg.Names(d) {
			if g.Match(strings.ToLower(name)) {
				out = append(out, d)
				break
			}
		}
	}
	return out, nil
}

// Pop removes the holidays on d and reports whether there were any.
func (h *Holidays) Pop(d calendar.Date) bool {
	if !h.ensure(d.Year) {
		return false
	}
	return h.reg.Remove(d)
}

// PopNamed removes the holiday called name, and its observed form, from
// the populated years.
func (h *Holidays) PopNamed(name string) []calendar.Date {
	return h.reg.RemoveNamed(name)
}

// Years returns the populated years in ascending order.
func (h *Holidays) Years() []int {
	out := make([]int, 0, len(h.years))
	for y := range h.years {
		out = append(out, y)
	}
	sort.Ints(out)
	return out
}

// Reset drops every populated year.
func (h *Holidays) Reset() {
	h.reg.Clear()
	h.years = map[int]struct{}{}
}

// Code returns the jurisdiction code.
func (h *Holidays) Code() string { return h.def.Code }

// Name returns the jurisdiction display name.
func (h *Holidays) Name() string { return h.def.Name }

// Subdivision returns the selected subdivision, or "".
func (h *Holidays) Subdivision() string { return h.subdivision }

// Locale returns the locale names are rendered in.
func (h *Holidays) Locale() string { return h.locale }

// ObservedRule returns the default observance rule in effect.
func (h *Holidays) ObservedRule() observance.Rule { return h.observedRule }
