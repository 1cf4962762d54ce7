// Package registry stores the holidays of a jurisdiction keyed by date.
//
// A Registry only grows while a year is being populated: adding a second
// name on a date merges it with the first one instead of replacing it.
package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alpacahq/holidays/calendar"
	"github.com/alpacahq/holidays/observance"
)

const (
	// Separator joins the names of holidays sharing a date.
	Separator = ", "
	// DefaultObservedLabel is the format applied to a name moved by an
	// observance rule.
	DefaultObservedLabel = "%s (Observed)"
)

// Collision decides what AddObserved does when the observed date already
// holds a holiday.
type Collision int

const (
	// Merge adds the observed name next to the existing ones.
	Merge Collision = iota
	// Skip drops the observed name.
	Skip
)

// Entry is a date and the names of the holidays on it, in insertion order.
type Entry struct {
	Date  calendar.Date
	Names []string
}

// Label returns the names joined with Separator.
func (e Entry) Label() string {
	return strings.Join(e.Names, Separator)
}

// Registry maps dates to holiday entries.
type Registry struct {
	// ObservedLabel formats names added by AddObserved and AddShifted.
	ObservedLabel string
	// Collision is the policy for observed dates that already hold a holiday.
	Collision Collision

	entries  map[calendar.Date]*Entry
	observed map[calendar.Date]map[string]struct{}
}

// New creates an empty registry using DefaultObservedLabel and Merge.
func New() *Registry {
	return &Registry{
		ObservedLabel: DefaultObservedLabel,
		Collision:     Merge,
		entries:       map[calendar.Date]*Entry{},
		observed:      map[calendar.Date]map[string]struct{}{},
	}
}

// Add inserts name on d, merging with the holidays already there. Adding
// the same name twice on a date is a no-op. d is returned for chaining
// into AddObserved.
func (r *Registry) Add(d calendar.Date, name string) calendar.Date {
	e, ok := r.entries[d]
	if !ok {
		r.entries[d] = &Entry{Date: d, Names: []string{name}}
		return d
	}
	for _, n := range e.Names {
		if n == name {
			return d
		}
	}
	e.Names = append(e.Names, name)
	return d
}

// AddObserved applies rule to d. When the holiday moves, every name on d
// is added on the new date formatted with ObservedLabel. It returns the
// observed date and true, or d and false when nothing was added.
func (r *Registry) AddObserved(d calendar.Date, rule observance.Rule) (calendar.Date, bool) {
	e, ok := r.entries[d]
	if !ok {
		return d, false
	}
	shifted, moved := rule.Apply(d)
	if !moved {
		return d, false
	}
	if r.Collision == Skip && r.Contains(shifted) {
		return d, false
	}
	names := append([]string(nil), e.Names...)
	for _, name := range names {
		r.addObserved(shifted, r.observedName(name))
	}
	return shifted, true
}

// AddShifted adds name on the date rule moves d to. Unlike AddObserved the
// original date is left untouched: an unmoved holiday keeps its plain name,
// a moved one appears only on the observed date.
func (r *Registry) AddShifted(d calendar.Date, name string, rule observance.Rule) calendar.Date {
	shifted, moved := rule.Apply(d)
	if !moved {
		return r.Add(d, name)
	}
	return r.addObserved(shifted, r.observedName(name))
}

func (r *Registry) addObserved(d calendar.Date, name string) calendar.Date {
	r.Add(d, name)
	names, ok := r.observed[d]
	if !ok {
		names = map[string]struct{}{}
		r.observed[d] = names
	}
	names[name] = struct{}{}
	return d
}

// Import copies the entries of src dated in year into r, keeping their
// observed marks. With Skip, an observed name is not added on a date r
// already holds.
func (r *Registry) Import(src *Registry, year int) {
	for _, d := range src.Dates() {
		if d.Year != year {
			continue
		}
		held := r.Contains(d)
		for _, name := range src.entries[d].Names {
			if _, ok := src.observed[d][name]; ok {
				if held && r.Collision == Skip {
					continue
				}
				r.addObserved(d, name)
				continue
			}
			r.Add(d, name)
		}
	}
}

func (r *Registry) observedName(name string) string {
	label := r.ObservedLabel
	if label == "" {
		label = DefaultObservedLabel
	}
	return fmt.Sprintf(label, name)
}

// Get returns the merged label on d.
func (r *Registry) Get(d calendar.Date) (string, bool) {
	e, ok := r.entries[d]
	if !ok {
		return "", false
	}
	return e.Label(), true
}

// Names returns a copy of the names on d.
func (r *Registry) Names(d calendar.Date) []string {
	e, ok := r.entries[d]
	if !ok {
		return nil
	}
	return append([]string(nil), e.Names...)
}

// Contains reports whether d holds a holiday.
func (r *Registry) Contains(d calendar.Date) bool {
	_, ok := r.entries[d]
	return ok
}

// IsObserved reports whether d holds a name added through an observance
// rule.
func (r *Registry) IsObserved(d calendar.Date) bool {
	return len(r.observed[d]) > 0
}

// Len returns the number of dates holding a holiday.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Dates returns all dates in ascending order.
func (r *Registry) Dates() []calendar.Date {
	out := make([]calendar.Date, 0, len(r.entries))
	for d := range r.entries {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// Entries returns copies of the entries between from and to inclusive, in
// ascending date order.
func (r *Registry) Entries(from, to calendar.Date) []Entry {
	var out []Entry
	for _, d := range r.Dates() {
		if d.Before(from) || d.After(to) {
			continue
		}
		e := r.entries[d]
		out = append(out, Entry{Date: d, Names: append([]string(nil), e.Names...)})
	}
	return out
}

// Year returns a date -> label copy of the holidays in year.
func (r *Registry) Year(year int) map[calendar.Date]string {
	out := map[calendar.Date]string{}
	for d, e := range r.entries {
		if d.Year == year {
			out[d] = e.Label()
		}
	}
	return out
}

// Remove deletes the holidays on d and reports whether there were any.
func (r *Registry) Remove(d calendar.Date) bool {
	_, ok := r.entries[d]
	delete(r.entries, d)
	delete(r.observed, d)
	return ok
}

// RemoveNamed removes name from every date carrying it, including its
// observed form, and returns the affected dates in ascending order.
func (r *Registry) RemoveNamed(name string) []calendar.Date {
	observedName := r.observedName(name)
	var affected []calendar.Date
	for _, d := range r.Dates() {
		e := r.entries[d]
		kept := e.Names[:0]
		for _, n := range e.Names {
			if n != name && n != observedName {
				kept = append(kept, n)
			}
		}
		if len(kept) == len(e.Names) {
			continue
		}
		affected = append(affected, d)
		if len(kept) == 0 {
			r.Remove(d)
			continue
		}
		e.Names = kept
		if names, ok := r.observed[d]; ok {
			delete(names, name)
			delete(names, observedName)
			if len(names) == 0 {
				delete(r.observed, d)
			}
		}
	}
	return affected
}

// Clear drops every entry.
func (r *Registry) Clear() {
	r.entries = map[calendar.Date]*Entry{}
	r.observed = map[calendar.Date]map[string]struct{}{}
}
