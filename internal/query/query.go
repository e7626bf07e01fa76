// Package query turns the user's list filter into the query parameters sent
// to the registry's list endpoint.
package query

import (
	"net/url"

	"github.com/zjrosen/monkeyreg/internal/monkey"
)

// Query parameter keys understood by GET /api/monkeys.
const (
	KeySpecies = "species"
	KeySearch  = "search"
)

// SpeciesAll is the sentinel meaning "no species constraint".
const SpeciesAll = "all"

// Filter is the user-controlled list constraint.
type Filter struct {
	SearchTerm string
	// Species is a species name, SpeciesAll, or empty.
	Species string
}

// Build maps f to list query parameters. Keys are only present when they
// constrain the listing, so an unconstrained filter yields an empty set.
func Build(f Filter) url.Values {
	v := url.Values{}
	if sp, ok := monkey.ParseSpecies(f.Species); ok {
		v.Set(KeySpecies, string(sp))
	}
	if f.SearchTerm != "" {
		v.Set(KeySearch, f.SearchTerm)
	}
	return v
}

// Active reports whether f narrows the listing at all.
func (f Filter) Active() bool {
	return len(Build(f)) > 0
}

// SpeciesLabel is the filter's display text.
func (f Filter) SpeciesLabel() string {
	if sp, ok := monkey.ParseSpecies(f.Species); ok {
		return sp.Label()
	}
	return "All Species"
}

// NextSpecies cycles the species filter through all, then each species in
// display order.
func (f Filter) NextSpecies() string {
	options := speciesOptions()
	current, ok := monkey.ParseSpecies(f.Species)
	if !ok {
		return options[1]
	}
	for i, o := range options {
		if o == string(current) {
			return options[(i+1)%len(options)]
		}
	}
	return SpeciesAll
}

// PrevSpecies cycles in the opposite direction to NextSpecies.
func (f Filter) PrevSpecies() string {
	options := speciesOptions()
	current, ok := monkey.ParseSpecies(f.Species)
	if !ok {
		return options[len(options)-1]
	}
	for i, o := range options {
		if o == string(current) {
			return options[(i-1+len(options))%len(options)]
		}
	}
	return SpeciesAll
}

func speciesOptions() []string {
	options := make([]string, 0, len(monkey.AllSpecies)+1)
	options = append(options, SpeciesAll)
	for _, sp := range monkey.AllSpecies {
		options = append(options, string(sp))
	}
	return options
}
