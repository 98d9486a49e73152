// Package catalog holds the in-memory catalog: the full car list, the
// filtered view derived from it, and the page arithmetic over that view.
// Nothing here performs I/O.
package catalog

import (
	"fmt"
	"strings"

	"github.com/qyinm/cartui/types"
)

// FilterMode controls how the search and price predicates interact.
type FilterMode int

const (
	// Exclusive recomputes the view with only the predicate that just changed,
	// discarding the effect of the other one.
	Exclusive FilterMode = iota
	// Combined applies the last search term and the last price ceiling together.
	Combined
)

// String returns the string representation of the filter mode
func (m FilterMode) String() string {
	switch m {
	case Exclusive:
		return "exclusive"
	case Combined:
		return "combined"
	default:
		return "unknown"
	}
}

// ParseFilterMode accepts "exclusive" or "combined". Empty means Exclusive.
func ParseFilterMode(raw string) (FilterMode, error) {
	switch strings.TrimSpace(strings.ToLower(raw)) {
	case "", "exclusive":
		return Exclusive, nil
	case "combined":
		return Combined, nil
	default:
		return Exclusive, fmt.Errorf("invalid filter mode %q; expected exclusive|combined", raw)
	}
}

// MatchesSearch reports whether make or model contains term, case-insensitively.
// term must already be lower-cased.
func MatchesSearch(car types.Car, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(car.Make()), term) ||
		strings.Contains(strings.ToLower(car.Model()), term)
}

// ApplySearch returns the cars whose make or model contains term.
// An empty term matches everything. Order is preserved.
func ApplySearch(cars []types.Car, term string) []types.Car {
	term = strings.ToLower(term)
	return filter(cars, func(c types.Car) bool { return MatchesSearch(c, term) })
}

// ApplyPriceCeiling returns the cars priced at or below maxPrice. Order is preserved.
func ApplyPriceCeiling(cars []types.Car, maxPrice float64) []types.Car {
	return filter(cars, func(c types.Car) bool { return c.Price() <= maxPrice })
}

// ApplyBoth returns the cars matching term and priced at or below maxPrice.
func ApplyBoth(cars []types.Car, term string, maxPrice float64) []types.Car {
	term = strings.ToLower(term)
	return filter(cars, func(c types.Car) bool {
		return c.Price() <= maxPrice && MatchesSearch(c, term)
	})
}

func filter(cars []types.Car, keep func(types.Car) bool) []types.Car {
	out := make([]types.Car, 0, len(cars))
	for _, c := range cars {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
