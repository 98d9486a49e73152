package catalog

import (
	"slices"

	"github.com/qyinm/cartui/types"
)

// State holds the full catalog, the filtered view and the current page.
// The full list is set once by NewState and never mutated. Every filter
// change replaces the filtered view and resets the page to 1.
type State struct {
	mode     FilterMode
	full     []types.Car
	filtered []types.Car
	page     int

	// Last predicate inputs, used in Combined mode.
	term       string
	maxPrice   float64
	hasCeiling bool
}

// NewState creates a State whose filtered view is the whole catalog.
func NewState(cars []types.Car, mode FilterMode) *State {
	full := slices.Clone(cars)
	return &State{
		mode:     mode,
		full:     full,
		filtered: slices.Clone(full),
		page:     1,
	}
}

// Accessors for State fields. Slices are returned as copies, so callers
// cannot reach the lists held by the State.
func (s *State) Mode() FilterMode       { return s.mode }
func (s *State) Full() []types.Car      { return slices.Clone(s.full) }
func (s *State) Filtered() []types.Car  { return slices.Clone(s.filtered) }
func (s *State) Page() int              { return s.page }
func (s *State) Term() string           { return s.term }
func (s *State) Total() int             { return len(s.filtered) }
func (s *State) PageCount() int         { return PageCount(len(s.filtered)) }
func (s *State) PageItems() []types.Car { return slices.Clone(PageSlice(s.filtered, s.page)) }
func (s *State) Controls() []PageButton { return Controls(len(s.filtered), s.page) }
func (s *State) Empty() bool            { return len(s.filtered) == 0 }

// MaxPrice returns the last price ceiling and whether one was ever set.
func (s *State) MaxPrice() (float64, bool) { return s.maxPrice, s.hasCeiling }

// Search recomputes the filtered view from the full list for term.
func (s *State) Search(term string) {
	s.term = term
	if s.mode == Combined && s.hasCeiling {
		s.filtered = ApplyBoth(s.full, term, s.maxPrice)
	} else {
		s.filtered = ApplySearch(s.full, term)
	}
	s.page = 1
}

// SetMaxPrice recomputes the filtered view from the full list for the ceiling.
func (s *State) SetMaxPrice(maxPrice float64) {
	s.maxPrice = maxPrice
	s.hasCeiling = true
	if s.mode == Combined {
		s.filtered = ApplyBoth(s.full, s.term, maxPrice)
	} else {
		s.filtered = ApplyPriceCeiling(s.full, maxPrice)
	}
	s.page = 1
}

// SetPage moves to page, clamped to the valid range. The filtered view is untouched.
func (s *State) SetPage(page int) {
	s.page = ClampPage(page, len(s.filtered))
}

// NextPage advances one page, stopping at the last.
func (s *State) NextPage() { s.SetPage(s.page + 1) }

// PrevPage goes back one page, stopping at the first.
func (s *State) PrevPage() { s.SetPage(s.page - 1) }
