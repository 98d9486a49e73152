package catalog

import "github.com/qyinm/cartui/types"

// PageSize is the number of cards per page.
const PageSize = 12

// PageButton is one entry of the page controls.
type PageButton struct {
	Number int
	Active bool
}

// PageCount returns ceil(total / PageSize). Zero when total is zero.
func PageCount(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + PageSize - 1) / PageSize
}

// PageSlice returns the cars on the given 1-based page, truncated at the end of
// the list. Out-of-range pages yield an empty slice.
func PageSlice(cars []types.Car, page int) []types.Car {
	if page < 1 {
		return []types.Car{}
	}
	start := (page - 1) * PageSize
	if start >= len(cars) {
		return []types.Car{}
	}
	end := start + PageSize
	if end > len(cars) {
		end = len(cars)
	}
	return cars[start:end]
}

// Controls returns one button per page, with the button for current marked active.
// Passing current <= 0 yields no active button.
func Controls(total, current int) []PageButton {
	n := PageCount(total)
	buttons := make([]PageButton, 0, n)
	for i := 1; i <= n; i++ {
		buttons = append(buttons, PageButton{Number: i, Active: i == current})
	}
	return buttons
}

// ClampPage brings page into [1, max(1, PageCount(total))].
func ClampPage(page, total int) int {
	last := PageCount(total)
	if last < 1 {
		last = 1
	}
	if page < 1 {
		return 1
	}
	if page > last {
		return last
	}
	return page
}
