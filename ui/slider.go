package ui

import (
	"math"
	"strings"

	"github.com/qyinm/cartui/catalog"
)

const sliderWidth = 24

// priceSlider is a range input over [min, max] moving in fixed steps.
type priceSlider struct {
	min   float64
	max   float64
	step  float64
	value float64
}

func newPriceSlider(min, max, step float64) priceSlider {
	if step <= 0 {
		step = 1
	}
	if max < min {
		max = min
	}
	return priceSlider{min: min, max: max, step: step, value: max}
}

func (s priceSlider) Value() float64 { return s.value }

// Label is the visible ceiling, e.g. "$25,000".
func (s priceSlider) Label() string { return catalog.FormatPrice(s.value) }

// Move shifts the value by n steps, clamped to the range. It reports whether
// the value changed.
func (s *priceSlider) Move(n int) bool {
	next := s.value + float64(n)*s.step
	next = math.Max(s.min, math.Min(s.max, next))
	if next == s.value {
		return false
	}
	s.value = next
	return true
}

// FitTo raises or lowers the range's top to the first step at or above price
// and moves the value there. Used when the range follows the catalog.
func (s *priceSlider) FitTo(price float64) {
	steps := math.Ceil((price - s.min) / s.step)
	if steps < 1 {
		steps = 1
	}
	s.max = s.min + steps*s.step
	s.value = s.max
}

func (s priceSlider) View() string {
	ratio := 1.0
	if s.max > s.min {
		ratio = (s.value - s.min) / (s.max - s.min)
	}
	filled := int(math.Round(ratio * sliderWidth))
	return SliderFillStyle.Render(strings.Repeat("━", filled)) +
		SliderTrackStyle.Render(strings.Repeat("─", sliderWidth-filled))
}
