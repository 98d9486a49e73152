package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/qyinm/cartui/catalog"
	"github.com/qyinm/cartui/types"
)

// cardWidth is a card's width including padding. The border adds 2 columns
// and the padding takes 2 from the text.
const (
	cardWidth     = 26
	cardTextWidth = cardWidth - 2
)

// cardHeight is the rendered height of a card: four text lines plus the
// border.
const cardHeight = 4 + 2

// gridColumns returns how many cards fit side by side in width.
func gridColumns(width int) int {
	if width <= 0 {
		width = defaultWidth
	}
	cols := width / (cardWidth + 2)
	if cols < 1 {
		return 1
	}
	return cols
}

// renderCard renders one car: image reference, "Make Model", year, price.
func renderCard(car types.Car, selected bool) string {
	lines := []string{
		CardImageStyle.Render(ansi.Truncate(imageRef(car.Image()), cardTextWidth, "…")),
		CardTitleStyle.Render(ansi.Truncate(car.Title(), cardTextWidth, "…")),
		fmt.Sprintf("Year: %d", car.Year()),
		CardPriceStyle.Render("Price: " + catalog.FormatPrice(car.Price())),
	}

	style := CardStyle
	if selected {
		style = SelectedCardStyle
	}
	return style.Width(cardWidth).Render(strings.Join(lines, "\n"))
}

// renderGrid lays cards out in rows of cols. cursor marks the focused card
// when active is true.
func renderGrid(cars []types.Car, cursor int, active bool, cols int) string {
	if cols < 1 {
		cols = 1
	}
	rows := make([]string, 0, (len(cars)+cols-1)/cols)
	for start := 0; start < len(cars); start += cols {
		end := start + cols
		if end > len(cars) {
			end = len(cars)
		}
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, renderCard(cars[i], active && i == cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func imageRef(image string) string {
	if strings.TrimSpace(image) == "" {
		return "[no image]"
	}
	return "[img] " + image
}
