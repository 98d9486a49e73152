package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/qyinm/cartui/catalog"
)

const (
	appTitle      = "Dealership Catalog"
	noCarsText    = "No cars found"
	backToHome    = "Back to Home"
	defaultWidth  = 80
	defaultHeight = 24
)

// View renders the current view
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.headerView())

	switch m.state {
	case LoadingView:
		b.WriteString(m.spinner.View() + " Loading cars…")
		b.WriteString("\n")
	case ListView:
		b.WriteString(m.listView())
	case DetailView:
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
		b.WriteString(m.pageControlsView(false))
	default:
		b.WriteString("Unknown state\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// headerView is everything above the body: title, filter bar and the alert
// box when one is open. It always ends with a newline.
func (m Model) headerView() string {
	header := TitleStyle.Render(appTitle) + "\n" + m.filterBarView() + "\n\n"
	if m.alert != "" {
		header += AlertStyle.Render(m.alert+"\n\n"+StatusBarStyle.Render("press enter to dismiss")) + "\n"
	}
	return header
}

// bodyHeight is the number of lines left for the grid or the detail
// viewport once the header, page controls and help line are drawn.
func (m Model) bodyHeight() int {
	height := m.height
	if height <= 0 {
		height = defaultHeight
	}
	used := strings.Count(m.headerView(), "\n") + lipgloss.Height(m.help.View(m.keys)) + 2
	return max(1, height-used)
}

func (m Model) filterBarView() string {
	searchLabel := LabelStyle.Render("Search")
	priceLabel := LabelStyle.Render("Max price")
	switch m.focus {
	case focusSearch:
		searchLabel = FocusedLabelStyle.Render("Search")
	case focusPrice:
		priceLabel = FocusedLabelStyle.Render("Max price")
	}

	search := searchLabel + " " + m.search.View()
	price := priceLabel + " " + m.slider.View() + " " + PriceLabelStyle.Render(m.slider.Label())
	row := lipgloss.JoinHorizontal(lipgloss.Top, search, "   ", price)
	if m.width > 0 && lipgloss.Width(row) > m.width {
		return lipgloss.JoinVertical(lipgloss.Left, search, price)
	}
	return row
}

// listView is the list surface: an inline error, the empty message, or the
// card grid followed by the page controls. The grid shows as many rows as
// fit and scrolls to keep the cursor's row in view.
func (m Model) listView() string {
	if m.loadErr != nil {
		return ErrorStyle.Render("Error: "+m.loadErr.Error()) + "\n"
	}
	if m.catalog.Empty() {
		return EmptyStyle.Render(noCarsText) + "\n" + m.pageControlsView(true)
	}

	items := m.catalog.PageItems()
	cols := m.columns()
	rows := max(1, m.bodyHeight()/cardHeight)

	first := 0
	if row := m.cursor / cols; row >= rows {
		first = row - rows + 1
	}
	start := first * cols
	end := min(len(items), start+rows*cols)

	grid := renderGrid(items[start:end], m.cursor-start, m.focus == focusGrid, cols)
	return grid + "\n" + m.pageControlsView(true)
}

// pageControlsView renders one button per page. When markActive is false no
// button is highlighted, as in detail mode.
func (m Model) pageControlsView(markActive bool) string {
	current := 0
	if markActive {
		current = m.catalog.Page()
	}
	return renderPageControls(catalog.Controls(m.catalog.Total(), current))
}

func renderPageControls(buttons []catalog.PageButton) string {
	if len(buttons) == 0 {
		return ""
	}
	parts := make([]string, 0, len(buttons))
	for _, btn := range buttons {
		label := fmt.Sprintf("%d", btn.Number)
		if btn.Active {
			parts = append(parts, ActivePageButtonStyle.Render(label))
			continue
		}
		parts = append(parts, PageButtonStyle.Render(label))
	}
	return strings.Join(parts, "") + "\n"
}
