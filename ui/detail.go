package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/qyinm/cartui/catalog"
	"github.com/qyinm/cartui/types"
)

// renderDetail renders the detail panel: heading, labeled fields, the
// description and the back control.
func renderDetail(detail types.CarDetail, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	car := detail.Car()

	heading := DetailTitleStyle.Render(fmt.Sprintf("%s (%d)", car.Title(), car.Year()))

	fields := []struct {
		label string
		value string
	}{
		{"Image", imageRef(car.Image())},
		{"Price", catalog.FormatPrice(car.Price())},
		{"Mileage", fmt.Sprintf("%d miles", detail.Mileage())},
		{"Condition", detail.Condition()},
		{"Fuel Type", detail.FuelType()},
		{"Transmission", detail.Transmission()},
		{"Color", detail.Color()},
		{"VIN", detail.VIN()},
	}

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n\n")
	for _, f := range fields {
		b.WriteString(DetailLabelStyle.Render(f.label+":") + " " + f.value + "\n")
	}

	b.WriteString("\n")
	b.WriteString(DetailLabelStyle.Render("Description:"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(width - 2).Render(detail.Description()))
	b.WriteString("\n\n")
	b.WriteString(BackButtonStyle.Render(backToHome + " (esc)"))
	return b.String()
}
