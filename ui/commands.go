package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/qyinm/cartui/types"
)

// Message types for async operations

type catalogMsg struct {
	cars []types.Car
	err  error
}

type carDetailMsg struct {
	requestID int
	detail    types.CarDetail
	err       error
}

// fetchCatalog returns a tea.Cmd that fetches the catalog asynchronously
func fetchCatalog(ctx context.Context, source types.CarSource) tea.Cmd {
	return func() tea.Msg {
		cars, err := source.GetCatalog(ctx)
		return catalogMsg{cars: cars, err: err}
	}
}

// fetchCarDetail returns a tea.Cmd that fetches one car's detail asynchronously
func fetchCarDetail(ctx context.Context, source types.CarSource, id string, requestID int) tea.Cmd {
	return func() tea.Msg {
		detail, err := source.GetCarDetail(ctx, id)
		return carDetailMsg{requestID: requestID, detail: detail, err: err}
	}
}
