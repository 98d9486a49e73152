package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/qyinm/cartui/catalog"
	"github.com/qyinm/cartui/types"
	log "github.com/sirupsen/logrus"
)

// ViewState represents the current view mode
type ViewState int

const (
	LoadingView ViewState = iota
	ListView
	DetailView
)

// focus is the widget receiving key input in list mode
type focus int

const (
	focusGrid focus = iota
	focusSearch
	focusPrice
)

// Options configures the filters offered by the Model. A PriceMax at or
// below PriceMin makes the slider follow the catalog's most expensive car.
type Options struct {
	FilterMode catalog.FilterMode
	PriceMin   float64
	PriceMax   float64
	PriceStep  float64
}

// Model is the main TUI model
type Model struct {
	ctx      context.Context
	source   types.CarSource
	opts     Options
	catalog  *catalog.State
	search   textinput.Model
	slider   priceSlider
	viewport viewport.Model
	spinner  spinner.Model
	help     help.Model
	keys     keyMap
	state    ViewState
	focus    focus
	cursor   int
	width    int
	height   int

	// loadErr replaces the list surface until the next filter change.
	loadErr error
	// alert is a blocking message shown over the list until dismissed.
	alert string

	// autoPriceMax sizes the slider to the catalog once it arrives.
	autoPriceMax bool

	detail types.CarDetail
	// detailRequestID is bumped on every detail request and on back, so
	// only the newest response is ever displayed.
	detailRequestID int
}

// NewModel creates a new Model reading from the given CarSource
func NewModel(ctx context.Context, source types.CarSource, opts Options) Model {
	if opts.PriceStep <= 0 {
		opts.PriceStep = 1000
	}
	autoPriceMax := opts.PriceMax <= opts.PriceMin
	if autoPriceMax {
		opts.PriceMax = opts.PriceMin + 100*opts.PriceStep
	}

	ti := textinput.New()
	ti.Placeholder = "make or model"
	ti.Prompt = "/ "
	ti.CharLimit = 64
	ti.Width = 20

	s := spinner.New()
	s.Spinner = spinner.Dot

	return Model{
		ctx:      ctx,
		source:   source,
		opts:     opts,
		catalog:  catalog.NewState(nil, opts.FilterMode),
		search:   ti,
		slider:   newPriceSlider(opts.PriceMin, opts.PriceMax, opts.PriceStep),
		viewport: viewport.New(0, 0),
		spinner:  s,
		help:     help.New(),
		keys:     keys,
		state:    LoadingView,
		focus:    focusGrid,

		autoPriceMax: autoPriceMax,
	}
}

// Init starts the catalog fetch
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchCatalog(m.ctx, m.source))
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd := m.dispatch(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizePanes()
		return m, nil

	case catalogMsg:
		m.state = ListView
		if msg.err != nil {
			log.WithError(msg.err).Error("catalog fetch failed")
			m.loadErr = msg.err
			m.catalog = catalog.NewState(nil, m.opts.FilterMode)
			return m, nil
		}
		m.catalog = catalog.NewState(msg.cars, m.opts.FilterMode)
		m.cursor = 0
		if m.autoPriceMax && len(msg.cars) > 0 {
			m.slider.FitTo(highestPrice(msg.cars))
		}
		return m, nil

	case carDetailMsg:
		if msg.requestID != m.detailRequestID {
			log.WithField("request_id", msg.requestID).Debug("dropping stale detail response")
			return m, nil
		}
		if msg.err != nil {
			log.WithError(msg.err).Warn("detail fetch failed")
			m.alert = "Error: " + msg.err.Error()
			return m, nil
		}
		m.showDetail(msg.detail)
		return m, nil

	case spinner.TickMsg:
		if m.state != LoadingView {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.focus == focusSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) showDetail(detail types.CarDetail) {
	m.detail = detail
	m.state = DetailView
	m.alert = ""
	m.resizePanes()
	m.viewport.GotoTop()
}

func highestPrice(cars []types.Car) float64 {
	highest := 0.0
	for _, c := range cars {
		if c.Price() > highest {
			highest = c.Price()
		}
	}
	return highest
}

// Catalog exposes the catalog state, mainly for tests and embedding.
func (m Model) Catalog() *catalog.State { return m.catalog }

// State returns the current view mode.
func (m Model) State() ViewState { return m.state }

// resizePanes fits the viewport to the body area left between the header
// and the help line.
func (m *Model) resizePanes() {
	m.viewport.Width = m.width
	m.viewport.Height = m.bodyHeight()
	m.help.Width = m.width
	if m.state == DetailView {
		m.viewport.SetContent(renderDetail(m.detail, m.width))
	}
}
