package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
)

// action names a user intent. Key events resolve to an action, and the
// action table maps each one to the handler that mutates the model.
type action int

const (
	actionNone action = iota
	actionQuit
	actionDismissAlert
	actionFocusNext
	actionFocusSearch
	actionSearchInput
	actionPriceDown
	actionPriceUp
	actionCursorUp
	actionCursorDown
	actionCursorLeft
	actionCursorRight
	actionOpenCard
	actionPrevPage
	actionNextPage
	actionGotoPage
	actionBack
	actionScrollDetail
	actionToggleHelp
)

type handler func(m *Model, msg tea.KeyMsg) tea.Cmd

var handlers = map[action]handler{
	actionQuit:         func(*Model, tea.KeyMsg) tea.Cmd { return tea.Quit },
	actionDismissAlert: handleDismissAlert,
	actionFocusNext:    handleFocusNext,
	actionFocusSearch:  handleFocusSearch,
	actionSearchInput:  handleSearchInput,
	actionPriceDown:    func(m *Model, _ tea.KeyMsg) tea.Cmd { return m.movePrice(-1) },
	actionPriceUp:      func(m *Model, _ tea.KeyMsg) tea.Cmd { return m.movePrice(1) },
	actionCursorUp:     func(m *Model, _ tea.KeyMsg) tea.Cmd { m.moveCursor(-m.columns()); return nil },
	actionCursorDown:   func(m *Model, _ tea.KeyMsg) tea.Cmd { m.moveCursor(m.columns()); return nil },
	actionCursorLeft:   func(m *Model, _ tea.KeyMsg) tea.Cmd { m.moveCursor(-1); return nil },
	actionCursorRight:  func(m *Model, _ tea.KeyMsg) tea.Cmd { m.moveCursor(1); return nil },
	actionOpenCard:     handleOpenCard,
	actionPrevPage:     func(m *Model, _ tea.KeyMsg) tea.Cmd { m.selectPage(m.catalog.Page() - 1); return nil },
	actionNextPage:     func(m *Model, _ tea.KeyMsg) tea.Cmd { m.selectPage(m.catalog.Page() + 1); return nil },
	actionGotoPage:     handleGotoPage,
	actionBack:         handleBack,
	actionScrollDetail: handleScrollDetail,
	actionToggleHelp:   handleToggleHelp,
}

// dispatch resolves msg to an action and runs its handler.
func (m *Model) dispatch(msg tea.KeyMsg) tea.Cmd {
	a := m.resolve(msg)
	h, ok := handlers[a]
	if !ok {
		return nil
	}
	return h(m, msg)
}

// resolve maps a key to an action for the current view, focus and alert state.
func (m *Model) resolve(msg tea.KeyMsg) action {
	if msg.String() == "ctrl+c" {
		return actionQuit
	}

	// An open alert blocks all other input.
	if m.alert != "" {
		if msg.String() == "enter" || msg.String() == "esc" {
			return actionDismissAlert
		}
		return actionNone
	}

	switch m.state {
	case LoadingView:
		if key.Matches(msg, m.keys.Quit) {
			return actionQuit
		}
		return actionNone

	case DetailView:
		switch {
		case key.Matches(msg, m.keys.Back):
			return actionBack
		case key.Matches(msg, m.keys.Quit):
			return actionQuit
		}
		return actionScrollDetail
	}

	if m.focus == focusSearch {
		switch msg.String() {
		case "tab", "shift+tab":
			return actionFocusNext
		case "esc", "enter":
			return actionFocusNext
		}
		return actionSearchInput
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return actionQuit
	case key.Matches(msg, m.keys.Tab):
		return actionFocusNext
	case key.Matches(msg, m.keys.Search):
		return actionFocusSearch
	case key.Matches(msg, m.keys.Help):
		return actionToggleHelp
	case key.Matches(msg, m.keys.PrevPage):
		return actionPrevPage
	case key.Matches(msg, m.keys.NextPage):
		return actionNextPage
	case key.Matches(msg, m.keys.GotoPage):
		return actionGotoPage
	}

	if m.focus == focusPrice {
		switch {
		case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Down):
			return actionPriceDown
		case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Up):
			return actionPriceUp
		case key.Matches(msg, m.keys.Back):
			return actionFocusNext
		}
		return actionNone
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		return actionCursorUp
	case key.Matches(msg, m.keys.Down):
		return actionCursorDown
	case key.Matches(msg, m.keys.Left):
		return actionCursorLeft
	case key.Matches(msg, m.keys.Right):
		return actionCursorRight
	case key.Matches(msg, m.keys.Enter):
		return actionOpenCard
	}
	return actionNone
}

func handleDismissAlert(m *Model, _ tea.KeyMsg) tea.Cmd {
	m.alert = ""
	return nil
}

// handleFocusNext cycles grid -> search -> price -> grid.
func handleFocusNext(m *Model, msg tea.KeyMsg) tea.Cmd {
	next := (m.focus + 1) % 3
	if msg.String() == "shift+tab" {
		next = (m.focus + 2) % 3
	}
	if m.focus == focusSearch && (msg.String() == "esc" || msg.String() == "enter") {
		next = focusGrid
	}
	return m.setFocus(next)
}

func handleFocusSearch(m *Model, _ tea.KeyMsg) tea.Cmd {
	return m.setFocus(focusSearch)
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	if f == focusSearch {
		return m.search.Focus()
	}
	m.search.Blur()
	return nil
}

// handleSearchInput feeds the key to the search box and refilters when the
// text changed.
func handleSearchInput(m *Model, msg tea.KeyMsg) tea.Cmd {
	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.applySearch(m.search.Value())
	}
	return cmd
}

func (m *Model) applySearch(term string) {
	m.catalog.Search(term)
	m.afterFilter()
	log.WithFields(log.Fields{"term": term, "matches": m.catalog.Total()}).Debug("search applied")
}

func (m *Model) movePrice(steps int) tea.Cmd {
	if !m.slider.Move(steps) {
		return nil
	}
	m.catalog.SetMaxPrice(m.slider.Value())
	m.afterFilter()
	log.WithFields(log.Fields{"max_price": m.slider.Value(), "matches": m.catalog.Total()}).Debug("price ceiling applied")
	return nil
}

// afterFilter resets list-local state after the filtered view was replaced.
func (m *Model) afterFilter() {
	m.loadErr = nil
	m.cursor = 0
}

func (m *Model) moveCursor(delta int) {
	n := len(m.catalog.PageItems())
	if n == 0 {
		m.cursor = 0
		return
	}
	next := m.cursor + delta
	if next < 0 || next >= n {
		return
	}
	m.cursor = next
}

// selectPage changes only the page; the filtered view is left untouched.
func (m *Model) selectPage(page int) {
	if m.catalog.PageCount() == 0 {
		return
	}
	m.catalog.SetPage(page)
	m.cursor = 0
}

func handleGotoPage(m *Model, msg tea.KeyMsg) tea.Cmd {
	s := msg.String()
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return nil
	}
	page := int(s[0] - '0')
	if page > m.catalog.PageCount() {
		return nil
	}
	m.selectPage(page)
	return nil
}

func handleOpenCard(m *Model, _ tea.KeyMsg) tea.Cmd {
	items := m.catalog.PageItems()
	if m.cursor < 0 || m.cursor >= len(items) {
		return nil
	}
	car := items[m.cursor]
	m.detailRequestID++
	log.WithFields(log.Fields{"id": car.ID(), "request_id": m.detailRequestID}).Debug("fetching car detail")
	return fetchCarDetail(m.ctx, m.source, car.ID(), m.detailRequestID)
}

// handleScrollDetail lets the viewport handle the key, so long detail panels
// can be scrolled.
func handleScrollDetail(m *Model, msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

// handleToggleHelp switches between short and full help. The full help is
// taller, so the body is resized.
func handleToggleHelp(m *Model, _ tea.KeyMsg) tea.Cmd {
	m.help.ShowAll = !m.help.ShowAll
	m.resizePanes()
	return nil
}

// handleBack restores list mode from the existing filtered view and page.
func handleBack(m *Model, _ tea.KeyMsg) tea.Cmd {
	m.state = ListView
	m.detailRequestID++
	return nil
}

func (m Model) columns() int {
	return gridColumns(m.width)
}
