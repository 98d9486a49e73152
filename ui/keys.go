package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Search   key.Binding
	Enter    key.Binding
	Back     key.Binding
	Tab      key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	GotoPage key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
	Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "detail")),
	Back:     key.NewBinding(key.WithKeys("esc", "backspace", "b"), key.WithHelp("esc", "back")),
	Tab:      key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "focus")),
	PrevPage: key.NewBinding(key.WithKeys("[", "pgup"), key.WithHelp("[", "prev page")),
	NextPage: key.NewBinding(key.WithKeys("]", "pgdown"), key.WithHelp("]", "next page")),
	GotoPage: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "page")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp returns short help key bindings (for help.Model)
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Tab, k.Enter, k.Back, k.NextPage, k.Quit}
}

// FullHelp returns full help key bindings
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Search, k.Tab, k.Enter, k.Back},
		{k.PrevPage, k.NextPage, k.GotoPage},
		{k.Help, k.Quit},
	}
}
