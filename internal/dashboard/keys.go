package dashboard

import "github.com/charmbracelet/bubbles/key"

// menuKeys holds key bindings for the menu pane.
type menuKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Jump   key.Binding
	Quit   key.Binding
}

// ShortHelp returns the menu bindings for the help bar.
func (k menuKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Jump, k.Quit}
}

// FullHelp returns the menu bindings grouped for expanded help.
func (k menuKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Jump, k.Quit},
	}
}

// listKeys holds key bindings for the View All screen.
type listKeys struct {
	Up      key.Binding
	Down    key.Binding
	Open    key.Binding
	Refresh key.Binding
	Back    key.Binding
}

// ShortHelp returns the list bindings for the help bar.
func (k listKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Refresh, k.Back}
}

// FullHelp returns the list bindings grouped for expanded help.
func (k listKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open},
		{k.Refresh, k.Back},
	}
}

// formKeys holds key bindings for the contact form.
type formKeys struct {
	Next key.Binding
	Prev key.Binding
	Save key.Binding
	Back key.Binding
}

// ShortHelp returns the form bindings for the help bar.
func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Save, k.Back}
}

// FullHelp returns the form bindings grouped for expanded help.
func (k formKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Save, k.Back},
	}
}

// findKeys holds key bindings for the Find Contact screen.
type findKeys struct {
	Search    key.Binding
	Edit      key.Binding
	Delete    key.Binding
	NewSearch key.Binding
	Back      key.Binding
}

// ShortHelp returns the find bindings for the help bar.
func (k findKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Edit, k.Delete, k.NewSearch, k.Back}
}

// FullHelp returns the find bindings grouped for expanded help.
func (k findKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.NewSearch},
		{k.Edit, k.Delete, k.Back},
	}
}

// confirmKeys holds key bindings for the delete confirmation.
type confirmKeys struct {
	Yes key.Binding
	No  key.Binding
}

// ShortHelp returns the confirmation bindings for the help bar.
func (k confirmKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No}
}

// FullHelp returns the confirmation bindings grouped for expanded help.
func (k confirmKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Yes, k.No}}
}

// backKeys holds the single binding shown on the Home screen.
type backKeys struct {
	Back key.Binding
}

// ShortHelp returns the back binding for the help bar.
func (k backKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Back}
}

// FullHelp returns the back binding for expanded help.
func (k backKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Back}}
}

func backBinding() key.Binding {
	return key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "menu"),
	)
}

// MenuKeyMap returns the key bindings for the menu pane.
func MenuKeyMap() menuKeys {
	return menuKeys{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", "right", "l", "tab"),
			key.WithHelp("enter", "open"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "jump"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ListKeyMap returns the key bindings for the View All screen.
func ListKeyMap() listKeys {
	return listKeys{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open contact"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Back: backBinding(),
	}
}

// FormKeyMap returns the key bindings for the contact form.
func FormKeyMap() formKeys {
	return formKeys{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "previous field"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save contact"),
		),
		Back: backBinding(),
	}
}

// FindKeyMap returns the key bindings for the Find Contact screen.
func FindKeyMap() findKeys {
	return findKeys{
		Search: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete contact"),
		),
		NewSearch: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "new search"),
		),
		Back: backBinding(),
	}
}

// ConfirmKeyMap returns the key bindings for the delete confirmation.
func ConfirmKeyMap() confirmKeys {
	return confirmKeys{
		Yes: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "delete"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n/esc", "cancel"),
		),
	}
}

// HomeKeyMap returns the key bindings for the Home screen.
func HomeKeyMap() backKeys {
	return backKeys{Back: backBinding()}
}
