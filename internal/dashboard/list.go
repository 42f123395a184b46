package dashboard

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/phonebook/internal/storage"
)

// Column titles for the View All table.
const (
	ColFirstName = "First Name"
	ColLastName  = "Last Name"
	ColPhone     = "Phone"
)

// EmptyListText is shown when the store holds no contacts.
const EmptyListText = "No contacts available. Add one from the menu."

// listState manages the contact table and its loading/error states for the
// View All screen.
type listState struct {
	contacts []storage.Summary
	table    table.Model
	loading  bool
	err      error
}

// newListState returns a listState in the loading state.
func newListState() listState {
	t := table.New(
		table.WithColumns(listColumns(60)),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(dimColor).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.AdaptiveColor{Light: "15", Dark: "0"}).
		Background(accentColor).
		Bold(false)
	t.SetStyles(styles)
	return listState{table: t, loading: true}
}

// listColumns splits width across the three columns, giving Phone the rest.
func listColumns(width int) []table.Column {
	if width < 30 {
		width = 30
	}
	nameWidth := width / 3
	return []table.Column{
		{Title: ColFirstName, Width: nameWidth - 2},
		{Title: ColLastName, Width: nameWidth - 2},
		{Title: ColPhone, Width: width - 2*nameWidth - 2},
	}
}

// resize fits the table to the content pane.
func (ls listState) resize(width, height int) listState {
	ls.table.SetColumns(listColumns(width))
	ls.table.SetWidth(width)
	if height > 2 {
		ls.table.SetHeight(height - 2)
	}
	return ls
}

// apply replaces the table rows with a fetched list (or error), clearing the
// loading indicator and resetting the cursor.
func (ls listState) apply(msg ContactsLoadedMsg) listState {
	ls.loading = false
	if msg.Err != nil {
		ls.err = msg.Err
		ls.contacts = nil
		ls.table.SetRows(nil)
		return ls
	}
	ls.err = nil
	ls.contacts = append([]storage.Summary(nil), msg.Contacts...)
	rows := make([]table.Row, 0, len(ls.contacts))
	for _, c := range ls.contacts {
		rows = append(rows, table.Row{c.FirstName, c.LastName, c.Phone})
	}
	ls.table.SetRows(rows)
	ls.table.SetCursor(0)
	return ls
}

// selected returns the contact under the cursor.
func (ls listState) selected() (storage.Summary, bool) {
	i := ls.table.Cursor()
	if i < 0 || i >= len(ls.contacts) {
		return storage.Summary{}, false
	}
	return ls.contacts[i], true
}

// Update handles navigation keys for the View All screen.
func (ls listState) Update(msg tea.KeyMsg) (listState, tea.Cmd) {
	switch msg.String() {
	case "r":
		ls.loading = true
		return ls, func() tea.Msg { return RefreshContactsMsg{} }
	case "enter":
		if c, ok := ls.selected(); ok {
			return ls, openContact(c.Phone)
		}
		return ls, nil
	}
	if ls.loading || ls.err != nil {
		return ls, nil
	}
	var cmd tea.Cmd
	ls.table, cmd = ls.table.Update(msg)
	return ls, cmd
}

// View renders the contact table or the loading, error or empty state.
func (ls listState) View() string {
	switch {
	case ls.loading:
		return mutedText.Render("Loading contacts...")
	case ls.err != nil:
		return errorStyle.Render("Error: "+ls.err.Error()) + "\n\n" + mutedText.Render("Press r to retry")
	case len(ls.contacts) == 0:
		return mutedText.Render(EmptyListText)
	}
	return ls.table.View()
}
