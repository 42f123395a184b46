package dashboard

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/smileynet/phonebook/internal/storage"
)

// findState manages the Find Contact screen: a phone input, the matched
// contact, and a pending delete confirmation.
type findState struct {
	input    textinput.Model
	contact  *storage.Contact
	searched string
	looked   bool
	confirm  *confirmState
}

// newFindState returns a find screen with the phone input focused.
func newFindState() findState {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "555-1234"
	ti.CharLimit = 20
	ti.Focus()
	return findState{input: ti}
}

// withPhone fills the input with phone.
func (fs findState) withPhone(phone string) findState {
	fs.input.SetValue(phone)
	fs.input.CursorEnd()
	return fs
}

// apply records a lookup result. A match moves focus to the detail so the
// follow-up keys work; a miss keeps the input focused.
func (fs findState) apply(msg ContactFoundMsg) findState {
	fs.searched = msg.Phone
	fs.looked = true
	fs.confirm = nil
	if msg.Err != nil {
		fs.contact = nil
		fs.input.Focus()
		return fs
	}
	c := msg.Contact
	fs.contact = &c
	fs.input.Blur()
	return fs
}

// cleared resets the screen after the shown contact was deleted.
func (fs findState) cleared() findState {
	fs.contact = nil
	fs.confirm = nil
	fs.searched = ""
	fs.looked = false
	fs.input.SetValue("")
	fs.input.Focus()
	return fs
}

// Update handles typing, search, and the follow-up actions on a match.
func (fs findState) Update(msg tea.KeyMsg) (findState, tea.Cmd) {
	if fs.confirm != nil {
		switch msg.String() {
		case "y":
			phone := fs.confirm.phone
			fs.confirm = nil
			return fs, func() tea.Msg { return ConfirmDeleteMsg{Phone: phone} }
		case "n", "esc":
			fs.confirm = nil
		}
		return fs, nil
	}

	if fs.input.Focused() {
		if msg.String() == "enter" {
			phone := strings.TrimSpace(fs.input.Value())
			return fs, func() tea.Msg { return SearchMsg{Phone: phone} }
		}
		var cmd tea.Cmd
		fs.input, cmd = fs.input.Update(msg)
		return fs, cmd
	}

	if fs.contact == nil {
		return fs, nil
	}
	switch msg.String() {
	case "d":
		fs.confirm = newConfirmState(*fs.contact)
	case "e":
		c := *fs.contact
		return fs, func() tea.Msg { return EditContactMsg{Contact: c} }
	case "/":
		fs.input.Focus()
		fs.input.CursorEnd()
	}
	return fs, nil
}

// View renders the phone input, then the match, miss, or delete prompt.
func (fs findState) View(width int) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Find a Contact"))
	b.WriteString("\n\n")
	label := "Enter Phone Number "
	if fs.input.Focused() {
		b.WriteString(focusedLabel.Render(label))
	} else {
		b.WriteString(labelStyle.Render(label))
	}
	b.WriteString(fs.input.View())
	b.WriteString("\n\n")

	switch {
	case fs.confirm != nil:
		b.WriteString(fs.confirm.View())
	case fs.contact != nil:
		b.WriteString(contactTable(*fs.contact, width))
	case fs.looked:
		b.WriteString(warningStyle.Render(NotFoundText))
	}
	return b.String()
}

// contactTable renders every field of c as a two-column table.
func contactTable(c storage.Contact, width int) string {
	rows := make([][]string, 0, len(c.Fields()))
	for _, f := range c.Fields() {
		rows = append(rows, []string{f.Label, f.Value})
	}
	t := ltable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(detailBorder).
		Headers("Field", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == ltable.HeaderRow {
				return headingStyle.PaddingLeft(1).PaddingRight(1)
			}
			if col == 0 {
				return detailLabel.PaddingLeft(1)
			}
			return detailValue.PaddingRight(1)
		})
	if width > 0 {
		t = t.Width(width)
	}
	return t.Render()
}
