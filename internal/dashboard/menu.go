package dashboard

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// CursorMarker is the prefix shown on the selected menu entry.
const CursorMarker = "▸ "

// menuState tracks the highlighted menu entry.
type menuState struct {
	cursor int
}

// selected returns the mode under the cursor.
func (ms menuState) selected() Mode {
	return menuModes[ms.cursor]
}

// Update moves the cursor and emits SelectModeMsg when an entry is chosen.
func (ms menuState) Update(msg tea.KeyMsg) (menuState, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if ms.cursor > 0 {
			ms.cursor--
		}
	case "down", "j":
		if ms.cursor < len(menuModes)-1 {
			ms.cursor++
		}
	case "enter", "right", "l", "tab":
		return ms, selectMode(ms.selected())
	case "1", "2", "3", "4":
		ms.cursor = int(msg.Runes[0] - '1')
		return ms, selectMode(ms.selected())
	}
	return ms, nil
}

// point moves the cursor onto mode without emitting anything.
func (ms menuState) point(mode Mode) menuState {
	for i, m := range menuModes {
		if m == mode {
			ms.cursor = i
		}
	}
	return ms
}

// View renders the menu entries with the active mode highlighted.
func (ms menuState) View(active Mode) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Contacts"))
	b.WriteString("\n\n")
	for i, mode := range menuModes {
		prefix := "  "
		if i == ms.cursor {
			prefix = CursorMarker
		}
		line := fmt.Sprintf("%s%d. %s", prefix, i+1, mode)
		if mode == active {
			line = activeItem.Render(line)
		}
		b.WriteString(line)
		if i < len(menuModes)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func selectMode(mode Mode) tea.Cmd {
	return func() tea.Msg {
		return SelectModeMsg{Mode: mode}
	}
}

// openContact switches to Find Contact and looks up phone as stored.
func openContact(phone string) tea.Cmd {
	return func() tea.Msg {
		return SelectModeMsg{Mode: ModeFindContact, Phone: phone, Lookup: true}
	}
}
