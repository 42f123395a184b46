package dashboard

import (
	"fmt"
	"strings"

	"github.com/smileynet/phonebook/internal/storage"
)

// confirmState holds the contact awaiting delete confirmation.
type confirmState struct {
	phone string
	name  string
}

func newConfirmState(c storage.Contact) *confirmState {
	return &confirmState{phone: c.Phone, name: c.FullName()}
}

// View renders the delete confirmation prompt.
func (cs confirmState) View() string {
	var b strings.Builder
	b.WriteString(confirmPrompt.Render("Delete this contact?"))
	b.WriteString("\n")
	if cs.name != "" {
		fmt.Fprintf(&b, "\n  %s", cs.name)
	}
	fmt.Fprintf(&b, "\n  Phone: %s\n", cs.phone)
	b.WriteString("\n  This cannot be undone.")
	b.WriteString("\n\n  [y] Yes   [n] No")
	return b.String()
}
